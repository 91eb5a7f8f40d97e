package main

import (
	"os"

	"github.com/sh5080/ndns-comment/pkg/serverless"
)

func main() {
	// Lambda 런타임이면 API Gateway 어댑터로, 아니면 Cloud Run처럼 PORT로 실행
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		serverless.LambdaMain()
		return
	}
	serverless.CloudRunMain()
}
