package utils

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// 직접 등록할 수 있도록 메트릭을 promauto 대신 일반 prometheus로 선언
var (
	// RequestCounter는 총 요청 수를 추적합니다
	RequestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "blogagent_http_requests_total",
		Help: "총 HTTP 요청 수",
	}, []string{"method", "path", "status"})

	// ResponseTime은 응답 시간을 측정합니다
	ResponseTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "blogagent_http_response_time_seconds",
		Help:    "HTTP 요청 응답 시간(초)",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"method", "path", "status"})

	// ApiCallCounter는 외부 API 호출 수를 추적합니다
	ApiCallCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "blogagent_api_calls_total",
		Help: "외부 API 호출 수",
	}, []string{"api", "status"})

	// ApiResponseTime은 외부 API 응답 시간을 측정합니다
	ApiResponseTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "blogagent_api_response_time_seconds",
		Help:    "외부 API 응답 시간(초)",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 15, 20, 30, 60},
	}, []string{"api"})

	// PipelineCounter는 파이프라인 단계별 결과를 추적합니다
	PipelineCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "blogagent_pipeline_total",
		Help: "파이프라인 단계별 처리 결과",
	}, []string{"stage", "result"})

	// ErrorCounter는 오류 발생 수를 추적합니다
	ErrorCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "blogagent_error_total",
		Help: "오류 발생 수",
	}, []string{"service", "type"})

	// ServerGauge는 서버 부하/용량/상태를 나타냅니다
	ServerGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "blogagent_server_status",
		Help: "서버 상태 지표 (load, capacity, healthy)",
	}, []string{"server", "metric"})
)

// InitMetrics는 모든 메트릭을 등록합니다
func InitMetrics() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(ResponseTime)
	prometheus.MustRegister(ApiCallCounter)
	prometheus.MustRegister(ApiResponseTime)
	prometheus.MustRegister(PipelineCounter)
	prometheus.MustRegister(ErrorCounter)
	prometheus.MustRegister(ServerGauge)

	fmt.Println("메트릭 초기화 완료")
}

// RecordRequest는 HTTP 요청 메트릭을 기록합니다
func RecordRequest(method, path string, statusCode int, duration float64) {
	status := fmt.Sprintf("%d", statusCode)
	RequestCounter.WithLabelValues(method, path, status).Inc()
	ResponseTime.WithLabelValues(method, path, status).Observe(duration)
}

// RecordApiCall은 외부 API 호출 메트릭을 기록합니다
func RecordApiCall(apiName string, statusCode int, duration float64) {
	status := "success"
	if statusCode < 200 || statusCode >= 400 {
		status = "error"
	}
	ApiCallCounter.WithLabelValues(apiName, status).Inc()
	ApiResponseTime.WithLabelValues(apiName).Observe(duration)
}

// RecordPipeline은 파이프라인 단계(extract, generate)의 결과를 기록합니다
func RecordPipeline(stage, result string) {
	PipelineCounter.WithLabelValues(stage, result).Inc()
}

// RecordError는 오류 발생을 기록합니다
func RecordError(service string, errorType string) {
	ErrorCounter.WithLabelValues(service, errorType).Inc()
}

// UpdateServerMetric은 서버 상태 게이지를 갱신합니다
func UpdateServerMetric(serverName, metric string, value float64) {
	ServerGauge.WithLabelValues(serverName, metric).Set(value)
}
