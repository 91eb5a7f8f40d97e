package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// 로그 레벨 정의
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

// 로그 레벨을 문자열로 변환
func (l LogLevel) String() string {
	return [...]string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}[l]
}

// 디버그 모드 상태를 저장할 변수와 초기화를 한 번만 수행하기 위한 once
var isDebugMode bool
var debugOnce sync.Once

// IsDebug는 현재 애플리케이션이 디버그 모드로 실행 중인지 확인합니다
func IsDebug() bool {
	debugOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		isDebugMode = env == "dev" || env == "local"
	})
	return isDebugMode
}

// LogSink는 로그 라인을 추가 전용으로 기록하는 파일입니다.
// Reset으로 파일을 비울 수 있습니다.
type LogSink struct {
	mu   sync.Mutex
	path string
}

// NewLogSink는 path에 기록하는 LogSink를 생성합니다. 디렉토리가 없으면 만듭니다.
func NewLogSink(path string) (*LogSink, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("로그 디렉토리 생성 실패: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("로그 파일 열기 실패: %w", err)
	}
	f.Close()
	return &LogSink{path: path}, nil
}

// Path는 로그 파일 경로를 반환합니다
func (s *LogSink) Path() string {
	return s.path
}

// Write는 한 줄을 파일 끝에 추가합니다
func (s *LogSink) Write(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(line + "\n")
	return err
}

// Reset은 로그 파일을 0바이트로 비웁니다
func (s *LogSink) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("로그 파일 초기화 실패: %w", err)
	}
	return f.Close()
}

var (
	sinkMu     sync.RWMutex
	activeSink *LogSink
)

// AttachSink는 모든 로그 메시지를 sink에도 기록하도록 설정합니다. nil이면 해제합니다.
func AttachSink(sink *LogSink) {
	sinkMu.Lock()
	activeSink = sink
	sinkMu.Unlock()
}

// LogMessage는 지정된 레벨에 해당하는 로그 메시지를 출력합니다
func LogMessage(level LogLevel, service string, format string, args ...interface{}) {
	logMessage(2, level, service, format, args...)
}

func logMessage(depth int, level LogLevel, service string, format string, args ...interface{}) {
	// 디버그 모드가 아닐 때 DEBUG 로그는 출력하지 않음
	if level == DEBUG && !IsDebug() {
		return
	}

	_, file, line, _ := runtime.Caller(depth)
	file = filepath.Base(file)

	timestamp := time.Now().Format("2006-01-02 15:04:05")

	message := fmt.Sprintf(format, args...)
	logLine := fmt.Sprintf("[%s] %s [%s] %s:%d - %s",
		timestamp, level.String(), service, file, line, message)

	if level >= ERROR {
		// 에러 레벨 이상은 표준 에러로 출력하고 메트릭에 기록
		fmt.Fprintln(os.Stderr, logLine)
		RecordError(service, level.String())
	} else {
		fmt.Fprintln(os.Stdout, logLine)
	}

	sinkMu.RLock()
	sink := activeSink
	sinkMu.RUnlock()
	if sink != nil {
		if err := sink.Write(logLine); err != nil {
			fmt.Fprintf(os.Stderr, "로그 파일 쓰기 실패: %v\n", err)
		}
	}
}

// 편의성 함수들
func Debug(service, format string, args ...interface{}) {
	logMessage(2, DEBUG, service, format, args...)
}

func Info(service, format string, args ...interface{}) {
	logMessage(2, INFO, service, format, args...)
}

func Warn(service, format string, args ...interface{}) {
	logMessage(2, WARN, service, format, args...)
}

func Error(service, format string, args ...interface{}) {
	logMessage(2, ERROR, service, format, args...)
}

func Fatal(service, format string, args ...interface{}) {
	logMessage(2, FATAL, service, format, args...)
	os.Exit(1)
}
