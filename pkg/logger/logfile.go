package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	logFilePath string
	logFileMu   sync.Mutex
)

type LogData struct {
	Status       string  `json:"status"`
	Source       string  `json:"source"`
	Payload      any     `json:"payload"`
	ErrorDetails *string `json:"error_details,omitempty"`
	Timestamp    string  `json:"timestamp"`
}

func InitLogFile(path string) {
	logFileMu.Lock()
	defer logFileMu.Unlock()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		Panic("failed, creating log directory: " + err.Error())
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		Panic("failed, creating log file: " + err.Error())
	}
	file.Close()

	logFilePath = path
	Infof("✅ Log file initialized at %s", path)
}

// WriteLogToFile appends one JSON line to the audit file.
// It is a no-op until InitLogFile has been called.
func WriteLogToFile(status string, source string, payload any, errorDetails *string) {
	logFileMu.Lock()
	defer logFileMu.Unlock()

	if logFilePath == "" {
		return
	}

	file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		Errorf("failed, opening log file: %v", err)
		return
	}
	defer file.Close()

	logData := LogData{
		Status:       status,
		Source:       source,
		Payload:      payload,
		ErrorDetails: errorDetails,
		Timestamp:    time.Now().Format("2006-01-02 15:04:05"),
	}

	logJSON, err := json.Marshal(logData)
	if err != nil {
		return
	}

	_, _ = file.Write(append(logJSON, '\n'))
}
