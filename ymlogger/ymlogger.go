package ymlogger

import (
	"time"
)

// LogLevel is the severity of a log line.
type LogLevel byte

const (
	// DEBUG for debug level statements
	DEBUG LogLevel = iota
	// INFO for info level statements
	INFO
	// ERROR for error level statements
	ERROR
	// CRITICAL for critical level statements
	CRITICAL
)

func (logLevel LogLevel) String() string {
	switch logLevel {
	case CRITICAL:
		return "CRITICAL"
	case ERROR:
		return "ERROR"
	case INFO:
		return "INFO"
	case DEBUG:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// FromString returns the enum for the configured severity string.
func (logLevel LogLevel) FromString(severity string) LogLevel {
	switch severity {
	case "CRITICAL":
		return CRITICAL
	case "ERROR":
		return ERROR
	case "INFO":
		return INFO
	case "DEBUG":
		return DEBUG
	default:
		return INFO
	}
}

// BaseLoggerData carries the fields common to every log line. RequestID
// is usually the call SID the line belongs to.
type BaseLoggerData struct {
	RequestID   string
	LogTime     time.Time
	ProcessName string
	Hostname    string
	ProcessID   int
}

// LogData is one JSON log line.
type LogData struct {
	BaseLogger BaseLoggerData
	Level      string
	FileName   string
	LineNum    int
	Msg        string
}

// LoggerConf is the service specific logger configuration.
type LoggerConf struct {
	ProcessName string `json:"process_name"`
	LogSeverity string `json:"log_severity"`
	LogFileName string `json:"log_file_name"`
	ConsoleLog  bool   `json:"console_log"`
}
