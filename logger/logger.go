package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

var (
	AppLogger   *log.Logger
	RunLogger   *log.Logger
	ErrorLogger *log.Logger

	logLevel    string
	appLogFile  *os.File
	runLogFile  *os.File
	initialized bool
)

// InitGlobalLoggers opens the application log and the validation-run log.
// Safe to call again with the same settings; re-initialization closes the
// previous files first.
func InitGlobalLoggers(appLogPath, runLogPath, level string) error {
	if initialized && appLogFile != nil && runLogFile != nil && strings.ToUpper(level) == logLevel {
		return nil
	}
	if appLogFile != nil {
		appLogFile.Close()
		appLogFile = nil
	}
	if runLogFile != nil {
		runLogFile.Close()
		runLogFile = nil
	}

	logLevel = strings.ToUpper(level)
	if logLevel == "" {
		logLevel = "INFO"
	}

	ErrorLogger = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)

	actualAppLogPath := appLogPath
	appLogDir := filepath.Dir(appLogPath)
	var appLogWriter io.Writer = io.Discard
	if err := os.MkdirAll(appLogDir, 0750); err != nil {
		ErrorLogger.Printf("Failed to create app log directory %s: %v. App logs (Info/Debug) will be discarded.", appLogDir, err)
		actualAppLogPath = "(discarded)"
	} else {
		var errApp error
		appLogFile, errApp = os.OpenFile(appLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
		if errApp != nil {
			ErrorLogger.Printf("Failed to open app log file %s: %v. App logs (Info/Debug) will be discarded.", appLogPath, errApp)
			actualAppLogPath = "(discarded)"
		} else {
			appLogWriter = appLogFile
		}
	}
	AppLogger = log.New(appLogWriter, "APP: ", log.Ldate|log.Ltime|log.Lshortfile)

	actualRunLogPath := runLogPath
	runLogDir := filepath.Dir(runLogPath)
	var runLogWriter io.Writer = io.Discard
	if err := os.MkdirAll(runLogDir, 0750); err != nil {
		ErrorLogger.Printf("Failed to create run log directory %s: %v. Validation run logs will be discarded.", runLogDir, err)
		actualRunLogPath = "(discarded)"
	} else {
		var errRun error
		runLogFile, errRun = os.OpenFile(runLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
		if errRun != nil {
			ErrorLogger.Printf("Failed to open run log file %s: %v. Validation run logs will be discarded.", runLogPath, errRun)
			actualRunLogPath = "(discarded)"
		} else {
			runLogWriter = runLogFile
		}
	}
	RunLogger = log.New(runLogWriter, "RUN: ", log.Ldate|log.Ltime|log.Lshortfile)

	if !initialized { // Print init messages only once
		AppLogger.Printf("App logger initialized. Log level: %s. Output file: %s", logLevel, actualAppLogPath)
		RunLogger.Printf("Run logger initialized. Log level: %s. Output file: %s", logLevel, actualRunLogPath)
	}
	initialized = true
	return nil
}

func Info(format string, v ...interface{}) {
	if AppLogger != nil && (logLevel == "INFO" || logLevel == "DEBUG") {
		AppLogger.Printf(format, v...)
	}
}

func Debug(format string, v ...interface{}) {
	if AppLogger != nil && logLevel == "DEBUG" {
		AppLogger.Printf(format, v...)
	}
}

func Warn(format string, v ...interface{}) {
	if AppLogger != nil && logLevel != "ERROR" {
		AppLogger.Printf("WARN: "+format, v...)
	}
}

func Error(format string, v ...interface{}) {
	message := fmt.Sprintf(format, v...)
	if ErrorLogger != nil {
		ErrorLogger.Print(message)
	}
	if AppLogger != nil && appLogFile != nil {
		AppLogger.Print(message)
	}
}

func Fatal(format string, v ...interface{}) {
	message := fmt.Sprintf(format, v...)
	if ErrorLogger != nil {
		ErrorLogger.Fatal(message)
	} else {
		log.Fatal(message)
	}
}

// RunInfo logs a message to the validation-run log only.
func RunInfo(format string, v ...interface{}) {
	if RunLogger != nil && (logLevel == "INFO" || logLevel == "DEBUG") {
		RunLogger.Printf(format, v...)
	}
}

func RunDebug(format string, v ...interface{}) {
	if RunLogger != nil && logLevel == "DEBUG" {
		RunLogger.Printf(format, v...)
	}
}

// RunError logs a validation-run error to stderr and to the run log file.
func RunError(format string, v ...interface{}) {
	message := fmt.Sprintf(format, v...)
	if ErrorLogger != nil {
		ErrorLogger.Print(message)
	}
	if RunLogger != nil && runLogFile != nil {
		RunLogger.Print(message)
	}
}

func CloseLogFiles() {
	if appLogFile != nil {
		AppLogger.Println("Closing app log file.")
		appLogFile.Close()
		appLogFile = nil // Prevent double close
	}
	if runLogFile != nil {
		RunLogger.Println("Closing run log file.")
		runLogFile.Close()
		runLogFile = nil // Prevent double close
	}
	initialized = false // Allow re-initialization if needed (e.g. tests)
}
