package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	logFileName = "stopwatch-demo.log"
	maxLogSize  = 10 * 1024 * 1024
)

var logDir = "logs"

// setupLogging routes the standard logger to logs/stopwatch-demo.log when debug
// is set and discards it otherwise; the terminal is owned by the screen so
// nothing may go to stdout or stderr. A log over maxLogSize is rotated aside.
// Returns the open log file for the caller to close, nil when disabled.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		stamp := time.Now().Format("20060102-150405")
		rotated := filepath.Join(logDir, fmt.Sprintf("%s-%s.log", strings.TrimSuffix(logFileName, ".log"), stamp))
		// Rotation failure only means the file keeps growing
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
