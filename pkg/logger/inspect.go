// pkg/logger/inspect.go

package logger

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// TailLogFile returns up to n trailing lines of the log file at path.
func TailLogFile(path string, n int) ([]string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat log file %s: %w", path, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("log path %s is a directory", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	defer f.Close()

	if n <= 0 {
		return nil, nil
	}

	ring := make([]string, 0, n)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if len(ring) == n {
			ring = append(ring[:0], ring[1:]...)
		}
		ring = append(ring, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file %s: %w", path, err)
	}
	return ring, nil
}

// ColorizeLogLine takes a raw JSON log line and applies ANSI color by level.
func ColorizeLogLine(jsonLine string) string {
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(jsonLine), &entry); err != nil {
		return jsonLine
	}

	rawLevel, ok := entry["L"].(string)
	if !ok {
		return jsonLine
	}

	switch rawLevel {
	case "DEBUG":
		return "\033[90m" + jsonLine + "\033[0m"
	case "INFO":
		return "\033[32m" + jsonLine + "\033[0m"
	case "WARN":
		return "\033[33m" + jsonLine + "\033[0m"
	case "ERROR":
		return "\033[31m" + jsonLine + "\033[0m"
	case "FATAL", "PANIC", "DPANIC":
		return "\033[1;31m" + jsonLine + "\033[0m"
	default:
		return jsonLine
	}
}
