package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// readInput reads a file, or stdin when path is "-".
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// parseAnswers accepts a JSON array of strings or plain text with one answer
// per non-blank line.
func parseAnswers(data []byte) ([]string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var answers []string
		if err := json.Unmarshal(trimmed, &answers); err != nil {
			return nil, fmt.Errorf("answers file is not a JSON array of strings: %w", err)
		}
		return answers, nil
	}

	answers := []string{}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		answers = append(answers, line)
	}
	return answers, nil
}
