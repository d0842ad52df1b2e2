package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/natefinch/atomic"
)

// ReadStringFromFile reads a file and returns its content with surrounding whitespace removed.
func ReadStringFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	text := string(data)
	if len(text) <= 0 {
		return "", fmt.Errorf("file is empty: %s", path)
	}
	return strings.TrimSpace(text), nil
}

func ReadIntFromFile(path string) (value int, err error) {
	text, err := ReadStringFromFile(path)
	if err != nil {
		return -1, err
	}
	value, err = strconv.Atoi(text)
	return value, err
}

// WriteStringToFile writes the given value to a file as-is.
// Sysfs attributes reject rename-into-place, so this is a plain write.
func WriteStringToFile(value string, path string) error {
	evaluatedPath, err := resolvePath(path)
	if len(evaluatedPath) > 0 && err == nil {
		path = evaluatedPath
	}
	return os.WriteFile(path, []byte(value), 0644)
}

func WriteIntToFile(value int, path string) error {
	return WriteStringToFile(strconv.Itoa(value), path)
}

// WriteFileAtomic writes content to a regular file using a rename over
// a temporary file, so readers never observe a partial write.
func WriteFileAtomic(content string, path string) error {
	return atomic.WriteFile(path, strings.NewReader(content))
}

func resolvePath(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}
