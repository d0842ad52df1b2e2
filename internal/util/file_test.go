package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadIntFromFile(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "rpm")
	err := os.WriteFile(path, []byte(" 2350\n"), 0644)
	assert.NoError(t, err)

	// WHEN
	value, err := ReadIntFromFile(path)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 2350, value)
}

func TestReadIntFromEmptyFile(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "empty")
	err := os.WriteFile(path, []byte(""), 0644)
	assert.NoError(t, err)

	// WHEN
	_, err = ReadIntFromFile(path)

	// THEN
	assert.Error(t, err)
}

func TestReadIntFromMissingFile(t *testing.T) {
	// WHEN
	_, err := ReadIntFromFile(filepath.Join(t.TempDir(), "missing"))

	// THEN
	assert.Error(t, err)
}

func TestReadStringFromFileTrimsWhitespace(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "mode")
	err := os.WriteFile(path, []byte("auto\n"), 0644)
	assert.NoError(t, err)

	// WHEN
	value, err := ReadStringFromFile(path)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, "auto", value)
}

func TestWriteStringToFile(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "mode")

	// WHEN
	err := WriteStringToFile("curve", path)

	// THEN
	assert.NoError(t, err)
	value, err := ReadStringFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "curve", value)
}

func TestWriteFileAtomic(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "fanctl.env")

	// WHEN
	err := WriteFileAtomic("POWER_MODE=balanced\n", path)

	// THEN
	assert.NoError(t, err)
	content, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "POWER_MODE=balanced\n", string(content))
}
