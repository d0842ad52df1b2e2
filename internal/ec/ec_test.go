package ec

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func createTestStore(t *testing.T) *Store {
	t.Helper()
	root := t.TempDir()

	for _, dir := range []string{"fan1", "apu", "temp1"} {
		err := os.MkdirAll(filepath.Join(root, dir), 0755)
		assert.NoError(t, err)
	}

	files := map[string]string{
		"fan1/mode":      "auto",
		"fan1/rpm":       "2350",
		"apu/power_mode": "balanced",
		"temp1/temp":     "54",
	}
	for path, content := range files {
		err := os.WriteFile(filepath.Join(root, path), []byte(content+"\n"), 0644)
		assert.NoError(t, err)
	}

	return NewStore(root)
}

func TestStoreAvailable(t *testing.T) {
	// GIVEN
	store := createTestStore(t)

	// WHEN
	available := store.Available()

	// THEN
	assert.True(t, available)
}

func TestStoreNotAvailable(t *testing.T) {
	// GIVEN
	store := NewStore(filepath.Join(t.TempDir(), "missing"))

	// WHEN
	available := store.Available()

	// THEN
	assert.False(t, available)
}

func TestStoreReadString(t *testing.T) {
	// GIVEN
	store := createTestStore(t)

	// WHEN
	value, err := store.ReadString("fan1/mode")

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, "auto", value)
}

func TestStoreReadInt(t *testing.T) {
	// GIVEN
	store := createTestStore(t)

	// WHEN
	value, err := store.ReadInt("fan1/rpm")

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 2350, value)
}

func TestStoreWriteString(t *testing.T) {
	// GIVEN
	store := createTestStore(t)

	// WHEN
	err := store.WriteString(PowerModeEndpoint, "performance")

	// THEN
	assert.NoError(t, err)
	value, err := store.ReadString(PowerModeEndpoint)
	assert.NoError(t, err)
	assert.Equal(t, "performance", value)
}

func TestStoreMissingEndpoint(t *testing.T) {
	// GIVEN
	store := createTestStore(t)

	// WHEN
	_, err := store.ReadString("fan3/mode")

	// THEN
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrEndpointMissing))
	assert.False(t, errors.Is(err, ErrDriverNotLoaded))
}

func TestStoreMissingRootIsDriverNotLoaded(t *testing.T) {
	// GIVEN
	store := NewStore(filepath.Join(t.TempDir(), "missing"))

	// WHEN
	_, err := store.ReadString("fan1/mode")

	// THEN
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrDriverNotLoaded))
}

func TestWaitUntilAvailableReturnsImmediately(t *testing.T) {
	// GIVEN
	store := createTestStore(t)

	// WHEN
	err := store.WaitUntilAvailable(context.Background(), time.Millisecond, 1)

	// THEN
	assert.NoError(t, err)
}

func TestWaitUntilAvailableExhaustsBudget(t *testing.T) {
	// GIVEN
	store := NewStore(filepath.Join(t.TempDir(), "missing"))

	// WHEN
	err := store.WaitUntilAvailable(context.Background(), time.Millisecond, 3)

	// THEN
	assert.True(t, errors.Is(err, ErrDriverNotLoaded))
}

func TestWaitUntilAvailableIsInterruptible(t *testing.T) {
	// GIVEN
	store := NewStore(filepath.Join(t.TempDir(), "missing"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// WHEN
	err := store.WaitUntilAvailable(ctx, time.Minute, 10)

	// THEN
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestHasEndpoint(t *testing.T) {
	// GIVEN
	store := createTestStore(t)

	// THEN
	assert.True(t, store.HasEndpoint("fan1/mode"))
	assert.False(t, store.HasEndpoint("fan3/mode"))
}
