package ec

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bosgame-linux/fanctl/internal/ui"
	"github.com/bosgame-linux/fanctl/internal/util"
)

// DefaultSysfsPath is the sysfs class exposed by the ec_su_axb35 driver
// on Bosgame M5 / Sixunited AXB35 boards.
const DefaultSysfsPath = "/sys/class/ec_su_axb35"

const (
	// PowerModeEndpoint selects the APU power profile.
	PowerModeEndpoint = "apu/power_mode"
	// TemperatureEndpoint is the EC's own temperature reading in degrees.
	TemperatureEndpoint = "temp1/temp"
)

var (
	// ErrDriverNotLoaded indicates that the sysfs class root of the EC
	// driver does not exist, i.e. the kernel module is not loaded.
	ErrDriverNotLoaded = errors.New("ec driver not loaded")
	// ErrEndpointMissing indicates that an individual attribute endpoint
	// does not exist on this board, e.g. a missing third fan header.
	ErrEndpointMissing = errors.New("ec attribute endpoint missing")
)

// Store provides read/write access to the attribute endpoints of the
// EC driver. Each endpoint is a plain-text sysfs file below Root.
type Store struct {
	Root string
}

func NewStore(root string) *Store {
	if root == "" {
		root = DefaultSysfsPath
	}
	return &Store{Root: root}
}

// Available reports whether the driver's sysfs class root exists.
func (s *Store) Available() bool {
	_, err := os.Stat(s.Root)
	return err == nil
}

// WaitUntilAvailable polls for the driver root until it appears, the
// attempt budget is exhausted or ctx is cancelled. The EC module may
// load asynchronously relative to this software's startup.
func (s *Store) WaitUntilAvailable(ctx context.Context, interval time.Duration, attempts int) error {
	for attempt := 0; attempt < attempts; attempt++ {
		if s.Available() {
			return nil
		}
		ui.Debug("Waiting for EC driver at %s (attempt %d/%d)...", s.Root, attempt+1, attempts)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}

	if s.Available() {
		return nil
	}
	return ErrDriverNotLoaded
}

// HasEndpoint reports whether the given attribute endpoint exists.
func (s *Store) HasEndpoint(endpoint string) bool {
	_, err := os.Stat(s.path(endpoint))
	return err == nil
}

func (s *Store) ReadString(endpoint string) (string, error) {
	value, err := util.ReadStringFromFile(s.path(endpoint))
	if err != nil {
		return "", s.wrapError(endpoint, err)
	}
	return value, nil
}

func (s *Store) ReadInt(endpoint string) (int, error) {
	value, err := util.ReadIntFromFile(s.path(endpoint))
	if err != nil {
		return -1, s.wrapError(endpoint, err)
	}
	return value, nil
}

func (s *Store) WriteString(endpoint string, value string) error {
	err := util.WriteStringToFile(value, s.path(endpoint))
	if err != nil {
		return s.wrapError(endpoint, err)
	}
	return nil
}

func (s *Store) WriteInt(endpoint string, value int) error {
	err := util.WriteIntToFile(value, s.path(endpoint))
	if err != nil {
		return s.wrapError(endpoint, err)
	}
	return nil
}

// RelaxPermissions makes the given writable endpoints accessible to
// non-privileged processes (e.g. a GUI running as the desktop user).
// Missing endpoints are skipped. The operation is idempotent.
func (s *Store) RelaxPermissions(endpoints ...string) {
	for _, endpoint := range endpoints {
		path := s.path(endpoint)
		if err := os.Chmod(path, 0666); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			ui.Warning("Unable to relax permissions of %s: %v", path, err)
		}
	}
}

func (s *Store) path(endpoint string) string {
	return filepath.Join(s.Root, endpoint)
}

func (s *Store) wrapError(endpoint string, err error) error {
	if os.IsNotExist(err) {
		if !s.Available() {
			return fmt.Errorf("%s: %w", endpoint, ErrDriverNotLoaded)
		}
		return fmt.Errorf("%s: %w", endpoint, ErrEndpointMissing)
	}
	return fmt.Errorf("%s: %w", endpoint, err)
}
