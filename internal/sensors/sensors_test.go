package sensors

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bosgame-linux/fanctl/internal/ec"
	"github.com/stretchr/testify/assert"
)

func TestFileSensorAppliesDivisor(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "temp1_input")
	err := os.WriteFile(path, []byte("65000\n"), 0644)
	assert.NoError(t, err)

	sensor := &FileSensor{
		Id:      "cpu",
		Label:   "CPU (Tctl)",
		Path:    path,
		Divisor: 1000,
	}

	// WHEN
	value, err := sensor.GetValue()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 65.0, value)
}

func TestFileSensorMissingPath(t *testing.T) {
	// GIVEN
	sensor := &FileSensor{
		Id:      "cpu",
		Path:    filepath.Join(t.TempDir(), "missing"),
		Divisor: 1000,
	}

	// WHEN
	_, err := sensor.GetValue()

	// THEN
	assert.Error(t, err)
}

func TestEcSensorReadsPlainDegrees(t *testing.T) {
	// GIVEN
	root := t.TempDir()
	err := os.MkdirAll(filepath.Join(root, "temp1"), 0755)
	assert.NoError(t, err)
	err = os.WriteFile(filepath.Join(root, "temp1", "temp"), []byte("54\n"), 0644)
	assert.NoError(t, err)

	sensor := &EcSensor{
		Id:    "ec",
		Label: "EC Sensor",
		Store: ec.NewStore(root),
	}

	// WHEN
	value, err := sensor.GetValue()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 54.0, value)
}

func TestSensorMovingAvg(t *testing.T) {
	// GIVEN
	sensor := &FileSensor{Id: "cpu"}

	// WHEN
	sensor.SetMovingAvg(61.5)

	// THEN
	assert.Equal(t, 61.5, sensor.GetMovingAvg())
}

func TestNewSensorsIncludesEcFirst(t *testing.T) {
	// GIVEN
	store := ec.NewStore(t.TempDir())

	// WHEN
	result := NewSensors(store)

	// THEN
	assert.Equal(t, "ec", result[0].GetId())
	assert.Len(t, result, 7)
}

func TestGetSensorById(t *testing.T) {
	// GIVEN
	store := ec.NewStore(t.TempDir())

	// WHEN
	sensor, exists := GetSensor(store, "gpu")

	// THEN
	assert.True(t, exists)
	assert.Equal(t, "GPU (Edge)", sensor.GetLabel())

	_, exists = GetSensor(store, "nope")
	assert.False(t, exists)
}
