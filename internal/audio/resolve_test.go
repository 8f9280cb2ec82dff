package audio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *MockHost {
	h := NewMockHost(
		DeviceInfo{
			Index:                   0,
			Name:                    "USB Mic",
			HostApiName:             "ALSA",
			MaxInputChannels:        2,
			DefaultLowInputLatency:  10 * time.Millisecond,
			DefaultHighInputLatency: 30 * time.Millisecond,
			DefaultSampleRate:       48000,
		},
		DeviceInfo{
			Index:                    1,
			Name:                     "Built-in Output",
			HostApiName:              "ALSA",
			MaxOutputChannels:        2,
			DefaultLowOutputLatency:  20 * time.Millisecond,
			DefaultHighOutputLatency: 60 * time.Millisecond,
			DefaultSampleRate:        44100,
		},
	)
	h.DefaultInput = 0
	h.DefaultOutput = 1
	return h
}

func TestResolveDeviceEmptySelector(t *testing.T) {
	h := testCatalog()

	index, err := ResolveDevice(h, "", Input)
	require.NoError(t, err)
	assert.Equal(t, 0, index)

	index, err = ResolveDevice(h, "", Output)
	require.NoError(t, err)
	assert.Equal(t, 1, index)
}

func TestResolveDeviceNoDefaultAdvertised(t *testing.T) {
	h := testCatalog()
	h.DefaultOutput = -1

	_, err := ResolveDevice(h, "", Output)
	assert.ErrorIs(t, err, ErrNoDefaultDevice)
}

func TestResolveDeviceNumericSelector(t *testing.T) {
	h := testCatalog()

	index, err := ResolveDevice(h, "0", Input)
	require.NoError(t, err)
	assert.Equal(t, 0, index)

	index, err = ResolveDevice(h, "1", Output)
	require.NoError(t, err)
	assert.Equal(t, 1, index)

	_, err = ResolveDevice(h, "2", Input)
	assert.ErrorIs(t, err, ErrDeviceIndex)

	// Overflows the int parse and must be rejected, not wrapped around.
	_, err = ResolveDevice(h, "99999999999999999999", Input)
	assert.ErrorIs(t, err, ErrDeviceIndex)
}

func TestResolveDeviceNameSelector(t *testing.T) {
	h := testCatalog()

	index, err := ResolveDevice(h, "USB Mic", Input)
	require.NoError(t, err)
	assert.Equal(t, 0, index)

	index, err = ResolveDevice(h, "Built-in Output", Output)
	require.NoError(t, err)
	assert.Equal(t, 1, index)

	_, err = ResolveDevice(h, "Imaginary Device", Input)
	assert.ErrorIs(t, err, ErrDeviceNotFound)

	// Name matching is case sensitive.
	_, err = ResolveDevice(h, "usb mic", Input)
	assert.ErrorIs(t, err, ErrDeviceNotFound)
}

func TestResolveDeviceNumericNamePrecedence(t *testing.T) {
	// A device literally named "1" is shadowed by index classification.
	h := NewMockHost(
		DeviceInfo{Index: 0, Name: "1"},
		DeviceInfo{Index: 1, Name: "Speakers"},
	)

	index, err := ResolveDevice(h, "1", Output)
	require.NoError(t, err)
	assert.Equal(t, 1, index, `selector "1" must resolve as an index, not by name`)
}

func TestResolveDeviceEmptyCatalog(t *testing.T) {
	h := NewMockHost()

	for _, selector := range []string{"", "0", "USB Mic"} {
		_, err := ResolveDevice(h, selector, Input)
		assert.ErrorIs(t, err, ErrNoDevicesAvailable, "selector %q", selector)
	}
}
