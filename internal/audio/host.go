package audio

import "time"

// Direction selects whether a stream captures from or plays to a
// device.
type Direction int

const (
	Input Direction = iota
	Output
)

func (d Direction) String() string {
	if d == Output {
		return "output"
	}
	return "input"
}

// DeviceInfo is a read-only snapshot of one native device's
// capabilities. Values are owned by the native subsystem and may
// change between queries when the hardware topology changes.
type DeviceInfo struct {
	Index                    int
	Name                     string
	HostApiName              string
	MaxInputChannels         int
	MaxOutputChannels        int
	DefaultLowInputLatency   time.Duration
	DefaultLowOutputLatency  time.Duration
	DefaultHighInputLatency  time.Duration
	DefaultHighOutputLatency time.Duration
	DefaultSampleRate        float64
}

// DefaultLatency returns the device's default low and high latency
// for the given stream direction.
func (d *DeviceInfo) DefaultLatency(dir Direction) (low, high time.Duration) {
	if dir == Output {
		return d.DefaultLowOutputLatency, d.DefaultHighOutputLatency
	}
	return d.DefaultLowInputLatency, d.DefaultHighInputLatency
}

// StreamParams is the accumulated parameter set needed to open one
// native stream. Channels, Format and Direction are fixed at block
// construction; DeviceIndex is filled in by device resolution and
// SuggestedLatency by stream negotiation.
type StreamParams struct {
	DeviceIndex      int
	Channels         int
	Format           SampleFormat
	SuggestedLatency time.Duration
	Direction        Direction
}

// Host abstracts the native audio subsystem session: device catalog
// queries, format support checks, and stream opening. Implementations
// must not cache catalog answers on behalf of the caller. All calls
// are synchronous and may block in the native layer.
type Host interface {
	// DeviceCount reports the number of currently visible devices.
	DeviceCount() (int, error)

	// DeviceInfo describes the device at index. It fails with
	// ErrDeviceIndex when index is outside [0, DeviceCount).
	DeviceInfo(index int) (*DeviceInfo, error)

	// DefaultDevice returns the catalog index of the default device
	// for the given direction, or ErrNoDefaultDevice when the
	// subsystem advertises none.
	DefaultDevice(dir Direction) (int, error)

	// IsFormatSupported checks the parameters and rate against the
	// device without opening a stream.
	IsFormatSupported(p StreamParams, sampleRate float64) error

	// OpenStream opens a blocking-mode native stream for the single
	// direction named by the parameters.
	OpenStream(p StreamParams, sampleRate float64) (Stream, error)

	// Close tears down the subsystem session. Every stream opened
	// through this host must be closed first.
	Close() error
}

// Stream is one open native audio stream, exclusively owned by the
// block that opened it. It must be closed exactly once.
type Stream interface {
	Start() error
	Stop() error
	Close() error

	// SampleSize reports the per-sample byte width actually allocated
	// for the negotiated format.
	SampleSize() int
}
