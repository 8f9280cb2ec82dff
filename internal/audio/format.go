package audio

import "fmt"

// SampleFormat is the native sample encoding for one stream, using
// PortAudio's public PaSampleFormat bit values. The NonInterleaved
// bit is combined in for planar channel layouts.
type SampleFormat uint32

const (
	Float32 SampleFormat = 0x00000001
	Int32   SampleFormat = 0x00000002
	Int16   SampleFormat = 0x00000008
	Int8    SampleFormat = 0x00000010
	UInt8   SampleFormat = 0x00000020

	NonInterleaved SampleFormat = 0x80000000
)

// ParseSampleFormat maps an abstract dtype name to its native sample
// encoding. Unknown dtypes are rejected explicitly rather than left
// with an unset format.
func ParseSampleFormat(dtype string, interleaved bool) (SampleFormat, error) {
	var format SampleFormat
	switch dtype {
	case "float32":
		format = Float32
	case "int32":
		format = Int32
	case "int16":
		format = Int16
	case "int8":
		format = Int8
	case "uint8":
		format = UInt8
	default:
		return 0, fmt.Errorf("dtype %q: %w", dtype, ErrUnsupportedFormat)
	}
	if !interleaved {
		format |= NonInterleaved
	}
	return format, nil
}

// Base returns the encoding with the channel layout bit stripped.
func (f SampleFormat) Base() SampleFormat { return f &^ NonInterleaved }

// Interleaved reports whether frames carry all channels back to back,
// as opposed to one buffer per channel.
func (f SampleFormat) Interleaved() bool { return f&NonInterleaved == 0 }

// Size returns the width of one sample in bytes, or 0 for an unknown
// encoding.
func (f SampleFormat) Size() int {
	switch f.Base() {
	case Float32, Int32:
		return 4
	case Int16:
		return 2
	case Int8, UInt8:
		return 1
	}
	return 0
}

func (f SampleFormat) String() string {
	var name string
	switch f.Base() {
	case Float32:
		name = "float32"
	case Int32:
		name = "int32"
	case Int16:
		name = "int16"
	case Int8:
		name = "int8"
	case UInt8:
		name = "uint8"
	default:
		return fmt.Sprintf("SampleFormat(%#x)", uint32(f))
	}
	if !f.Interleaved() {
		name += ",noninterleaved"
	}
	return name
}
