package audio

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
)

// defaultFramesPerBuffer sizes the blocking-mode transfer buffers.
// The portaudio binding infers a stream's native sample format from
// the buffer element type, so the buffer also carries the format
// through support checks and opens.
const defaultFramesPerBuffer = 512

// PortAudioHost implements Host on the system PortAudio library. One
// host pairs a subsystem initialize with its Close. Catalog queries go
// to the native layer on every call; nothing is cached here.
type PortAudioHost struct {
	framesPerBuffer int
}

// NewHost initializes the PortAudio subsystem.
func NewHost() (*PortAudioHost, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize PortAudio: %w", err)
	}
	return &PortAudioHost{framesPerBuffer: defaultFramesPerBuffer}, nil
}

// Close terminates the PortAudio subsystem. Every stream opened
// through this host must be closed first.
func (h *PortAudioHost) Close() error {
	return portaudio.Terminate()
}

func (h *PortAudioHost) DeviceCount() (int, error) {
	devices, err := portaudio.Devices()
	if err != nil {
		return 0, fmt.Errorf("failed to enumerate devices: %w", err)
	}
	return len(devices), nil
}

func (h *PortAudioHost) DeviceInfo(index int) (*DeviceInfo, error) {
	devices, err := portaudio.Devices()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate devices: %w", err)
	}
	if index < 0 || index >= len(devices) {
		return nil, fmt.Errorf("device %d of %d: %w", index, len(devices), ErrDeviceIndex)
	}

	d := devices[index]
	info := &DeviceInfo{
		Index:                    index,
		Name:                     d.Name,
		MaxInputChannels:         d.MaxInputChannels,
		MaxOutputChannels:        d.MaxOutputChannels,
		DefaultLowInputLatency:   d.DefaultLowInputLatency,
		DefaultLowOutputLatency:  d.DefaultLowOutputLatency,
		DefaultHighInputLatency:  d.DefaultHighInputLatency,
		DefaultHighOutputLatency: d.DefaultHighOutputLatency,
		DefaultSampleRate:        d.DefaultSampleRate,
	}
	if d.HostApi != nil {
		info.HostApiName = d.HostApi.Name
	}
	return info, nil
}

func (h *PortAudioHost) DefaultDevice(dir Direction) (int, error) {
	devices, err := portaudio.Devices()
	if err != nil {
		return 0, fmt.Errorf("failed to enumerate devices: %w", err)
	}

	var def *portaudio.DeviceInfo
	if dir == Output {
		def, err = portaudio.DefaultOutputDevice()
	} else {
		def, err = portaudio.DefaultInputDevice()
	}
	if err != nil {
		return 0, fmt.Errorf("default %s device: %v: %w", dir, err, ErrNoDefaultDevice)
	}

	// Device info pointers are stable for the life of the subsystem
	// session, so identity locates the catalog index.
	for i, d := range devices {
		if d == def {
			return i, nil
		}
	}
	return 0, fmt.Errorf("default %s device not in catalog: %w", dir, ErrNoDefaultDevice)
}

func (h *PortAudioHost) IsFormatSupported(p StreamParams, sampleRate float64) error {
	params, buffer, err := h.streamParameters(p)
	if err != nil {
		return err
	}
	params.SampleRate = sampleRate
	return portaudio.IsFormatSupported(params, buffer)
}

func (h *PortAudioHost) OpenStream(p StreamParams, sampleRate float64) (Stream, error) {
	params, buffer, err := h.streamParameters(p)
	if err != nil {
		return nil, err
	}
	params.SampleRate = sampleRate

	stream, err := portaudio.OpenStream(params, buffer)
	if err != nil {
		return nil, err
	}
	return &portAudioStream{stream: stream, sampleSize: p.Format.Size()}, nil
}

func (h *PortAudioHost) streamParameters(p StreamParams) (portaudio.StreamParameters, any, error) {
	devices, err := portaudio.Devices()
	if err != nil {
		return portaudio.StreamParameters{}, nil, fmt.Errorf("failed to enumerate devices: %w", err)
	}
	if p.DeviceIndex < 0 || p.DeviceIndex >= len(devices) {
		return portaudio.StreamParameters{}, nil,
			fmt.Errorf("device %d of %d: %w", p.DeviceIndex, len(devices), ErrDeviceIndex)
	}

	side := portaudio.StreamDeviceParameters{
		Device:   devices[p.DeviceIndex],
		Channels: p.Channels,
		Latency:  p.SuggestedLatency,
	}
	params := portaudio.StreamParameters{FramesPerBuffer: h.framesPerBuffer}
	if p.Direction == Output {
		params.Output = side
	} else {
		params.Input = side
	}

	buffer, err := sampleBuffer(p.Format, p.Channels, h.framesPerBuffer)
	if err != nil {
		return portaudio.StreamParameters{}, nil, err
	}
	return params, buffer, nil
}

// sampleBuffer allocates the transfer buffer whose element type tells
// the binding which native sample format to negotiate.
func sampleBuffer(f SampleFormat, channels, frames int) (any, error) {
	switch f.Base() {
	case Float32:
		return bufferOf[float32](f, channels, frames), nil
	case Int32:
		return bufferOf[int32](f, channels, frames), nil
	case Int16:
		return bufferOf[int16](f, channels, frames), nil
	case Int8:
		return bufferOf[int8](f, channels, frames), nil
	case UInt8:
		return bufferOf[uint8](f, channels, frames), nil
	}
	return nil, fmt.Errorf("format %s: %w", f, ErrUnsupportedFormat)
}

func bufferOf[T any](f SampleFormat, channels, frames int) any {
	if f.Interleaved() {
		return make([]T, channels*frames)
	}
	planar := make([][]T, channels)
	for i := range planar {
		planar[i] = make([]T, frames)
	}
	return planar
}

type portAudioStream struct {
	stream     *portaudio.Stream
	sampleSize int
}

func (s *portAudioStream) Start() error { return s.stream.Start() }
func (s *portAudioStream) Stop() error  { return s.stream.Stop() }
func (s *portAudioStream) Close() error { return s.stream.Close() }

// SampleSize reports the per-sample width of the allocated transfer
// buffers, which is the width the binding negotiated natively.
func (s *portAudioStream) SampleSize() int { return s.sampleSize }
