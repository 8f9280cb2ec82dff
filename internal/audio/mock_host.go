package audio

import "fmt"

// MockHost implements Host for tests that must run without audio
// hardware. Configure the catalog through Devices and the default
// indexes, and use the error fields to inject native failures.
type MockHost struct {
	Devices       []DeviceInfo
	DefaultInput  int // catalog index, or -1 for none advertised
	DefaultOutput int

	CountErr     error // returned by DeviceCount
	SupportedErr error // returned by IsFormatSupported
	OpenErr      error // returned by OpenStream

	// AllocSampleSize overrides the sample size reported by opened
	// streams when non-zero, simulating a native format substitution.
	AllocSampleSize int

	// Streams holds every stream opened through this host, in order.
	Streams []*MockStream

	closed bool
}

// NewMockHost creates a mock host with the given catalog and no
// default devices advertised.
func NewMockHost(devices ...DeviceInfo) *MockHost {
	return &MockHost{Devices: devices, DefaultInput: -1, DefaultOutput: -1}
}

func (m *MockHost) DeviceCount() (int, error) {
	if m.CountErr != nil {
		return 0, m.CountErr
	}
	return len(m.Devices), nil
}

func (m *MockHost) DeviceInfo(index int) (*DeviceInfo, error) {
	if index < 0 || index >= len(m.Devices) {
		return nil, fmt.Errorf("device %d of %d: %w", index, len(m.Devices), ErrDeviceIndex)
	}
	info := m.Devices[index]
	return &info, nil
}

func (m *MockHost) DefaultDevice(dir Direction) (int, error) {
	index := m.DefaultInput
	if dir == Output {
		index = m.DefaultOutput
	}
	if index < 0 || index >= len(m.Devices) {
		return 0, fmt.Errorf("default %s device: %w", dir, ErrNoDefaultDevice)
	}
	return index, nil
}

func (m *MockHost) IsFormatSupported(p StreamParams, sampleRate float64) error {
	return m.SupportedErr
}

func (m *MockHost) OpenStream(p StreamParams, sampleRate float64) (Stream, error) {
	if m.OpenErr != nil {
		return nil, m.OpenErr
	}
	size := p.Format.Size()
	if m.AllocSampleSize != 0 {
		size = m.AllocSampleSize
	}
	s := &MockStream{Params: p, SampleRate: sampleRate, sampleSize: size}
	m.Streams = append(m.Streams, s)
	return s, nil
}

func (m *MockHost) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether the subsystem session was torn down.
func (m *MockHost) Closed() bool { return m.closed }

// MockStream records lifecycle transitions and injects native errors.
type MockStream struct {
	Params     StreamParams
	SampleRate float64

	StartErr error
	StopErr  error
	CloseErr error

	Started int
	Stopped int
	Closed  int

	active     bool
	sampleSize int
}

func (s *MockStream) Start() error {
	if s.StartErr != nil {
		return s.StartErr
	}
	s.Started++
	s.active = true
	return nil
}

func (s *MockStream) Stop() error {
	if s.StopErr != nil {
		return s.StopErr
	}
	s.Stopped++
	s.active = false
	return nil
}

func (s *MockStream) Close() error {
	s.Closed++
	if s.CloseErr != nil {
		return s.CloseErr
	}
	s.active = false
	return nil
}

func (s *MockStream) SampleSize() int { return s.sampleSize }

// Active reports whether the stream is currently started.
func (s *MockStream) Active() bool { return s.active }
