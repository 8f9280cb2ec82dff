package audio

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ReportMode selects where stream diagnostics are emitted. Modes are
// mutually exclusive; the last one set wins.
type ReportMode int

const (
	ReportStderr ReportMode = iota
	ReportLogger
	ReportDisabled
)

// ParseReportMode accepts exactly "LOGGER", "STDERROR" and "DISABLED".
func ParseReportMode(mode string) (ReportMode, error) {
	switch mode {
	case "LOGGER":
		return ReportLogger, nil
	case "STDERROR":
		return ReportStderr, nil
	case "DISABLED":
		return ReportDisabled, nil
	}
	return 0, fmt.Errorf("report mode %q: %w", mode, ErrInvalidReportMode)
}

// State is the lifecycle state of a block's stream handle.
type State int

const (
	Unopened State = iota
	Opened
	Active
	Stopped
	Closed
)

func (s State) String() string {
	switch s {
	case Unopened:
		return "unopened"
	case Opened:
		return "opened"
	case Active:
		return "active"
	case Stopped:
		return "stopped"
	case Closed:
		return "closed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Block configures and owns a single real-time audio input or output
// stream on a Host. Channel count and sample format are fixed at
// construction; SetupDevice and SetupStream fill in the rest of the
// stream configuration before the handle is opened.
//
// A block expects all calls to arrive sequentially from one control
// goroutine. It does not own its Host: close the block before closing
// the host.
type Block struct {
	name string
	sink bool
	log  zerolog.Logger
	host Host

	params   StreamParams
	resolved bool
	stream   Stream
	state    State

	report    ReportMode
	backoff   time.Duration
	readyAt   time.Time
	sendLabel bool
}

// NewBlock creates a block for the given direction and frame layout.
// The chanMode "INTERLEAVED" selects interleaved frames; any other
// value means one buffer per channel.
func NewBlock(host Host, name string, isSink bool, dtype string, channels int, chanMode string, logger zerolog.Logger) (*Block, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("%s: channel count must be positive, got %d", name, channels)
	}
	format, err := ParseSampleFormat(dtype, chanMode == "INTERLEAVED")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	dir := Input
	if isSink {
		dir = Output
	}
	return &Block{
		name: name,
		sink: isSink,
		log:  logger.With().Str("block", name).Str("uuid", uuid.NewString()).Logger(),
		host: host,
		params: StreamParams{
			Channels:  channels,
			Format:    format,
			Direction: dir,
		},
		report: ReportStderr,
	}, nil
}

// Name returns the block's identity string used in diagnostics.
func (b *Block) Name() string { return b.name }

// Direction returns the stream direction selected at construction.
func (b *Block) Direction() Direction { return b.params.Direction }

// State returns the current lifecycle state.
func (b *Block) State() State { return b.state }

// SetupDevice resolves the selector and records the device index for
// the next SetupStream. Nothing is committed when resolution fails.
func (b *Block) SetupDevice(selector string) error {
	index, err := ResolveDevice(b.host, selector, b.params.Direction)
	if err != nil {
		return fmt.Errorf("setupDevice: %w", err)
	}
	b.params.DeviceIndex = index
	b.resolved = true
	return nil
}

// SetupStream validates the accumulated stream configuration against
// the resolved device and opens the native stream handle. Any
// previously opened handle is closed first. On failure no handle is
// retained and the committed configuration is untouched, so the call
// may be retried with a different rate.
func (b *Block) SetupStream(sampleRate float64) error {
	if b.state == Closed {
		return fmt.Errorf("setupStream: block closed: %w", ErrInvalidState)
	}
	if !b.resolved {
		return fmt.Errorf("setupStream: %w", ErrDeviceNotResolved)
	}

	if b.stream != nil {
		if err := b.stream.Close(); err != nil {
			b.reportDiag("close stream", err)
		}
		b.stream = nil
		b.state = Unopened
	}

	info, err := b.host.DeviceInfo(b.params.DeviceIndex)
	if err != nil {
		return fmt.Errorf("setupStream: %w", err)
	}
	b.log.Info().
		Str("device", info.Name).
		Str("hostApi", info.HostApiName).
		Msg("using audio device")

	p := b.params
	low, high := info.DefaultLatency(p.Direction)
	p.SuggestedLatency = (low + high) / 2
	requestedSize := p.Format.Size()

	if err := b.host.IsFormatSupported(p, sampleRate); err != nil {
		return fmt.Errorf("setupStream: format check: %v: %w", err, ErrFormatNotSupported)
	}

	stream, err := b.host.OpenStream(p, sampleRate)
	if err != nil {
		return fmt.Errorf("setupStream: open: %v: %w", err, ErrStreamOpen)
	}

	// Guards against the native layer silently substituting a format.
	if got := stream.SampleSize(); got != requestedSize {
		if err := stream.Close(); err != nil {
			b.reportDiag("close stream", err)
		}
		return fmt.Errorf("setupStream: allocated sample size %d, requested %d: %w",
			got, requestedSize, ErrFormatMismatch)
	}

	b.params = p
	b.stream = stream
	b.state = Opened
	return nil
}

// Activate starts the native stream, records the ready timestamp, and
// arms the stream label for the next data cycle. Valid from the
// opened and stopped states only; state is unchanged on failure.
func (b *Block) Activate() error {
	if b.state != Opened && b.state != Stopped {
		return fmt.Errorf("activate: state %s: %w", b.state, ErrInvalidState)
	}
	b.readyAt = time.Now()
	if err := b.stream.Start(); err != nil {
		return fmt.Errorf("activate: %v: %w", err, ErrStreamStart)
	}
	b.state = Active
	b.sendLabel = true
	return nil
}

// Deactivate stops the native stream. Valid from the active state
// only; state is unchanged on failure.
func (b *Block) Deactivate() error {
	if b.state != Active {
		return fmt.Errorf("deactivate: state %s: %w", b.state, ErrInvalidState)
	}
	if err := b.stream.Stop(); err != nil {
		return fmt.Errorf("deactivate: %v: %w", err, ErrStreamStop)
	}
	b.state = Stopped
	return nil
}

// Close releases the stream handle. A native close failure is emitted
// through the diagnostic path only and never blocks teardown. Closed
// is terminal; a new block is required for reuse.
func (b *Block) Close() error {
	if b.state == Closed {
		return nil
	}
	if b.stream != nil {
		if err := b.stream.Close(); err != nil {
			b.reportDiag("close stream", err)
		}
		b.stream = nil
	}
	b.state = Closed
	return nil
}

// SetReportMode switches diagnostic emission between the logger,
// stderr, and disabled. Unknown modes are rejected with no state
// change.
func (b *Block) SetReportMode(mode string) error {
	parsed, err := ParseReportMode(mode)
	if err != nil {
		return fmt.Errorf("setReportMode: %w", err)
	}
	b.report = parsed
	return nil
}

// ReportMode returns the active diagnostic emission mode.
func (b *Block) ReportMode() ReportMode { return b.report }

// SetBackoffTime sets the pacing interval, in milliseconds, read by
// the data-transfer path. Negative values are stored as given; the
// caller is responsible for rejecting them if needed.
func (b *Block) SetBackoffTime(ms int64) {
	b.backoff = time.Duration(ms) * time.Millisecond
}

// BackoffTime returns the configured pacing interval.
func (b *Block) BackoffTime() time.Duration { return b.backoff }

// ReadyTime returns when the stream last became ready to transfer.
func (b *Block) ReadyTime() time.Time { return b.readyAt }

// TakeLabel reports whether a stream label is armed for the next data
// cycle, clearing the flag.
func (b *Block) TakeLabel() bool {
	armed := b.sendLabel
	b.sendLabel = false
	return armed
}

func (b *Block) reportDiag(op string, err error) {
	switch b.report {
	case ReportLogger:
		b.log.Error().Err(err).Msg(op)
	case ReportStderr:
		fmt.Fprintf(os.Stderr, "%s: %s: %v\n", b.name, op, err)
	}
}
