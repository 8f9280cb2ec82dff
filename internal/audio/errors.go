package audio

import "errors"

// Failures surfaced by device resolution, stream negotiation, and
// lifecycle control. Every failure is returned wrapped with the
// failing operation and the native diagnostic text, so callers can
// match the cause with errors.Is without losing the details.
var (
	// Selector resolution failures. Recoverable: retry setup with a
	// different selector.
	ErrNoDevicesAvailable = errors.New("no devices available")
	ErrNoDefaultDevice    = errors.New("no default device")
	ErrDeviceIndex        = errors.New("device index out of range")
	ErrDeviceNotFound     = errors.New("no matching device")
	ErrDeviceNotResolved  = errors.New("device not set up")

	// Construction-time format rejection. Fatal for the instance.
	ErrUnsupportedFormat = errors.New("unsupported sample format")

	// Negotiation failures. Recoverable: the stream is left unopened
	// and setup may be retried with a different rate or format.
	ErrFormatNotSupported = errors.New("format not supported by device")
	ErrStreamOpen         = errors.New("stream open failed")
	ErrFormatMismatch     = errors.New("sample size mismatch")

	// Lifecycle failures. Surfaced to the caller; the stream state is
	// left unchanged.
	ErrStreamStart = errors.New("stream start failed")
	ErrStreamStop  = errors.New("stream stop failed")

	// Configuration rejections.
	ErrInvalidReportMode = errors.New("unknown report mode")
	ErrInvalidState      = errors.New("invalid stream state")
)
