package pulse

import (
	"errors"
	"strings"
)

type SurfaceErrorKind int

const (
	SurfaceErrorOther SurfaceErrorKind = iota
	SurfaceErrorLost
	SurfaceErrorOutOfMemory
	SurfaceErrorOutdated
	SurfaceErrorTimeout
)

func (k SurfaceErrorKind) String() string {
	switch k {
	case SurfaceErrorLost:
		return "Lost"
	case SurfaceErrorOutOfMemory:
		return "OutOfMemory"
	case SurfaceErrorOutdated:
		return "Outdated"
	case SurfaceErrorTimeout:
		return "Timeout"
	default:
		return "Other"
	}
}

var (
	ErrSurfaceLost     = &SurfaceError{Kind: SurfaceErrorLost}
	ErrOutOfMemory     = &SurfaceError{Kind: SurfaceErrorOutOfMemory}
	ErrSurfaceOutdated = &SurfaceError{Kind: SurfaceErrorOutdated}
	ErrSurfaceTimeout  = &SurfaceError{Kind: SurfaceErrorTimeout}
)

// SurfaceError is returned by View.RenderFrame if the next image
// could not be acquired from the surface.
type SurfaceError struct {
	Kind SurfaceErrorKind
	Err  error
}

func (e *SurfaceError) Error() string {
	if e.Err == nil {
		return "surface error: " + e.Kind.String()
	}

	return "surface error: " + e.Kind.String() + ": " + e.Err.Error()
}

func (e *SurfaceError) Unwrap() error {
	return e.Err
}

// Is matches any other SurfaceError of the same kind,
// so errors.Is(err, ErrSurfaceLost) works for wrapped errors.
func (e *SurfaceError) Is(target error) bool {
	var other *SurfaceError
	if !errors.As(target, &other) {
		return false
	}

	return other.Kind == e.Kind
}

// ClassifySurfaceError maps an error returned while acquiring
// a surface texture to a SurfaceError. A lost device is reported
// as SurfaceErrorOutOfMemory, as both are unrecoverable.
func ClassifySurfaceError(err error) *SurfaceError {
	if err == nil {
		return nil
	}

	var surfaceErr *SurfaceError
	if errors.As(err, &surfaceErr) {
		return surfaceErr
	}

	// the native layer only reports a status, which ends up in the message,
	// either as enum name or in kebab case
	message := strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(err.Error()))

	kind := SurfaceErrorOther

	switch {
	case strings.Contains(message, "devicelost"):
		// the device is gone for good, reconfiguring the surface cannot help
		kind = SurfaceErrorOutOfMemory
	case strings.Contains(message, "outofmemory"):
		kind = SurfaceErrorOutOfMemory
	case strings.Contains(message, "lost"):
		kind = SurfaceErrorLost
	case strings.Contains(message, "outdated"):
		kind = SurfaceErrorOutdated
	case strings.Contains(message, "timeout"), strings.Contains(message, "timedout"):
		kind = SurfaceErrorTimeout
	}

	return &SurfaceError{Kind: kind, Err: err}
}
