package libretro

import (
	"errors"
	"fmt"
)

// LoadErrorKind classifies why binding a core module failed.
type LoadErrorKind int

const (
	LoadErrOpenFailed LoadErrorKind = iota
	LoadErrMissingSymbol
	LoadErrVersionMismatch
)

// LoadError is returned when a core module cannot be opened and fully
// bound. Any LoadError is fatal to startup: a partially bound call table
// is never exposed.
type LoadError struct {
	Kind     LoadErrorKind
	Path     string // module path, for open failures
	Symbol   string // missing entry point name
	Expected uint32 // supported API version
	Actual   uint32 // version the core reported
	Detail   string // loader-provided detail, may be empty
}

func (e *LoadError) Error() string {
	switch e.Kind {
	case LoadErrOpenFailed:
		return fmt.Sprintf("failed to open core %s: %s", e.Path, e.Detail)
	case LoadErrMissingSymbol:
		return fmt.Sprintf("core is missing required symbol %s", e.Symbol)
	case LoadErrVersionMismatch:
		return fmt.Sprintf("core reports libretro API version %d, this frontend supports %d",
			e.Actual, e.Expected)
	}
	return "core load failed"
}

// ErrContentLoadFailed means the core rejected the game content. A core
// with no content cannot be stepped, so startup aborts.
var ErrContentLoadFailed = errors.New("core failed to load game content")

// ErrUnknownPixelFormat means the core negotiated a pixel format this
// frontend cannot decode. Fatal: frame decoding would be undefined.
var ErrUnknownPixelFormat = errors.New("core requested an unknown pixel format")

// ErrStateRejected means the core returned false from unserialize. The
// session continues with its pre-load state.
var ErrStateRejected = errors.New("core rejected save state data")
