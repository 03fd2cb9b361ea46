package hostapi

import "errors"

// Availability classifies one acquisition attempt. It is computed once at
// process start and never changes afterwards.
type Availability int

const (
	// ModuleAbsent means the host API handle cannot be acquired at all;
	// the process is not running under the host.
	ModuleAbsent Availability = iota

	// ContextAbsent means a handle exists but exposes no live operating
	// context, such as a stub installed for off-host development.
	ContextAbsent

	// Available means the handle is present and its context is live.
	Available
)

// Sentinel errors acquirers use to report the two absence states. Any
// other error from Acquire means a live host answered but the handshake
// itself failed, which is fatal rather than grounds for a relaunch.
var (
	ErrNoAPI     = errors.New("no API available")
	ErrNoContext = errors.New("no context available")
)

func (a Availability) String() string {
	switch a {
	case ModuleAbsent:
		return "module-absent"
	case ContextAbsent:
		return "context-absent"
	case Available:
		return "available"
	}
	return "unknown"
}

// Reason returns the diagnostic phrase printed before a relaunch. It is
// empty for Available.
func (a Availability) Reason() string {
	switch a {
	case ModuleAbsent:
		return ErrNoAPI.Error()
	case ContextAbsent:
		return ErrNoContext.Error()
	}
	return ""
}

// Acquirer attempts to obtain the host API handle. Implementations must be
// side-effect idempotent: repeated calls yield the same classification and
// leak nothing.
type Acquirer interface {
	Acquire() (API, error)
}

// Probe runs one acquisition attempt and classifies it. When the result is
// not Available the returned API is nil and err carries the cause. A
// non-nil err together with Available means the host is present but the
// handshake failed (for example a host version below the supported
// minimum); callers must treat that as fatal instead of relaunching, or a
// relaunch loop would never terminate.
func Probe(a Acquirer) (Availability, API, error) {
	api, err := a.Acquire()
	switch {
	case err == nil:
		return Available, api, nil
	case errors.Is(err, ErrNoAPI):
		return ModuleAbsent, nil, err
	case errors.Is(err, ErrNoContext):
		return ContextAbsent, nil, err
	default:
		return Available, nil, err
	}
}
