// Package errs defines the sentinel errors returned across daytick's
// packages.
//
// Callers should compare against these with errors.Is; call sites typically
// wrap a sentinel with additional detail via fmt.Errorf("%w: ...", ErrXxx).
package errs

import (
	"errors"
	"fmt"
)

// ErrDomain is the umbrella for input-precondition violations. It is not
// returned directly: ErrDomainRange, ErrDomainOrder, and ErrDomainSpan
// each wrap it, so a caller that only cares "was this a domain error at
// all" can test errors.Is(err, errs.ErrDomain) without enumerating the
// three specific sentinels.
var ErrDomain = errors.New("daytick: domain error")

var (
	// ErrDomainRange indicates a timestamp's intraday offset fell outside
	// [0, SessionDurationMS). Wraps ErrDomain.
	ErrDomainRange = fmt.Errorf("%w: timestamp outside session window", ErrDomain)
	// ErrDomainOrder indicates timestamps for a day were not sorted
	// non-decreasing. Wraps ErrDomain.
	ErrDomainOrder = fmt.Errorf("%w: timestamps not sorted non-decreasing", ErrDomain)
	// ErrDomainSpan indicates the input sequence spanned more than one
	// logical day. Wraps ErrDomain.
	ErrDomainSpan = fmt.Errorf("%w: timestamps span more than one day", ErrDomain)

	// ErrOutOfRange indicates a day index was >= day_count.
	ErrOutOfRange = errors.New("daytick: day index out of range")

	// ErrCorrupt indicates encoded bytes violated a structural invariant
	// during decode or deserialize.
	ErrCorrupt = errors.New("daytick: corrupt encoded data")

	// ErrTruncated indicates a byte stream ended before a structurally
	// required byte was read.
	ErrTruncated = errors.New("daytick: truncated encoded data")

	// ErrCapacity indicates an append would exceed the container's
	// configured byte-length limit.
	ErrCapacity = errors.New("daytick: container capacity exceeded")

	// ErrUnsupported indicates a required CPU feature is absent and no
	// fallback codec is configured. The default build always carries the
	// scalar pack/unpack routines, so it never returns this; it is
	// reserved for builds that strip them.
	ErrUnsupported = errors.New("daytick: unsupported CPU feature, no fallback configured")

	// ErrContainerFrozen indicates a mutation was attempted on a container
	// that has been serialized or loaded and not reopened.
	ErrContainerFrozen = errors.New("daytick: container is frozen")

	// ErrInvalidBitWidth indicates an internal invariant violation: a
	// computed bit-width fell outside [0, 32]. This is always a bug, not a
	// caller input error.
	ErrInvalidBitWidth = errors.New("daytick: invalid bit width")

)
