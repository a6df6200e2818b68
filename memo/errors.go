package memo

import "errors"

// Sentinel errors for memoization operations.
var (
	// ErrNilFunc is returned by Wrap when the function to memoize is nil.
	ErrNilFunc = errors.New("memo: function is nil")

	// ErrUnsupportedPolicy is returned when an eviction policy is not one of
	// the supported variants. It indicates a configuration error and is
	// raised at Wrap time, never during a call.
	ErrUnsupportedPolicy = errors.New("memo: unsupported eviction policy")

	// ErrInvalidCapacity is returned by Wrap when the capacity is not a
	// positive integer.
	ErrInvalidCapacity = errors.New("memo: capacity must be positive")

	// ErrUnhashableArgument is returned by Call when an argument cannot be
	// used as a cache key component. The wrapped function is not invoked
	// and no cache state changes.
	ErrUnhashableArgument = errors.New("memo: argument is not hashable")
)
