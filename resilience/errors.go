package resilience

import "errors"

// ErrMaxRetriesExceeded is returned when max retry attempts are exhausted.
// The last attempt's error is wrapped, so errors.Is matches both.
var ErrMaxRetriesExceeded = errors.New("resilience: max retries exceeded")
