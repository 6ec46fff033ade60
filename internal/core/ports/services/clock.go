package services

import "time"

// Clock supplies the current time for every date-stamped field. It is
// injected so batch and approval logic are testable with frozen time.
type Clock interface {
	Now() time.Time
}
