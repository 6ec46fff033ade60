package clock

import "time"

// UTCClock reports the current time in UTC. All date-stamped fields in
// the system carry UTC timestamps.
type UTCClock struct{}

func New() UTCClock {
	return UTCClock{}
}

func (UTCClock) Now() time.Time {
	return time.Now().UTC()
}
