package clock

import "time"

// Clock is the single source of wall-clock time.
type Clock interface {
	Now() time.Time
}

// Real is a Clock backed by the system clock.
// A nil Location means the process local time zone.
type Real struct {
	Location *time.Location
}

// Now returns the current time in r.Location.
func (r Real) Now() time.Time {
	now := time.Now()
	if r.Location == nil {
		return now.Local()
	}
	return now.In(r.Location)
}

// Mock is a Clock that always returns a fixed time.
type Mock struct {
	T time.Time
}

// Now returns the fixed time.
func (m Mock) Now() time.Time { return m.T }

// LoadLocation resolves a time zone name. The empty string and "Local"
// both select the process local zone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}
