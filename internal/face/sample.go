package face

import (
	"fmt"
	"time"

	"github.com/jensholdgaard/wallclock/internal/clock"
)

// Indicator identifies one of the three clock hands.
type Indicator int

const (
	Hour Indicator = iota
	Minute
	Second
)

// Indicators lists the hands in drawing order.
var Indicators = [...]Indicator{Hour, Minute, Second}

func (i Indicator) String() string {
	switch i {
	case Hour:
		return "hour"
	case Minute:
		return "minute"
	case Second:
		return "second"
	default:
		return fmt.Sprintf("Indicator(%d)", int(i))
	}
}

// Modulus returns the number of positions the indicator cycles through.
func (i Indicator) Modulus() int {
	if i == Hour {
		return 12
	}
	return 60
}

// Sample is a wall-clock time captured once. The zero value is midnight.
type Sample struct {
	hour   int
	minute int
	second int
}

// NewSample captures the current time of clk.
func NewSample(clk clock.Clock) Sample {
	return SampleAt(clk.Now())
}

// SampleAt captures the hour, minute and second of t in t's location.
func SampleAt(t time.Time) Sample {
	h, m, s := t.Clock()
	return Sample{hour: h, minute: m, second: s}
}

// Hour returns the hour in [0, 23].
func (s Sample) Hour() int { return s.hour }

// Minute returns the minute in [0, 59].
func (s Sample) Minute() int { return s.minute }

// Second returns the second in [0, 59].
func (s Sample) Second() int { return s.second }

// Value returns the indicator position and its modulus. The hour uses the
// 12-hour convention, so midnight and noon share the 12 o'clock position.
func (s Sample) Value(ind Indicator) (value, modulus float64) {
	switch ind {
	case Hour:
		return float64(s.hour % 12), 12
	case Minute:
		return float64(s.minute), 60
	case Second:
		return float64(s.second), 60
	default:
		panic(fmt.Sprintf("face: unknown indicator %d", int(ind)))
	}
}

// Degree returns the screen angle of the indicator.
func (s Sample) Degree(ind Indicator) float64 {
	return NormalizedIndicatorDegree(s.Value(ind))
}

// Coordinates returns the tip of the indicator on a face of the given
// radius around the origin.
func (s Sample) Coordinates(ind Indicator, originX, originY, radius int) Point {
	return Project(s.Degree(ind), originX, originY, radius)
}

// HourCoordinates returns the tip of the hour indicator.
func (s Sample) HourCoordinates(originX, originY, radius int) Point {
	return s.Coordinates(Hour, originX, originY, radius)
}

// MinuteCoordinates returns the tip of the minute indicator.
func (s Sample) MinuteCoordinates(originX, originY, radius int) Point {
	return s.Coordinates(Minute, originX, originY, radius)
}

// SecondCoordinates returns the tip of the second indicator.
func (s Sample) SecondCoordinates(originX, originY, radius int) Point {
	return s.Coordinates(Second, originX, originY, radius)
}

// String formats the sample as HH:MM:SS.
func (s Sample) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", s.hour, s.minute, s.second)
}
