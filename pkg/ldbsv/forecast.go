package ldbsv

import "time"

// ForecastType says what kind of time the feed is reporting for one
// direction at one location.
type ForecastType string

const (
	// The time is a live estimate. Wire literal "Forecast".
	ForecastEstimated ForecastType = "Estimated"
	// The time is a confirmed movement report.
	ForecastActual ForecastType = "Actual"
	// Darwin knows the service passed this location but received no
	// movement report for it.
	ForecastNoLog ForecastType = "NoLog"
	// Darwin has no confirmation the service passed this location at all.
	ForecastNoReport ForecastType = "NoReport"
	// The service has an unknown delay, so estimates are uncertain and
	// should be hidden from public display.
	ForecastDelayed ForecastType = "Delayed"
)

var forecastTypes = map[string]ForecastType{
	"Forecast": ForecastEstimated,
	"Actual":   ForecastActual,
	"NoLog":    ForecastNoLog,
	"NoReport": ForecastNoReport,
	"Delayed":  ForecastDelayed,
}

// Timing is one direction (arrival or departure) of a location's times.
type Timing struct {
	// The public scheduled instant.
	Scheduled time.Time `json:"scheduled" groups:"basic"`

	// The effective instant, chosen by Forecast: the estimated field for
	// Estimated and Delayed, the actual field for Actual, absent for
	// NoLog and NoReport.
	Effective *time.Time `json:"effective,omitempty" groups:"basic"`

	// Forecast is absent when the feed gave no forecast type, normally at
	// the service's origin (arrival) or terminus (departure).
	Forecast ForecastType `json:"forecast,omitempty" groups:"basic"`

	// The upstream system that produced the time, usually TRUST or
	// Darwin.
	Source string `json:"source,omitempty" groups:"detailed"`
}

// resolveTiming reads one direction's timing fields off a location node.
// scheduledTag missing means this direction does not apply at this
// location and the whole record is absent. A present forecast type outside
// the known set is fatal.
func resolveTiming(node Node, scheduledTag, typeTag, estimatedTag, actualTag, sourceTag string) (*Timing, error) {
	// The forecast type is validated even when the direction turns out not
	// to apply here; a junk value is fatal regardless.
	var forecast ForecastType
	hasForecast := false

	if text, err := textField(node, typeTag); err == nil {
		var known bool

		forecast, known = forecastTypes[text]
		if !known {
			return nil, InvalidForecastError{Value: text}
		}

		hasForecast = true
	}

	scheduled, err := timeField(node, scheduledTag)
	if err != nil {
		return nil, nil
	}

	timing := Timing{
		Scheduled: scheduled,
		Source:    optionalText(node, sourceTag),
	}

	if !hasForecast {
		// No forecast type at all, so no effective time either.
		return &timing, nil
	}

	timing.Forecast = forecast

	switch forecast {
	case ForecastEstimated, ForecastDelayed:
		timing.Effective = optionalTime(node, estimatedTag)
	case ForecastActual:
		timing.Effective = optionalTime(node, actualTag)
	case ForecastNoLog, ForecastNoReport:
		// Explicitly no effective time.
	}

	return &timing, nil
}
