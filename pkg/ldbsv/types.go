package ldbsv

import "time"

// Location is a named point on the network. The feed should give at least
// one of CRS or TIPLOC for real stations but is not required to.
type Location struct {
	Name   string `json:"name" groups:"basic"`
	CRS    string `json:"crs,omitempty" groups:"basic"`
	Tiploc string `json:"tiploc,omitempty" groups:"detailed"`
}

// ServiceTime holds both directions of a location's times. Arrival is
// absent at the service's origin, departure at its terminus.
type ServiceTime struct {
	Arrival   *Timing `json:"arrival,omitempty" groups:"basic"`
	Departure *Timing `json:"departure,omitempty" groups:"basic"`
}

// ServiceLocation is one entry in a service's schedule. Not all locations
// are stopped at.
type ServiceLocation struct {
	Location Location `json:"location" groups:"basic"`

	// Associations that happen at this location.
	Associations []Association `json:"associations,omitempty" groups:"detailed"`

	// Free text alerts for out of the ordinary events at this location.
	AdhocAlerts []string `json:"adhoc_alerts,omitempty" groups:"detailed"`

	// Activities that happen at this location. Nil when the feed gave
	// none.
	Activities []Activity `json:"activities,omitempty" groups:"basic"`

	// The length of the train here. Zero means unknown, never a
	// zero-length train.
	Length uint16 `json:"length,omitempty" groups:"detailed"`

	// The front of the train detaches at this location.
	DetachFront bool `json:"detach_front,omitempty" groups:"detailed"`

	// An operational calling point. Times are working times rather than
	// public times.
	Operational bool `json:"operational,omitempty" groups:"detailed"`

	// The service passes without stopping. Passing locations must not be
	// shown as calling points.
	Pass bool `json:"pass,omitempty" groups:"basic"`

	// The service is cancelled at this location.
	Cancelled bool `json:"cancelled,omitempty" groups:"basic"`

	// A destination to display here instead of the service's true
	// destination, used to steer passengers onto the right train.
	FalseDestination *Location `json:"false_destination,omitempty" groups:"detailed"`

	// The expected platform. Zero means unknown.
	Platform uint8 `json:"platform,omitempty" groups:"basic"`

	// The platform number should not be shown to the public.
	PlatformHidden bool `json:"platform_hidden,omitempty" groups:"detailed"`

	// The whole service is suppressed from display at this location.
	Suppressed bool `json:"suppressed,omitempty" groups:"detailed"`

	Time ServiceTime `json:"time" groups:"basic"`

	// Raw lateness text from the feed.
	//
	// Deprecated: the field may contain arbitrary text. Derive lateness
	// from Time's scheduled and effective instants instead.
	Lateness string `json:"-"`
}

// ServiceDetails is the full schedule record for one train service. The
// tree is built in one pass, owns all of its data and is read-only after
// construction, so it can be shared freely between goroutines.
type ServiceDetails struct {
	GeneratedAt time.Time `json:"generated_at" groups:"basic"`

	// RID is the unique identifier of this realisation of the service.
	RID string `json:"rid" groups:"basic"`

	// UID is the timetable identifier shared by all realisations.
	UID string `json:"uid" groups:"basic"`

	// RSID is the retail service identifier, when known.
	RSID string `json:"rsid,omitempty" groups:"basic"`

	// TrainID is the headcode.
	TrainID string `json:"trainid" groups:"basic"`

	// ScheduledDepartureDate disambiguates the service together with
	// RID/UID.
	ScheduledDepartureDate time.Time `json:"sdd" groups:"basic"`

	// Non passenger services should not be published to the public.
	PassengerService bool `json:"passenger_service" groups:"detailed"`

	Charter bool `json:"charter,omitempty" groups:"detailed"`

	// Category is the CIF train category code, for example "XX" for an
	// express passenger service.
	Category string `json:"category" groups:"basic"`

	Operator     string `json:"operator" groups:"basic"`
	OperatorCode string `json:"operator_code" groups:"basic"`

	CancelReason string `json:"cancel_reason,omitempty" groups:"basic"`
	DelayReason  string `json:"delay_reason,omitempty" groups:"basic"`

	// The service is running in the reverse of its normal formation.
	ReverseFormation bool `json:"reverse_formation,omitempty" groups:"detailed"`

	// Locations in schedule order.
	Locations []ServiceLocation `json:"locations" groups:"basic"`
}

// Punctuality classifies a timing against its schedule.
type Punctuality string

const (
	PunctualityEarly  Punctuality = "Early"
	PunctualityOnTime Punctuality = "OnTime"
	PunctualityLate   Punctuality = "Late"
)

// Lateness returns the effective instant minus the scheduled one. The
// second return is false when there is no effective instant to compare.
func (t Timing) Lateness() (time.Duration, bool) {
	if t.Effective == nil {
		return 0, false
	}

	return t.Effective.Sub(t.Scheduled), true
}

// Punctuality classifies this timing. A delay or earliness of a minute or
// less counts as on time, since signalling systems round to the nearest
// minute.
func (t Timing) Punctuality() (Punctuality, bool) {
	lateness, ok := t.Lateness()
	if !ok {
		return "", false
	}

	switch {
	case lateness > time.Minute:
		return PunctualityLate, true
	case lateness < -time.Minute:
		return PunctualityEarly, true
	default:
		return PunctualityOnTime, true
	}
}
