package ldbsv

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseServiceDetails(t *testing.T) {
	document := el("Envelope",
		el("Body",
			el("GetServiceDetailsResponse",
				serviceResult(
					txt("rsid", "LN123400"),
					txt("isReverseFormation", "true"),
					txt("delayReason", "a fallen tree blocking the railway"),
					el("locations",
						callingPoint("London Kings Cross", "KGX",
							txt("tiploc", "KNGX"),
							txt("platform", "4"),
							txt("activities", "TB"),
							txt("length", "9"),
							txt("std", "2024-05-11T10:33:00+01:00"),
							txt("departureType", "Actual"),
							txt("atd", "2024-05-11T10:33:00+01:00"),
						),
						callingPoint("Peterborough", "PBO",
							txt("isPass", "true"),
							txt("std", "2024-05-11T11:12:00+01:00"),
							txt("departureType", "Forecast"),
							txt("etd", "2024-05-11T11:14:00+01:00"),
						),
						callingPoint("York", "YRK",
							txt("activities", "TF"),
							txt("platform", "11"),
							txt("sta", "2024-05-11T12:25:00+01:00"),
							txt("arrivalType", "Forecast"),
							txt("eta", "2024-05-11T12:31:00+01:00"),
							txt("lateness", "360"),
						),
					),
				),
			),
		),
	)

	details, err := ParseServiceDetails(document)
	require.NoError(t, err)

	assert.Equal(t, "202405117126716", details.RID)
	assert.Equal(t, "P71267", details.UID)
	assert.Equal(t, "LN123400", details.RSID)
	assert.Equal(t, "1A23", details.TrainID)
	assert.Equal(t, time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC), details.ScheduledDepartureDate)
	assert.True(t, details.PassengerService)
	assert.False(t, details.Charter)
	assert.Equal(t, "XX", details.Category)
	assert.Equal(t, "London North Eastern Railway", details.Operator)
	assert.Equal(t, "LN", details.OperatorCode)
	assert.Equal(t, "", details.CancelReason)
	assert.Equal(t, "a fallen tree blocking the railway", details.DelayReason)
	assert.True(t, details.ReverseFormation)

	require.Len(t, details.Locations, 3)

	origin := details.Locations[0]
	assert.Equal(t, Location{Name: "London Kings Cross", CRS: "KGX", Tiploc: "KNGX"}, origin.Location)
	assert.Equal(t, uint8(4), origin.Platform)
	assert.Equal(t, uint16(9), origin.Length)
	assert.Equal(t, []Activity{ActivityTrainBegins}, origin.Activities)
	assert.Nil(t, origin.Time.Arrival)
	require.NotNil(t, origin.Time.Departure)
	assert.Equal(t, ForecastActual, origin.Time.Departure.Forecast)
	require.NotNil(t, origin.Time.Departure.Effective)

	pass := details.Locations[1]
	assert.True(t, pass.Pass)
	assert.Nil(t, pass.Activities)

	terminus := details.Locations[2]
	assert.Equal(t, "York", terminus.Location.Name)
	assert.Nil(t, terminus.Time.Departure)
	require.NotNil(t, terminus.Time.Arrival)
	assert.Equal(t, ForecastEstimated, terminus.Time.Arrival.Forecast)
	assert.Equal(t, "360", terminus.Lateness)

	lateness, ok := terminus.Time.Arrival.Lateness()
	require.True(t, ok)
	assert.Equal(t, 6*time.Minute, lateness)

	// Parsing is deterministic.
	again, err := ParseServiceDetails(document)
	require.NoError(t, err)
	assert.Equal(t, details, again)
}

func TestParseServiceDetailsDirectResult(t *testing.T) {
	details, err := ParseServiceDetails(serviceResult(el("locations")))
	require.NoError(t, err)

	assert.Empty(t, details.Locations)
}

func TestParseServiceDetailsMissingResult(t *testing.T) {
	document := el("Envelope", el("Body", el("GetArrivalBoardResponse")))

	_, err := ParseServiceDetails(document)
	assert.Equal(t, MissingFieldError{Field: "GetServiceDetailsResult"}, err)
}

func TestParseServiceDetailsUnsupportedServiceType(t *testing.T) {
	result := serviceResult(el("locations"))
	result.children[0] = txt("serviceType", "bus")

	details, err := ParseServiceDetails(result)
	assert.Nil(t, details)
	assert.Equal(t, UnsupportedServiceTypeError{ServiceType: "bus"}, err)
}

func TestParseServiceDetailsMissingRID(t *testing.T) {
	result := serviceResult(el("locations"))
	result.children[2] = txt("notrid", "202405117126716")

	_, err := ParseServiceDetails(result)
	assert.Equal(t, MissingFieldError{Field: "rid"}, err)
}

func TestParseServiceDetailsMissingLocations(t *testing.T) {
	_, err := ParseServiceDetails(serviceResult())
	assert.Equal(t, MissingFieldError{Field: "locations"}, err)
}

func TestParseServiceDetailsUnknownActivityAborts(t *testing.T) {
	result := serviceResult(
		el("locations",
			callingPoint("London Kings Cross", "KGX", txt("activities", "ZZ")),
			callingPoint("York", "YRK"),
		),
	)

	details, err := ParseServiceDetails(result)
	assert.Nil(t, details)
	assert.Equal(t, InvalidActivityError{Code: "ZZ"}, err)
}

func TestParseServiceDetailsBadLocationTag(t *testing.T) {
	result := serviceResult(el("locations", el("stop")))

	_, err := ParseServiceDetails(result)
	assert.Equal(t, InvalidTagNameError{Expected: "location", Found: "stop"}, err)
}

func TestParseServiceLocationZeroLength(t *testing.T) {
	// A zero length means unknown, not a zero length train.
	location, err := parseServiceLocation(callingPoint("York", "YRK", txt("length", "0")))
	require.NoError(t, err)
	assert.Equal(t, uint16(0), location.Length)

	location, err = parseServiceLocation(callingPoint("York", "YRK", txt("length", "carriages")))
	require.NoError(t, err)
	assert.Equal(t, uint16(0), location.Length)
}

func TestParseServiceLocationEmptyActivities(t *testing.T) {
	// Empty activities text means no list at all, not a list holding one
	// "None" marker.
	location, err := parseServiceLocation(callingPoint("York", "YRK", txt("activities", "")))
	require.NoError(t, err)
	assert.Nil(t, location.Activities)

	location, err = parseServiceLocation(callingPoint("York", "YRK"))
	require.NoError(t, err)
	assert.Nil(t, location.Activities)
}

func TestParseServiceLocationFlags(t *testing.T) {
	location, err := parseServiceLocation(callingPoint("York", "YRK",
		txt("isCancelled", "true"),
		txt("platformIsHidden", "true"),
		txt("serviceIsSupressed", "true"),
		txt("detachFront", "true"),
	))
	require.NoError(t, err)

	assert.True(t, location.Cancelled)
	assert.True(t, location.PlatformHidden)
	assert.True(t, location.Suppressed)
	assert.True(t, location.DetachFront)
	assert.False(t, location.Operational)

	_, err = parseServiceLocation(callingPoint("York", "YRK", txt("isPass", "maybe")))
	assert.Equal(t, InvalidFieldError{Field: "isPass", Expected: "bool", Found: "maybe"}, err)
}

func TestParseServiceLocationFalseDestination(t *testing.T) {
	location, err := parseServiceLocation(callingPoint("London Paddington", "PAD",
		txt("falseDest", "Twyford"),
		txt("fdTiploc", "TWYFORD"),
	))
	require.NoError(t, err)

	require.NotNil(t, location.FalseDestination)
	assert.Equal(t, "Twyford", location.FalseDestination.Name)
	assert.Equal(t, "TWYFORD", location.FalseDestination.Tiploc)
	assert.Equal(t, "", location.FalseDestination.CRS)
}

func TestParseServiceLocationAssociations(t *testing.T) {
	location, err := parseServiceLocation(callingPoint("York", "YRK",
		el("associations", associationFixture("join")),
	))
	require.NoError(t, err)

	require.Len(t, location.Associations, 1)
	assert.Equal(t, AssociationJoin, location.Associations[0].Category)

	// A bad association aborts the location.
	_, err = parseServiceLocation(callingPoint("York", "YRK",
		el("associations", associationFixture("merge")),
	))
	assert.Equal(t, InvalidAssociationCategoryError{Value: "merge"}, err)
}

func TestParseServiceLocationAdhocAlerts(t *testing.T) {
	location, err := parseServiceLocation(callingPoint("York", "YRK",
		el("adhocAlerts",
			txt("adhocAlertText", "Station closed due to flooding"),
		),
	))
	require.NoError(t, err)

	assert.Equal(t, []string{"Station closed due to flooding"}, location.AdhocAlerts)
}

func TestParseServiceDetailsMissingMandatoryScalar(t *testing.T) {
	for index, field := range map[int]string{
		1: "generatedAt",
		3: "uid",
		4: "trainid",
		5: "sdd",
		6: "category",
		7: "operator",
		8: "operatorCode",
	} {
		result := serviceResult(el("locations"))
		result.children[index] = txt("unrelated", "")

		_, err := ParseServiceDetails(result)
		assert.Equal(t, MissingFieldError{Field: field}, err)
	}
}
