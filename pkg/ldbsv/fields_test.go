package ldbsv

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextField(t *testing.T) {
	node := el("location", txt("locationName", "York"))

	text, err := textField(node, "locationName")
	require.NoError(t, err)
	assert.Equal(t, "York", text)

	_, err = textField(node, "crs")
	assert.Equal(t, MissingFieldError{Field: "crs"}, err)
}

func TestUintField(t *testing.T) {
	node := el("location", txt("length", "9"), txt("platform", "fourteen"))

	length, err := uintField(node, "length", 16)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), length)

	_, err = uintField(node, "platform", 8)
	assert.Equal(t, InvalidFieldError{Field: "platform", Expected: "unsigned integer", Found: "fourteen"}, err)
}

func TestTimeField(t *testing.T) {
	node := el("result", txt("generatedAt", "2024-05-11T10:30:00+01:00"), txt("sta", "not a time"))

	value, err := timeField(node, "generatedAt")
	require.NoError(t, err)

	expected := time.Date(2024, 5, 11, 10, 30, 0, 0, time.FixedZone("", 3600))
	assert.True(t, expected.Equal(value))

	_, err = timeField(node, "sta")
	assert.Equal(t, InvalidFieldError{Field: "sta", Expected: "RFC 3339 timestamp", Found: "not a time"}, err)
}

func TestDateField(t *testing.T) {
	node := el("result", txt("sdd", "2024-05-11"), txt("other", "11/05/2024"))

	value, err := dateField(node, "sdd")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC), value)

	_, err = dateField(node, "other")
	var invalid InvalidFieldError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "other", invalid.Field)
}

func TestBoolField(t *testing.T) {
	node := el("location", txt("isPass", "true"), txt("isCancelled", "false"), txt("detachFront", "yes"))

	value, err := boolField(node, "isPass", false)
	require.NoError(t, err)
	assert.True(t, value)

	value, err = boolField(node, "isCancelled", true)
	require.NoError(t, err)
	assert.False(t, value)

	// Absent field yields the default without error.
	value, err = boolField(node, "isOperational", true)
	require.NoError(t, err)
	assert.True(t, value)

	// A present field must be exactly true or false.
	_, err = boolField(node, "detachFront", false)
	assert.Equal(t, InvalidFieldError{Field: "detachFront", Expected: "bool", Found: "yes"}, err)
}

func TestOptionalHelpers(t *testing.T) {
	node := el("result", txt("rsid", "LN123400"))

	assert.Equal(t, "LN123400", optionalText(node, "rsid"))
	assert.Equal(t, "", optionalText(node, "cancelReason"))
	assert.Nil(t, optionalTime(node, "eta"))
}
