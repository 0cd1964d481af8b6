package ldbsv

import (
	"strconv"
	"time"
)

// Field coercion helpers. Every extraction is "look up named child, take
// its text, convert". Mandatory callers propagate the error; optional
// callers discard it and treat the field as absent.

const dateLayout = "2006-01-02"

func requireChild(node Node, name string) (Node, error) {
	child := node.Child(name)
	if child == nil {
		return nil, MissingFieldError{Field: name}
	}

	return child, nil
}

func textField(node Node, name string) (string, error) {
	child, err := requireChild(node, name)
	if err != nil {
		return "", err
	}

	return child.Text(), nil
}

// scalarField parses the named child's text with the given converter,
// reporting expected in the error on conversion failure.
func scalarField[T any](node Node, name string, expected string, conv func(string) (T, error)) (T, error) {
	var zero T

	text, err := textField(node, name)
	if err != nil {
		return zero, err
	}

	value, err := conv(text)
	if err != nil {
		return zero, InvalidFieldError{Field: name, Expected: expected, Found: text}
	}

	return value, nil
}

func uintField(node Node, name string, bits int) (uint64, error) {
	return scalarField(node, name, "unsigned integer", func(text string) (uint64, error) {
		return strconv.ParseUint(text, 10, bits)
	})
}

func timeField(node Node, name string) (time.Time, error) {
	return scalarField(node, name, "RFC 3339 timestamp", func(text string) (time.Time, error) {
		return time.Parse(time.RFC3339, text)
	})
}

func dateField(node Node, name string) (time.Time, error) {
	return scalarField(node, name, "date", func(text string) (time.Time, error) {
		return time.Parse(dateLayout, text)
	})
}

// boolField returns def when the field is absent. A present field must be
// exactly "true" or "false".
func boolField(node Node, name string, def bool) (bool, error) {
	text, err := textField(node, name)
	if err != nil {
		return def, nil
	}

	switch text {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return def, InvalidFieldError{Field: name, Expected: "bool", Found: text}
	}
}

func optionalText(node Node, name string) string {
	text, _ := textField(node, name)
	return text
}

func optionalTime(node Node, name string) *time.Time {
	value, err := timeField(node, name)
	if err != nil {
		return nil
	}

	return &value
}
