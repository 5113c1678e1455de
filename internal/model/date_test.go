package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, 3, int(d.Month()))
	assert.Equal(t, 15, d.Day())

	_, err = ParseDate("03/15/2024")
	assert.Error(t, err)
	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDate_Arithmetic(t *testing.T) {
	d := NewDate(2024, 1, 15)
	assert.Equal(t, "2024-01-22", d.AddDays(7).String())
	assert.Equal(t, "2024-02-15", d.AddMonths(1).String())
	assert.Equal(t, "2025-01-15", d.AddYears(1).String())

	// Month-end overflow normalizes forward, like the underlying calendar.
	assert.Equal(t, "2024-03-02", NewDate(2024, 1, 31).AddMonths(1).String())
}

func TestDate_DaysUntil(t *testing.T) {
	today := NewDate(2024, 6, 10)
	assert.Equal(t, 0, today.DaysUntil(NewDate(2024, 6, 10)))
	assert.Equal(t, 3, today.DaysUntil(NewDate(2024, 6, 13)))
	assert.Equal(t, -5, today.DaysUntil(NewDate(2024, 6, 5)))
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2024, 12, 31)
	blob, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-12-31"`, string(blob))

	var back Date
	require.NoError(t, json.Unmarshal(blob, &back))
	assert.True(t, back.Equal(d.Time))
}

func TestDate_JSONZero(t *testing.T) {
	var d Date
	blob, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `""`, string(blob))

	var back Date
	require.NoError(t, json.Unmarshal([]byte(`""`), &back))
	assert.True(t, back.IsZero())
	require.NoError(t, json.Unmarshal([]byte(`null`), &back))
	assert.True(t, back.IsZero())
}
