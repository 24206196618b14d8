package helpers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-05-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-15", d.String())

	_, err = ParseDate("15/05/2024")
	assert.Error(t, err)
}

func TestDateArithmetic(t *testing.T) {
	d := NewDate(2024, time.February, 28)

	assert.Equal(t, "2024-02-29", d.AddDays(1).String(), "2024 is a leap year")
	assert.Equal(t, 1, d.AddDays(1).DaysSince(d))
	assert.Equal(t, -1, d.DaysSince(d.AddDays(1)))
	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.Equal(NewDate(2024, time.February, 28)))
}

func TestDateJSON(t *testing.T) {
	type payload struct {
		When Date `json:"when"`
	}

	out, err := json.Marshal(payload{When: NewDate(2024, time.May, 1)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"when":"2024-05-01"}`, string(out))

	var in payload
	require.NoError(t, json.Unmarshal([]byte(`{"when":"2024-05-01"}`), &in))
	assert.Equal(t, NewDate(2024, time.May, 1), in.When)
}
