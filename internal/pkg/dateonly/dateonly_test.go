//go:build unit

package dateonly_test

import (
	"encoding/json"
	"testing"
	"time"

	"book-catalog/internal/pkg/dateonly"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	d, err := dateonly.Parse("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-15", d.String())

	_, err = dateonly.Parse("15.03.2026")
	assert.Error(t, err)

	_, err = dateonly.Parse("2026-03-15T10:00:00Z")
	assert.Error(t, err, "time-of-day must not cross the wire")
}

func TestJSONRoundTrip(t *testing.T) {
	type payload struct {
		Due dateonly.Date `json:"due"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"due":"2026-03-15"}`), &p))
	assert.Equal(t, dateonly.New(2026, time.March, 15), p.Due)

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"due":"2026-03-15"}`, string(out))
}

func TestScan(t *testing.T) {
	var d dateonly.Date
	require.NoError(t, d.Scan(time.Date(2026, time.March, 15, 13, 45, 0, 0, time.UTC)))
	assert.Equal(t, dateonly.New(2026, time.March, 15), d, "scan truncates time-of-day")

	assert.Error(t, d.Scan(42))
}

func TestAddDays(t *testing.T) {
	d := dateonly.New(2026, time.February, 28)
	assert.Equal(t, dateonly.New(2026, time.March, 1), d.AddDays(1))
	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.AddDays(1).After(d))
}
