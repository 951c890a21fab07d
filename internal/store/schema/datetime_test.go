package schema_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventfold/sponsorpipe/internal/store/schema"
)

func TestDateTime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{
			name: "store wire format",
			raw:  `"2026-03-01 12:30:00.000Z"`,
			want: time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC),
		},
		{
			name: "rfc3339",
			raw:  `"2026-03-01T12:30:00Z"`,
			want: time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC),
		},
		{
			name: "date only",
			raw:  `"2026-03-01"`,
			want: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d schema.DateTime
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &d))
			assert.True(t, d.IsSet())
			assert.True(t, tt.want.Equal(d.Time), "got %v", d.Time)
		})
	}
}

func TestDateTime_UnmarshalJSON_Empty(t *testing.T) {
	var d schema.DateTime
	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.False(t, d.IsSet())
	assert.Nil(t, d.TimePtr())
}

func TestDateTime_UnmarshalJSON_Invalid(t *testing.T) {
	var d schema.DateTime
	assert.Error(t, json.Unmarshal([]byte(`"not a timestamp"`), &d))
}

func TestDateTime_MarshalJSON(t *testing.T) {
	d := schema.NewDateTime(time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC))
	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-01T12:30:00Z"`, string(out))

	var zero schema.DateTime
	out, err = json.Marshal(zero)
	require.NoError(t, err)
	assert.Equal(t, `""`, string(out))
}

func TestDateTime_RoundTrip(t *testing.T) {
	original := schema.NewDateTime(time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC))

	out, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded schema.DateTime
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.True(t, original.Time.Equal(decoded.Time))
}

func TestDateTime_TimePtr(t *testing.T) {
	set := schema.NewDateTime(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NotNil(t, set.TimePtr())
	assert.Equal(t, set.Time, *set.TimePtr())

	var unset schema.DateTime
	assert.Nil(t, unset.TimePtr())
}
