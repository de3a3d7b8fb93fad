package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"loungeadvisor-service/internal/domain/entity"
	"loungeadvisor-service/internal/domain/mocks"
	"loungeadvisor-service/pkg/logger"
)

func TestParseFlightTimeWithOffset(t *testing.T) {
	parser := NewFlightTimeParser(nil, logger.NewNop())

	parsed, err := parser.ParseFlightTime(context.Background(), "2026-09-15T14:30:00-04:00", "2026-09-15", "JFK")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 15, 18, 30, 0, 0, time.UTC), parsed.UTC())
}

func TestParseFlightTimeOffsetlessUsesAirportZone(t *testing.T) {
	timezones := new(mocks.MockTimezoneRepository)
	timezones.On("GetByAirportCode", mock.Anything, "JFK").
		Return(&entity.Timezone{AirportCode: "JFK", TzName: "America/New_York"}, nil)
	parser := NewFlightTimeParser(timezones, logger.NewNop())

	parsed, err := parser.ParseFlightTime(context.Background(), "2026-09-15T14:30:00", "2026-09-15", "JFK")
	require.NoError(t, err)
	// September is EDT, UTC-4
	assert.Equal(t, time.Date(2026, 9, 15, 18, 30, 0, 0, time.UTC), parsed.UTC())
}

func TestParseFlightTimeUnknownAirportFallsBackToUTC(t *testing.T) {
	timezones := new(mocks.MockTimezoneRepository)
	timezones.On("GetByAirportCode", mock.Anything, "XXX").Return(nil, nil)
	parser := NewFlightTimeParser(timezones, logger.NewNop())

	parsed, err := parser.ParseFlightTime(context.Background(), "2026-09-15T14:30:00", "2026-09-15", "XXX")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 15, 14, 30, 0, 0, time.UTC), parsed)
}

func TestParseFlightTimeTimeOnly(t *testing.T) {
	parser := NewFlightTimeParser(nil, logger.NewNop())

	parsed, err := parser.ParseFlightTime(context.Background(), "14:30", "2026-09-15", "")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 15, 14, 30, 0, 0, time.UTC), parsed)

	_, err = parser.ParseFlightTime(context.Background(), "14:30", "", "")
	assert.Error(t, err, "time-only value needs a date")
}

func TestParseFlightTimeInvalid(t *testing.T) {
	parser := NewFlightTimeParser(nil, logger.NewNop())

	for _, value := range []string{"", "   ", "soon", "25:99"} {
		_, err := parser.ParseFlightTime(context.Background(), value, "2026-09-15", "JFK")
		assert.Error(t, err, "value %q", value)
	}
}
