package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LaMesa-ReservationService/pkg/types"
)

func TestRestaurantConfigToDomainDefaults(t *testing.T) {
	cfg, err := RestaurantConfig{}.ToDomain()

	require.NoError(t, err)
	assert.Equal(t, 50, cfg.MaxCapacity)
	assert.Len(t, cfg.TimeSlots, 15)
	assert.Nil(t, cfg.OpeningHours[int(time.Sunday)])
	require.NotNil(t, cfg.OpeningHours[int(time.Friday)])
	assert.Equal(t, types.TimeString("23:30"), cfg.OpeningHours[int(time.Friday)].End)
	assert.False(t, cfg.AutoConfirm)
}

func TestRestaurantConfigToDomainOverrides(t *testing.T) {
	cfg, err := RestaurantConfig{
		MaxCapacity: 30,
		AutoConfirm: true,
		TimeSlots:   []string{"18:00", "18:30"},
		ClosedDates: []string{"2026-08-15"},
		Hours: map[string]string{
			"monday": "18:00-22:00",
			"sunday": "",
		},
	}.ToDomain()

	require.NoError(t, err)
	assert.Equal(t, 30, cfg.MaxCapacity)
	assert.True(t, cfg.AutoConfirm)
	assert.Equal(t, []types.TimeString{"18:00", "18:30"}, cfg.TimeSlots)
	assert.Equal(t, []string{"2026-08-15"}, cfg.ClosedDates)

	require.NotNil(t, cfg.OpeningHours[int(time.Monday)])
	assert.Equal(t, types.TimeString("18:00"), cfg.OpeningHours[int(time.Monday)].Start)
	assert.Equal(t, types.TimeString("22:00"), cfg.OpeningHours[int(time.Monday)].End)

	// Явная секция hours заменяет расписание целиком: не указан - закрыт
	assert.Nil(t, cfg.OpeningHours[int(time.Tuesday)])
	assert.Nil(t, cfg.OpeningHours[int(time.Sunday)])
}

func TestRestaurantConfigToDomainErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  RestaurantConfig
	}{
		{name: "bad slot", cfg: RestaurantConfig{TimeSlots: []string{"25:00"}}},
		{name: "bad closed date", cfg: RestaurantConfig{ClosedDates: []string{"25/12/2025"}}},
		{name: "unknown weekday", cfg: RestaurantConfig{Hours: map[string]string{"someday": "12:00-23:00"}}},
		{name: "bad interval", cfg: RestaurantConfig{Hours: map[string]string{"monday": "12:00"}}},
		{name: "inverted interval", cfg: RestaurantConfig{Hours: map[string]string{"monday": "23:00-12:00"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.ToDomain()
			assert.Error(t, err)
		})
	}
}
