package notifications

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatFecha(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{
			name: "friday in november",
			date: time.Date(2025, 11, 14, 0, 0, 0, 0, time.UTC),
			want: "Viernes día 14 de Noviembre",
		},
		{
			name: "sunday in november",
			date: time.Date(2025, 11, 16, 0, 0, 0, 0, time.UTC),
			want: "Domingo día 16 de Noviembre",
		},
		{
			name: "christmas",
			date: time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC),
			want: "Jueves día 25 de Diciembre",
		},
		{
			name: "new year",
			date: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			want: "Jueves día 1 de Enero",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFecha(tt.date))
		})
	}
}
