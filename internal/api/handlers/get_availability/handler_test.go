package get_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailability "github.com/m04kA/LaMesa-ReservationService/internal/usecase/get_availability"
)

type fakeUseCase struct {
	day   *getAvailability.DayResponse
	month *getAvailability.MonthResponse
	err   error

	dayRequests   []*getAvailability.Request
	monthRequests int
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailability.Request) (*getAvailability.DayResponse, error) {
	f.dayRequests = append(f.dayRequests, req)
	return f.day, f.err
}

func (f *fakeUseCase) ExecuteMonth(_ context.Context) (*getAvailability.MonthResponse, error) {
	f.monthRequests++
	return f.month, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, path string) *httptest.ResponseRecorder {
	t.Helper()

	r := mux.NewRouter()
	r.HandleFunc("/disponibilidad", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleSingleDate(t *testing.T) {
	uc := &fakeUseCase{
		day: &getAvailability.DayResponse{
			Fecha:     "2025-11-14",
			Available: true,
			AvailableSlots: []getAvailability.SlotResponse{
				{Time: "20:00", AvailableSpaces: 50},
			},
			DayOfWeek: "Vie",
		},
	}

	rec := doRequest(t, uc, "/disponibilidad?fecha=2025-11-14&personas=4")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, uc.dayRequests, 1)
	assert.Equal(t, 4, uc.dayRequests[0].PartySize)
	assert.Equal(t, "2025-11-14", uc.dayRequests[0].Date.Format("2006-01-02"))

	var resp getAvailability.DayResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Available)
	assert.Equal(t, "Vie", resp.DayOfWeek)
}

func TestHandleDefaultsPartySizeToOne(t *testing.T) {
	uc := &fakeUseCase{day: &getAvailability.DayResponse{Fecha: "2025-11-14", Available: true}}

	rec := doRequest(t, uc, "/disponibilidad?fecha=2025-11-14")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, uc.dayRequests, 1)
	assert.Equal(t, 1, uc.dayRequests[0].PartySize)
}

func TestHandleMonthViewWithoutFecha(t *testing.T) {
	uc := &fakeUseCase{
		month: &getAvailability.MonthResponse{Month: 11, Year: 2025},
	}

	rec := doRequest(t, uc, "/disponibilidad")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, uc.monthRequests)
	assert.Empty(t, uc.dayRequests)
}

func TestHandleMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "bad date", path: "/disponibilidad?fecha=14-11-2025"},
		{name: "personas not a number", path: "/disponibilidad?fecha=2025-11-14&personas=dos"},
		{name: "personas zero", path: "/disponibilidad?fecha=2025-11-14&personas=0"},
		{name: "personas negative", path: "/disponibilidad?fecha=2025-11-14&personas=-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			rec := doRequest(t, uc, tt.path)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, uc.dayRequests)
			assert.Zero(t, uc.monthRequests)
		})
	}
}
