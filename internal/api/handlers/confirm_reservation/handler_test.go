package confirm_reservation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LaMesa-ReservationService/internal/service/reservations"
	"github.com/m04kA/LaMesa-ReservationService/internal/service/reservations/models"
)

type fakeService struct {
	resp *models.TransitionResponse
	err  error

	calledWith []int64
}

func (f *fakeService) Confirm(_ context.Context, id int64) (*models.TransitionResponse, error) {
	f.calledWith = append(f.calledWith, id)
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, svc *fakeService, path string) *httptest.ResponseRecorder {
	t.Helper()

	r := mux.NewRouter()
	r.HandleFunc("/reservas/{id}/confirmar", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleConfirmsReservation(t *testing.T) {
	svc := &fakeService{
		resp: &models.TransitionResponse{
			Reservation:  models.ReservationResponse{ID: 7, Status: "confirmada"},
			Notification: models.NotificationOutcome{Sent: true, Channel: "email", Recipient: "maria@example.com"},
		},
	}

	rec := doRequest(t, svc, "/reservas/7/confirmar")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int64{7}, svc.calledWith)

	var resp models.TransitionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.Reservation.ID)
	assert.Equal(t, "confirmada", resp.Reservation.Status)
	assert.True(t, resp.Notification.Sent)
}

func TestHandleUnknownReservation(t *testing.T) {
	svc := &fakeService{err: reservations.ErrReservationNotFound}

	rec := doRequest(t, svc, "/reservas/404/confirmar")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Reserva no encontrada")
}

func TestHandleAlreadyConfirmed(t *testing.T) {
	svc := &fakeService{err: reservations.ErrAlreadyConfirmed}

	rec := doRequest(t, svc, "/reservas/7/confirmar")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "ya está confirmada")
}

func TestHandleInvalidID(t *testing.T) {
	svc := &fakeService{}

	rec := doRequest(t, svc, "/reservas/abc/confirmar")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.calledWith)
}

func TestHandleServiceFailure(t *testing.T) {
	svc := &fakeService{err: errors.New("store is down")}

	rec := doRequest(t, svc, "/reservas/7/confirmar")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error al confirmar reserva")
}
