package create_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LaMesa-ReservationService/internal/domain"
	"github.com/m04kA/LaMesa-ReservationService/pkg/types"
)

type fakeStore struct {
	confirmed []*domain.Reservation
	listErr   error
	createErr error

	created []*domain.Reservation
	nextID  int64
}

func (f *fakeStore) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	created := *res
	created.ID = f.nextID
	f.created = append(f.created, &created)
	return &created, nil
}

func (f *fakeStore) ListConfirmedForDate(_ context.Context, date time.Time) ([]*domain.Reservation, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	fecha := date.Format(domain.DateFormat)
	var out []*domain.Reservation
	for _, res := range f.confirmed {
		if res.DateString() == fecha {
			out = append(out, res)
		}
	}
	return out, nil
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Понедельник 10 ноября 2025
var testNow = time.Date(2025, 11, 10, 10, 0, 0, 0, time.UTC)

func newTestUseCase(store *fakeStore, autoConfirm bool) *UseCase {
	cfg := domain.DefaultRestaurantConfig()
	cfg.AutoConfirm = autoConfirm
	uc := NewUseCase(store, &cfg, nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		Name:      "María García",
		Phone:     "+34 600 111 222",
		PartySize: 4,
		Date:      time.Date(2025, 11, 14, 0, 0, 0, 0, time.UTC),
		Time:      "20:00",
	}
}

func TestExecuteCreatesPendingReservation(t *testing.T) {
	store := &fakeStore{}
	uc := newTestUseCase(store, false)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "pendiente", resp.Status)
	assert.Equal(t, "2025-11-14", resp.Date)
	assert.Equal(t, "20:00", resp.Time)

	require.Len(t, store.created, 1)
	assert.Equal(t, domain.StatusPending, store.created[0].Status)
	assert.Equal(t, testNow, store.created[0].CreatedAt)
}

func TestExecuteAutoConfirm(t *testing.T) {
	store := &fakeStore{}
	uc := newTestUseCase(store, true)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "confirmada", resp.Status)
}

func TestExecuteValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "missing name", mutate: func(r *Request) { r.Name = "  " }},
		{name: "missing phone", mutate: func(r *Request) { r.Phone = "" }},
		{name: "zero party size", mutate: func(r *Request) { r.PartySize = 0 }},
		{name: "negative party size", mutate: func(r *Request) { r.PartySize = -3 }},
		{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "missing time", mutate: func(r *Request) { r.Time = "" }},
		{name: "malformed time", mutate: func(r *Request) { r.Time = "25:99" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			uc := newTestUseCase(store, false)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			// Невалидный запрос не доходит до хранилища
			assert.Empty(t, store.created)
		})
	}
}

func TestExecutePastDate(t *testing.T) {
	store := &fakeStore{}
	uc := newTestUseCase(store, false)

	req := validRequest()
	req.Date = time.Date(2025, 11, 9, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Empty(t, store.created)
}

func TestExecuteClosedDays(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
	}{
		{name: "sunday", date: time.Date(2025, 11, 16, 0, 0, 0, 0, time.UTC)},
		{name: "christmas", date: time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			uc := newTestUseCase(store, false)

			req := validRequest()
			req.Date = tt.date

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrClosed)
			assert.Empty(t, store.created)
		})
	}
}

func TestExecuteInvalidTimeSlot(t *testing.T) {
	tests := []struct {
		name string
		slot types.TimeString
	}{
		{name: "between slots", slot: "20:15"},
		{name: "before opening", slot: "11:00"},
		{name: "afternoon gap", slot: "16:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			uc := newTestUseCase(store, false)

			req := validRequest()
			req.Time = tt.slot

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidTimeSlot)
			assert.Empty(t, store.created)
		})
	}
}

func TestExecuteSlotFull(t *testing.T) {
	date := time.Date(2025, 11, 14, 0, 0, 0, 0, time.UTC)
	store := &fakeStore{
		confirmed: []*domain.Reservation{
			{PartySize: 45, Date: date, Time: "20:00", Status: domain.StatusConfirmed},
		},
	}
	uc := newTestUseCase(store, false)

	// 45 + 6 > 50
	req := validRequest()
	req.PartySize = 6

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, store.created)

	// 45 + 5 = 50, ровно вместимость - проходит
	req = validRequest()
	req.PartySize = 5

	_, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, store.created, 1)
}

func TestExecuteOtherSlotDoesNotBlock(t *testing.T) {
	date := time.Date(2025, 11, 14, 0, 0, 0, 0, time.UTC)
	store := &fakeStore{
		confirmed: []*domain.Reservation{
			{PartySize: 50, Date: date, Time: "19:00", Status: domain.StatusConfirmed},
		},
	}
	uc := newTestUseCase(store, false)

	// Слот 20:00 свободен, хотя 19:00 полностью занят
	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
}

func TestExecuteStoreErrors(t *testing.T) {
	uc := newTestUseCase(&fakeStore{listErr: errors.New("connection refused")}, false)
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)

	uc = newTestUseCase(&fakeStore{createErr: errors.New("insert failed")}, false)
	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
