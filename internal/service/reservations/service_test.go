package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LaMesa-ReservationService/internal/domain"
	"github.com/m04kA/LaMesa-ReservationService/internal/infra/storage"
	"github.com/m04kA/LaMesa-ReservationService/internal/service/notifications"
	"github.com/m04kA/LaMesa-ReservationService/pkg/ptr"
)

type fakeStore struct {
	byID map[int64]*domain.Reservation
	all  []*domain.Reservation

	listErr   error
	updateErr error
	deleteErr error

	updated map[int64]domain.ReservationStatus
	deleted []int64
}

func newFakeStore(reservations ...*domain.Reservation) *fakeStore {
	s := &fakeStore{
		byID:    make(map[int64]*domain.Reservation),
		updated: make(map[int64]domain.ReservationStatus),
	}
	for _, res := range reservations {
		s.byID[res.ID] = res
		s.all = append(s.all, res)
	}
	return s
}

func (f *fakeStore) ListAll(_ context.Context) ([]*domain.Reservation, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.all, nil
}

func (f *fakeStore) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	res, ok := f.byID[id]
	if !ok {
		return nil, storage.ErrReservationNotFound
	}
	copied := *res
	return &copied, nil
}

func (f *fakeStore) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	res, ok := f.byID[id]
	if !ok {
		return storage.ErrReservationNotFound
	}
	res.Status = status
	f.updated[id] = status
	return nil
}

func (f *fakeStore) Delete(_ context.Context, id int64) (*domain.Reservation, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	res, ok := f.byID[id]
	if !ok {
		return nil, storage.ErrReservationNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return res, nil
}

type fakeNotifier struct {
	confirmed []*domain.Reservation
	denied    []*domain.Reservation
	result    notifications.Result
}

func (f *fakeNotifier) NotifyConfirmed(_ context.Context, res *domain.Reservation) notifications.Result {
	f.confirmed = append(f.confirmed, res)
	return f.result
}

func (f *fakeNotifier) NotifyDenied(_ context.Context, res *domain.Reservation) notifications.Result {
	f.denied = append(f.denied, res)
	return f.result
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sentResult() notifications.Result {
	return notifications.Result{
		Sent:      true,
		Channel:   notifications.ChannelEmail,
		Recipient: "maria@example.com",
	}
}

func pending(id int64) *domain.Reservation {
	return &domain.Reservation{
		ID:        id,
		Name:      "María García",
		Phone:     "+34 600 111 222",
		Email:     ptr.Ptr("maria@example.com"),
		PartySize: 4,
		Date:      time.Date(2025, 11, 14, 0, 0, 0, 0, time.UTC),
		Time:      "20:00",
		Status:    domain.StatusPending,
		CreatedAt: time.Date(2025, 11, 10, 9, 0, 0, 0, time.UTC),
	}
}

func confirmedRes(id int64) *domain.Reservation {
	res := pending(id)
	res.Status = domain.StatusConfirmed
	return res
}

func TestListReturnsAllReservations(t *testing.T) {
	store := newFakeStore(pending(1), confirmedRes(2))
	svc := NewService(store, &fakeNotifier{result: sentResult()}, nopLogger{})

	resp, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Reservations, 2)
	assert.Equal(t, "pendiente", resp.Reservations[0].Status)
	assert.Equal(t, "confirmada", resp.Reservations[1].Status)
}

func TestListStoreError(t *testing.T) {
	store := newFakeStore()
	store.listErr = errors.New("connection refused")
	svc := NewService(store, &fakeNotifier{}, nopLogger{})

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestConfirmPendingReservation(t *testing.T) {
	store := newFakeStore(pending(1))
	notifier := &fakeNotifier{result: sentResult()}
	svc := NewService(store, notifier, nopLogger{})

	resp, err := svc.Confirm(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "confirmada", resp.Reservation.Status)
	assert.Equal(t, domain.StatusConfirmed, store.updated[1])

	require.Len(t, notifier.confirmed, 1)
	assert.Equal(t, domain.StatusConfirmed, notifier.confirmed[0].Status)

	assert.True(t, resp.Notification.Sent)
	assert.Equal(t, "email", resp.Notification.Channel)
	assert.Equal(t, "maria@example.com", resp.Notification.Recipient)
}

func TestConfirmUnknownID(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewService(newFakeStore(), notifier, nopLogger{})

	_, err := svc.Confirm(context.Background(), 404)

	assert.ErrorIs(t, err, ErrReservationNotFound)
	assert.Empty(t, notifier.confirmed)
}

func TestConfirmAlreadyConfirmed(t *testing.T) {
	store := newFakeStore(confirmedRes(1))
	notifier := &fakeNotifier{}
	svc := NewService(store, notifier, nopLogger{})

	_, err := svc.Confirm(context.Background(), 1)

	assert.ErrorIs(t, err, ErrAlreadyConfirmed)
	assert.Empty(t, store.updated)
	assert.Empty(t, notifier.confirmed)
}

func TestConfirmNotificationFailureIsSoft(t *testing.T) {
	store := newFakeStore(pending(1))
	notifier := &fakeNotifier{result: notifications.Result{
		Sent:      false,
		Channel:   notifications.ChannelEmail,
		Recipient: "maria@example.com",
		Err:       errors.New("emailjs: send failed"),
	}}
	svc := NewService(store, notifier, nopLogger{})

	resp, err := svc.Confirm(context.Background(), 1)

	// Подтверждение состоялось, неуспех уведомления только отражен в ответе
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, store.updated[1])
	assert.False(t, resp.Notification.Sent)
	assert.Contains(t, resp.Notification.Error, "send failed")
}

func TestDenyDeletesReservation(t *testing.T) {
	store := newFakeStore(pending(1))
	notifier := &fakeNotifier{result: sentResult()}
	svc := NewService(store, notifier, nopLogger{})

	resp, err := svc.Deny(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, []int64{1}, store.deleted)
	require.Len(t, notifier.denied, 1)
	assert.True(t, resp.Notification.Sent)
	assert.Equal(t, int64(1), resp.Reservation.ID)
}

func TestDenyDeletesEvenIfNotificationFails(t *testing.T) {
	store := newFakeStore(pending(1))
	notifier := &fakeNotifier{result: notifications.Result{
		Sent: false,
		Err:  errors.New("twilio: timeout"),
	}}
	svc := NewService(store, notifier, nopLogger{})

	resp, err := svc.Deny(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, []int64{1}, store.deleted)
	assert.False(t, resp.Notification.Sent)
}

func TestDenyTwiceSecondIsNotFound(t *testing.T) {
	store := newFakeStore(pending(1))
	notifier := &fakeNotifier{result: sentResult()}
	svc := NewService(store, notifier, nopLogger{})

	_, err := svc.Deny(context.Background(), 1)
	require.NoError(t, err)

	_, err = svc.Deny(context.Background(), 1)
	assert.ErrorIs(t, err, ErrReservationNotFound)
	// Повторный отказ не шлет второе уведомление
	assert.Len(t, notifier.denied, 1)
}

func TestCancelConfirmedReservation(t *testing.T) {
	store := newFakeStore(confirmedRes(1))
	svc := NewService(store, &fakeNotifier{}, nopLogger{})

	resp, err := svc.Cancel(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, []int64{1}, store.deleted)
	assert.Equal(t, int64(1), resp.Cancelled.ID)
	assert.Equal(t, "confirmada", resp.Cancelled.Status)
	assert.Equal(t, "2025-11-14", resp.Cancelled.Date)
}

func TestCancelPendingIsRejected(t *testing.T) {
	store := newFakeStore(pending(1))
	svc := NewService(store, &fakeNotifier{}, nopLogger{})

	_, err := svc.Cancel(context.Background(), 1)

	assert.ErrorIs(t, err, ErrCannotCancel)
	// Строка остается на месте
	assert.Empty(t, store.deleted)
	_, getErr := store.GetByID(context.Background(), 1)
	assert.NoError(t, getErr)
}

func TestCancelUnknownID(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeNotifier{}, nopLogger{})

	_, err := svc.Cancel(context.Background(), 404)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
