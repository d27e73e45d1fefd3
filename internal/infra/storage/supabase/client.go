// Package supabase реализует хранилище броней поверх Supabase
// (PostgREST API). Тот же контракт, что и у репозиториев postgres и mongodb.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/LaMesa-ReservationService/internal/domain"
	"github.com/m04kA/LaMesa-ReservationService/internal/infra/storage"
)

// Client клиент таблицы reservas в Supabase
type Client struct {
	baseURL    string
	apiKey     string
	table      string
	httpClient *http.Client
}

// NewClient создает новый экземпляр клиента Supabase
func NewClient(baseURL, apiKey, table string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		table:   table,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Create сохраняет новую бронь; id и created_at присваивает Supabase
func (c *Client) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	rows, err := c.do(ctx, http.MethodPost, "", fromDomain(res), "return=representation")
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: Create - empty representation in response", storage.ErrExecQuery)
	}

	created, err := rows[0].toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - decode row: %v", storage.ErrScanRow, err)
	}
	return created, nil
}

// GetByID получает бронь по ID
func (c *Client) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	query := fmt.Sprintf("id=eq.%d", id)
	rows, err := c.do(ctx, http.MethodGet, query, nil, "")
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, storage.ErrReservationNotFound
	}

	res, err := rows[0].toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - decode row: %v", storage.ErrScanRow, err)
	}
	return res, nil
}

// ListAll возвращает все брони, отсортированные по дате и времени
func (c *Client) ListAll(ctx context.Context) ([]*domain.Reservation, error) {
	rows, err := c.do(ctx, http.MethodGet, "order=fecha.asc,hora.asc", nil, "")
	if err != nil {
		return nil, err
	}
	return decodeRows(rows)
}

// ListConfirmedForDate возвращает подтвержденные брони на указанную дату
func (c *Client) ListConfirmedForDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	query := fmt.Sprintf("fecha=eq.%s&estado=eq.%s&order=hora.asc",
		date.Format(domain.DateFormat), url.QueryEscape(string(domain.StatusConfirmed)))
	rows, err := c.do(ctx, http.MethodGet, query, nil, "")
	if err != nil {
		return nil, err
	}
	return decodeRows(rows)
}

// UpdateStatus обновляет статус брони
func (c *Client) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	query := fmt.Sprintf("id=eq.%d", id)
	body := map[string]string{"estado": string(status)}

	rows, err := c.do(ctx, http.MethodPatch, query, body, "return=representation")
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return storage.ErrReservationNotFound
	}
	return nil
}

// Delete физически удаляет бронь и возвращает удаленный снимок
func (c *Client) Delete(ctx context.Context, id int64) (*domain.Reservation, error) {
	query := fmt.Sprintf("id=eq.%d", id)
	rows, err := c.do(ctx, http.MethodDelete, query, nil, "return=representation")
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, storage.ErrReservationNotFound
	}

	deleted, err := rows[0].toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: Delete - decode row: %v", storage.ErrScanRow, err)
	}
	return deleted, nil
}

// do выполняет запрос к PostgREST и декодирует ответ-массив
func (c *Client) do(ctx context.Context, method, query string, body interface{}, prefer string) ([]reservaRow, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, c.table)
	if query != "" {
		endpoint += "?" + query
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: encode request body: %v", storage.ErrBuildQuery, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", storage.ErrBuildQuery, err)
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: execute request: %v", storage.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s",
			storage.ErrExecQuery, resp.StatusCode, string(respBody))
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	var rows []reservaRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", storage.ErrScanRow, err)
	}

	return rows, nil
}

func decodeRows(rows []reservaRow) ([]*domain.Reservation, error) {
	reservas := make([]*domain.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := row.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: decode row id=%d: %v", storage.ErrScanRow, row.ID, err)
		}
		reservas = append(reservas, res)
	}
	return reservas, nil
}
