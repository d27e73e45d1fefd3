// Package twilio реализует клиент Twilio Messages API для отправки SMS.
package twilio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.twilio.com"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент Twilio
type Client struct {
	accountSID string
	authToken  string
	from       string
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// messageResponse ответ Twilio Messages API
type messageResponse struct {
	SID          string  `json:"sid"`
	Status       string  `json:"status"`
	ErrorCode    *int    `json:"error_code"`
	ErrorMessage *string `json:"error_message"`
}

// NewClient создает новый экземпляр клиента Twilio
func NewClient(accountSID, authToken, from string, timeout time.Duration, log Logger) *Client {
	return &Client{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendSMS отправляет SMS на указанный номер
func (c *Client) SendSMS(ctx context.Context, to, body string) error {
	if c.accountSID == "" || c.authToken == "" || c.from == "" {
		return ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, c.accountSID)

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", c.from)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: create request: %v", ErrInternal, err)
	}
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: execute request: %v", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrSendFailed, resp.StatusCode, string(respBody))
	}

	var msg messageResponse
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrSendFailed, err)
	}
	if msg.ErrorCode != nil {
		errMsg := ""
		if msg.ErrorMessage != nil {
			errMsg = *msg.ErrorMessage
		}
		return fmt.Errorf("%w: error code %d: %s", ErrSendFailed, *msg.ErrorCode, errMsg)
	}

	c.log.Info("Twilio: SMS sent to=%s, sid=%s, status=%s", to, msg.SID, msg.Status)
	return nil
}
