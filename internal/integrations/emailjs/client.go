// Package emailjs реализует клиент EmailJS REST API для отправки
// транзакционных писем через заранее настроенный шаблон.
package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.emailjs.com"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент EmailJS
type Client struct {
	serviceID  string
	templateID string
	publicKey  string
	privateKey string
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента EmailJS
func NewClient(serviceID, templateID, publicKey, privateKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		serviceID:  serviceID,
		templateID: templateID,
		publicKey:  publicKey,
		privateKey: privateKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Send отправляет письмо с подстановкой параметров в шаблон
func (c *Client) Send(ctx context.Context, params TemplateParams) error {
	if c.serviceID == "" || c.templateID == "" || c.publicKey == "" {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(sendRequest{
		ServiceID:      c.serviceID,
		TemplateID:     c.templateID,
		UserID:         c.publicKey,
		AccessToken:    c.privateKey,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("%w: encode request: %v", ErrInternal, err)
	}

	url := c.baseURL + "/api/v1.0/email/send"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: execute request: %v", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrSendFailed, resp.StatusCode, string(body))
	}

	c.log.Info("EmailJS: email sent to=%s, subject=%q", params.ToEmail, params.Subject)
	return nil
}
