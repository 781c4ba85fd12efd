package mailservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с сервисом отправки писем
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса отправки писем
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendBookingEmail отправляет письмо о подтверждении или отмене записи
func (c *Client) SendBookingEmail(ctx context.Context, email BookingEmailRequest) error {
	body, err := json.Marshal(email)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted:
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}

// SendBookingEmailWithGracefulDegradation отправляет письмо с graceful degradation
// При недоступности сервиса писем запись не отменяется: ошибка логируется
// и возвращается ErrServiceDegraded, чтобы вызывающий мог её проигнорировать
func (c *Client) SendBookingEmailWithGracefulDegradation(ctx context.Context, email BookingEmailRequest) error {
	c.log.Info("Sending %s email to %s", email.Type, email.CustomerEmail)

	if err := c.SendBookingEmail(ctx, email); err != nil {
		// Для всех ошибок (недоступность сервиса, timeout и т.д.)
		// применяем graceful degradation - запись остаётся в силе
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("MailService unavailable, applying graceful degradation for %s: %v", email.CustomerEmail, err)
		return fmt.Errorf("%w: email=%s, error=%v", ErrServiceDegraded, email.CustomerEmail, err)
	}

	c.log.Info("Successfully sent %s email to %s", email.Type, email.CustomerEmail)
	return nil
}

// NoopClient заглушка для окружений, где отправка писем отключена
type NoopClient struct {
	log Logger
}

// NewNoopClient создает клиента-заглушку
func NewNoopClient(log Logger) *NoopClient {
	return &NoopClient{log: log}
}

// SendBookingEmailWithGracefulDegradation логирует письмо без отправки
func (c *NoopClient) SendBookingEmailWithGracefulDegradation(_ context.Context, email BookingEmailRequest) error {
	c.log.Debug("Mail sending disabled, skipping %s email to %s", email.Type, email.CustomerEmail)
	return nil
}
