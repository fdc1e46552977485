package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client представляет HTTP клиент для взаимодействия с Sherlock API
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент с явным таймаутом
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// BaseURL returns the resolved API base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// resolveURL строит абсолютный URL: payment_request_url приходит от сервера
// уже абсолютным, остальные пути относительны baseURL
func (c *Client) resolveURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return c.baseURL + path
}

// do выполняет HTTP запрос и возвращает статус и тело ответа.
// Ошибки транспорта оборачиваются в ErrTransport.
func (c *Client) do(ctx context.Context, method, path, token string, body interface{}) (int, []byte, error) {
	url := c.resolveURL(path)

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: failed to read response body: %v", ErrTransport, err)
	}

	return resp.StatusCode, respBody, nil
}

// doRequest выполняет запрос, для которого успехом является только 2xx.
// Любой другой статус возвращается как StatusError.
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result interface{}) error {
	status, respBody, err := c.do(ctx, method, path, token, body)
	if err != nil {
		return err
	}

	if status < 200 || status >= 300 {
		return newStatusError(status, respBody)
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// doPaymentRequest выполняет запрос, для которого статус 402 Payment Required
// является ожидаемым успешным исходом, несущим payload. Это единственное
// место, где стандартная семантика HTTP намеренно инвертирована.
//
// Возвращает сырое тело ответа; декодирование делает вызывающий, потому что
// недекодируемое тело здесь не является ошибкой - вызывающий различает исходы
// по форме тела, не по статусу.
func (c *Client) doPaymentRequest(ctx context.Context, method, path, token string, body interface{}) ([]byte, error) {
	status, respBody, err := c.do(ctx, method, path, token, body)
	if err != nil {
		return nil, err
	}

	if (status < 200 || status >= 300) && status != http.StatusPaymentRequired {
		return nil, newStatusError(status, respBody)
	}

	return respBody, nil
}
