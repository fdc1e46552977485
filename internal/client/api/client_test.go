package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgapi "github.com/sherlockdomains/sherlock-go/pkg/api"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL, 10*time.Second)

	assert.NotNil(t, client)
	assert.Equal(t, baseURL, client.BaseURL())
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 10*time.Second, client.httpClient.Timeout)
}

// TestNewClient_DefaultTimeout проверяет что нулевой таймаут заменяется дефолтным
func TestNewClient_DefaultTimeout(t *testing.T) {
	client := NewClient("http://localhost:8080", 0)
	assert.Equal(t, 10*time.Second, client.httpClient.Timeout)
}

// TestDoRequest_BearerHeader проверяет передачу Authorization заголовка
func TestDoRequest_BearerHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test_token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 10*time.Second)
	err := client.doRequest(context.Background(), http.MethodGet, "/any", "test_token", nil, nil)
	require.NoError(t, err)
}

// TestDoRequest_StatusError проверяет что не-2xx статус дает StatusError
// с кодом статуса и телом ответа
func TestDoRequest_StatusError(t *testing.T) {
	tests := []struct {
		responseBody   interface{}
		name           string
		expectedErrMsg string
		statusCode     int
	}{
		{
			name:       "server error with message",
			statusCode: http.StatusInternalServerError,
			responseBody: pkgapi.ErrorResponse{
				Message: "something broke",
			},
			expectedErrMsg: "server error (500): something broke",
		},
		{
			name:       "bad request with error field",
			statusCode: http.StatusBadRequest,
			responseBody: pkgapi.ErrorResponse{
				Error: "invalid search id",
			},
			expectedErrMsg: "server error (400): invalid search id",
		},
		{
			name:           "plain text body",
			statusCode:     http.StatusBadGateway,
			responseBody:   "Bad Gateway",
			expectedErrMsg: "request failed with status 502",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				if errResp, ok := tt.responseBody.(pkgapi.ErrorResponse); ok {
					_ = json.NewEncoder(w).Encode(errResp)
				} else {
					_, _ = w.Write([]byte(tt.responseBody.(string)))
				}
			}))
			defer server.Close()

			client := NewClient(server.URL, 10*time.Second)
			err := client.doRequest(context.Background(), http.MethodGet, "/any", "", nil, nil)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErrMsg)

			var statusErr *StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tt.statusCode, statusErr.StatusCode)
		})
	}
}

// TestDoRequest_PaymentRequiredIsError проверяет что для обычных запросов
// 402 остается ошибкой: инверсия семантики действует только в doPaymentRequest
func TestDoRequest_PaymentRequiredIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 10*time.Second)
	err := client.doRequest(context.Background(), http.MethodGet, "/any", "", nil, nil)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusPaymentRequired, statusErr.StatusCode)
}

// TestDoPaymentRequest_402Success проверяет что 402 с валидным JSON телом
// возвращается как успешный результат
func TestDoPaymentRequest_402Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"payment_request_url":"https://pay/x"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 10*time.Second)
	raw, err := client.doPaymentRequest(context.Background(), http.MethodPost, "/any", "", nil)

	require.NoError(t, err)
	assert.JSONEq(t, `{"payment_request_url":"https://pay/x"}`, string(raw))
}

// TestDoPaymentRequest_OtherStatusFails проверяет что не-2xx не-402 статус
// остается ошибкой и для платежных запросов
func TestDoPaymentRequest_OtherStatusFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"boom"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 10*time.Second)
	_, err := client.doPaymentRequest(context.Background(), http.MethodPost, "/any", "", nil)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
}

// TestDo_TransportError проверяет что ошибка соединения оборачивается в ErrTransport
func TestDo_TransportError(t *testing.T) {
	// Сервер сразу закрыт: соединение откажет
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, time.Second)
	err := client.doRequest(context.Background(), http.MethodGet, "/any", "", nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

// TestDo_ContextCancellation проверяет отмену запроса через контекст
func TestDo_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, 10*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := client.doRequest(ctx, http.MethodGet, "/any", "", nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

// TestDoRequest_InvalidJSON проверяет обработку невалидного JSON в 2xx ответе
func TestDoRequest_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("invalid json {{{"))
	}))
	defer server.Close()

	client := NewClient(server.URL, 10*time.Second)
	var result map[string]string
	err := client.doRequest(context.Background(), http.MethodGet, "/any", "", nil, &result)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}

// TestResolveURL проверяет что абсолютные URL не дополняются baseURL
func TestResolveURL(t *testing.T) {
	client := NewClient("https://api.example.com", 10*time.Second)

	assert.Equal(t, "https://api.example.com/api/v0/auth/me", client.resolveURL("/api/v0/auth/me"))
	assert.Equal(t, "https://pay/x", client.resolveURL("https://pay/x"))
	assert.Equal(t, "http://pay/x", client.resolveURL("http://pay/x"))
}

// TestDoRequest_RedirectKeepsAuth проверяет что Authorization заголовок
// сохраняется при редиректе
func TestDoRequest_RedirectKeepsAuth(t *testing.T) {
	redirected := false
	var gotAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
		redirected = true
		http.Redirect(w, r, "/final", http.StatusFound)
	})
	mux.HandleFunc("/final", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(server.URL, 10*time.Second)
	err := client.doRequest(context.Background(), http.MethodGet, "/start", "tok", nil, nil)

	require.NoError(t, err)
	assert.True(t, redirected)
	assert.Equal(t, "Bearer tok", gotAuth)
}
