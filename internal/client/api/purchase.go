package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	pkgapi "github.com/sherlockdomains/sherlock-go/pkg/api"
)

// GetPurchaseOffers запрашивает доступные варианты оплаты покупки домена.
// Ответ 402 Payment Required - ожидаемый успешный исход, несущий офферы.
// Если тело ответа не JSON, возвращается ответ с заполненным Raw без ошибки.
func (c *Client) GetPurchaseOffers(ctx context.Context, token string, req pkgapi.PurchaseRequest) (*pkgapi.OffersResponse, error) {
	raw, err := c.doPaymentRequest(ctx, http.MethodPost, "/api/v0/domains/purchase", token, req)
	if err != nil {
		return nil, fmt.Errorf("purchase offers request failed: %w", err)
	}

	resp := &pkgapi.OffersResponse{}
	if err := json.Unmarshal(raw, resp); err != nil {
		return &pkgapi.OffersResponse{Raw: raw}, nil
	}
	return resp, nil
}

// GetPaymentDetails запрашивает платежные инструкции по офферу.
// paymentRequestURL приходит из OffersResponse и является абсолютным URL.
// Здесь 402 тоже успешный исход.
func (c *Client) GetPaymentDetails(ctx context.Context, paymentRequestURL string, req pkgapi.PaymentDetailsRequest) (*pkgapi.PaymentDetails, error) {
	raw, err := c.doPaymentRequest(ctx, http.MethodPost, paymentRequestURL, "", req)
	if err != nil {
		return nil, fmt.Errorf("payment details request failed: %w", err)
	}

	resp := &pkgapi.PaymentDetails{}
	if err := json.Unmarshal(raw, resp); err != nil {
		return &pkgapi.PaymentDetails{Raw: raw}, nil
	}
	return resp, nil
}
