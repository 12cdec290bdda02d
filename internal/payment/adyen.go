// AngelaMos | 2026
// adyen.go

package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/carterperez-dev/paylink/internal/config"
	"github.com/carterperez-dev/paylink/internal/core"
)

// Checkout link statuses the provider reports. Only an active link is usable;
// everything else, known or not, is a provisioning failure.
const (
	StatusActive    = "active"
	StatusExpired   = "expired"
	StatusCompleted = "completed"
	StatusPending   = "pending"
)

// Static merchant policy sent with every payment-link request.
var (
	blockedPaymentMethods = []string{
		"giropay",
		"ideal",
		"klarna",
		"paysafecard",
		"trustly",
	}
	requiredShopperFields = []string{
		"shopperName",
		"shopperEmail",
		"telephoneNumber",
	}
)

type amount struct {
	Currency string `json:"currency"`
	Value    int    `json:"value"`
}

type paymentLinkRequest struct {
	MerchantAccount       string   `json:"merchantAccount"`
	Reference             string   `json:"reference"`
	Amount                amount   `json:"amount"`
	BlockedPaymentMethods []string `json:"blockedPaymentMethods"`
	RequiredShopperFields []string `json:"requiredShopperFields"`
	Reusable              bool     `json:"reusable"`
	ShopperLocale         string   `json:"shopperLocale"`
}

type paymentLinkResponse struct {
	Status string `json:"status"`
	URL    string `json:"url"`
}

// Client talks to the Adyen payment-links API. It imposes no timeout of its
// own; bound latency through the injected http.Client or the request context.
type Client struct {
	httpClient *http.Client
	config     config.PaymentConfig
}

func NewClient(httpClient *http.Client, cfg config.PaymentConfig) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}

	return &Client{
		httpClient: httpClient,
		config:     cfg,
	}
}

// CreatePaymentLink provisions a hosted checkout link for price whole
// currency units and returns its URL. The provider expects minor units, so
// the amount is price x 100. A reachable provider that reports any status
// other than active yields core.ErrProvisioning; transport failures yield
// core.ErrUpstream.
func (c *Client) CreatePaymentLink(
	ctx context.Context,
	price int,
) (string, error) {
	body := paymentLinkRequest{
		MerchantAccount: c.config.MerchantAccount,
		Reference:       c.config.Reference,
		Amount: amount{
			Currency: c.config.Currency,
			Value:    price * 100,
		},
		BlockedPaymentMethods: blockedPaymentMethods,
		RequiredShopperFields: requiredShopperFields,
		Reusable:              true,
		ShopperLocale:         c.config.ShopperLocale,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal payment link request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.config.BaseURL+"/paymentLinks",
		bytes.NewReader(payload),
	)
	if err != nil {
		return "", fmt.Errorf("build payment link request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call payment provider: %w: %w", core.ErrUpstream, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body) //nolint:errcheck // drain for connection reuse
		_ = resp.Body.Close()                 //nolint:errcheck // best-effort close
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf(
			"payment provider returned %d: %w",
			resp.StatusCode,
			core.ErrProvisioning,
		)
	}

	var linkResp paymentLinkResponse
	if err := json.NewDecoder(resp.Body).Decode(&linkResp); err != nil {
		return "", fmt.Errorf(
			"decode payment provider response: %w: %w",
			core.ErrUpstream,
			err,
		)
	}

	if linkResp.Status != StatusActive {
		return "", fmt.Errorf(
			"payment link status %q: %w",
			linkResp.Status,
			core.ErrProvisioning,
		)
	}

	return linkResp.URL, nil
}
