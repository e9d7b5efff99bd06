package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/DsDac0/Website/domain/ports"
)

const (
	PayPalSandboxBase = "https://api-m.sandbox.paypal.com"
	PayPalLiveBase    = "https://api-m.paypal.com"
)

type PayPalConfig struct {
	ClientID     string
	ClientSecret string
	Environment  string // sandbox, live
	BaseURL      string // overrides Environment
}

// PayPalGateway talks to the PayPal REST API (OAuth2 + Orders v2).
type PayPalGateway struct {
	cfg        PayPalConfig
	baseURL    string
	httpClient *http.Client

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time
}

func NewPayPalGateway(cfg PayPalConfig) ports.PayPalPort {
	base := cfg.BaseURL
	if base == "" {
		base = PayPalSandboxBase
		if strings.EqualFold(cfg.Environment, "live") || strings.EqualFold(cfg.Environment, "production") {
			base = PayPalLiveBase
		}
	}
	return &PayPalGateway{
		cfg:        cfg,
		baseURL:    strings.TrimSuffix(base, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (g *PayPalGateway) IsConfigured() bool {
	return g.cfg.ClientID != "" && g.cfg.ClientSecret != ""
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

func (g *PayPalGateway) requestToken(ctx context.Context, form url.Values) (*tokenResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(g.cfg.ClientID, g.cfg.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paypal token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("paypal token request returned %d: %s", resp.StatusCode, body)
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return nil, fmt.Errorf("decode paypal token: %w", err)
	}
	return &tok, nil
}

// token returns a cached server access token, refreshing it shortly before expiry.
func (g *PayPalGateway) token(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.accessToken != "" && time.Now().Before(g.expiresAt) {
		return g.accessToken, nil
	}

	tok, err := g.requestToken(ctx, url.Values{"grant_type": {"client_credentials"}})
	if err != nil {
		return "", err
	}
	g.accessToken = tok.AccessToken
	g.expiresAt = time.Now().Add(time.Duration(tok.ExpiresIn)*time.Second - time.Minute)
	return g.accessToken, nil
}

// ClientToken issues a browser SDK token.
func (g *PayPalGateway) ClientToken(ctx context.Context) (string, error) {
	if !g.IsConfigured() {
		return "", ports.ErrPaymentNotConfigured
	}
	tok, err := g.requestToken(ctx, url.Values{
		"grant_type":    {"client_credentials"},
		"response_type": {"client_token"},
		"intent":        {"sdk_init"},
	})
	if err != nil {
		return "", err
	}
	return tok.AccessToken, nil
}

type orderAmount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type purchaseUnit struct {
	Amount orderAmount `json:"amount"`
}

type createOrderBody struct {
	Intent        string         `json:"intent"`
	PurchaseUnits []purchaseUnit `json:"purchase_units"`
}

func (g *PayPalGateway) CreateOrder(ctx context.Context, amount decimal.Decimal, currency, intent string) (*ports.GatewayResponse, error) {
	body := createOrderBody{
		Intent: strings.ToUpper(intent),
		PurchaseUnits: []purchaseUnit{{
			Amount: orderAmount{CurrencyCode: strings.ToUpper(currency), Value: amount.StringFixed(2)},
		}},
	}
	return g.post(ctx, "/v2/checkout/orders", body)
}

func (g *PayPalGateway) CaptureOrder(ctx context.Context, orderID string) (*ports.GatewayResponse, error) {
	return g.post(ctx, "/v2/checkout/orders/"+url.PathEscape(orderID)+"/capture", nil)
}

func (g *PayPalGateway) post(ctx context.Context, path string, payload interface{}) (*ports.GatewayResponse, error) {
	if !g.IsConfigured() {
		return nil, ports.ErrPaymentNotConfigured
	}
	token, err := g.token(ctx)
	if err != nil {
		return nil, err
	}

	var reader io.Reader = http.NoBody
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paypal request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read paypal response: %w", err)
	}
	if !json.Valid(data) {
		data = []byte("null")
	}
	return &ports.GatewayResponse{StatusCode: resp.StatusCode, Body: json.RawMessage(data)}, nil
}
