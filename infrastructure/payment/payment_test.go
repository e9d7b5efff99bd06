package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/DsDac0/Website/domain/ports"
)

func TestMinorUnits(t *testing.T) {
	tests := map[string]int64{
		"3700":    370000,
		"199.99":  19999,
		"0.005":   1,
		"1234.50": 123450,
	}
	for in, want := range tests {
		if got := MinorUnits(decimal.RequireFromString(in)); got != want {
			t.Errorf("MinorUnits(%s) = %d, want %d", in, got, want)
		}
	}
}

func TestStripeGatewayUnconfigured(t *testing.T) {
	g := NewStripeGateway("")
	if g.IsConfigured() {
		t.Fatal("expected gateway without key to be unconfigured")
	}
	_, err := g.CreatePaymentIntent(context.Background(), decimal.NewFromInt(10), "mkd")
	if !errors.Is(err, ports.ErrPaymentNotConfigured) {
		t.Errorf("expected ErrPaymentNotConfigured, got %v", err)
	}
}

func newPayPalServer(t *testing.T) (*httptest.Server, *int) {
	t.Helper()
	tokenCalls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls++
		if user, pass, ok := r.BasicAuth(); !ok || user != "id" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		r.ParseForm()
		token := "server-token"
		if r.Form.Get("response_type") == "client_token" {
			token = "client-token"
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"access_token": token, "expires_in": 3600})
	})
	mux.HandleFunc("/v2/checkout/orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer server-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var body createOrderBody
		json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     "PAY-1",
			"status": "CREATED",
			"value":  body.PurchaseUnits[0].Amount.Value,
			"intent": body.Intent,
		})
	})
	mux.HandleFunc("/v2/checkout/orders/PAY-1/capture", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"PAY-1","status":"COMPLETED"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &tokenCalls
}

func TestPayPalGatewayFlow(t *testing.T) {
	srv, tokenCalls := newPayPalServer(t)
	g := NewPayPalGateway(PayPalConfig{ClientID: "id", ClientSecret: "secret", BaseURL: srv.URL})
	ctx := context.Background()

	clientToken, err := g.ClientToken(ctx)
	if err != nil || clientToken != "client-token" {
		t.Fatalf("ClientToken = %q, %v", clientToken, err)
	}

	resp, err := g.CreateOrder(ctx, decimal.RequireFromString("3700"), "eur", "capture")
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	var created map[string]string
	json.Unmarshal(resp.Body, &created)
	if resp.StatusCode != http.StatusCreated || created["value"] != "3700.00" || created["intent"] != "CAPTURE" {
		t.Errorf("unexpected create response %d %s", resp.StatusCode, resp.Body)
	}

	captured, err := g.CaptureOrder(ctx, "PAY-1")
	if err != nil || captured.StatusCode != http.StatusCreated {
		t.Fatalf("CaptureOrder = %+v, %v", captured, err)
	}

	// one client token request plus one cached server token
	if *tokenCalls != 2 {
		t.Errorf("token endpoint called %d times, want 2", *tokenCalls)
	}
}

func TestPayPalGatewayUnconfigured(t *testing.T) {
	g := NewPayPalGateway(PayPalConfig{})
	if _, err := g.CaptureOrder(context.Background(), "x"); !errors.Is(err, ports.ErrPaymentNotConfigured) {
		t.Errorf("expected ErrPaymentNotConfigured, got %v", err)
	}
}
