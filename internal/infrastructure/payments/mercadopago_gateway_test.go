package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	if _, err := NewMercadoPagoGateway("", false); !errors.Is(err, ErrMissingAccessToken) {
		t.Fatalf("expected ErrMissingAccessToken, got %v", err)
	}
	g, err := NewMercadoPagoGateway("", true)
	if err != nil || g == nil {
		t.Fatalf("mock mode must not need a token, err=%v", err)
	}
}

func TestMercadoPagoGateway_MockPayment(t *testing.T) {
	g, _ := NewMercadoPagoGateway("", true)
	fixed := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return fixed }

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":525,"external_reference":"job-1"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != "approved" || id != "1773489600000000000" {
		t.Fatalf("unexpected id=%s status=%s", id, status)
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if body["external_reference"] != "job-1" || body["status_detail"] != "accredited" {
		t.Fatalf("unexpected response %v", body)
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`)); !errors.Is(err, ErrGatewayNotConfigured) {
		t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
	}
}
