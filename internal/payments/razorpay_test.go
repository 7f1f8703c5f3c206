package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCreateOrder(t *testing.T) {
	var gotAuthUser, gotAuthPass string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/orders" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		gotAuthUser, gotAuthPass, _ = r.BasicAuth()
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"order_Abc123","amount":69900,"currency":"INR","receipt":"fitlife-1"}`))
	}))
	defer server.Close()

	client := NewClient("key_test", "secret_test")
	client.baseURL = server.URL

	order, err := client.CreateOrder(context.Background(), 69900, "INR", "fitlife-1")
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if gotAuthUser != "key_test" || gotAuthPass != "secret_test" {
		t.Errorf("expected basic auth with gateway keys, got %q/%q", gotAuthUser, gotAuthPass)
	}
	if gotBody["amount"].(float64) != 69900 {
		t.Errorf("expected amount 69900, got %v", gotBody["amount"])
	}
	if order.ID != "order_Abc123" {
		t.Errorf("expected order id order_Abc123, got %q", order.ID)
	}
	if order.AmountPaise != 69900 {
		t.Errorf("expected amount 69900, got %d", order.AmountPaise)
	}
}

func TestCreateOrderGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"description":"bad key"}}`))
	}))
	defer server.Close()

	client := NewClient("key_test", "secret_test")
	client.baseURL = server.URL

	if _, err := client.CreateOrder(context.Background(), 100, "INR", "r"); err == nil {
		t.Fatal("expected error for gateway failure")
	}
}

func TestVerifySignature(t *testing.T) {
	client := NewClient("key_test", "secret_test")

	mac := hmac.New(sha256.New, []byte("secret_test"))
	mac.Write([]byte("order_Abc123|pay_Xyz789"))
	good := hex.EncodeToString(mac.Sum(nil))

	if !client.VerifySignature("order_Abc123", "pay_Xyz789", good) {
		t.Error("expected valid signature to verify")
	}
	if client.VerifySignature("order_Abc123", "pay_Xyz789", good[:len(good)-1]+"0") {
		t.Error("expected tampered signature to fail")
	}
	if client.VerifySignature("order_Abc123", "pay_other", good) {
		t.Error("expected signature over different payment id to fail")
	}
	if client.VerifySignature("order_Abc123", "pay_Xyz789", "") {
		t.Error("expected empty signature to fail")
	}
}
