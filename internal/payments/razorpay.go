// Package payments wraps the Razorpay order/verify handshake. The service
// layer only sees the Gateway interface: open an order, later check the
// signature the checkout widget hands back. Nothing here touches our own
// storage.
package payments

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type Order struct {
	ID          string `json:"id"`
	AmountPaise int64  `json:"amount"`
	Currency    string `json:"currency"`
	Receipt     string `json:"receipt"`
}

type Gateway interface {
	CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (*Order, error)
	VerifySignature(orderID, paymentID, signature string) bool
	KeyID() string
}

type Client struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client
}

func NewClient(keyID, keySecret string) *Client {
	return &Client{
		keyID:      keyID,
		keySecret:  keySecret,
		baseURL:    "https://api.razorpay.com",
		httpClient: http.DefaultClient,
	}
}

func (c *Client) KeyID() string {
	return c.keyID
}

func (c *Client) CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (*Order, error) {
	payload, err := json.Marshal(map[string]any{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
	})
	if err != nil {
		return nil, fmt.Errorf("encode order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build order request: %w", err)
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("create order: gateway returned %d: %s", resp.StatusCode, body)
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("decode order: %w", err)
	}
	if order.ID == "" {
		return nil, fmt.Errorf("create order: gateway returned empty order id")
	}
	return &order, nil
}

// VerifySignature checks the checkout callback signature: hex-encoded
// HMAC-SHA256 of "<orderID>|<paymentID>" under the key secret.
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
