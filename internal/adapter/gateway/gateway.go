package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/freightmart/freightmart/internal/adapter/config"
	"github.com/freightmart/freightmart/internal/core/domain"
	"go.uber.org/zap"
)

// Client talks to the external payment provider. Charges and payouts
// are fire-and-forget from the caller's point of view: the provider
// confirms them later through the notify/settle callbacks.
type Client struct {
	logger *zap.Logger
	host   string
	http   *http.Client
}

func NewClient(cfg *config.Gateway, log *zap.Logger) (*Client, error) {
	return &Client{
		host:   cfg.HostString,
		logger: log,
		http:   &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type chargeRequest struct {
	Number string `json:"number"`
	Amount string `json:"amount"`
	Method string `json:"method"`
	Payer  uint64 `json:"payer"`
}

type payoutRequest struct {
	Number string `json:"number"`
	Amount string `json:"amount"`
}

// CreateCharge registers a pending payment with the provider. With no
// gateway configured the payment stays pending until a manual notify.
func (c *Client) CreateCharge(ctx context.Context, payment *domain.Payment) error {
	if c.host == "" {
		c.logger.Debug("no payment gateway configured, skip charge",
			zap.String("payment", payment.Number))
		return nil
	}

	body := chargeRequest{
		Number: payment.Number,
		Amount: payment.Amount.String(),
		Method: string(payment.Method),
		Payer:  payment.PayerID,
	}

	return c.post(ctx, "/api/charges", body)
}

// RequestPayout asks the provider to transfer a pending withdrawal.
func (c *Client) RequestPayout(ctx context.Context, txn *domain.WalletTransaction) error {
	if c.host == "" {
		c.logger.Debug("no payment gateway configured, skip payout",
			zap.String("transaction", txn.Number))
		return nil
	}

	body := payoutRequest{
		Number: txn.Number,
		Amount: txn.Amount.String(),
	}

	return c.post(ctx, "/api/payouts", body)
}

func (c *Client) post(ctx context.Context, path string, body any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}

	requestStr := "http://" + c.host + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestStr, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("error on %s : %w", requestStr, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request error %s : %w", requestStr, domain.ErrGatewayUnavailable)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusInternalServerError {
		return domain.ErrGatewayUnavailable
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("bad response %v for request %s", resp.StatusCode, requestStr)
	}

	return nil
}
