package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/fanvault/payments/internal/config"
	"github.com/fanvault/payments/pkg/clients"
)

// The payment provider is an opaque external dependency. Only the contract
// below is assumed: payment confirmations, transfers and connected accounts
// over an authenticated REST API.

const (
	ConfirmationSucceeded = "succeeded"

	AccountActive = "active"

	TransferPending   = "pending"
	TransferInTransit = "in_transit"
	TransferPaid      = "paid"
	TransferFailed    = "failed"
)

var (
	// ErrUnavailable covers network failures and provider-side errors.
	ErrUnavailable = errors.New("payment provider unavailable")
	// ErrNotFound means the provider has no record with the given id.
	ErrNotFound = errors.New("not found at payment provider")
)

type PaymentConfirmation struct {
	ID       string            `json:"id"`
	Amount   int64             `json:"amount"`
	Status   string            `json:"status"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type Transfer struct {
	ID          string            `json:"id"`
	Amount      int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Destination string            `json:"destination"`
	Status      string            `json:"status"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type ConnectedAccount struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type TransferRequest struct {
	Amount         int64             `json:"amount"`
	Currency       string            `json:"currency"`
	Destination    string            `json:"destination"`
	IdempotencyKey string            `json:"idempotency_key"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

type API interface {
	GetConfirmation(ctx context.Context, id string) (*PaymentConfirmation, error)
	CreateTransfer(ctx context.Context, req TransferRequest) (*Transfer, error)
	GetTransfer(ctx context.Context, id string) (*Transfer, error)
	GetAccount(ctx context.Context, id string) (*ConnectedAccount, error)
}

type Client struct {
	url    string
	apiKey string
	client clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:    cfg.ProviderAddress,
		apiKey: cfg.ProviderAPIKey,
		client: client,
	}
}

func (c *Client) GetConfirmation(ctx context.Context, id string) (*PaymentConfirmation, error) {
	var confirmation PaymentConfirmation
	if err := c.get(ctx, "/v1/confirmations/"+id, &confirmation); err != nil {
		return nil, err
	}
	return &confirmation, nil
}

func (c *Client) CreateTransfer(ctx context.Context, req TransferRequest) (*Transfer, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transfer request: %w", err)
	}

	statusCode, respBody, _, err := c.client.Post(ctx, c.url+"/v1/transfers", c.headers(), body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if statusCode != http.StatusOK && statusCode != http.StatusCreated {
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrUnavailable, statusCode)
	}

	var transfer Transfer
	if err := json.Unmarshal(respBody, &transfer); err != nil {
		return nil, fmt.Errorf("failed to parse transfer response: %w", err)
	}
	return &transfer, nil
}

func (c *Client) GetTransfer(ctx context.Context, id string) (*Transfer, error) {
	var transfer Transfer
	if err := c.get(ctx, "/v1/transfers/"+id, &transfer); err != nil {
		return nil, err
	}
	return &transfer, nil
}

func (c *Client) GetAccount(ctx context.Context, id string) (*ConnectedAccount, error) {
	var account ConnectedAccount
	if err := c.get(ctx, "/v1/accounts/"+id, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	statusCode, respBody, _, err := c.client.Get(ctx, c.url+path, c.headers())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	switch statusCode {
	case http.StatusOK:
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to parse provider response: %w", err)
		}
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("%w: unexpected status code %d", ErrUnavailable, statusCode)
	}
}

func (c *Client) headers() http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+c.apiKey)
	return h
}
