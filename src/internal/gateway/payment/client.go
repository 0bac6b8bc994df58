package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"storefront-service/src/internal/model"
)

const defaultTimeout = 30 * time.Second

// ProviderError is a failure the payment provider itself reported, as
// opposed to a transport problem reaching it.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}

type Config struct {
	BaseURL   string
	SecretKey string
	Timeout   time.Duration
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("payment provider base URL is required")
	}
	if c.SecretKey == "" {
		return errors.New("payment provider secret key is required")
	}
	return nil
}

// Client wraps the payment provider's REST API.
type Client struct {
	config     *Config
	httpClient *http.Client
}

func NewClient(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type bankListResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    []struct {
		ID   int64  `json:"id"`
		Code string `json:"code"`
		Name string `json:"name"`
	} `json:"data"`
}

// ListBanks fetches the provider's bank directory for a country and maps it
// to the minimal {code, name} shape the API exposes.
func (c *Client) ListBanks(ctx context.Context, countryCode string) ([]model.BankResponse, error) {
	url := fmt.Sprintf("%s/v3/banks/%s", strings.TrimRight(c.config.BaseURL, "/"), strings.ToUpper(countryCode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.config.SecretKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("payment provider request failed: %w", err)
	}
	defer resp.Body.Close()

	var body bankListResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("payment provider response decode failed: %w", err)
	}

	if body.Status != "success" {
		message := body.Message
		if message == "" {
			message = fmt.Sprintf("provider returned status %q", body.Status)
		}
		return nil, &ProviderError{Message: message}
	}

	banks := make([]model.BankResponse, 0, len(body.Data))
	for _, b := range body.Data {
		banks = append(banks, model.BankResponse{
			Code: b.Code,
			Name: b.Name,
		})
	}
	return banks, nil
}
