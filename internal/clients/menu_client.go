package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/MosaabBleik/menu-service/internal/models"
)

var (
	ErrNotFound    = errors.New("menu item not found")
	ErrInvalid     = errors.New("invalid menu item")
	ErrUnavailable = errors.New("menu service unavailable")
)

// APIError is a non-2xx response from the menu service.
type APIError struct {
	StatusCode int
	Message    string
	Details    string
	kind       error
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("menu service: %d %s: %s", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("menu service: %d %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

type MenuClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewMenuClient(baseURL string, timeout time.Duration) *MenuClient {
	return &MenuClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *MenuClient) List(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := c.do(ctx, http.MethodGet, "/menu", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *MenuClient) Get(ctx context.Context, id string) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := c.do(ctx, http.MethodGet, "/menu/"+url.PathEscape(id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *MenuClient) Create(ctx context.Context, in models.MenuInput) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := c.do(ctx, http.MethodPost, "/menu", in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *MenuClient) Update(ctx context.Context, id string, in models.MenuInput) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := c.do(ctx, http.MethodPut, "/menu/"+url.PathEscape(id), in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *MenuClient) Delete(ctx context.Context, id string) error {
	var resp struct {
		Success bool `json:"success"`
	}
	if err := c.do(ctx, http.MethodDelete, "/menu/"+url.PathEscape(id), nil, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("delete %s: service did not report success", id)
	}
	return nil
}

func (c *MenuClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("request timed out: %w", err)
		}
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("request canceled: %w", err)
		}

		var netErr net.Error
		if errors.As(err, &netErr) {
			if netErr.Timeout() {
				return fmt.Errorf("network timeout: %w", err)
			}
			return fmt.Errorf("network error: %w", err)
		}

		return fmt.Errorf("failed to reach menu service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
	var envelope struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error != "" {
		apiErr.Message = envelope.Error
		apiErr.Details = envelope.Details
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		apiErr.kind = ErrNotFound
	case http.StatusBadRequest:
		apiErr.kind = ErrInvalid
	case http.StatusGatewayTimeout, http.StatusServiceUnavailable:
		apiErr.kind = ErrUnavailable
	}
	return apiErr
}
