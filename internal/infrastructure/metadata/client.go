package metadata

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/d-fine/dataland-sourcing-service/internal/domain"
)

// Client talks to the platform's metadata service, which knows the valid
// company and framework pairings. It implements domain.DimensionValidator.
type Client struct {
	client       *client.Client
	baseURL      string
	serviceToken string
	logger       *slog.Logger
}

// NewClient creates a metadata service client.
func NewClient(baseURL, serviceToken string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	c, err := client.NewClient(
		client.WithDialTimeout(timeout),
		client.WithClientReadTimeout(timeout),
		client.WithMaxIdleConnDuration(60*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create metadata client: %w", err)
	}

	logger.Info("metadata client created", "base_url", baseURL)
	return &Client{
		client:       c,
		baseURL:      baseURL,
		serviceToken: serviceToken,
		logger:       logger,
	}, nil
}

type dimensionCheckResponse struct {
	Valid bool `json:"valid"`
}

// IsValidDimension reports whether the company exists and supports the
// given framework data type.
func (c *Client) IsValidDimension(ctx context.Context, companyID, dataType string) (bool, error) {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodGet)
	req.SetRequestURI(fmt.Sprintf("%s/api/data-dimensions/validate?companyId=%s&dataType=%s",
		c.baseURL, url.QueryEscape(companyID), url.QueryEscape(dataType)))
	req.Header.Set("Authorization", "Bearer "+c.serviceToken)

	if err := c.client.Do(ctx, req, resp); err != nil {
		return false, fmt.Errorf("metadata request failed: %w", err)
	}

	switch resp.StatusCode() {
	case consts.StatusOK:
	case consts.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("metadata service returned HTTP %d for dimension check", resp.StatusCode())
	}

	var check dimensionCheckResponse
	if err := sonic.Unmarshal(resp.Body(), &check); err != nil {
		return false, fmt.Errorf("failed to unmarshal dimension check: %w", err)
	}
	return check.Valid, nil
}

var _ domain.DimensionValidator = (*Client)(nil)
