package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/d-fine/dataland-sourcing-service/internal/cli/types"
)

// APIClient wraps a Hertz client for HTTP communication with the sourcing
// service.
type APIClient struct {
	client *client.Client
	server string
	token  string
}

// NewAPIClient creates a new API client.
func NewAPIClient(server, token string) (*APIClient, error) {
	normalizedServer, err := normalizeServerURL(server)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}

	c, err := client.NewClient(
		client.WithDialTimeout(10*time.Second),
		client.WithMaxIdleConnDuration(60*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return &APIClient{
		client: c,
		server: normalizedServer,
		token:  token,
	}, nil
}

// normalizeServerURL ensures the server address has a scheme and no path.
func normalizeServerURL(server string) (string, error) {
	if !strings.Contains(server, "://") {
		server = "http://" + server
	}

	u, err := url.Parse(server)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid server URL")
	}

	return fmt.Sprintf("%s://%s", u.Scheme, u.Host), nil
}

// do sends one request and unmarshals the body into out when non-nil.
func (c *APIClient) do(ctx context.Context, method, uri string, body interface{}, out interface{}) error {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(method)
	req.SetRequestURI(c.server + uri)
	req.Header.Set("Authorization", "Bearer "+c.token)

	if body != nil {
		bodyBytes, err := sonic.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		req.Header.SetContentTypeBytes([]byte("application/json"))
		req.SetBody(bodyBytes)
	}

	if err := c.client.Do(ctx, req, resp); err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	statusCode := resp.StatusCode()
	if statusCode < 200 || statusCode >= 300 {
		return apiError(statusCode, resp.Body())
	}

	if out != nil {
		if err := sonic.Unmarshal(resp.Body(), out); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}
	return nil
}

// apiError extracts the service's error message from a failed response.
func apiError(statusCode int, body []byte) error {
	var envelope types.APIResponse[any]
	if err := sonic.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return fmt.Errorf("HTTP %d: %s", statusCode, envelope.Message)
	}
	return fmt.Errorf("HTTP %d: %s", statusCode, string(body))
}

// CreateRequest opens a new data request.
func (c *APIClient) CreateRequest(ctx context.Context, body *types.CreateRequestBody) (*types.Request, error) {
	var resp types.APIResponse[types.Request]
	if err := c.do(ctx, consts.MethodPost, endpointRequests, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// GetRequest returns one data request.
func (c *APIClient) GetRequest(ctx context.Context, requestID string) (*types.Request, error) {
	var resp types.APIResponse[types.Request]
	uri := fmt.Sprintf(endpointRequestByID, requestID)
	if err := c.do(ctx, consts.MethodGet, uri, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// SearchRequests lists requests matching the query parameters.
func (c *APIClient) SearchRequests(ctx context.Context, query map[string]string) ([]types.Request, int, error) {
	var resp types.APIResponse[types.ListData[types.Request]]
	if err := c.do(ctx, consts.MethodGet, endpointRequests+encodeQuery(query), nil, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Data.Items, resp.Data.TotalCount, nil
}

// PatchRequestState transitions a request.
func (c *APIClient) PatchRequestState(ctx context.Context, requestID string, body *types.PatchStateBody) (*types.Request, error) {
	var resp types.APIResponse[types.Request]
	uri := fmt.Sprintf(endpointRequestState, requestID)
	if err := c.do(ctx, consts.MethodPatch, uri, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// PatchRequestPriority changes a request's priority.
func (c *APIClient) PatchRequestPriority(ctx context.Context, requestID string, body *types.PatchPriorityBody) (*types.Request, error) {
	var resp types.APIResponse[types.Request]
	uri := fmt.Sprintf(endpointRequestPriority, requestID)
	if err := c.do(ctx, consts.MethodPatch, uri, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// GetRequestHistory returns the reconciled request timeline. Extended
// includes every coalesced point with admin comments.
func (c *APIClient) GetRequestHistory(ctx context.Context, requestID string, extended bool) ([]types.HistoryEntry, error) {
	endpoint := endpointRequestHistory
	if extended {
		endpoint = endpointRequestExtendedHistory
	}

	var resp types.APIResponse[[]types.HistoryEntry]
	uri := fmt.Sprintf(endpoint, requestID)
	if err := c.do(ctx, consts.MethodGet, uri, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// GetDataSourcing returns one sourcing entity.
func (c *APIClient) GetDataSourcing(ctx context.Context, dataSourcingID string) (*types.DataSourcing, error) {
	var resp types.APIResponse[types.DataSourcing]
	uri := fmt.Sprintf(endpointDataSourcingByID, dataSourcingID)
	if err := c.do(ctx, consts.MethodGet, uri, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// SearchDataSourcings lists sourcing entities matching the query parameters.
func (c *APIClient) SearchDataSourcings(ctx context.Context, query map[string]string) ([]types.DataSourcing, int, error) {
	var resp types.APIResponse[types.ListData[types.DataSourcing]]
	if err := c.do(ctx, consts.MethodGet, endpointDataSourcings+encodeQuery(query), nil, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Data.Items, resp.Data.TotalCount, nil
}

// PatchDataSourcingState advances a sourcing entity's lifecycle.
func (c *APIClient) PatchDataSourcingState(ctx context.Context, dataSourcingID, state string) (*types.DataSourcing, error) {
	var resp types.APIResponse[types.DataSourcing]
	uri := fmt.Sprintf(endpointDataSourcingState, dataSourcingID)
	if err := c.do(ctx, consts.MethodPatch, uri, map[string]string{"state": state}, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// TriggerRebalance runs one synchronous priority rebalancing pass.
func (c *APIClient) TriggerRebalance(ctx context.Context) (*types.RebalanceReport, error) {
	var resp types.APIResponse[types.RebalanceReport]
	if err := c.do(ctx, consts.MethodPost, endpointAdminRebalance, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// encodeQuery builds a query string from non-empty values.
func encodeQuery(query map[string]string) string {
	values := url.Values{}
	for key, value := range query {
		if value != "" {
			values.Set(key, value)
		}
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}
