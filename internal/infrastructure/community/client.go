package community

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

// Client talks to the platform's community manager. It implements both
// domain.CompanyRoleService and domain.UserTierService; the community
// manager owns company role assignments and user tiers.
type Client struct {
	client       *client.Client
	baseURL      string
	serviceToken string
	logger       *slog.Logger
}

// NewClient creates a community manager client.
func NewClient(baseURL, serviceToken string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	c, err := client.NewClient(
		client.WithDialTimeout(timeout),
		client.WithClientReadTimeout(timeout),
		client.WithMaxIdleConnDuration(60*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create community manager client: %w", err)
	}

	logger.Info("community manager client created", "base_url", baseURL)
	return &Client{
		client:       c,
		baseURL:      baseURL,
		serviceToken: serviceToken,
		logger:       logger,
	}, nil
}

type roleAssignment struct {
	CompanyRole string `json:"companyRole"`
	CompanyID   string `json:"companyId"`
	UserID      string `json:"userId"`
}

type userTierResponse struct {
	UserID  string `json:"userId"`
	Premium bool   `json:"premium"`
}

// GetRolesOf returns the roles the user holds within the company. An
// unknown user or company yields an empty set, not an error.
func (c *Client) GetRolesOf(ctx context.Context, userID, companyID string) ([]domain.Role, error) {
	requestURI := fmt.Sprintf("%s/api/company-role-assignments?userId=%s&companyId=%s",
		c.baseURL, url.QueryEscape(userID), url.QueryEscape(companyID))

	body, status, err := c.get(ctx, requestURI)
	if err != nil {
		return nil, err
	}
	if status == consts.StatusNotFound {
		return nil, nil
	}
	if status != consts.StatusOK {
		return nil, fmt.Errorf("community manager returned HTTP %d for role lookup", status)
	}

	var assignments []roleAssignment
	if err := sonic.Unmarshal(body, &assignments); err != nil {
		return nil, fmt.Errorf("failed to unmarshal role assignments: %w", err)
	}

	roles := make([]domain.Role, 0, len(assignments))
	for _, assignment := range assignments {
		roles = append(roles, domain.Role(assignment.CompanyRole))
	}
	return roles, nil
}

// IsPremium reports whether the user is on the premium tier.
func (c *Client) IsPremium(ctx context.Context, userID string) (bool, error) {
	requestURI := fmt.Sprintf("%s/api/users/%s/tier", c.baseURL, url.PathEscape(userID))

	body, status, err := c.get(ctx, requestURI)
	if err != nil {
		return false, err
	}
	if status == consts.StatusNotFound {
		return false, nil
	}
	if status != consts.StatusOK {
		return false, fmt.Errorf("community manager returned HTTP %d for tier lookup", status)
	}

	var tier userTierResponse
	if err := sonic.Unmarshal(body, &tier); err != nil {
		return false, fmt.Errorf("failed to unmarshal user tier: %w", err)
	}
	return tier.Premium, nil
}

func (c *Client) get(ctx context.Context, requestURI string) ([]byte, int, error) {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodGet)
	req.SetRequestURI(requestURI)
	req.Header.Set("Authorization", "Bearer "+c.serviceToken)

	if err := c.client.Do(ctx, req, resp); err != nil {
		return nil, 0, fmt.Errorf("community manager request failed: %w", err)
	}

	body := append([]byte(nil), resp.Body()...)
	return body, resp.StatusCode(), nil
}

var (
	_ domain.CompanyRoleService = (*Client)(nil)
	_ domain.UserTierService    = (*Client)(nil)
)
