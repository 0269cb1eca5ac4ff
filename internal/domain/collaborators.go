package domain

import "context"

// Role is a company role granted to a user, as reported by the community
// manager.
type Role string

const (
	RoleCompanyOwner Role = "CompanyOwner"
	RoleDataUploader Role = "DataUploader"
	RoleMember       Role = "Member"
)

// CompanyRoleService resolves the roles a user holds within a company.
// Backed by the platform's community manager.
type CompanyRoleService interface {
	// GetRolesOf returns the roles of the user within the company; an
	// empty slice means the user is not staff of that company.
	GetRolesOf(ctx context.Context, userID, companyID string) ([]Role, error)
}

// UserTierService reports whether a user is on the premium tier. Feeds the
// priority policy.
type UserTierService interface {
	IsPremium(ctx context.Context, userID string) (bool, error)
}

// DimensionValidator checks whether a company/data-type pairing exists on
// the platform. Consulted on request creation.
type DimensionValidator interface {
	IsValidDimension(ctx context.Context, companyID, dataType string) (bool, error)
}

// RebalanceReport summarizes one priority rebalancing run.
type RebalanceReport struct {
	Examined int
	Promoted int
	Demoted  int
	Skipped  int
}

// RebalanceUsecase applies the priority policy across open requests on a
// schedule.
type RebalanceUsecase interface {
	// Run performs one full rebalancing pass. Individual patch failures
	// are logged and skipped; the pass itself only fails on infrastructure
	// errors while reading the request set.
	Run(ctx context.Context) (RebalanceReport, error)
}
