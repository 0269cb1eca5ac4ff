package dto

import (
	"time"

	"github.com/d-fine/dataland-sourcing-service/internal/domain"
	"github.com/d-fine/dataland-sourcing-service/internal/domain/entity"
)

// PatchDataSourcingStateRequest is the payload for a lifecycle step (HTTP).
type PatchDataSourcingStateRequest struct {
	State string `json:"state" binding:"required"`
}

// PatchDocumentsRequest is the payload for updating collected documents
// (HTTP). Append=true adds new references, false replaces the list.
type PatchDocumentsRequest struct {
	Documents []string `json:"documents" binding:"required"`
	Append    bool     `json:"append"`
}

// AdminPatchDataSourcingRequest carries the admin-only fields (HTTP). Nil
// fields are left unchanged.
type AdminPatchDataSourcingRequest struct {
	State                             *string    `json:"state,omitempty"`
	DocumentCollector                 *string    `json:"documentCollector,omitempty"`
	DataExtractor                     *string    `json:"dataExtractor,omitempty"`
	DateOfNextDocumentSourcingAttempt *time.Time `json:"dateOfNextDocumentSourcingAttempt,omitempty"`
	AdminComment                      *string    `json:"adminComment,omitempty"`
	Priority                          *string    `json:"priority,omitempty"`
}

// DimensionRequest identifies one sourcing dimension (HTTP).
type DimensionRequest struct {
	CompanyID       string `json:"companyId" binding:"required"`
	DataType        string `json:"dataType" binding:"required"`
	ReportingPeriod string `json:"reportingPeriod" binding:"required"`
}

// PrioritiesRequest is the payload for a bulk priority lookup (HTTP).
type PrioritiesRequest struct {
	Dimensions []DimensionRequest `json:"dimensions" binding:"required"`
}

// DataSourcingResponse is the representation of a sourcing entity (HTTP).
// Priority is omitted for callers without priority visibility.
type DataSourcingResponse struct {
	ID                                string     `json:"id"`
	CompanyID                         string     `json:"companyId"`
	DataType                          string     `json:"dataType"`
	ReportingPeriod                   string     `json:"reportingPeriod"`
	State                             string     `json:"state"`
	DocumentCollector                 *string    `json:"documentCollector,omitempty"`
	DataExtractor                     *string    `json:"dataExtractor,omitempty"`
	DateOfNextDocumentSourcingAttempt *time.Time `json:"dateOfNextDocumentSourcingAttempt,omitempty"`
	AdminComment                      *string    `json:"adminComment,omitempty"`
	Priority                          *string    `json:"priority,omitempty"`
	Documents                         []string   `json:"documents"`
	AssociatedRequestIDs              []string   `json:"associatedRequestIds"`
	LastModifiedDate                  int64      `json:"lastModifiedDate"`
}

// RevisionResponse is one entry of a revision log (HTTP).
type RevisionResponse struct {
	State        string  `json:"state"`
	AdminComment *string `json:"adminComment,omitempty"`
	Timestamp    int64   `json:"timestamp"`
}

// DimensionPriorityResponse pairs a dimension with its derived priority
// (HTTP).
type DimensionPriorityResponse struct {
	CompanyID       string `json:"companyId"`
	DataType        string `json:"dataType"`
	ReportingPeriod string `json:"reportingPeriod"`
	Priority        string `json:"priority"`
}

// ToDataSourcingResponse converts a caller-resolved view to its DTO.
func ToDataSourcingResponse(view *domain.DataSourcingView) *DataSourcingResponse {
	resp := &DataSourcingResponse{
		ID:                                view.ID,
		CompanyID:                         view.CompanyID,
		DataType:                          view.DataType,
		ReportingPeriod:                   view.ReportingPeriod,
		State:                             string(view.State),
		DocumentCollector:                 view.DocumentCollector,
		DataExtractor:                     view.DataExtractor,
		DateOfNextDocumentSourcingAttempt: view.DateOfNextDocumentSourcingAttempt,
		AdminComment:                      view.AdminComment,
		Documents:                         view.Documents,
		AssociatedRequestIDs:              view.AssociatedRequestIDs,
		LastModifiedDate:                  view.LastModifiedDate,
	}
	if view.Priority != nil {
		priority := string(*view.Priority)
		resp.Priority = &priority
	}
	return resp
}

// ToDataSourcingResponses converts a slice of views.
func ToDataSourcingResponses(views []*domain.DataSourcingView) []*DataSourcingResponse {
	responses := make([]*DataSourcingResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, ToDataSourcingResponse(view))
	}
	return responses
}

// ToRevisionResponses converts a revision log.
func ToRevisionResponses(revisions []entity.Revision) []*RevisionResponse {
	responses := make([]*RevisionResponse, 0, len(revisions))
	for _, revision := range revisions {
		responses = append(responses, &RevisionResponse{
			State:        revision.State,
			AdminComment: revision.AdminComment,
			Timestamp:    revision.Timestamp,
		})
	}
	return responses
}

// ToDimensionPriorityResponses converts a bulk priority lookup result.
func ToDimensionPriorityResponses(priorities []domain.DimensionPriority) []*DimensionPriorityResponse {
	responses := make([]*DimensionPriorityResponse, 0, len(priorities))
	for _, p := range priorities {
		responses = append(responses, &DimensionPriorityResponse{
			CompanyID:       p.Dimension.CompanyID,
			DataType:        p.Dimension.DataType,
			ReportingPeriod: p.Dimension.ReportingPeriod,
			Priority:        string(p.Priority),
		})
	}
	return responses
}

// ToDimensions converts DTO dimensions to their entity form.
func ToDimensions(dimensions []DimensionRequest) []entity.Dimension {
	result := make([]entity.Dimension, 0, len(dimensions))
	for _, d := range dimensions {
		result = append(result, entity.Dimension{
			CompanyID:       d.CompanyID,
			DataType:        d.DataType,
			ReportingPeriod: d.ReportingPeriod,
		})
	}
	return result
}
