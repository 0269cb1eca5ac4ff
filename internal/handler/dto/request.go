package dto

import (
	"github.com/d-fine/dataland-sourcing-service/internal/domain/entity"
)

// CreateRequestRequest is the payload for opening a data request (HTTP).
type CreateRequestRequest struct {
	CompanyID       string  `json:"companyId" binding:"required"`
	DataType        string  `json:"dataType" binding:"required"`
	ReportingPeriod string  `json:"reportingPeriod" binding:"required"`
	MemberComment   *string `json:"memberComment,omitempty"`
}

// PatchRequestStateRequest is the payload for a request state change (HTTP).
type PatchRequestStateRequest struct {
	State        string  `json:"state" binding:"required"`
	AdminComment *string `json:"adminComment,omitempty"`
}

// PatchRequestPriorityRequest is the payload for a priority change (HTTP).
type PatchRequestPriorityRequest struct {
	Priority     string  `json:"priority" binding:"required"`
	AdminComment *string `json:"adminComment,omitempty"`
}

// RequestResponse is the representation of a data request (HTTP).
type RequestResponse struct {
	ID                string  `json:"id"`
	CompanyID         string  `json:"companyId"`
	DataType          string  `json:"dataType"`
	ReportingPeriod   string  `json:"reportingPeriod"`
	UserID            string  `json:"userId"`
	State             string  `json:"state"`
	Priority          string  `json:"priority"`
	MemberComment     *string `json:"memberComment,omitempty"`
	AdminComment      *string `json:"adminComment,omitempty"`
	DataSourcingID    *string `json:"dataSourcingId,omitempty"`
	CreationTimestamp int64   `json:"creationTimestamp"`
	LastModifiedDate  int64   `json:"lastModifiedDate"`
}

// HistoryEntryResponse is one row of a request's reconciled timeline (HTTP).
type HistoryEntryResponse struct {
	Timestamp      int64   `json:"timestamp"`
	DisplayedState string  `json:"displayedState"`
	AdminComment   *string `json:"adminComment,omitempty"`
}

// ToRequestResponse converts entity.Request to RequestResponse DTO.
func ToRequestResponse(request *entity.Request) *RequestResponse {
	return &RequestResponse{
		ID:                request.ID,
		CompanyID:         request.CompanyID,
		DataType:          request.DataType,
		ReportingPeriod:   request.ReportingPeriod,
		UserID:            request.UserID,
		State:             string(request.State),
		Priority:          string(request.Priority),
		MemberComment:     request.MemberComment,
		AdminComment:      request.AdminComment,
		DataSourcingID:    request.DataSourcingID,
		CreationTimestamp: request.CreationTimestamp,
		LastModifiedDate:  request.LastModifiedDate,
	}
}

// ToRequestResponses converts a slice of requests.
func ToRequestResponses(requests []*entity.Request) []*RequestResponse {
	responses := make([]*RequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, ToRequestResponse(request))
	}
	return responses
}

// ToHistoryEntryResponses converts a reconciled timeline.
func ToHistoryEntryResponses(entries []entity.HistoryEntry) []*HistoryEntryResponse {
	responses := make([]*HistoryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, &HistoryEntryResponse{
			Timestamp:      entry.Timestamp,
			DisplayedState: string(entry.DisplayedState),
			AdminComment:   entry.AdminComment,
		})
	}
	return responses
}
