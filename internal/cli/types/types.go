package types

import "time"

// APIResponse is the unified response envelope of the sourcing service.
type APIResponse[T any] struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// ListData is the envelope for chunked listings.
type ListData[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
	ChunkSize  int `json:"chunkSize"`
	ChunkIndex int `json:"chunkIndex"`
}

// Request mirrors the service's data request representation.
type Request struct {
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

// DataSourcing mirrors the service's sourcing entity representation.
type DataSourcing struct {
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

// HistoryEntry is one row of a request's reconciled timeline.
type HistoryEntry struct {
	Timestamp      int64   `json:"timestamp"`
	DisplayedState string  `json:"displayedState"`
	AdminComment   *string `json:"adminComment,omitempty"`
}

// RebalanceReport summarizes one priority rebalancing run.
type RebalanceReport struct {
	Examined int `json:"examined"`
	Promoted int `json:"promoted"`
	Demoted  int `json:"demoted"`
	Skipped  int `json:"skipped"`
}

// CreateRequestBody is the payload for opening a data request.
type CreateRequestBody struct {
	CompanyID       string  `json:"companyId"`
	DataType        string  `json:"dataType"`
	ReportingPeriod string  `json:"reportingPeriod"`
	MemberComment   *string `json:"memberComment,omitempty"`
}

// PatchStateBody is the payload for a state change.
type PatchStateBody struct {
	State        string  `json:"state"`
	AdminComment *string `json:"adminComment,omitempty"`
}

// PatchPriorityBody is the payload for a priority change.
type PatchPriorityBody struct {
	Priority     string  `json:"priority"`
	AdminComment *string `json:"adminComment,omitempty"`
}
