package entity

import "time"

// DataSourcingState is the lifecycle state of a shared sourcing effort.
// The lifecycle is strictly linear; there are no skips or backward moves.
type DataSourcingState string

const (
	DataSourcingStateInitialized      DataSourcingState = "Initialized"
	DataSourcingStateDocumentSourcing DataSourcingState = "DocumentSourcing"
	DataSourcingStateDataExtraction   DataSourcingState = "DataExtraction"
	DataSourcingStateDone             DataSourcingState = "Done"
)

// Dimension identifies a unique unit of sourcing work. At most one live
// (non-Done) DataSourcing exists per dimension.
type Dimension struct {
	CompanyID       string
	DataType        string
	ReportingPeriod string
}

// Key returns a stable string form usable as a lock or map key.
func (d Dimension) Key() string {
	return d.CompanyID + "/" + d.DataType + "/" + d.ReportingPeriod
}

// DataSourcing represents the shared effort to source data for one
// dimension on behalf of all requests grouped into it.
type DataSourcing struct {
	ID                                string
	CompanyID                         string
	DataType                          string
	ReportingPeriod                   string
	State                             DataSourcingState
	DocumentCollector                 *string // company responsible for finding source documents
	DataExtractor                     *string // company responsible for extracting values
	DateOfNextDocumentSourcingAttempt *time.Time
	AdminComment                      *string
	PriorityOverride                  *RequestPriority // admin override; nil means derived
	Documents                         []string         // document references collected so far
	AssociatedRequestIDs              []string         // grows monotonically while non-terminal
	LastModifiedDate                  int64            // epoch milliseconds
}

// Dimension returns the dimension this entity sources data for.
func (d *DataSourcing) Dimension() Dimension {
	return Dimension{
		CompanyID:       d.CompanyID,
		DataType:        d.DataType,
		ReportingPeriod: d.ReportingPeriod,
	}
}

// IsTerminal reports whether the sourcing effort has been closed out.
func (d *DataSourcing) IsTerminal() bool {
	return d.State == DataSourcingStateDone
}
