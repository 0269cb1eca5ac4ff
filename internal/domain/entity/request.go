package entity

// RequestState is the lifecycle state of a data request.
type RequestState string

const (
	RequestStateOpen       RequestState = "Open"
	RequestStateProcessing RequestState = "Processing"
	RequestStateProcessed  RequestState = "Processed"
	RequestStateWithdrawn  RequestState = "Withdrawn"
)

// RequestPriority is the processing priority of a data request.
type RequestPriority string

const (
	RequestPriorityLow  RequestPriority = "Low"
	RequestPriorityHigh RequestPriority = "High"
)

// Request represents one user's ask for data of a specific company,
// framework data type and reporting period.
type Request struct {
	ID                string
	CompanyID         string
	DataType          string
	ReportingPeriod   string
	UserID            string
	State             RequestState
	Priority          RequestPriority
	MemberComment     *string
	AdminComment      *string
	DataSourcingID    *string // set once the request is grouped into a sourcing effort
	CreationTimestamp int64   // epoch milliseconds
	LastModifiedDate  int64   // epoch milliseconds, strictly increasing per mutation
}

// IsTerminal reports whether no further state transitions are permitted.
func (r *Request) IsTerminal() bool {
	return r.State == RequestStateProcessed || r.State == RequestStateWithdrawn
}

// Dimension returns the sourcing dimension this request targets.
func (r *Request) Dimension() Dimension {
	return Dimension{
		CompanyID:       r.CompanyID,
		DataType:        r.DataType,
		ReportingPeriod: r.ReportingPeriod,
	}
}
