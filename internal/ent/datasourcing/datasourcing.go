// Code generated by ent, DO NOT EDIT.

package datasourcing

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the datasourcing type in the database.
	Label = "data_sourcing"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCompanyID holds the string denoting the company_id field in the database.
	FieldCompanyID = "company_id"
	// FieldDataType holds the string denoting the data_type field in the database.
	FieldDataType = "data_type"
	// FieldReportingPeriod holds the string denoting the reporting_period field in the database.
	FieldReportingPeriod = "reporting_period"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldDocumentCollector holds the string denoting the document_collector field in the database.
	FieldDocumentCollector = "document_collector"
	// FieldDataExtractor holds the string denoting the data_extractor field in the database.
	FieldDataExtractor = "data_extractor"
	// FieldDateOfNextDocumentSourcingAttempt holds the string denoting the date_of_next_document_sourcing_attempt field in the database.
	FieldDateOfNextDocumentSourcingAttempt = "date_of_next_document_sourcing_attempt"
	// FieldAdminComment holds the string denoting the admin_comment field in the database.
	FieldAdminComment = "admin_comment"
	// FieldPriorityOverride holds the string denoting the priority_override field in the database.
	FieldPriorityOverride = "priority_override"
	// FieldDocuments holds the string denoting the documents field in the database.
	FieldDocuments = "documents"
	// FieldLastModifiedDate holds the string denoting the last_modified_date field in the database.
	FieldLastModifiedDate = "last_modified_date"
	// Table holds the table name of the datasourcing in the database.
	Table = "data_sourcings"
)

// Columns holds all SQL columns for datasourcing fields.
var Columns = []string{
	FieldID,
	FieldCompanyID,
	FieldDataType,
	FieldReportingPeriod,
	FieldState,
	FieldDocumentCollector,
	FieldDataExtractor,
	FieldDateOfNextDocumentSourcingAttempt,
	FieldAdminComment,
	FieldPriorityOverride,
	FieldDocuments,
	FieldLastModifiedDate,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CompanyIDValidator is a validator for the "company_id" field. It is called by the builders before save.
	CompanyIDValidator func(string) error
	// DataTypeValidator is a validator for the "data_type" field. It is called by the builders before save.
	DataTypeValidator func(string) error
	// ReportingPeriodValidator is a validator for the "reporting_period" field. It is called by the builders before save.
	ReportingPeriodValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// State defines the type for the "state" enum field.
type State string

// StateInitialized is the default value of the State enum.
const DefaultState = StateInitialized

// State values.
const (
	StateInitialized      State = "Initialized"
	StateDocumentSourcing State = "DocumentSourcing"
	StateDataExtraction   State = "DataExtraction"
	StateDone             State = "Done"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateInitialized, StateDocumentSourcing, StateDataExtraction, StateDone:
		return nil
	default:
		return fmt.Errorf("datasourcing: invalid enum value for state field: %q", s)
	}
}

// PriorityOverride defines the type for the "priority_override" enum field.
type PriorityOverride string

// PriorityOverride values.
const (
	PriorityOverrideLow  PriorityOverride = "Low"
	PriorityOverrideHigh PriorityOverride = "High"
)

func (po PriorityOverride) String() string {
	return string(po)
}

// PriorityOverrideValidator is a validator for the "priority_override" field enum values. It is called by the builders before save.
func PriorityOverrideValidator(po PriorityOverride) error {
	switch po {
	case PriorityOverrideLow, PriorityOverrideHigh:
		return nil
	default:
		return fmt.Errorf("datasourcing: invalid enum value for priority_override field: %q", po)
	}
}

// OrderOption defines the ordering options for the DataSourcing queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCompanyID orders the results by the company_id field.
func ByCompanyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyID, opts...).ToFunc()
}

// ByDataType orders the results by the data_type field.
func ByDataType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDataType, opts...).ToFunc()
}

// ByReportingPeriod orders the results by the reporting_period field.
func ByReportingPeriod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportingPeriod, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByDocumentCollector orders the results by the document_collector field.
func ByDocumentCollector(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentCollector, opts...).ToFunc()
}

// ByDataExtractor orders the results by the data_extractor field.
func ByDataExtractor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDataExtractor, opts...).ToFunc()
}

// ByDateOfNextDocumentSourcingAttempt orders the results by the date_of_next_document_sourcing_attempt field.
func ByDateOfNextDocumentSourcingAttempt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateOfNextDocumentSourcingAttempt, opts...).ToFunc()
}

// ByAdminComment orders the results by the admin_comment field.
func ByAdminComment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdminComment, opts...).ToFunc()
}

// ByPriorityOverride orders the results by the priority_override field.
func ByPriorityOverride(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriorityOverride, opts...).ToFunc()
}

// ByLastModifiedDate orders the results by the last_modified_date field.
func ByLastModifiedDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastModifiedDate, opts...).ToFunc()
}
