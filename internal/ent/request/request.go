// Code generated by ent, DO NOT EDIT.

package request

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the request type in the database.
	Label = "request"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCompanyID holds the string denoting the company_id field in the database.
	FieldCompanyID = "company_id"
	// FieldDataType holds the string denoting the data_type field in the database.
	FieldDataType = "data_type"
	// FieldReportingPeriod holds the string denoting the reporting_period field in the database.
	FieldReportingPeriod = "reporting_period"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldMemberComment holds the string denoting the member_comment field in the database.
	FieldMemberComment = "member_comment"
	// FieldAdminComment holds the string denoting the admin_comment field in the database.
	FieldAdminComment = "admin_comment"
	// FieldDataSourcingID holds the string denoting the data_sourcing_id field in the database.
	FieldDataSourcingID = "data_sourcing_id"
	// FieldCreationTimestamp holds the string denoting the creation_timestamp field in the database.
	FieldCreationTimestamp = "creation_timestamp"
	// FieldLastModifiedDate holds the string denoting the last_modified_date field in the database.
	FieldLastModifiedDate = "last_modified_date"
	// Table holds the table name of the request in the database.
	Table = "requests"
)

// Columns holds all SQL columns for request fields.
var Columns = []string{
	FieldID,
	FieldCompanyID,
	FieldDataType,
	FieldReportingPeriod,
	FieldUserID,
	FieldState,
	FieldPriority,
	FieldMemberComment,
	FieldAdminComment,
	FieldDataSourcingID,
	FieldCreationTimestamp,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// State defines the type for the "state" enum field.
type State string

// StateOpen is the default value of the State enum.
const DefaultState = StateOpen

// State values.
const (
	StateOpen       State = "Open"
	StateProcessing State = "Processing"
	StateProcessed  State = "Processed"
	StateWithdrawn  State = "Withdrawn"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateOpen, StateProcessing, StateProcessed, StateWithdrawn:
		return nil
	default:
		return fmt.Errorf("request: invalid enum value for state field: %q", s)
	}
}

// Priority defines the type for the "priority" enum field.
type Priority string

// PriorityLow is the default value of the Priority enum.
const DefaultPriority = PriorityLow

// Priority values.
const (
	PriorityLow  Priority = "Low"
	PriorityHigh Priority = "High"
)

func (pr Priority) String() string {
	return string(pr)
}

// PriorityValidator is a validator for the "priority" field enum values. It is called by the builders before save.
func PriorityValidator(pr Priority) error {
	switch pr {
	case PriorityLow, PriorityHigh:
		return nil
	default:
		return fmt.Errorf("request: invalid enum value for priority field: %q", pr)
	}
}

// OrderOption defines the ordering options for the Request queries.
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

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByMemberComment orders the results by the member_comment field.
func ByMemberComment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemberComment, opts...).ToFunc()
}

// ByAdminComment orders the results by the admin_comment field.
func ByAdminComment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdminComment, opts...).ToFunc()
}

// ByDataSourcingID orders the results by the data_sourcing_id field.
func ByDataSourcingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDataSourcingID, opts...).ToFunc()
}

// ByCreationTimestamp orders the results by the creation_timestamp field.
func ByCreationTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreationTimestamp, opts...).ToFunc()
}

// ByLastModifiedDate orders the results by the last_modified_date field.
func ByLastModifiedDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastModifiedDate, opts...).ToFunc()
}
