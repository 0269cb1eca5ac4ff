// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/d-fine/dataland-sourcing-service/internal/ent/request"
	"github.com/google/uuid"
)

// Request is the model entity for the Request schema.
type Request struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID string `json:"company_id,omitempty"`
	// DataType holds the value of the "data_type" field.
	DataType string `json:"data_type,omitempty"`
	// ReportingPeriod holds the value of the "reporting_period" field.
	ReportingPeriod string `json:"reporting_period,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// State holds the value of the "state" field.
	State request.State `json:"state,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority request.Priority `json:"priority,omitempty"`
	// MemberComment holds the value of the "member_comment" field.
	MemberComment *string `json:"member_comment,omitempty"`
	// AdminComment holds the value of the "admin_comment" field.
	AdminComment *string `json:"admin_comment,omitempty"`
	// DataSourcingID holds the value of the "data_sourcing_id" field.
	DataSourcingID *uuid.UUID `json:"data_sourcing_id,omitempty"`
	// CreationTimestamp holds the value of the "creation_timestamp" field.
	CreationTimestamp int64 `json:"creation_timestamp,omitempty"`
	// LastModifiedDate holds the value of the "last_modified_date" field.
	LastModifiedDate int64 `json:"last_modified_date,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Request) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case request.FieldDataSourcingID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case request.FieldCreationTimestamp, request.FieldLastModifiedDate:
			values[i] = new(sql.NullInt64)
		case request.FieldCompanyID, request.FieldDataType, request.FieldReportingPeriod, request.FieldUserID, request.FieldState, request.FieldPriority, request.FieldMemberComment, request.FieldAdminComment:
			values[i] = new(sql.NullString)
		case request.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Request fields.
func (r *Request) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case request.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				r.ID = *value
			}
		case request.FieldCompanyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value.Valid {
				r.CompanyID = value.String
			}
		case request.FieldDataType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field data_type", values[i])
			} else if value.Valid {
				r.DataType = value.String
			}
		case request.FieldReportingPeriod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reporting_period", values[i])
			} else if value.Valid {
				r.ReportingPeriod = value.String
			}
		case request.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				r.UserID = value.String
			}
		case request.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				r.State = request.State(value.String)
			}
		case request.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				r.Priority = request.Priority(value.String)
			}
		case request.FieldMemberComment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field member_comment", values[i])
			} else if value.Valid {
				r.MemberComment = new(string)
				*r.MemberComment = value.String
			}
		case request.FieldAdminComment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field admin_comment", values[i])
			} else if value.Valid {
				r.AdminComment = new(string)
				*r.AdminComment = value.String
			}
		case request.FieldDataSourcingID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field data_sourcing_id", values[i])
			} else if value.Valid {
				r.DataSourcingID = new(uuid.UUID)
				*r.DataSourcingID = *value.S.(*uuid.UUID)
			}
		case request.FieldCreationTimestamp:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field creation_timestamp", values[i])
			} else if value.Valid {
				r.CreationTimestamp = value.Int64
			}
		case request.FieldLastModifiedDate:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_modified_date", values[i])
			} else if value.Valid {
				r.LastModifiedDate = value.Int64
			}
		default:
			r.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Request.
// This includes values selected through modifiers, order, etc.
func (r *Request) Value(name string) (ent.Value, error) {
	return r.selectValues.Get(name)
}

// Update returns a builder for updating this Request.
// Note that you need to call Request.Unwrap() before calling this method if this Request
// was returned from a transaction, and the transaction was committed or rolled back.
func (r *Request) Update() *RequestUpdateOne {
	return NewRequestClient(r.config).UpdateOne(r)
}

// Unwrap unwraps the Request entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (r *Request) Unwrap() *Request {
	_tx, ok := r.config.driver.(*txDriver)
	if !ok {
		panic("ent: Request is not a transactional entity")
	}
	r.config.driver = _tx.drv
	return r
}

// String implements the fmt.Stringer.
func (r *Request) String() string {
	var builder strings.Builder
	builder.WriteString("Request(")
	builder.WriteString(fmt.Sprintf("id=%v, ", r.ID))
	builder.WriteString("company_id=")
	builder.WriteString(r.CompanyID)
	builder.WriteString(", ")
	builder.WriteString("data_type=")
	builder.WriteString(r.DataType)
	builder.WriteString(", ")
	builder.WriteString("reporting_period=")
	builder.WriteString(r.ReportingPeriod)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(r.UserID)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", r.State))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", r.Priority))
	builder.WriteString(", ")
	if v := r.MemberComment; v != nil {
		builder.WriteString("member_comment=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := r.AdminComment; v != nil {
		builder.WriteString("admin_comment=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := r.DataSourcingID; v != nil {
		builder.WriteString("data_sourcing_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("creation_timestamp=")
	builder.WriteString(fmt.Sprintf("%v", r.CreationTimestamp))
	builder.WriteString(", ")
	builder.WriteString("last_modified_date=")
	builder.WriteString(fmt.Sprintf("%v", r.LastModifiedDate))
	builder.WriteByte(')')
	return builder.String()
}

// Requests is a parsable slice of Request.
type Requests []*Request
