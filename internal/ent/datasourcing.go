// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/d-fine/dataland-sourcing-service/internal/ent/datasourcing"
	"github.com/google/uuid"
)

// DataSourcing is the model entity for the DataSourcing schema.
type DataSourcing struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID string `json:"company_id,omitempty"`
	// DataType holds the value of the "data_type" field.
	DataType string `json:"data_type,omitempty"`
	// ReportingPeriod holds the value of the "reporting_period" field.
	ReportingPeriod string `json:"reporting_period,omitempty"`
	// State holds the value of the "state" field.
	State datasourcing.State `json:"state,omitempty"`
	// DocumentCollector holds the value of the "document_collector" field.
	DocumentCollector *string `json:"document_collector,omitempty"`
	// DataExtractor holds the value of the "data_extractor" field.
	DataExtractor *string `json:"data_extractor,omitempty"`
	// DateOfNextDocumentSourcingAttempt holds the value of the "date_of_next_document_sourcing_attempt" field.
	DateOfNextDocumentSourcingAttempt *time.Time `json:"date_of_next_document_sourcing_attempt,omitempty"`
	// AdminComment holds the value of the "admin_comment" field.
	AdminComment *string `json:"admin_comment,omitempty"`
	// PriorityOverride holds the value of the "priority_override" field.
	PriorityOverride *datasourcing.PriorityOverride `json:"priority_override,omitempty"`
	// Documents holds the value of the "documents" field.
	Documents []string `json:"documents,omitempty"`
	// LastModifiedDate holds the value of the "last_modified_date" field.
	LastModifiedDate int64 `json:"last_modified_date,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DataSourcing) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case datasourcing.FieldDocuments:
			values[i] = new([]byte)
		case datasourcing.FieldLastModifiedDate:
			values[i] = new(sql.NullInt64)
		case datasourcing.FieldCompanyID, datasourcing.FieldDataType, datasourcing.FieldReportingPeriod, datasourcing.FieldState, datasourcing.FieldDocumentCollector, datasourcing.FieldDataExtractor, datasourcing.FieldAdminComment, datasourcing.FieldPriorityOverride:
			values[i] = new(sql.NullString)
		case datasourcing.FieldDateOfNextDocumentSourcingAttempt:
			values[i] = new(sql.NullTime)
		case datasourcing.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DataSourcing fields.
func (ds *DataSourcing) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case datasourcing.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				ds.ID = *value
			}
		case datasourcing.FieldCompanyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value.Valid {
				ds.CompanyID = value.String
			}
		case datasourcing.FieldDataType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field data_type", values[i])
			} else if value.Valid {
				ds.DataType = value.String
			}
		case datasourcing.FieldReportingPeriod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reporting_period", values[i])
			} else if value.Valid {
				ds.ReportingPeriod = value.String
			}
		case datasourcing.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				ds.State = datasourcing.State(value.String)
			}
		case datasourcing.FieldDocumentCollector:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_collector", values[i])
			} else if value.Valid {
				ds.DocumentCollector = new(string)
				*ds.DocumentCollector = value.String
			}
		case datasourcing.FieldDataExtractor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field data_extractor", values[i])
			} else if value.Valid {
				ds.DataExtractor = new(string)
				*ds.DataExtractor = value.String
			}
		case datasourcing.FieldDateOfNextDocumentSourcingAttempt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date_of_next_document_sourcing_attempt", values[i])
			} else if value.Valid {
				ds.DateOfNextDocumentSourcingAttempt = new(time.Time)
				*ds.DateOfNextDocumentSourcingAttempt = value.Time
			}
		case datasourcing.FieldAdminComment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field admin_comment", values[i])
			} else if value.Valid {
				ds.AdminComment = new(string)
				*ds.AdminComment = value.String
			}
		case datasourcing.FieldPriorityOverride:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority_override", values[i])
			} else if value.Valid {
				ds.PriorityOverride = new(datasourcing.PriorityOverride)
				*ds.PriorityOverride = datasourcing.PriorityOverride(value.String)
			}
		case datasourcing.FieldDocuments:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field documents", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &ds.Documents); err != nil {
					return fmt.Errorf("unmarshal field documents: %w", err)
				}
			}
		case datasourcing.FieldLastModifiedDate:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_modified_date", values[i])
			} else if value.Valid {
				ds.LastModifiedDate = value.Int64
			}
		default:
			ds.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DataSourcing.
// This includes values selected through modifiers, order, etc.
func (ds *DataSourcing) Value(name string) (ent.Value, error) {
	return ds.selectValues.Get(name)
}

// Update returns a builder for updating this DataSourcing.
// Note that you need to call DataSourcing.Unwrap() before calling this method if this DataSourcing
// was returned from a transaction, and the transaction was committed or rolled back.
func (ds *DataSourcing) Update() *DataSourcingUpdateOne {
	return NewDataSourcingClient(ds.config).UpdateOne(ds)
}

// Unwrap unwraps the DataSourcing entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ds *DataSourcing) Unwrap() *DataSourcing {
	_tx, ok := ds.config.driver.(*txDriver)
	if !ok {
		panic("ent: DataSourcing is not a transactional entity")
	}
	ds.config.driver = _tx.drv
	return ds
}

// String implements the fmt.Stringer.
func (ds *DataSourcing) String() string {
	var builder strings.Builder
	builder.WriteString("DataSourcing(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ds.ID))
	builder.WriteString("company_id=")
	builder.WriteString(ds.CompanyID)
	builder.WriteString(", ")
	builder.WriteString("data_type=")
	builder.WriteString(ds.DataType)
	builder.WriteString(", ")
	builder.WriteString("reporting_period=")
	builder.WriteString(ds.ReportingPeriod)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", ds.State))
	builder.WriteString(", ")
	if v := ds.DocumentCollector; v != nil {
		builder.WriteString("document_collector=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := ds.DataExtractor; v != nil {
		builder.WriteString("data_extractor=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := ds.DateOfNextDocumentSourcingAttempt; v != nil {
		builder.WriteString("date_of_next_document_sourcing_attempt=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := ds.AdminComment; v != nil {
		builder.WriteString("admin_comment=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := ds.PriorityOverride; v != nil {
		builder.WriteString("priority_override=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("documents=")
	builder.WriteString(fmt.Sprintf("%v", ds.Documents))
	builder.WriteString(", ")
	builder.WriteString("last_modified_date=")
	builder.WriteString(fmt.Sprintf("%v", ds.LastModifiedDate))
	builder.WriteByte(')')
	return builder.String()
}

// DataSourcings is a parsable slice of DataSourcing.
type DataSourcings []*DataSourcing
