// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/d-fine/dataland-sourcing-service/internal/ent/datasourcing"
	"github.com/d-fine/dataland-sourcing-service/internal/ent/request"
	"github.com/d-fine/dataland-sourcing-service/internal/ent/revision"
	"github.com/d-fine/dataland-sourcing-service/internal/ent/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	datasourcingFields := schema.DataSourcing{}.Fields()
	_ = datasourcingFields
	// datasourcingDescCompanyID is the schema descriptor for company_id field.
	datasourcingDescCompanyID := datasourcingFields[1].Descriptor()
	// datasourcing.CompanyIDValidator is a validator for the "company_id" field. It is called by the builders before save.
	datasourcing.CompanyIDValidator = datasourcingDescCompanyID.Validators[0].(func(string) error)
	// datasourcingDescDataType is the schema descriptor for data_type field.
	datasourcingDescDataType := datasourcingFields[2].Descriptor()
	// datasourcing.DataTypeValidator is a validator for the "data_type" field. It is called by the builders before save.
	datasourcing.DataTypeValidator = datasourcingDescDataType.Validators[0].(func(string) error)
	// datasourcingDescReportingPeriod is the schema descriptor for reporting_period field.
	datasourcingDescReportingPeriod := datasourcingFields[3].Descriptor()
	// datasourcing.ReportingPeriodValidator is a validator for the "reporting_period" field. It is called by the builders before save.
	datasourcing.ReportingPeriodValidator = datasourcingDescReportingPeriod.Validators[0].(func(string) error)
	// datasourcingDescID is the schema descriptor for id field.
	datasourcingDescID := datasourcingFields[0].Descriptor()
	// datasourcing.DefaultID holds the default value on creation for the id field.
	datasourcing.DefaultID = datasourcingDescID.Default.(func() uuid.UUID)
	requestFields := schema.Request{}.Fields()
	_ = requestFields
	// requestDescCompanyID is the schema descriptor for company_id field.
	requestDescCompanyID := requestFields[1].Descriptor()
	// request.CompanyIDValidator is a validator for the "company_id" field. It is called by the builders before save.
	request.CompanyIDValidator = requestDescCompanyID.Validators[0].(func(string) error)
	// requestDescDataType is the schema descriptor for data_type field.
	requestDescDataType := requestFields[2].Descriptor()
	// request.DataTypeValidator is a validator for the "data_type" field. It is called by the builders before save.
	request.DataTypeValidator = requestDescDataType.Validators[0].(func(string) error)
	// requestDescReportingPeriod is the schema descriptor for reporting_period field.
	requestDescReportingPeriod := requestFields[3].Descriptor()
	// request.ReportingPeriodValidator is a validator for the "reporting_period" field. It is called by the builders before save.
	request.ReportingPeriodValidator = requestDescReportingPeriod.Validators[0].(func(string) error)
	// requestDescUserID is the schema descriptor for user_id field.
	requestDescUserID := requestFields[4].Descriptor()
	// request.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	request.UserIDValidator = requestDescUserID.Validators[0].(func(string) error)
	// requestDescID is the schema descriptor for id field.
	requestDescID := requestFields[0].Descriptor()
	// request.DefaultID holds the default value on creation for the id field.
	request.DefaultID = requestDescID.Default.(func() uuid.UUID)
	revisionFields := schema.Revision{}.Fields()
	_ = revisionFields
	// revisionDescState is the schema descriptor for state field.
	revisionDescState := revisionFields[3].Descriptor()
	// revision.StateValidator is a validator for the "state" field. It is called by the builders before save.
	revision.StateValidator = revisionDescState.Validators[0].(func(string) error)
	// revisionDescID is the schema descriptor for id field.
	revisionDescID := revisionFields[0].Descriptor()
	// revision.DefaultID holds the default value on creation for the id field.
	revision.DefaultID = revisionDescID.Default.(func() uuid.UUID)
}
