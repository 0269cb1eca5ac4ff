// Code generated by ent, DO NOT EDIT.

package datasourcing

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/d-fine/dataland-sourcing-service/internal/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldLTE(FieldID, id))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldEQ(FieldCompanyID, v))
}

// DataType applies equality check predicate on the "data_type" field. It's identical to DataTypeEQ.
func DataType(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldEQ(FieldDataType, v))
}

// ReportingPeriod applies equality check predicate on the "reporting_period" field. It's identical to ReportingPeriodEQ.
func ReportingPeriod(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldEQ(FieldReportingPeriod, v))
}

// DocumentCollector applies equality check predicate on the "document_collector" field. It's identical to DocumentCollectorEQ.
func DocumentCollector(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldEQ(FieldDocumentCollector, v))
}

// DataExtractor applies equality check predicate on the "data_extractor" field. It's identical to DataExtractorEQ.
func DataExtractor(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldEQ(FieldDataExtractor, v))
}

// DateOfNextDocumentSourcingAttempt applies equality check predicate on the "date_of_next_document_sourcing_attempt" field. It's identical to DateOfNextDocumentSourcingAttemptEQ.
func DateOfNextDocumentSourcingAttempt(v time.Time) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldEQ(FieldDateOfNextDocumentSourcingAttempt, v))
}

// AdminComment applies equality check predicate on the "admin_comment" field. It's identical to AdminCommentEQ.
func AdminComment(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldEQ(FieldAdminComment, v))
}

// LastModifiedDate applies equality check predicate on the "last_modified_date" field. It's identical to LastModifiedDateEQ.
func LastModifiedDate(v int64) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldEQ(FieldLastModifiedDate, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldNotIn(FieldCompanyID, vs...))
}

// CompanyIDGT applies the GT predicate on the "company_id" field.
func CompanyIDGT(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldGT(FieldCompanyID, v))
}

// CompanyIDGTE applies the GTE predicate on the "company_id" field.
func CompanyIDGTE(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldGTE(FieldCompanyID, v))
}

// CompanyIDLT applies the LT predicate on the "company_id" field.
func CompanyIDLT(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldLT(FieldCompanyID, v))
}

// CompanyIDLTE applies the LTE predicate on the "company_id" field.
func CompanyIDLTE(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldLTE(FieldCompanyID, v))
}

// CompanyIDContains applies the Contains predicate on the "company_id" field.
func CompanyIDContains(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldContains(FieldCompanyID, v))
}

// CompanyIDHasPrefix applies the HasPrefix predicate on the "company_id" field.
func CompanyIDHasPrefix(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldHasPrefix(FieldCompanyID, v))
}

// CompanyIDHasSuffix applies the HasSuffix predicate on the "company_id" field.
func CompanyIDHasSuffix(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldHasSuffix(FieldCompanyID, v))
}

// CompanyIDEqualFold applies the EqualFold predicate on the "company_id" field.
func CompanyIDEqualFold(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldEqualFold(FieldCompanyID, v))
}

// CompanyIDContainsFold applies the ContainsFold predicate on the "company_id" field.
func CompanyIDContainsFold(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldContainsFold(FieldCompanyID, v))
}

// DataTypeEQ applies the EQ predicate on the "data_type" field.
func DataTypeEQ(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldEQ(FieldDataType, v))
}

// DataTypeNEQ applies the NEQ predicate on the "data_type" field.
func DataTypeNEQ(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldNEQ(FieldDataType, v))
}

// DataTypeIn applies the In predicate on the "data_type" field.
func DataTypeIn(vs ...string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldIn(FieldDataType, vs...))
}

// DataTypeNotIn applies the NotIn predicate on the "data_type" field.
func DataTypeNotIn(vs ...string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldNotIn(FieldDataType, vs...))
}

// DataTypeGT applies the GT predicate on the "data_type" field.
func DataTypeGT(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldGT(FieldDataType, v))
}

// DataTypeGTE applies the GTE predicate on the "data_type" field.
func DataTypeGTE(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldGTE(FieldDataType, v))
}

// DataTypeLT applies the LT predicate on the "data_type" field.
func DataTypeLT(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldLT(FieldDataType, v))
}

// DataTypeLTE applies the LTE predicate on the "data_type" field.
func DataTypeLTE(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldLTE(FieldDataType, v))
}

// DataTypeContains applies the Contains predicate on the "data_type" field.
func DataTypeContains(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldContains(FieldDataType, v))
}

// DataTypeHasPrefix applies the HasPrefix predicate on the "data_type" field.
func DataTypeHasPrefix(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldHasPrefix(FieldDataType, v))
}

// DataTypeHasSuffix applies the HasSuffix predicate on the "data_type" field.
func DataTypeHasSuffix(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldHasSuffix(FieldDataType, v))
}

// DataTypeEqualFold applies the EqualFold predicate on the "data_type" field.
func DataTypeEqualFold(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldEqualFold(FieldDataType, v))
}

// DataTypeContainsFold applies the ContainsFold predicate on the "data_type" field.
func DataTypeContainsFold(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldContainsFold(FieldDataType, v))
}

// ReportingPeriodEQ applies the EQ predicate on the "reporting_period" field.
func ReportingPeriodEQ(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldEQ(FieldReportingPeriod, v))
}

// ReportingPeriodNEQ applies the NEQ predicate on the "reporting_period" field.
func ReportingPeriodNEQ(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldNEQ(FieldReportingPeriod, v))
}

// ReportingPeriodIn applies the In predicate on the "reporting_period" field.
func ReportingPeriodIn(vs ...string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldIn(FieldReportingPeriod, vs...))
}

// ReportingPeriodNotIn applies the NotIn predicate on the "reporting_period" field.
func ReportingPeriodNotIn(vs ...string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldNotIn(FieldReportingPeriod, vs...))
}

// ReportingPeriodGT applies the GT predicate on the "reporting_period" field.
func ReportingPeriodGT(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldGT(FieldReportingPeriod, v))
}

// ReportingPeriodGTE applies the GTE predicate on the "reporting_period" field.
func ReportingPeriodGTE(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldGTE(FieldReportingPeriod, v))
}

// ReportingPeriodLT applies the LT predicate on the "reporting_period" field.
func ReportingPeriodLT(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldLT(FieldReportingPeriod, v))
}

// ReportingPeriodLTE applies the LTE predicate on the "reporting_period" field.
func ReportingPeriodLTE(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldLTE(FieldReportingPeriod, v))
}

// ReportingPeriodContains applies the Contains predicate on the "reporting_period" field.
func ReportingPeriodContains(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldContains(FieldReportingPeriod, v))
}

// ReportingPeriodHasPrefix applies the HasPrefix predicate on the "reporting_period" field.
func ReportingPeriodHasPrefix(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldHasPrefix(FieldReportingPeriod, v))
}

// ReportingPeriodHasSuffix applies the HasSuffix predicate on the "reporting_period" field.
func ReportingPeriodHasSuffix(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldHasSuffix(FieldReportingPeriod, v))
}

// ReportingPeriodEqualFold applies the EqualFold predicate on the "reporting_period" field.
func ReportingPeriodEqualFold(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldEqualFold(FieldReportingPeriod, v))
}

// ReportingPeriodContainsFold applies the ContainsFold predicate on the "reporting_period" field.
func ReportingPeriodContainsFold(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldContainsFold(FieldReportingPeriod, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldNotIn(FieldState, vs...))
}

// DocumentCollectorEQ applies the EQ predicate on the "document_collector" field.
func DocumentCollectorEQ(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldEQ(FieldDocumentCollector, v))
}

// DocumentCollectorNEQ applies the NEQ predicate on the "document_collector" field.
func DocumentCollectorNEQ(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldNEQ(FieldDocumentCollector, v))
}

// DocumentCollectorIn applies the In predicate on the "document_collector" field.
func DocumentCollectorIn(vs ...string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldIn(FieldDocumentCollector, vs...))
}

// DocumentCollectorNotIn applies the NotIn predicate on the "document_collector" field.
func DocumentCollectorNotIn(vs ...string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldNotIn(FieldDocumentCollector, vs...))
}

// DocumentCollectorGT applies the GT predicate on the "document_collector" field.
func DocumentCollectorGT(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldGT(FieldDocumentCollector, v))
}

// DocumentCollectorGTE applies the GTE predicate on the "document_collector" field.
func DocumentCollectorGTE(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldGTE(FieldDocumentCollector, v))
}

// DocumentCollectorLT applies the LT predicate on the "document_collector" field.
func DocumentCollectorLT(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldLT(FieldDocumentCollector, v))
}

// DocumentCollectorLTE applies the LTE predicate on the "document_collector" field.
func DocumentCollectorLTE(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldLTE(FieldDocumentCollector, v))
}

// DocumentCollectorContains applies the Contains predicate on the "document_collector" field.
func DocumentCollectorContains(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldContains(FieldDocumentCollector, v))
}

// DocumentCollectorHasPrefix applies the HasPrefix predicate on the "document_collector" field.
func DocumentCollectorHasPrefix(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldHasPrefix(FieldDocumentCollector, v))
}

// DocumentCollectorHasSuffix applies the HasSuffix predicate on the "document_collector" field.
func DocumentCollectorHasSuffix(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldHasSuffix(FieldDocumentCollector, v))
}

// DocumentCollectorIsNil applies the IsNil predicate on the "document_collector" field.
func DocumentCollectorIsNil() predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldIsNull(FieldDocumentCollector))
}

// DocumentCollectorNotNil applies the NotNil predicate on the "document_collector" field.
func DocumentCollectorNotNil() predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldNotNull(FieldDocumentCollector))
}

// DocumentCollectorEqualFold applies the EqualFold predicate on the "document_collector" field.
func DocumentCollectorEqualFold(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldEqualFold(FieldDocumentCollector, v))
}

// DocumentCollectorContainsFold applies the ContainsFold predicate on the "document_collector" field.
func DocumentCollectorContainsFold(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldContainsFold(FieldDocumentCollector, v))
}

// DataExtractorEQ applies the EQ predicate on the "data_extractor" field.
func DataExtractorEQ(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldEQ(FieldDataExtractor, v))
}

// DataExtractorNEQ applies the NEQ predicate on the "data_extractor" field.
func DataExtractorNEQ(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldNEQ(FieldDataExtractor, v))
}

// DataExtractorIn applies the In predicate on the "data_extractor" field.
func DataExtractorIn(vs ...string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldIn(FieldDataExtractor, vs...))
}

// DataExtractorNotIn applies the NotIn predicate on the "data_extractor" field.
func DataExtractorNotIn(vs ...string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldNotIn(FieldDataExtractor, vs...))
}

// DataExtractorGT applies the GT predicate on the "data_extractor" field.
func DataExtractorGT(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldGT(FieldDataExtractor, v))
}

// DataExtractorGTE applies the GTE predicate on the "data_extractor" field.
func DataExtractorGTE(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldGTE(FieldDataExtractor, v))
}

// DataExtractorLT applies the LT predicate on the "data_extractor" field.
func DataExtractorLT(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldLT(FieldDataExtractor, v))
}

// DataExtractorLTE applies the LTE predicate on the "data_extractor" field.
func DataExtractorLTE(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldLTE(FieldDataExtractor, v))
}

// DataExtractorContains applies the Contains predicate on the "data_extractor" field.
func DataExtractorContains(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldContains(FieldDataExtractor, v))
}

// DataExtractorHasPrefix applies the HasPrefix predicate on the "data_extractor" field.
func DataExtractorHasPrefix(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldHasPrefix(FieldDataExtractor, v))
}

// DataExtractorHasSuffix applies the HasSuffix predicate on the "data_extractor" field.
func DataExtractorHasSuffix(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldHasSuffix(FieldDataExtractor, v))
}

// DataExtractorIsNil applies the IsNil predicate on the "data_extractor" field.
func DataExtractorIsNil() predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldIsNull(FieldDataExtractor))
}

// DataExtractorNotNil applies the NotNil predicate on the "data_extractor" field.
func DataExtractorNotNil() predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldNotNull(FieldDataExtractor))
}

// DataExtractorEqualFold applies the EqualFold predicate on the "data_extractor" field.
func DataExtractorEqualFold(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldEqualFold(FieldDataExtractor, v))
}

// DataExtractorContainsFold applies the ContainsFold predicate on the "data_extractor" field.
func DataExtractorContainsFold(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldContainsFold(FieldDataExtractor, v))
}

// DateOfNextDocumentSourcingAttemptEQ applies the EQ predicate on the "date_of_next_document_sourcing_attempt" field.
func DateOfNextDocumentSourcingAttemptEQ(v time.Time) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldEQ(FieldDateOfNextDocumentSourcingAttempt, v))
}

// DateOfNextDocumentSourcingAttemptNEQ applies the NEQ predicate on the "date_of_next_document_sourcing_attempt" field.
func DateOfNextDocumentSourcingAttemptNEQ(v time.Time) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldNEQ(FieldDateOfNextDocumentSourcingAttempt, v))
}

// DateOfNextDocumentSourcingAttemptIn applies the In predicate on the "date_of_next_document_sourcing_attempt" field.
func DateOfNextDocumentSourcingAttemptIn(vs ...time.Time) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldIn(FieldDateOfNextDocumentSourcingAttempt, vs...))
}

// DateOfNextDocumentSourcingAttemptNotIn applies the NotIn predicate on the "date_of_next_document_sourcing_attempt" field.
func DateOfNextDocumentSourcingAttemptNotIn(vs ...time.Time) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldNotIn(FieldDateOfNextDocumentSourcingAttempt, vs...))
}

// DateOfNextDocumentSourcingAttemptGT applies the GT predicate on the "date_of_next_document_sourcing_attempt" field.
func DateOfNextDocumentSourcingAttemptGT(v time.Time) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldGT(FieldDateOfNextDocumentSourcingAttempt, v))
}

// DateOfNextDocumentSourcingAttemptGTE applies the GTE predicate on the "date_of_next_document_sourcing_attempt" field.
func DateOfNextDocumentSourcingAttemptGTE(v time.Time) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldGTE(FieldDateOfNextDocumentSourcingAttempt, v))
}

// DateOfNextDocumentSourcingAttemptLT applies the LT predicate on the "date_of_next_document_sourcing_attempt" field.
func DateOfNextDocumentSourcingAttemptLT(v time.Time) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldLT(FieldDateOfNextDocumentSourcingAttempt, v))
}

// DateOfNextDocumentSourcingAttemptLTE applies the LTE predicate on the "date_of_next_document_sourcing_attempt" field.
func DateOfNextDocumentSourcingAttemptLTE(v time.Time) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldLTE(FieldDateOfNextDocumentSourcingAttempt, v))
}

// DateOfNextDocumentSourcingAttemptIsNil applies the IsNil predicate on the "date_of_next_document_sourcing_attempt" field.
func DateOfNextDocumentSourcingAttemptIsNil() predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldIsNull(FieldDateOfNextDocumentSourcingAttempt))
}

// DateOfNextDocumentSourcingAttemptNotNil applies the NotNil predicate on the "date_of_next_document_sourcing_attempt" field.
func DateOfNextDocumentSourcingAttemptNotNil() predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldNotNull(FieldDateOfNextDocumentSourcingAttempt))
}

// AdminCommentEQ applies the EQ predicate on the "admin_comment" field.
func AdminCommentEQ(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldEQ(FieldAdminComment, v))
}

// AdminCommentNEQ applies the NEQ predicate on the "admin_comment" field.
func AdminCommentNEQ(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldNEQ(FieldAdminComment, v))
}

// AdminCommentIn applies the In predicate on the "admin_comment" field.
func AdminCommentIn(vs ...string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldIn(FieldAdminComment, vs...))
}

// AdminCommentNotIn applies the NotIn predicate on the "admin_comment" field.
func AdminCommentNotIn(vs ...string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldNotIn(FieldAdminComment, vs...))
}

// AdminCommentGT applies the GT predicate on the "admin_comment" field.
func AdminCommentGT(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldGT(FieldAdminComment, v))
}

// AdminCommentGTE applies the GTE predicate on the "admin_comment" field.
func AdminCommentGTE(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldGTE(FieldAdminComment, v))
}

// AdminCommentLT applies the LT predicate on the "admin_comment" field.
func AdminCommentLT(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldLT(FieldAdminComment, v))
}

// AdminCommentLTE applies the LTE predicate on the "admin_comment" field.
func AdminCommentLTE(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldLTE(FieldAdminComment, v))
}

// AdminCommentContains applies the Contains predicate on the "admin_comment" field.
func AdminCommentContains(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldContains(FieldAdminComment, v))
}

// AdminCommentHasPrefix applies the HasPrefix predicate on the "admin_comment" field.
func AdminCommentHasPrefix(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldHasPrefix(FieldAdminComment, v))
}

// AdminCommentHasSuffix applies the HasSuffix predicate on the "admin_comment" field.
func AdminCommentHasSuffix(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldHasSuffix(FieldAdminComment, v))
}

// AdminCommentIsNil applies the IsNil predicate on the "admin_comment" field.
func AdminCommentIsNil() predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldIsNull(FieldAdminComment))
}

// AdminCommentNotNil applies the NotNil predicate on the "admin_comment" field.
func AdminCommentNotNil() predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldNotNull(FieldAdminComment))
}

// AdminCommentEqualFold applies the EqualFold predicate on the "admin_comment" field.
func AdminCommentEqualFold(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldEqualFold(FieldAdminComment, v))
}

// AdminCommentContainsFold applies the ContainsFold predicate on the "admin_comment" field.
func AdminCommentContainsFold(v string) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldContainsFold(FieldAdminComment, v))
}

// PriorityOverrideEQ applies the EQ predicate on the "priority_override" field.
func PriorityOverrideEQ(v PriorityOverride) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldEQ(FieldPriorityOverride, v))
}

// PriorityOverrideNEQ applies the NEQ predicate on the "priority_override" field.
func PriorityOverrideNEQ(v PriorityOverride) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldNEQ(FieldPriorityOverride, v))
}

// PriorityOverrideIn applies the In predicate on the "priority_override" field.
func PriorityOverrideIn(vs ...PriorityOverride) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldIn(FieldPriorityOverride, vs...))
}

// PriorityOverrideNotIn applies the NotIn predicate on the "priority_override" field.
func PriorityOverrideNotIn(vs ...PriorityOverride) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldNotIn(FieldPriorityOverride, vs...))
}

// PriorityOverrideIsNil applies the IsNil predicate on the "priority_override" field.
func PriorityOverrideIsNil() predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldIsNull(FieldPriorityOverride))
}

// PriorityOverrideNotNil applies the NotNil predicate on the "priority_override" field.
func PriorityOverrideNotNil() predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldNotNull(FieldPriorityOverride))
}

// DocumentsIsNil applies the IsNil predicate on the "documents" field.
func DocumentsIsNil() predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldIsNull(FieldDocuments))
}

// DocumentsNotNil applies the NotNil predicate on the "documents" field.
func DocumentsNotNil() predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldNotNull(FieldDocuments))
}

// LastModifiedDateEQ applies the EQ predicate on the "last_modified_date" field.
func LastModifiedDateEQ(v int64) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldEQ(FieldLastModifiedDate, v))
}

// LastModifiedDateNEQ applies the NEQ predicate on the "last_modified_date" field.
func LastModifiedDateNEQ(v int64) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldNEQ(FieldLastModifiedDate, v))
}

// LastModifiedDateIn applies the In predicate on the "last_modified_date" field.
func LastModifiedDateIn(vs ...int64) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldIn(FieldLastModifiedDate, vs...))
}

// LastModifiedDateNotIn applies the NotIn predicate on the "last_modified_date" field.
func LastModifiedDateNotIn(vs ...int64) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldNotIn(FieldLastModifiedDate, vs...))
}

// LastModifiedDateGT applies the GT predicate on the "last_modified_date" field.
func LastModifiedDateGT(v int64) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldGT(FieldLastModifiedDate, v))
}

// LastModifiedDateGTE applies the GTE predicate on the "last_modified_date" field.
func LastModifiedDateGTE(v int64) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldGTE(FieldLastModifiedDate, v))
}

// LastModifiedDateLT applies the LT predicate on the "last_modified_date" field.
func LastModifiedDateLT(v int64) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldLT(FieldLastModifiedDate, v))
}

// LastModifiedDateLTE applies the LTE predicate on the "last_modified_date" field.
func LastModifiedDateLTE(v int64) predicate.DataSourcing {
	return predicate.DataSourcing(sql.FieldLTE(FieldLastModifiedDate, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DataSourcing) predicate.DataSourcing {
	return predicate.DataSourcing(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DataSourcing) predicate.DataSourcing {
	return predicate.DataSourcing(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DataSourcing) predicate.DataSourcing {
	return predicate.DataSourcing(sql.NotPredicates(p))
}
