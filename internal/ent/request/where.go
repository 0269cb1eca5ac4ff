// Code generated by ent, DO NOT EDIT.

package request

import (
	"entgo.io/ent/dialect/sql"
	"github.com/d-fine/dataland-sourcing-service/internal/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldID, id))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldCompanyID, v))
}

// DataType applies equality check predicate on the "data_type" field. It's identical to DataTypeEQ.
func DataType(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldDataType, v))
}

// ReportingPeriod applies equality check predicate on the "reporting_period" field. It's identical to ReportingPeriodEQ.
func ReportingPeriod(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldReportingPeriod, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldUserID, v))
}

// MemberComment applies equality check predicate on the "member_comment" field. It's identical to MemberCommentEQ.
func MemberComment(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldMemberComment, v))
}

// AdminComment applies equality check predicate on the "admin_comment" field. It's identical to AdminCommentEQ.
func AdminComment(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldAdminComment, v))
}

// DataSourcingID applies equality check predicate on the "data_sourcing_id" field. It's identical to DataSourcingIDEQ.
func DataSourcingID(v uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldDataSourcingID, v))
}

// CreationTimestamp applies equality check predicate on the "creation_timestamp" field. It's identical to CreationTimestampEQ.
func CreationTimestamp(v int64) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldCreationTimestamp, v))
}

// LastModifiedDate applies equality check predicate on the "last_modified_date" field. It's identical to LastModifiedDateEQ.
func LastModifiedDate(v int64) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldLastModifiedDate, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldCompanyID, vs...))
}

// CompanyIDGT applies the GT predicate on the "company_id" field.
func CompanyIDGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldCompanyID, v))
}

// CompanyIDGTE applies the GTE predicate on the "company_id" field.
func CompanyIDGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldCompanyID, v))
}

// CompanyIDLT applies the LT predicate on the "company_id" field.
func CompanyIDLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldCompanyID, v))
}

// CompanyIDLTE applies the LTE predicate on the "company_id" field.
func CompanyIDLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldCompanyID, v))
}

// CompanyIDContains applies the Contains predicate on the "company_id" field.
func CompanyIDContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldCompanyID, v))
}

// CompanyIDHasPrefix applies the HasPrefix predicate on the "company_id" field.
func CompanyIDHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldCompanyID, v))
}

// CompanyIDHasSuffix applies the HasSuffix predicate on the "company_id" field.
func CompanyIDHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldCompanyID, v))
}

// CompanyIDEqualFold applies the EqualFold predicate on the "company_id" field.
func CompanyIDEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldCompanyID, v))
}

// CompanyIDContainsFold applies the ContainsFold predicate on the "company_id" field.
func CompanyIDContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldCompanyID, v))
}

// DataTypeEQ applies the EQ predicate on the "data_type" field.
func DataTypeEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldDataType, v))
}

// DataTypeNEQ applies the NEQ predicate on the "data_type" field.
func DataTypeNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldDataType, v))
}

// DataTypeIn applies the In predicate on the "data_type" field.
func DataTypeIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldDataType, vs...))
}

// DataTypeNotIn applies the NotIn predicate on the "data_type" field.
func DataTypeNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldDataType, vs...))
}

// DataTypeGT applies the GT predicate on the "data_type" field.
func DataTypeGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldDataType, v))
}

// DataTypeGTE applies the GTE predicate on the "data_type" field.
func DataTypeGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldDataType, v))
}

// DataTypeLT applies the LT predicate on the "data_type" field.
func DataTypeLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldDataType, v))
}

// DataTypeLTE applies the LTE predicate on the "data_type" field.
func DataTypeLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldDataType, v))
}

// DataTypeContains applies the Contains predicate on the "data_type" field.
func DataTypeContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldDataType, v))
}

// DataTypeHasPrefix applies the HasPrefix predicate on the "data_type" field.
func DataTypeHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldDataType, v))
}

// DataTypeHasSuffix applies the HasSuffix predicate on the "data_type" field.
func DataTypeHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldDataType, v))
}

// DataTypeEqualFold applies the EqualFold predicate on the "data_type" field.
func DataTypeEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldDataType, v))
}

// DataTypeContainsFold applies the ContainsFold predicate on the "data_type" field.
func DataTypeContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldDataType, v))
}

// ReportingPeriodEQ applies the EQ predicate on the "reporting_period" field.
func ReportingPeriodEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldReportingPeriod, v))
}

// ReportingPeriodNEQ applies the NEQ predicate on the "reporting_period" field.
func ReportingPeriodNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldReportingPeriod, v))
}

// ReportingPeriodIn applies the In predicate on the "reporting_period" field.
func ReportingPeriodIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldReportingPeriod, vs...))
}

// ReportingPeriodNotIn applies the NotIn predicate on the "reporting_period" field.
func ReportingPeriodNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldReportingPeriod, vs...))
}

// ReportingPeriodGT applies the GT predicate on the "reporting_period" field.
func ReportingPeriodGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldReportingPeriod, v))
}

// ReportingPeriodGTE applies the GTE predicate on the "reporting_period" field.
func ReportingPeriodGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldReportingPeriod, v))
}

// ReportingPeriodLT applies the LT predicate on the "reporting_period" field.
func ReportingPeriodLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldReportingPeriod, v))
}

// ReportingPeriodLTE applies the LTE predicate on the "reporting_period" field.
func ReportingPeriodLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldReportingPeriod, v))
}

// ReportingPeriodContains applies the Contains predicate on the "reporting_period" field.
func ReportingPeriodContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldReportingPeriod, v))
}

// ReportingPeriodHasPrefix applies the HasPrefix predicate on the "reporting_period" field.
func ReportingPeriodHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldReportingPeriod, v))
}

// ReportingPeriodHasSuffix applies the HasSuffix predicate on the "reporting_period" field.
func ReportingPeriodHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldReportingPeriod, v))
}

// ReportingPeriodEqualFold applies the EqualFold predicate on the "reporting_period" field.
func ReportingPeriodEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldReportingPeriod, v))
}

// ReportingPeriodContainsFold applies the ContainsFold predicate on the "reporting_period" field.
func ReportingPeriodContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldReportingPeriod, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldUserID, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldState, vs...))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldPriority, vs...))
}

// MemberCommentEQ applies the EQ predicate on the "member_comment" field.
func MemberCommentEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldMemberComment, v))
}

// MemberCommentNEQ applies the NEQ predicate on the "member_comment" field.
func MemberCommentNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldMemberComment, v))
}

// MemberCommentIn applies the In predicate on the "member_comment" field.
func MemberCommentIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldMemberComment, vs...))
}

// MemberCommentNotIn applies the NotIn predicate on the "member_comment" field.
func MemberCommentNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldMemberComment, vs...))
}

// MemberCommentGT applies the GT predicate on the "member_comment" field.
func MemberCommentGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldMemberComment, v))
}

// MemberCommentGTE applies the GTE predicate on the "member_comment" field.
func MemberCommentGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldMemberComment, v))
}

// MemberCommentLT applies the LT predicate on the "member_comment" field.
func MemberCommentLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldMemberComment, v))
}

// MemberCommentLTE applies the LTE predicate on the "member_comment" field.
func MemberCommentLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldMemberComment, v))
}

// MemberCommentContains applies the Contains predicate on the "member_comment" field.
func MemberCommentContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldMemberComment, v))
}

// MemberCommentHasPrefix applies the HasPrefix predicate on the "member_comment" field.
func MemberCommentHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldMemberComment, v))
}

// MemberCommentHasSuffix applies the HasSuffix predicate on the "member_comment" field.
func MemberCommentHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldMemberComment, v))
}

// MemberCommentIsNil applies the IsNil predicate on the "member_comment" field.
func MemberCommentIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldMemberComment))
}

// MemberCommentNotNil applies the NotNil predicate on the "member_comment" field.
func MemberCommentNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldMemberComment))
}

// MemberCommentEqualFold applies the EqualFold predicate on the "member_comment" field.
func MemberCommentEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldMemberComment, v))
}

// MemberCommentContainsFold applies the ContainsFold predicate on the "member_comment" field.
func MemberCommentContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldMemberComment, v))
}

// AdminCommentEQ applies the EQ predicate on the "admin_comment" field.
func AdminCommentEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldAdminComment, v))
}

// AdminCommentNEQ applies the NEQ predicate on the "admin_comment" field.
func AdminCommentNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldAdminComment, v))
}

// AdminCommentIn applies the In predicate on the "admin_comment" field.
func AdminCommentIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldAdminComment, vs...))
}

// AdminCommentNotIn applies the NotIn predicate on the "admin_comment" field.
func AdminCommentNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldAdminComment, vs...))
}

// AdminCommentGT applies the GT predicate on the "admin_comment" field.
func AdminCommentGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldAdminComment, v))
}

// AdminCommentGTE applies the GTE predicate on the "admin_comment" field.
func AdminCommentGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldAdminComment, v))
}

// AdminCommentLT applies the LT predicate on the "admin_comment" field.
func AdminCommentLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldAdminComment, v))
}

// AdminCommentLTE applies the LTE predicate on the "admin_comment" field.
func AdminCommentLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldAdminComment, v))
}

// AdminCommentContains applies the Contains predicate on the "admin_comment" field.
func AdminCommentContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldAdminComment, v))
}

// AdminCommentHasPrefix applies the HasPrefix predicate on the "admin_comment" field.
func AdminCommentHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldAdminComment, v))
}

// AdminCommentHasSuffix applies the HasSuffix predicate on the "admin_comment" field.
func AdminCommentHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldAdminComment, v))
}

// AdminCommentIsNil applies the IsNil predicate on the "admin_comment" field.
func AdminCommentIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldAdminComment))
}

// AdminCommentNotNil applies the NotNil predicate on the "admin_comment" field.
func AdminCommentNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldAdminComment))
}

// AdminCommentEqualFold applies the EqualFold predicate on the "admin_comment" field.
func AdminCommentEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldAdminComment, v))
}

// AdminCommentContainsFold applies the ContainsFold predicate on the "admin_comment" field.
func AdminCommentContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldAdminComment, v))
}

// DataSourcingIDEQ applies the EQ predicate on the "data_sourcing_id" field.
func DataSourcingIDEQ(v uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldDataSourcingID, v))
}

// DataSourcingIDNEQ applies the NEQ predicate on the "data_sourcing_id" field.
func DataSourcingIDNEQ(v uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldDataSourcingID, v))
}

// DataSourcingIDIn applies the In predicate on the "data_sourcing_id" field.
func DataSourcingIDIn(vs ...uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldDataSourcingID, vs...))
}

// DataSourcingIDNotIn applies the NotIn predicate on the "data_sourcing_id" field.
func DataSourcingIDNotIn(vs ...uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldDataSourcingID, vs...))
}

// DataSourcingIDGT applies the GT predicate on the "data_sourcing_id" field.
func DataSourcingIDGT(v uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldDataSourcingID, v))
}

// DataSourcingIDGTE applies the GTE predicate on the "data_sourcing_id" field.
func DataSourcingIDGTE(v uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldDataSourcingID, v))
}

// DataSourcingIDLT applies the LT predicate on the "data_sourcing_id" field.
func DataSourcingIDLT(v uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldDataSourcingID, v))
}

// DataSourcingIDLTE applies the LTE predicate on the "data_sourcing_id" field.
func DataSourcingIDLTE(v uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldDataSourcingID, v))
}

// DataSourcingIDIsNil applies the IsNil predicate on the "data_sourcing_id" field.
func DataSourcingIDIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldDataSourcingID))
}

// DataSourcingIDNotNil applies the NotNil predicate on the "data_sourcing_id" field.
func DataSourcingIDNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldDataSourcingID))
}

// CreationTimestampEQ applies the EQ predicate on the "creation_timestamp" field.
func CreationTimestampEQ(v int64) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldCreationTimestamp, v))
}

// CreationTimestampNEQ applies the NEQ predicate on the "creation_timestamp" field.
func CreationTimestampNEQ(v int64) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldCreationTimestamp, v))
}

// CreationTimestampIn applies the In predicate on the "creation_timestamp" field.
func CreationTimestampIn(vs ...int64) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldCreationTimestamp, vs...))
}

// CreationTimestampNotIn applies the NotIn predicate on the "creation_timestamp" field.
func CreationTimestampNotIn(vs ...int64) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldCreationTimestamp, vs...))
}

// CreationTimestampGT applies the GT predicate on the "creation_timestamp" field.
func CreationTimestampGT(v int64) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldCreationTimestamp, v))
}

// CreationTimestampGTE applies the GTE predicate on the "creation_timestamp" field.
func CreationTimestampGTE(v int64) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldCreationTimestamp, v))
}

// CreationTimestampLT applies the LT predicate on the "creation_timestamp" field.
func CreationTimestampLT(v int64) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldCreationTimestamp, v))
}

// CreationTimestampLTE applies the LTE predicate on the "creation_timestamp" field.
func CreationTimestampLTE(v int64) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldCreationTimestamp, v))
}

// LastModifiedDateEQ applies the EQ predicate on the "last_modified_date" field.
func LastModifiedDateEQ(v int64) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldLastModifiedDate, v))
}

// LastModifiedDateNEQ applies the NEQ predicate on the "last_modified_date" field.
func LastModifiedDateNEQ(v int64) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldLastModifiedDate, v))
}

// LastModifiedDateIn applies the In predicate on the "last_modified_date" field.
func LastModifiedDateIn(vs ...int64) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldLastModifiedDate, vs...))
}

// LastModifiedDateNotIn applies the NotIn predicate on the "last_modified_date" field.
func LastModifiedDateNotIn(vs ...int64) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldLastModifiedDate, vs...))
}

// LastModifiedDateGT applies the GT predicate on the "last_modified_date" field.
func LastModifiedDateGT(v int64) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldLastModifiedDate, v))
}

// LastModifiedDateGTE applies the GTE predicate on the "last_modified_date" field.
func LastModifiedDateGTE(v int64) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldLastModifiedDate, v))
}

// LastModifiedDateLT applies the LT predicate on the "last_modified_date" field.
func LastModifiedDateLT(v int64) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldLastModifiedDate, v))
}

// LastModifiedDateLTE applies the LTE predicate on the "last_modified_date" field.
func LastModifiedDateLTE(v int64) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldLastModifiedDate, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Request) predicate.Request {
	return predicate.Request(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Request) predicate.Request {
	return predicate.Request(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Request) predicate.Request {
	return predicate.Request(sql.NotPredicates(p))
}
