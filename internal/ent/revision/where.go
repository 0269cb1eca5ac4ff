// Code generated by ent, DO NOT EDIT.

package revision

import (
	"entgo.io/ent/dialect/sql"
	"github.com/d-fine/dataland-sourcing-service/internal/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Revision {
	return predicate.Revision(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Revision {
	return predicate.Revision(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Revision {
	return predicate.Revision(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Revision {
	return predicate.Revision(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Revision {
	return predicate.Revision(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Revision {
	return predicate.Revision(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Revision {
	return predicate.Revision(sql.FieldLTE(FieldID, id))
}

// EntityID applies equality check predicate on the "entity_id" field. It's identical to EntityIDEQ.
func EntityID(v uuid.UUID) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldEntityID, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldState, v))
}

// AdminComment applies equality check predicate on the "admin_comment" field. It's identical to AdminCommentEQ.
func AdminComment(v string) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldAdminComment, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v int64) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldTimestamp, v))
}

// EntityIDEQ applies the EQ predicate on the "entity_id" field.
func EntityIDEQ(v uuid.UUID) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldEntityID, v))
}

// EntityIDNEQ applies the NEQ predicate on the "entity_id" field.
func EntityIDNEQ(v uuid.UUID) predicate.Revision {
	return predicate.Revision(sql.FieldNEQ(FieldEntityID, v))
}

// EntityIDIn applies the In predicate on the "entity_id" field.
func EntityIDIn(vs ...uuid.UUID) predicate.Revision {
	return predicate.Revision(sql.FieldIn(FieldEntityID, vs...))
}

// EntityIDNotIn applies the NotIn predicate on the "entity_id" field.
func EntityIDNotIn(vs ...uuid.UUID) predicate.Revision {
	return predicate.Revision(sql.FieldNotIn(FieldEntityID, vs...))
}

// EntityIDGT applies the GT predicate on the "entity_id" field.
func EntityIDGT(v uuid.UUID) predicate.Revision {
	return predicate.Revision(sql.FieldGT(FieldEntityID, v))
}

// EntityIDGTE applies the GTE predicate on the "entity_id" field.
func EntityIDGTE(v uuid.UUID) predicate.Revision {
	return predicate.Revision(sql.FieldGTE(FieldEntityID, v))
}

// EntityIDLT applies the LT predicate on the "entity_id" field.
func EntityIDLT(v uuid.UUID) predicate.Revision {
	return predicate.Revision(sql.FieldLT(FieldEntityID, v))
}

// EntityIDLTE applies the LTE predicate on the "entity_id" field.
func EntityIDLTE(v uuid.UUID) predicate.Revision {
	return predicate.Revision(sql.FieldLTE(FieldEntityID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.Revision {
	return predicate.Revision(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.Revision {
	return predicate.Revision(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.Revision {
	return predicate.Revision(sql.FieldNotIn(FieldKind, vs...))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.Revision {
	return predicate.Revision(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.Revision {
	return predicate.Revision(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.Revision {
	return predicate.Revision(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.Revision {
	return predicate.Revision(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.Revision {
	return predicate.Revision(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.Revision {
	return predicate.Revision(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.Revision {
	return predicate.Revision(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.Revision {
	return predicate.Revision(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.Revision {
	return predicate.Revision(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.Revision {
	return predicate.Revision(sql.FieldHasSuffix(FieldState, v))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.Revision {
	return predicate.Revision(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.Revision {
	return predicate.Revision(sql.FieldContainsFold(FieldState, v))
}

// AdminCommentEQ applies the EQ predicate on the "admin_comment" field.
func AdminCommentEQ(v string) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldAdminComment, v))
}

// AdminCommentNEQ applies the NEQ predicate on the "admin_comment" field.
func AdminCommentNEQ(v string) predicate.Revision {
	return predicate.Revision(sql.FieldNEQ(FieldAdminComment, v))
}

// AdminCommentIn applies the In predicate on the "admin_comment" field.
func AdminCommentIn(vs ...string) predicate.Revision {
	return predicate.Revision(sql.FieldIn(FieldAdminComment, vs...))
}

// AdminCommentNotIn applies the NotIn predicate on the "admin_comment" field.
func AdminCommentNotIn(vs ...string) predicate.Revision {
	return predicate.Revision(sql.FieldNotIn(FieldAdminComment, vs...))
}

// AdminCommentGT applies the GT predicate on the "admin_comment" field.
func AdminCommentGT(v string) predicate.Revision {
	return predicate.Revision(sql.FieldGT(FieldAdminComment, v))
}

// AdminCommentGTE applies the GTE predicate on the "admin_comment" field.
func AdminCommentGTE(v string) predicate.Revision {
	return predicate.Revision(sql.FieldGTE(FieldAdminComment, v))
}

// AdminCommentLT applies the LT predicate on the "admin_comment" field.
func AdminCommentLT(v string) predicate.Revision {
	return predicate.Revision(sql.FieldLT(FieldAdminComment, v))
}

// AdminCommentLTE applies the LTE predicate on the "admin_comment" field.
func AdminCommentLTE(v string) predicate.Revision {
	return predicate.Revision(sql.FieldLTE(FieldAdminComment, v))
}

// AdminCommentContains applies the Contains predicate on the "admin_comment" field.
func AdminCommentContains(v string) predicate.Revision {
	return predicate.Revision(sql.FieldContains(FieldAdminComment, v))
}

// AdminCommentHasPrefix applies the HasPrefix predicate on the "admin_comment" field.
func AdminCommentHasPrefix(v string) predicate.Revision {
	return predicate.Revision(sql.FieldHasPrefix(FieldAdminComment, v))
}

// AdminCommentHasSuffix applies the HasSuffix predicate on the "admin_comment" field.
func AdminCommentHasSuffix(v string) predicate.Revision {
	return predicate.Revision(sql.FieldHasSuffix(FieldAdminComment, v))
}

// AdminCommentIsNil applies the IsNil predicate on the "admin_comment" field.
func AdminCommentIsNil() predicate.Revision {
	return predicate.Revision(sql.FieldIsNull(FieldAdminComment))
}

// AdminCommentNotNil applies the NotNil predicate on the "admin_comment" field.
func AdminCommentNotNil() predicate.Revision {
	return predicate.Revision(sql.FieldNotNull(FieldAdminComment))
}

// AdminCommentEqualFold applies the EqualFold predicate on the "admin_comment" field.
func AdminCommentEqualFold(v string) predicate.Revision {
	return predicate.Revision(sql.FieldEqualFold(FieldAdminComment, v))
}

// AdminCommentContainsFold applies the ContainsFold predicate on the "admin_comment" field.
func AdminCommentContainsFold(v string) predicate.Revision {
	return predicate.Revision(sql.FieldContainsFold(FieldAdminComment, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v int64) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v int64) predicate.Revision {
	return predicate.Revision(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...int64) predicate.Revision {
	return predicate.Revision(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...int64) predicate.Revision {
	return predicate.Revision(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v int64) predicate.Revision {
	return predicate.Revision(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v int64) predicate.Revision {
	return predicate.Revision(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v int64) predicate.Revision {
	return predicate.Revision(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v int64) predicate.Revision {
	return predicate.Revision(sql.FieldLTE(FieldTimestamp, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Revision) predicate.Revision {
	return predicate.Revision(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Revision) predicate.Revision {
	return predicate.Revision(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Revision) predicate.Revision {
	return predicate.Revision(sql.NotPredicates(p))
}
