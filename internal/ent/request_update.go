// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/d-fine/dataland-sourcing-service/internal/ent/predicate"
	"github.com/d-fine/dataland-sourcing-service/internal/ent/request"
	"github.com/google/uuid"
)

// RequestUpdate is the builder for updating Request entities.
type RequestUpdate struct {
	config
	hooks    []Hook
	mutation *RequestMutation
}

// Where appends a list predicates to the RequestUpdate builder.
func (ru *RequestUpdate) Where(ps ...predicate.Request) *RequestUpdate {
	ru.mutation.Where(ps...)
	return ru
}

// SetState sets the "state" field.
func (ru *RequestUpdate) SetState(r request.State) *RequestUpdate {
	ru.mutation.SetState(r)
	return ru
}

// SetNillableState sets the "state" field if the given value is not nil.
func (ru *RequestUpdate) SetNillableState(r *request.State) *RequestUpdate {
	if r != nil {
		ru.SetState(*r)
	}
	return ru
}

// SetPriority sets the "priority" field.
func (ru *RequestUpdate) SetPriority(r request.Priority) *RequestUpdate {
	ru.mutation.SetPriority(r)
	return ru
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (ru *RequestUpdate) SetNillablePriority(r *request.Priority) *RequestUpdate {
	if r != nil {
		ru.SetPriority(*r)
	}
	return ru
}

// SetMemberComment sets the "member_comment" field.
func (ru *RequestUpdate) SetMemberComment(s string) *RequestUpdate {
	ru.mutation.SetMemberComment(s)
	return ru
}

// SetNillableMemberComment sets the "member_comment" field if the given value is not nil.
func (ru *RequestUpdate) SetNillableMemberComment(s *string) *RequestUpdate {
	if s != nil {
		ru.SetMemberComment(*s)
	}
	return ru
}

// ClearMemberComment clears the value of the "member_comment" field.
func (ru *RequestUpdate) ClearMemberComment() *RequestUpdate {
	ru.mutation.ClearMemberComment()
	return ru
}

// SetAdminComment sets the "admin_comment" field.
func (ru *RequestUpdate) SetAdminComment(s string) *RequestUpdate {
	ru.mutation.SetAdminComment(s)
	return ru
}

// SetNillableAdminComment sets the "admin_comment" field if the given value is not nil.
func (ru *RequestUpdate) SetNillableAdminComment(s *string) *RequestUpdate {
	if s != nil {
		ru.SetAdminComment(*s)
	}
	return ru
}

// ClearAdminComment clears the value of the "admin_comment" field.
func (ru *RequestUpdate) ClearAdminComment() *RequestUpdate {
	ru.mutation.ClearAdminComment()
	return ru
}

// SetDataSourcingID sets the "data_sourcing_id" field.
func (ru *RequestUpdate) SetDataSourcingID(u uuid.UUID) *RequestUpdate {
	ru.mutation.SetDataSourcingID(u)
	return ru
}

// SetNillableDataSourcingID sets the "data_sourcing_id" field if the given value is not nil.
func (ru *RequestUpdate) SetNillableDataSourcingID(u *uuid.UUID) *RequestUpdate {
	if u != nil {
		ru.SetDataSourcingID(*u)
	}
	return ru
}

// ClearDataSourcingID clears the value of the "data_sourcing_id" field.
func (ru *RequestUpdate) ClearDataSourcingID() *RequestUpdate {
	ru.mutation.ClearDataSourcingID()
	return ru
}

// SetLastModifiedDate sets the "last_modified_date" field.
func (ru *RequestUpdate) SetLastModifiedDate(i int64) *RequestUpdate {
	ru.mutation.ResetLastModifiedDate()
	ru.mutation.SetLastModifiedDate(i)
	return ru
}

// SetNillableLastModifiedDate sets the "last_modified_date" field if the given value is not nil.
func (ru *RequestUpdate) SetNillableLastModifiedDate(i *int64) *RequestUpdate {
	if i != nil {
		ru.SetLastModifiedDate(*i)
	}
	return ru
}

// AddLastModifiedDate adds i to the "last_modified_date" field.
func (ru *RequestUpdate) AddLastModifiedDate(i int64) *RequestUpdate {
	ru.mutation.AddLastModifiedDate(i)
	return ru
}

// Mutation returns the RequestMutation object of the builder.
func (ru *RequestUpdate) Mutation() *RequestMutation {
	return ru.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ru *RequestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, ru.sqlSave, ru.mutation, ru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ru *RequestUpdate) SaveX(ctx context.Context) int {
	affected, err := ru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ru *RequestUpdate) Exec(ctx context.Context) error {
	_, err := ru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ru *RequestUpdate) ExecX(ctx context.Context) {
	if err := ru.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ru *RequestUpdate) check() error {
	if v, ok := ru.mutation.State(); ok {
		if err := request.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Request.state": %w`, err)}
		}
	}
	if v, ok := ru.mutation.Priority(); ok {
		if err := request.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Request.priority": %w`, err)}
		}
	}
	return nil
}

func (ru *RequestUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(request.Table, request.Columns, sqlgraph.NewFieldSpec(request.FieldID, field.TypeUUID))
	if ps := ru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ru.mutation.State(); ok {
		_spec.SetField(request.FieldState, field.TypeEnum, value)
	}
	if value, ok := ru.mutation.Priority(); ok {
		_spec.SetField(request.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := ru.mutation.MemberComment(); ok {
		_spec.SetField(request.FieldMemberComment, field.TypeString, value)
	}
	if ru.mutation.MemberCommentCleared() {
		_spec.ClearField(request.FieldMemberComment, field.TypeString)
	}
	if value, ok := ru.mutation.AdminComment(); ok {
		_spec.SetField(request.FieldAdminComment, field.TypeString, value)
	}
	if ru.mutation.AdminCommentCleared() {
		_spec.ClearField(request.FieldAdminComment, field.TypeString)
	}
	if value, ok := ru.mutation.DataSourcingID(); ok {
		_spec.SetField(request.FieldDataSourcingID, field.TypeUUID, value)
	}
	if ru.mutation.DataSourcingIDCleared() {
		_spec.ClearField(request.FieldDataSourcingID, field.TypeUUID)
	}
	if value, ok := ru.mutation.LastModifiedDate(); ok {
		_spec.SetField(request.FieldLastModifiedDate, field.TypeInt64, value)
	}
	if value, ok := ru.mutation.AddedLastModifiedDate(); ok {
		_spec.AddField(request.FieldLastModifiedDate, field.TypeInt64, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{request.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ru.mutation.done = true
	return n, nil
}

// RequestUpdateOne is the builder for updating a single Request entity.
type RequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RequestMutation
}

// SetState sets the "state" field.
func (ruo *RequestUpdateOne) SetState(r request.State) *RequestUpdateOne {
	ruo.mutation.SetState(r)
	return ruo
}

// SetNillableState sets the "state" field if the given value is not nil.
func (ruo *RequestUpdateOne) SetNillableState(r *request.State) *RequestUpdateOne {
	if r != nil {
		ruo.SetState(*r)
	}
	return ruo
}

// SetPriority sets the "priority" field.
func (ruo *RequestUpdateOne) SetPriority(r request.Priority) *RequestUpdateOne {
	ruo.mutation.SetPriority(r)
	return ruo
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (ruo *RequestUpdateOne) SetNillablePriority(r *request.Priority) *RequestUpdateOne {
	if r != nil {
		ruo.SetPriority(*r)
	}
	return ruo
}

// SetMemberComment sets the "member_comment" field.
func (ruo *RequestUpdateOne) SetMemberComment(s string) *RequestUpdateOne {
	ruo.mutation.SetMemberComment(s)
	return ruo
}

// SetNillableMemberComment sets the "member_comment" field if the given value is not nil.
func (ruo *RequestUpdateOne) SetNillableMemberComment(s *string) *RequestUpdateOne {
	if s != nil {
		ruo.SetMemberComment(*s)
	}
	return ruo
}

// ClearMemberComment clears the value of the "member_comment" field.
func (ruo *RequestUpdateOne) ClearMemberComment() *RequestUpdateOne {
	ruo.mutation.ClearMemberComment()
	return ruo
}

// SetAdminComment sets the "admin_comment" field.
func (ruo *RequestUpdateOne) SetAdminComment(s string) *RequestUpdateOne {
	ruo.mutation.SetAdminComment(s)
	return ruo
}

// SetNillableAdminComment sets the "admin_comment" field if the given value is not nil.
func (ruo *RequestUpdateOne) SetNillableAdminComment(s *string) *RequestUpdateOne {
	if s != nil {
		ruo.SetAdminComment(*s)
	}
	return ruo
}

// ClearAdminComment clears the value of the "admin_comment" field.
func (ruo *RequestUpdateOne) ClearAdminComment() *RequestUpdateOne {
	ruo.mutation.ClearAdminComment()
	return ruo
}

// SetDataSourcingID sets the "data_sourcing_id" field.
func (ruo *RequestUpdateOne) SetDataSourcingID(u uuid.UUID) *RequestUpdateOne {
	ruo.mutation.SetDataSourcingID(u)
	return ruo
}

// SetNillableDataSourcingID sets the "data_sourcing_id" field if the given value is not nil.
func (ruo *RequestUpdateOne) SetNillableDataSourcingID(u *uuid.UUID) *RequestUpdateOne {
	if u != nil {
		ruo.SetDataSourcingID(*u)
	}
	return ruo
}

// ClearDataSourcingID clears the value of the "data_sourcing_id" field.
func (ruo *RequestUpdateOne) ClearDataSourcingID() *RequestUpdateOne {
	ruo.mutation.ClearDataSourcingID()
	return ruo
}

// SetLastModifiedDate sets the "last_modified_date" field.
func (ruo *RequestUpdateOne) SetLastModifiedDate(i int64) *RequestUpdateOne {
	ruo.mutation.ResetLastModifiedDate()
	ruo.mutation.SetLastModifiedDate(i)
	return ruo
}

// SetNillableLastModifiedDate sets the "last_modified_date" field if the given value is not nil.
func (ruo *RequestUpdateOne) SetNillableLastModifiedDate(i *int64) *RequestUpdateOne {
	if i != nil {
		ruo.SetLastModifiedDate(*i)
	}
	return ruo
}

// AddLastModifiedDate adds i to the "last_modified_date" field.
func (ruo *RequestUpdateOne) AddLastModifiedDate(i int64) *RequestUpdateOne {
	ruo.mutation.AddLastModifiedDate(i)
	return ruo
}

// Mutation returns the RequestMutation object of the builder.
func (ruo *RequestUpdateOne) Mutation() *RequestMutation {
	return ruo.mutation
}

// Where appends a list predicates to the RequestUpdate builder.
func (ruo *RequestUpdateOne) Where(ps ...predicate.Request) *RequestUpdateOne {
	ruo.mutation.Where(ps...)
	return ruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ruo *RequestUpdateOne) Select(field string, fields ...string) *RequestUpdateOne {
	ruo.fields = append([]string{field}, fields...)
	return ruo
}

// Save executes the query and returns the updated Request entity.
func (ruo *RequestUpdateOne) Save(ctx context.Context) (*Request, error) {
	return withHooks(ctx, ruo.sqlSave, ruo.mutation, ruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ruo *RequestUpdateOne) SaveX(ctx context.Context) *Request {
	node, err := ruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ruo *RequestUpdateOne) Exec(ctx context.Context) error {
	_, err := ruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ruo *RequestUpdateOne) ExecX(ctx context.Context) {
	if err := ruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ruo *RequestUpdateOne) check() error {
	if v, ok := ruo.mutation.State(); ok {
		if err := request.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Request.state": %w`, err)}
		}
	}
	if v, ok := ruo.mutation.Priority(); ok {
		if err := request.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Request.priority": %w`, err)}
		}
	}
	return nil
}

func (ruo *RequestUpdateOne) sqlSave(ctx context.Context) (_node *Request, err error) {
	if err := ruo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(request.Table, request.Columns, sqlgraph.NewFieldSpec(request.FieldID, field.TypeUUID))
	id, ok := ruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Request.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, request.FieldID)
		for _, f := range fields {
			if !request.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != request.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ruo.mutation.State(); ok {
		_spec.SetField(request.FieldState, field.TypeEnum, value)
	}
	if value, ok := ruo.mutation.Priority(); ok {
		_spec.SetField(request.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := ruo.mutation.MemberComment(); ok {
		_spec.SetField(request.FieldMemberComment, field.TypeString, value)
	}
	if ruo.mutation.MemberCommentCleared() {
		_spec.ClearField(request.FieldMemberComment, field.TypeString)
	}
	if value, ok := ruo.mutation.AdminComment(); ok {
		_spec.SetField(request.FieldAdminComment, field.TypeString, value)
	}
	if ruo.mutation.AdminCommentCleared() {
		_spec.ClearField(request.FieldAdminComment, field.TypeString)
	}
	if value, ok := ruo.mutation.DataSourcingID(); ok {
		_spec.SetField(request.FieldDataSourcingID, field.TypeUUID, value)
	}
	if ruo.mutation.DataSourcingIDCleared() {
		_spec.ClearField(request.FieldDataSourcingID, field.TypeUUID)
	}
	if value, ok := ruo.mutation.LastModifiedDate(); ok {
		_spec.SetField(request.FieldLastModifiedDate, field.TypeInt64, value)
	}
	if value, ok := ruo.mutation.AddedLastModifiedDate(); ok {
		_spec.AddField(request.FieldLastModifiedDate, field.TypeInt64, value)
	}
	_node = &Request{config: ruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{request.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ruo.mutation.done = true
	return _node, nil
}
