// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/d-fine/dataland-sourcing-service/internal/ent/request"
	"github.com/google/uuid"
)

// RequestCreate is the builder for creating a Request entity.
type RequestCreate struct {
	config
	mutation *RequestMutation
	hooks    []Hook
}

// SetCompanyID sets the "company_id" field.
func (rc *RequestCreate) SetCompanyID(s string) *RequestCreate {
	rc.mutation.SetCompanyID(s)
	return rc
}

// SetDataType sets the "data_type" field.
func (rc *RequestCreate) SetDataType(s string) *RequestCreate {
	rc.mutation.SetDataType(s)
	return rc
}

// SetReportingPeriod sets the "reporting_period" field.
func (rc *RequestCreate) SetReportingPeriod(s string) *RequestCreate {
	rc.mutation.SetReportingPeriod(s)
	return rc
}

// SetUserID sets the "user_id" field.
func (rc *RequestCreate) SetUserID(s string) *RequestCreate {
	rc.mutation.SetUserID(s)
	return rc
}

// SetState sets the "state" field.
func (rc *RequestCreate) SetState(r request.State) *RequestCreate {
	rc.mutation.SetState(r)
	return rc
}

// SetNillableState sets the "state" field if the given value is not nil.
func (rc *RequestCreate) SetNillableState(r *request.State) *RequestCreate {
	if r != nil {
		rc.SetState(*r)
	}
	return rc
}

// SetPriority sets the "priority" field.
func (rc *RequestCreate) SetPriority(r request.Priority) *RequestCreate {
	rc.mutation.SetPriority(r)
	return rc
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (rc *RequestCreate) SetNillablePriority(r *request.Priority) *RequestCreate {
	if r != nil {
		rc.SetPriority(*r)
	}
	return rc
}

// SetMemberComment sets the "member_comment" field.
func (rc *RequestCreate) SetMemberComment(s string) *RequestCreate {
	rc.mutation.SetMemberComment(s)
	return rc
}

// SetNillableMemberComment sets the "member_comment" field if the given value is not nil.
func (rc *RequestCreate) SetNillableMemberComment(s *string) *RequestCreate {
	if s != nil {
		rc.SetMemberComment(*s)
	}
	return rc
}

// SetAdminComment sets the "admin_comment" field.
func (rc *RequestCreate) SetAdminComment(s string) *RequestCreate {
	rc.mutation.SetAdminComment(s)
	return rc
}

// SetNillableAdminComment sets the "admin_comment" field if the given value is not nil.
func (rc *RequestCreate) SetNillableAdminComment(s *string) *RequestCreate {
	if s != nil {
		rc.SetAdminComment(*s)
	}
	return rc
}

// SetDataSourcingID sets the "data_sourcing_id" field.
func (rc *RequestCreate) SetDataSourcingID(u uuid.UUID) *RequestCreate {
	rc.mutation.SetDataSourcingID(u)
	return rc
}

// SetNillableDataSourcingID sets the "data_sourcing_id" field if the given value is not nil.
func (rc *RequestCreate) SetNillableDataSourcingID(u *uuid.UUID) *RequestCreate {
	if u != nil {
		rc.SetDataSourcingID(*u)
	}
	return rc
}

// SetCreationTimestamp sets the "creation_timestamp" field.
func (rc *RequestCreate) SetCreationTimestamp(i int64) *RequestCreate {
	rc.mutation.SetCreationTimestamp(i)
	return rc
}

// SetLastModifiedDate sets the "last_modified_date" field.
func (rc *RequestCreate) SetLastModifiedDate(i int64) *RequestCreate {
	rc.mutation.SetLastModifiedDate(i)
	return rc
}

// SetID sets the "id" field.
func (rc *RequestCreate) SetID(u uuid.UUID) *RequestCreate {
	rc.mutation.SetID(u)
	return rc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (rc *RequestCreate) SetNillableID(u *uuid.UUID) *RequestCreate {
	if u != nil {
		rc.SetID(*u)
	}
	return rc
}

// Mutation returns the RequestMutation object of the builder.
func (rc *RequestCreate) Mutation() *RequestMutation {
	return rc.mutation
}

// Save creates the Request in the database.
func (rc *RequestCreate) Save(ctx context.Context) (*Request, error) {
	rc.defaults()
	return withHooks(ctx, rc.sqlSave, rc.mutation, rc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (rc *RequestCreate) SaveX(ctx context.Context) *Request {
	v, err := rc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rc *RequestCreate) Exec(ctx context.Context) error {
	_, err := rc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rc *RequestCreate) ExecX(ctx context.Context) {
	if err := rc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (rc *RequestCreate) defaults() {
	if _, ok := rc.mutation.State(); !ok {
		v := request.DefaultState
		rc.mutation.SetState(v)
	}
	if _, ok := rc.mutation.Priority(); !ok {
		v := request.DefaultPriority
		rc.mutation.SetPriority(v)
	}
	if _, ok := rc.mutation.ID(); !ok {
		v := request.DefaultID()
		rc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rc *RequestCreate) check() error {
	if _, ok := rc.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "Request.company_id"`)}
	}
	if v, ok := rc.mutation.CompanyID(); ok {
		if err := request.CompanyIDValidator(v); err != nil {
			return &ValidationError{Name: "company_id", err: fmt.Errorf(`ent: validator failed for field "Request.company_id": %w`, err)}
		}
	}
	if _, ok := rc.mutation.DataType(); !ok {
		return &ValidationError{Name: "data_type", err: errors.New(`ent: missing required field "Request.data_type"`)}
	}
	if v, ok := rc.mutation.DataType(); ok {
		if err := request.DataTypeValidator(v); err != nil {
			return &ValidationError{Name: "data_type", err: fmt.Errorf(`ent: validator failed for field "Request.data_type": %w`, err)}
		}
	}
	if _, ok := rc.mutation.ReportingPeriod(); !ok {
		return &ValidationError{Name: "reporting_period", err: errors.New(`ent: missing required field "Request.reporting_period"`)}
	}
	if v, ok := rc.mutation.ReportingPeriod(); ok {
		if err := request.ReportingPeriodValidator(v); err != nil {
			return &ValidationError{Name: "reporting_period", err: fmt.Errorf(`ent: validator failed for field "Request.reporting_period": %w`, err)}
		}
	}
	if _, ok := rc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Request.user_id"`)}
	}
	if v, ok := rc.mutation.UserID(); ok {
		if err := request.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Request.user_id": %w`, err)}
		}
	}
	if _, ok := rc.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Request.state"`)}
	}
	if v, ok := rc.mutation.State(); ok {
		if err := request.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Request.state": %w`, err)}
		}
	}
	if _, ok := rc.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Request.priority"`)}
	}
	if v, ok := rc.mutation.Priority(); ok {
		if err := request.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Request.priority": %w`, err)}
		}
	}
	if _, ok := rc.mutation.CreationTimestamp(); !ok {
		return &ValidationError{Name: "creation_timestamp", err: errors.New(`ent: missing required field "Request.creation_timestamp"`)}
	}
	if _, ok := rc.mutation.LastModifiedDate(); !ok {
		return &ValidationError{Name: "last_modified_date", err: errors.New(`ent: missing required field "Request.last_modified_date"`)}
	}
	return nil
}

func (rc *RequestCreate) sqlSave(ctx context.Context) (*Request, error) {
	if err := rc.check(); err != nil {
		return nil, err
	}
	_node, _spec := rc.createSpec()
	if err := sqlgraph.CreateNode(ctx, rc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	rc.mutation.id = &_node.ID
	rc.mutation.done = true
	return _node, nil
}

func (rc *RequestCreate) createSpec() (*Request, *sqlgraph.CreateSpec) {
	var (
		_node = &Request{config: rc.config}
		_spec = sqlgraph.NewCreateSpec(request.Table, sqlgraph.NewFieldSpec(request.FieldID, field.TypeUUID))
	)
	if id, ok := rc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := rc.mutation.CompanyID(); ok {
		_spec.SetField(request.FieldCompanyID, field.TypeString, value)
		_node.CompanyID = value
	}
	if value, ok := rc.mutation.DataType(); ok {
		_spec.SetField(request.FieldDataType, field.TypeString, value)
		_node.DataType = value
	}
	if value, ok := rc.mutation.ReportingPeriod(); ok {
		_spec.SetField(request.FieldReportingPeriod, field.TypeString, value)
		_node.ReportingPeriod = value
	}
	if value, ok := rc.mutation.UserID(); ok {
		_spec.SetField(request.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := rc.mutation.State(); ok {
		_spec.SetField(request.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := rc.mutation.Priority(); ok {
		_spec.SetField(request.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := rc.mutation.MemberComment(); ok {
		_spec.SetField(request.FieldMemberComment, field.TypeString, value)
		_node.MemberComment = &value
	}
	if value, ok := rc.mutation.AdminComment(); ok {
		_spec.SetField(request.FieldAdminComment, field.TypeString, value)
		_node.AdminComment = &value
	}
	if value, ok := rc.mutation.DataSourcingID(); ok {
		_spec.SetField(request.FieldDataSourcingID, field.TypeUUID, value)
		_node.DataSourcingID = &value
	}
	if value, ok := rc.mutation.CreationTimestamp(); ok {
		_spec.SetField(request.FieldCreationTimestamp, field.TypeInt64, value)
		_node.CreationTimestamp = value
	}
	if value, ok := rc.mutation.LastModifiedDate(); ok {
		_spec.SetField(request.FieldLastModifiedDate, field.TypeInt64, value)
		_node.LastModifiedDate = value
	}
	return _node, _spec
}

// RequestCreateBulk is the builder for creating many Request entities in bulk.
type RequestCreateBulk struct {
	config
	err      error
	builders []*RequestCreate
}

// Save creates the Request entities in the database.
func (rcb *RequestCreateBulk) Save(ctx context.Context) ([]*Request, error) {
	if rcb.err != nil {
		return nil, rcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(rcb.builders))
	nodes := make([]*Request, len(rcb.builders))
	mutators := make([]Mutator, len(rcb.builders))
	for i := range rcb.builders {
		func(i int, root context.Context) {
			builder := rcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RequestMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, rcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, rcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, rcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (rcb *RequestCreateBulk) SaveX(ctx context.Context) []*Request {
	v, err := rcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rcb *RequestCreateBulk) Exec(ctx context.Context) error {
	_, err := rcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rcb *RequestCreateBulk) ExecX(ctx context.Context) {
	if err := rcb.Exec(ctx); err != nil {
		panic(err)
	}
}
