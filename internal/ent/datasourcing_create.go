// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/d-fine/dataland-sourcing-service/internal/ent/datasourcing"
	"github.com/google/uuid"
)

// DataSourcingCreate is the builder for creating a DataSourcing entity.
type DataSourcingCreate struct {
	config
	mutation *DataSourcingMutation
	hooks    []Hook
}

// SetCompanyID sets the "company_id" field.
func (dsc *DataSourcingCreate) SetCompanyID(s string) *DataSourcingCreate {
	dsc.mutation.SetCompanyID(s)
	return dsc
}

// SetDataType sets the "data_type" field.
func (dsc *DataSourcingCreate) SetDataType(s string) *DataSourcingCreate {
	dsc.mutation.SetDataType(s)
	return dsc
}

// SetReportingPeriod sets the "reporting_period" field.
func (dsc *DataSourcingCreate) SetReportingPeriod(s string) *DataSourcingCreate {
	dsc.mutation.SetReportingPeriod(s)
	return dsc
}

// SetState sets the "state" field.
func (dsc *DataSourcingCreate) SetState(d datasourcing.State) *DataSourcingCreate {
	dsc.mutation.SetState(d)
	return dsc
}

// SetNillableState sets the "state" field if the given value is not nil.
func (dsc *DataSourcingCreate) SetNillableState(d *datasourcing.State) *DataSourcingCreate {
	if d != nil {
		dsc.SetState(*d)
	}
	return dsc
}

// SetDocumentCollector sets the "document_collector" field.
func (dsc *DataSourcingCreate) SetDocumentCollector(s string) *DataSourcingCreate {
	dsc.mutation.SetDocumentCollector(s)
	return dsc
}

// SetNillableDocumentCollector sets the "document_collector" field if the given value is not nil.
func (dsc *DataSourcingCreate) SetNillableDocumentCollector(s *string) *DataSourcingCreate {
	if s != nil {
		dsc.SetDocumentCollector(*s)
	}
	return dsc
}

// SetDataExtractor sets the "data_extractor" field.
func (dsc *DataSourcingCreate) SetDataExtractor(s string) *DataSourcingCreate {
	dsc.mutation.SetDataExtractor(s)
	return dsc
}

// SetNillableDataExtractor sets the "data_extractor" field if the given value is not nil.
func (dsc *DataSourcingCreate) SetNillableDataExtractor(s *string) *DataSourcingCreate {
	if s != nil {
		dsc.SetDataExtractor(*s)
	}
	return dsc
}

// SetDateOfNextDocumentSourcingAttempt sets the "date_of_next_document_sourcing_attempt" field.
func (dsc *DataSourcingCreate) SetDateOfNextDocumentSourcingAttempt(t time.Time) *DataSourcingCreate {
	dsc.mutation.SetDateOfNextDocumentSourcingAttempt(t)
	return dsc
}

// SetNillableDateOfNextDocumentSourcingAttempt sets the "date_of_next_document_sourcing_attempt" field if the given value is not nil.
func (dsc *DataSourcingCreate) SetNillableDateOfNextDocumentSourcingAttempt(t *time.Time) *DataSourcingCreate {
	if t != nil {
		dsc.SetDateOfNextDocumentSourcingAttempt(*t)
	}
	return dsc
}

// SetAdminComment sets the "admin_comment" field.
func (dsc *DataSourcingCreate) SetAdminComment(s string) *DataSourcingCreate {
	dsc.mutation.SetAdminComment(s)
	return dsc
}

// SetNillableAdminComment sets the "admin_comment" field if the given value is not nil.
func (dsc *DataSourcingCreate) SetNillableAdminComment(s *string) *DataSourcingCreate {
	if s != nil {
		dsc.SetAdminComment(*s)
	}
	return dsc
}

// SetPriorityOverride sets the "priority_override" field.
func (dsc *DataSourcingCreate) SetPriorityOverride(do datasourcing.PriorityOverride) *DataSourcingCreate {
	dsc.mutation.SetPriorityOverride(do)
	return dsc
}

// SetNillablePriorityOverride sets the "priority_override" field if the given value is not nil.
func (dsc *DataSourcingCreate) SetNillablePriorityOverride(do *datasourcing.PriorityOverride) *DataSourcingCreate {
	if do != nil {
		dsc.SetPriorityOverride(*do)
	}
	return dsc
}

// SetDocuments sets the "documents" field.
func (dsc *DataSourcingCreate) SetDocuments(s []string) *DataSourcingCreate {
	dsc.mutation.SetDocuments(s)
	return dsc
}

// SetLastModifiedDate sets the "last_modified_date" field.
func (dsc *DataSourcingCreate) SetLastModifiedDate(i int64) *DataSourcingCreate {
	dsc.mutation.SetLastModifiedDate(i)
	return dsc
}

// SetID sets the "id" field.
func (dsc *DataSourcingCreate) SetID(u uuid.UUID) *DataSourcingCreate {
	dsc.mutation.SetID(u)
	return dsc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (dsc *DataSourcingCreate) SetNillableID(u *uuid.UUID) *DataSourcingCreate {
	if u != nil {
		dsc.SetID(*u)
	}
	return dsc
}

// Mutation returns the DataSourcingMutation object of the builder.
func (dsc *DataSourcingCreate) Mutation() *DataSourcingMutation {
	return dsc.mutation
}

// Save creates the DataSourcing in the database.
func (dsc *DataSourcingCreate) Save(ctx context.Context) (*DataSourcing, error) {
	dsc.defaults()
	return withHooks(ctx, dsc.sqlSave, dsc.mutation, dsc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (dsc *DataSourcingCreate) SaveX(ctx context.Context) *DataSourcing {
	v, err := dsc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (dsc *DataSourcingCreate) Exec(ctx context.Context) error {
	_, err := dsc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dsc *DataSourcingCreate) ExecX(ctx context.Context) {
	if err := dsc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (dsc *DataSourcingCreate) defaults() {
	if _, ok := dsc.mutation.State(); !ok {
		v := datasourcing.DefaultState
		dsc.mutation.SetState(v)
	}
	if _, ok := dsc.mutation.ID(); !ok {
		v := datasourcing.DefaultID()
		dsc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (dsc *DataSourcingCreate) check() error {
	if _, ok := dsc.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "DataSourcing.company_id"`)}
	}
	if v, ok := dsc.mutation.CompanyID(); ok {
		if err := datasourcing.CompanyIDValidator(v); err != nil {
			return &ValidationError{Name: "company_id", err: fmt.Errorf(`ent: validator failed for field "DataSourcing.company_id": %w`, err)}
		}
	}
	if _, ok := dsc.mutation.DataType(); !ok {
		return &ValidationError{Name: "data_type", err: errors.New(`ent: missing required field "DataSourcing.data_type"`)}
	}
	if v, ok := dsc.mutation.DataType(); ok {
		if err := datasourcing.DataTypeValidator(v); err != nil {
			return &ValidationError{Name: "data_type", err: fmt.Errorf(`ent: validator failed for field "DataSourcing.data_type": %w`, err)}
		}
	}
	if _, ok := dsc.mutation.ReportingPeriod(); !ok {
		return &ValidationError{Name: "reporting_period", err: errors.New(`ent: missing required field "DataSourcing.reporting_period"`)}
	}
	if v, ok := dsc.mutation.ReportingPeriod(); ok {
		if err := datasourcing.ReportingPeriodValidator(v); err != nil {
			return &ValidationError{Name: "reporting_period", err: fmt.Errorf(`ent: validator failed for field "DataSourcing.reporting_period": %w`, err)}
		}
	}
	if _, ok := dsc.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "DataSourcing.state"`)}
	}
	if v, ok := dsc.mutation.State(); ok {
		if err := datasourcing.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "DataSourcing.state": %w`, err)}
		}
	}
	if v, ok := dsc.mutation.PriorityOverride(); ok {
		if err := datasourcing.PriorityOverrideValidator(v); err != nil {
			return &ValidationError{Name: "priority_override", err: fmt.Errorf(`ent: validator failed for field "DataSourcing.priority_override": %w`, err)}
		}
	}
	if _, ok := dsc.mutation.LastModifiedDate(); !ok {
		return &ValidationError{Name: "last_modified_date", err: errors.New(`ent: missing required field "DataSourcing.last_modified_date"`)}
	}
	return nil
}

func (dsc *DataSourcingCreate) sqlSave(ctx context.Context) (*DataSourcing, error) {
	if err := dsc.check(); err != nil {
		return nil, err
	}
	_node, _spec := dsc.createSpec()
	if err := sqlgraph.CreateNode(ctx, dsc.driver, _spec); err != nil {
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
	dsc.mutation.id = &_node.ID
	dsc.mutation.done = true
	return _node, nil
}

func (dsc *DataSourcingCreate) createSpec() (*DataSourcing, *sqlgraph.CreateSpec) {
	var (
		_node = &DataSourcing{config: dsc.config}
		_spec = sqlgraph.NewCreateSpec(datasourcing.Table, sqlgraph.NewFieldSpec(datasourcing.FieldID, field.TypeUUID))
	)
	if id, ok := dsc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := dsc.mutation.CompanyID(); ok {
		_spec.SetField(datasourcing.FieldCompanyID, field.TypeString, value)
		_node.CompanyID = value
	}
	if value, ok := dsc.mutation.DataType(); ok {
		_spec.SetField(datasourcing.FieldDataType, field.TypeString, value)
		_node.DataType = value
	}
	if value, ok := dsc.mutation.ReportingPeriod(); ok {
		_spec.SetField(datasourcing.FieldReportingPeriod, field.TypeString, value)
		_node.ReportingPeriod = value
	}
	if value, ok := dsc.mutation.State(); ok {
		_spec.SetField(datasourcing.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := dsc.mutation.DocumentCollector(); ok {
		_spec.SetField(datasourcing.FieldDocumentCollector, field.TypeString, value)
		_node.DocumentCollector = &value
	}
	if value, ok := dsc.mutation.DataExtractor(); ok {
		_spec.SetField(datasourcing.FieldDataExtractor, field.TypeString, value)
		_node.DataExtractor = &value
	}
	if value, ok := dsc.mutation.DateOfNextDocumentSourcingAttempt(); ok {
		_spec.SetField(datasourcing.FieldDateOfNextDocumentSourcingAttempt, field.TypeTime, value)
		_node.DateOfNextDocumentSourcingAttempt = &value
	}
	if value, ok := dsc.mutation.AdminComment(); ok {
		_spec.SetField(datasourcing.FieldAdminComment, field.TypeString, value)
		_node.AdminComment = &value
	}
	if value, ok := dsc.mutation.PriorityOverride(); ok {
		_spec.SetField(datasourcing.FieldPriorityOverride, field.TypeEnum, value)
		_node.PriorityOverride = &value
	}
	if value, ok := dsc.mutation.Documents(); ok {
		_spec.SetField(datasourcing.FieldDocuments, field.TypeJSON, value)
		_node.Documents = value
	}
	if value, ok := dsc.mutation.LastModifiedDate(); ok {
		_spec.SetField(datasourcing.FieldLastModifiedDate, field.TypeInt64, value)
		_node.LastModifiedDate = value
	}
	return _node, _spec
}

// DataSourcingCreateBulk is the builder for creating many DataSourcing entities in bulk.
type DataSourcingCreateBulk struct {
	config
	err      error
	builders []*DataSourcingCreate
}

// Save creates the DataSourcing entities in the database.
func (dscb *DataSourcingCreateBulk) Save(ctx context.Context) ([]*DataSourcing, error) {
	if dscb.err != nil {
		return nil, dscb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(dscb.builders))
	nodes := make([]*DataSourcing, len(dscb.builders))
	mutators := make([]Mutator, len(dscb.builders))
	for i := range dscb.builders {
		func(i int, root context.Context) {
			builder := dscb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DataSourcingMutation)
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
					_, err = mutators[i+1].Mutate(root, dscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, dscb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, dscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (dscb *DataSourcingCreateBulk) SaveX(ctx context.Context) []*DataSourcing {
	v, err := dscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (dscb *DataSourcingCreateBulk) Exec(ctx context.Context) error {
	_, err := dscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dscb *DataSourcingCreateBulk) ExecX(ctx context.Context) {
	if err := dscb.Exec(ctx); err != nil {
		panic(err)
	}
}
