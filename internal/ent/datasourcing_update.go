// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/d-fine/dataland-sourcing-service/internal/ent/datasourcing"
	"github.com/d-fine/dataland-sourcing-service/internal/ent/predicate"
)

// DataSourcingUpdate is the builder for updating DataSourcing entities.
type DataSourcingUpdate struct {
	config
	hooks    []Hook
	mutation *DataSourcingMutation
}

// Where appends a list predicates to the DataSourcingUpdate builder.
func (dsu *DataSourcingUpdate) Where(ps ...predicate.DataSourcing) *DataSourcingUpdate {
	dsu.mutation.Where(ps...)
	return dsu
}

// SetState sets the "state" field.
func (dsu *DataSourcingUpdate) SetState(d datasourcing.State) *DataSourcingUpdate {
	dsu.mutation.SetState(d)
	return dsu
}

// SetNillableState sets the "state" field if the given value is not nil.
func (dsu *DataSourcingUpdate) SetNillableState(d *datasourcing.State) *DataSourcingUpdate {
	if d != nil {
		dsu.SetState(*d)
	}
	return dsu
}

// SetDocumentCollector sets the "document_collector" field.
func (dsu *DataSourcingUpdate) SetDocumentCollector(s string) *DataSourcingUpdate {
	dsu.mutation.SetDocumentCollector(s)
	return dsu
}

// SetNillableDocumentCollector sets the "document_collector" field if the given value is not nil.
func (dsu *DataSourcingUpdate) SetNillableDocumentCollector(s *string) *DataSourcingUpdate {
	if s != nil {
		dsu.SetDocumentCollector(*s)
	}
	return dsu
}

// ClearDocumentCollector clears the value of the "document_collector" field.
func (dsu *DataSourcingUpdate) ClearDocumentCollector() *DataSourcingUpdate {
	dsu.mutation.ClearDocumentCollector()
	return dsu
}

// SetDataExtractor sets the "data_extractor" field.
func (dsu *DataSourcingUpdate) SetDataExtractor(s string) *DataSourcingUpdate {
	dsu.mutation.SetDataExtractor(s)
	return dsu
}

// SetNillableDataExtractor sets the "data_extractor" field if the given value is not nil.
func (dsu *DataSourcingUpdate) SetNillableDataExtractor(s *string) *DataSourcingUpdate {
	if s != nil {
		dsu.SetDataExtractor(*s)
	}
	return dsu
}

// ClearDataExtractor clears the value of the "data_extractor" field.
func (dsu *DataSourcingUpdate) ClearDataExtractor() *DataSourcingUpdate {
	dsu.mutation.ClearDataExtractor()
	return dsu
}

// SetDateOfNextDocumentSourcingAttempt sets the "date_of_next_document_sourcing_attempt" field.
func (dsu *DataSourcingUpdate) SetDateOfNextDocumentSourcingAttempt(t time.Time) *DataSourcingUpdate {
	dsu.mutation.SetDateOfNextDocumentSourcingAttempt(t)
	return dsu
}

// SetNillableDateOfNextDocumentSourcingAttempt sets the "date_of_next_document_sourcing_attempt" field if the given value is not nil.
func (dsu *DataSourcingUpdate) SetNillableDateOfNextDocumentSourcingAttempt(t *time.Time) *DataSourcingUpdate {
	if t != nil {
		dsu.SetDateOfNextDocumentSourcingAttempt(*t)
	}
	return dsu
}

// ClearDateOfNextDocumentSourcingAttempt clears the value of the "date_of_next_document_sourcing_attempt" field.
func (dsu *DataSourcingUpdate) ClearDateOfNextDocumentSourcingAttempt() *DataSourcingUpdate {
	dsu.mutation.ClearDateOfNextDocumentSourcingAttempt()
	return dsu
}

// SetAdminComment sets the "admin_comment" field.
func (dsu *DataSourcingUpdate) SetAdminComment(s string) *DataSourcingUpdate {
	dsu.mutation.SetAdminComment(s)
	return dsu
}

// SetNillableAdminComment sets the "admin_comment" field if the given value is not nil.
func (dsu *DataSourcingUpdate) SetNillableAdminComment(s *string) *DataSourcingUpdate {
	if s != nil {
		dsu.SetAdminComment(*s)
	}
	return dsu
}

// ClearAdminComment clears the value of the "admin_comment" field.
func (dsu *DataSourcingUpdate) ClearAdminComment() *DataSourcingUpdate {
	dsu.mutation.ClearAdminComment()
	return dsu
}

// SetPriorityOverride sets the "priority_override" field.
func (dsu *DataSourcingUpdate) SetPriorityOverride(do datasourcing.PriorityOverride) *DataSourcingUpdate {
	dsu.mutation.SetPriorityOverride(do)
	return dsu
}

// SetNillablePriorityOverride sets the "priority_override" field if the given value is not nil.
func (dsu *DataSourcingUpdate) SetNillablePriorityOverride(do *datasourcing.PriorityOverride) *DataSourcingUpdate {
	if do != nil {
		dsu.SetPriorityOverride(*do)
	}
	return dsu
}

// ClearPriorityOverride clears the value of the "priority_override" field.
func (dsu *DataSourcingUpdate) ClearPriorityOverride() *DataSourcingUpdate {
	dsu.mutation.ClearPriorityOverride()
	return dsu
}

// SetDocuments sets the "documents" field.
func (dsu *DataSourcingUpdate) SetDocuments(s []string) *DataSourcingUpdate {
	dsu.mutation.SetDocuments(s)
	return dsu
}

// AppendDocuments appends s to the "documents" field.
func (dsu *DataSourcingUpdate) AppendDocuments(s []string) *DataSourcingUpdate {
	dsu.mutation.AppendDocuments(s)
	return dsu
}

// ClearDocuments clears the value of the "documents" field.
func (dsu *DataSourcingUpdate) ClearDocuments() *DataSourcingUpdate {
	dsu.mutation.ClearDocuments()
	return dsu
}

// SetLastModifiedDate sets the "last_modified_date" field.
func (dsu *DataSourcingUpdate) SetLastModifiedDate(i int64) *DataSourcingUpdate {
	dsu.mutation.ResetLastModifiedDate()
	dsu.mutation.SetLastModifiedDate(i)
	return dsu
}

// SetNillableLastModifiedDate sets the "last_modified_date" field if the given value is not nil.
func (dsu *DataSourcingUpdate) SetNillableLastModifiedDate(i *int64) *DataSourcingUpdate {
	if i != nil {
		dsu.SetLastModifiedDate(*i)
	}
	return dsu
}

// AddLastModifiedDate adds i to the "last_modified_date" field.
func (dsu *DataSourcingUpdate) AddLastModifiedDate(i int64) *DataSourcingUpdate {
	dsu.mutation.AddLastModifiedDate(i)
	return dsu
}

// Mutation returns the DataSourcingMutation object of the builder.
func (dsu *DataSourcingUpdate) Mutation() *DataSourcingMutation {
	return dsu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (dsu *DataSourcingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, dsu.sqlSave, dsu.mutation, dsu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (dsu *DataSourcingUpdate) SaveX(ctx context.Context) int {
	affected, err := dsu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (dsu *DataSourcingUpdate) Exec(ctx context.Context) error {
	_, err := dsu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dsu *DataSourcingUpdate) ExecX(ctx context.Context) {
	if err := dsu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (dsu *DataSourcingUpdate) check() error {
	if v, ok := dsu.mutation.State(); ok {
		if err := datasourcing.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "DataSourcing.state": %w`, err)}
		}
	}
	if v, ok := dsu.mutation.PriorityOverride(); ok {
		if err := datasourcing.PriorityOverrideValidator(v); err != nil {
			return &ValidationError{Name: "priority_override", err: fmt.Errorf(`ent: validator failed for field "DataSourcing.priority_override": %w`, err)}
		}
	}
	return nil
}

func (dsu *DataSourcingUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := dsu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(datasourcing.Table, datasourcing.Columns, sqlgraph.NewFieldSpec(datasourcing.FieldID, field.TypeUUID))
	if ps := dsu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := dsu.mutation.State(); ok {
		_spec.SetField(datasourcing.FieldState, field.TypeEnum, value)
	}
	if value, ok := dsu.mutation.DocumentCollector(); ok {
		_spec.SetField(datasourcing.FieldDocumentCollector, field.TypeString, value)
	}
	if dsu.mutation.DocumentCollectorCleared() {
		_spec.ClearField(datasourcing.FieldDocumentCollector, field.TypeString)
	}
	if value, ok := dsu.mutation.DataExtractor(); ok {
		_spec.SetField(datasourcing.FieldDataExtractor, field.TypeString, value)
	}
	if dsu.mutation.DataExtractorCleared() {
		_spec.ClearField(datasourcing.FieldDataExtractor, field.TypeString)
	}
	if value, ok := dsu.mutation.DateOfNextDocumentSourcingAttempt(); ok {
		_spec.SetField(datasourcing.FieldDateOfNextDocumentSourcingAttempt, field.TypeTime, value)
	}
	if dsu.mutation.DateOfNextDocumentSourcingAttemptCleared() {
		_spec.ClearField(datasourcing.FieldDateOfNextDocumentSourcingAttempt, field.TypeTime)
	}
	if value, ok := dsu.mutation.AdminComment(); ok {
		_spec.SetField(datasourcing.FieldAdminComment, field.TypeString, value)
	}
	if dsu.mutation.AdminCommentCleared() {
		_spec.ClearField(datasourcing.FieldAdminComment, field.TypeString)
	}
	if value, ok := dsu.mutation.PriorityOverride(); ok {
		_spec.SetField(datasourcing.FieldPriorityOverride, field.TypeEnum, value)
	}
	if dsu.mutation.PriorityOverrideCleared() {
		_spec.ClearField(datasourcing.FieldPriorityOverride, field.TypeEnum)
	}
	if value, ok := dsu.mutation.Documents(); ok {
		_spec.SetField(datasourcing.FieldDocuments, field.TypeJSON, value)
	}
	if value, ok := dsu.mutation.AppendedDocuments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, datasourcing.FieldDocuments, value)
		})
	}
	if dsu.mutation.DocumentsCleared() {
		_spec.ClearField(datasourcing.FieldDocuments, field.TypeJSON)
	}
	if value, ok := dsu.mutation.LastModifiedDate(); ok {
		_spec.SetField(datasourcing.FieldLastModifiedDate, field.TypeInt64, value)
	}
	if value, ok := dsu.mutation.AddedLastModifiedDate(); ok {
		_spec.AddField(datasourcing.FieldLastModifiedDate, field.TypeInt64, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, dsu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{datasourcing.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	dsu.mutation.done = true
	return n, nil
}

// DataSourcingUpdateOne is the builder for updating a single DataSourcing entity.
type DataSourcingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DataSourcingMutation
}

// SetState sets the "state" field.
func (dsuo *DataSourcingUpdateOne) SetState(d datasourcing.State) *DataSourcingUpdateOne {
	dsuo.mutation.SetState(d)
	return dsuo
}

// SetNillableState sets the "state" field if the given value is not nil.
func (dsuo *DataSourcingUpdateOne) SetNillableState(d *datasourcing.State) *DataSourcingUpdateOne {
	if d != nil {
		dsuo.SetState(*d)
	}
	return dsuo
}

// SetDocumentCollector sets the "document_collector" field.
func (dsuo *DataSourcingUpdateOne) SetDocumentCollector(s string) *DataSourcingUpdateOne {
	dsuo.mutation.SetDocumentCollector(s)
	return dsuo
}

// SetNillableDocumentCollector sets the "document_collector" field if the given value is not nil.
func (dsuo *DataSourcingUpdateOne) SetNillableDocumentCollector(s *string) *DataSourcingUpdateOne {
	if s != nil {
		dsuo.SetDocumentCollector(*s)
	}
	return dsuo
}

// ClearDocumentCollector clears the value of the "document_collector" field.
func (dsuo *DataSourcingUpdateOne) ClearDocumentCollector() *DataSourcingUpdateOne {
	dsuo.mutation.ClearDocumentCollector()
	return dsuo
}

// SetDataExtractor sets the "data_extractor" field.
func (dsuo *DataSourcingUpdateOne) SetDataExtractor(s string) *DataSourcingUpdateOne {
	dsuo.mutation.SetDataExtractor(s)
	return dsuo
}

// SetNillableDataExtractor sets the "data_extractor" field if the given value is not nil.
func (dsuo *DataSourcingUpdateOne) SetNillableDataExtractor(s *string) *DataSourcingUpdateOne {
	if s != nil {
		dsuo.SetDataExtractor(*s)
	}
	return dsuo
}

// ClearDataExtractor clears the value of the "data_extractor" field.
func (dsuo *DataSourcingUpdateOne) ClearDataExtractor() *DataSourcingUpdateOne {
	dsuo.mutation.ClearDataExtractor()
	return dsuo
}

// SetDateOfNextDocumentSourcingAttempt sets the "date_of_next_document_sourcing_attempt" field.
func (dsuo *DataSourcingUpdateOne) SetDateOfNextDocumentSourcingAttempt(t time.Time) *DataSourcingUpdateOne {
	dsuo.mutation.SetDateOfNextDocumentSourcingAttempt(t)
	return dsuo
}

// SetNillableDateOfNextDocumentSourcingAttempt sets the "date_of_next_document_sourcing_attempt" field if the given value is not nil.
func (dsuo *DataSourcingUpdateOne) SetNillableDateOfNextDocumentSourcingAttempt(t *time.Time) *DataSourcingUpdateOne {
	if t != nil {
		dsuo.SetDateOfNextDocumentSourcingAttempt(*t)
	}
	return dsuo
}

// ClearDateOfNextDocumentSourcingAttempt clears the value of the "date_of_next_document_sourcing_attempt" field.
func (dsuo *DataSourcingUpdateOne) ClearDateOfNextDocumentSourcingAttempt() *DataSourcingUpdateOne {
	dsuo.mutation.ClearDateOfNextDocumentSourcingAttempt()
	return dsuo
}

// SetAdminComment sets the "admin_comment" field.
func (dsuo *DataSourcingUpdateOne) SetAdminComment(s string) *DataSourcingUpdateOne {
	dsuo.mutation.SetAdminComment(s)
	return dsuo
}

// SetNillableAdminComment sets the "admin_comment" field if the given value is not nil.
func (dsuo *DataSourcingUpdateOne) SetNillableAdminComment(s *string) *DataSourcingUpdateOne {
	if s != nil {
		dsuo.SetAdminComment(*s)
	}
	return dsuo
}

// ClearAdminComment clears the value of the "admin_comment" field.
func (dsuo *DataSourcingUpdateOne) ClearAdminComment() *DataSourcingUpdateOne {
	dsuo.mutation.ClearAdminComment()
	return dsuo
}

// SetPriorityOverride sets the "priority_override" field.
func (dsuo *DataSourcingUpdateOne) SetPriorityOverride(do datasourcing.PriorityOverride) *DataSourcingUpdateOne {
	dsuo.mutation.SetPriorityOverride(do)
	return dsuo
}

// SetNillablePriorityOverride sets the "priority_override" field if the given value is not nil.
func (dsuo *DataSourcingUpdateOne) SetNillablePriorityOverride(do *datasourcing.PriorityOverride) *DataSourcingUpdateOne {
	if do != nil {
		dsuo.SetPriorityOverride(*do)
	}
	return dsuo
}

// ClearPriorityOverride clears the value of the "priority_override" field.
func (dsuo *DataSourcingUpdateOne) ClearPriorityOverride() *DataSourcingUpdateOne {
	dsuo.mutation.ClearPriorityOverride()
	return dsuo
}

// SetDocuments sets the "documents" field.
func (dsuo *DataSourcingUpdateOne) SetDocuments(s []string) *DataSourcingUpdateOne {
	dsuo.mutation.SetDocuments(s)
	return dsuo
}

// AppendDocuments appends s to the "documents" field.
func (dsuo *DataSourcingUpdateOne) AppendDocuments(s []string) *DataSourcingUpdateOne {
	dsuo.mutation.AppendDocuments(s)
	return dsuo
}

// ClearDocuments clears the value of the "documents" field.
func (dsuo *DataSourcingUpdateOne) ClearDocuments() *DataSourcingUpdateOne {
	dsuo.mutation.ClearDocuments()
	return dsuo
}

// SetLastModifiedDate sets the "last_modified_date" field.
func (dsuo *DataSourcingUpdateOne) SetLastModifiedDate(i int64) *DataSourcingUpdateOne {
	dsuo.mutation.ResetLastModifiedDate()
	dsuo.mutation.SetLastModifiedDate(i)
	return dsuo
}

// SetNillableLastModifiedDate sets the "last_modified_date" field if the given value is not nil.
func (dsuo *DataSourcingUpdateOne) SetNillableLastModifiedDate(i *int64) *DataSourcingUpdateOne {
	if i != nil {
		dsuo.SetLastModifiedDate(*i)
	}
	return dsuo
}

// AddLastModifiedDate adds i to the "last_modified_date" field.
func (dsuo *DataSourcingUpdateOne) AddLastModifiedDate(i int64) *DataSourcingUpdateOne {
	dsuo.mutation.AddLastModifiedDate(i)
	return dsuo
}

// Mutation returns the DataSourcingMutation object of the builder.
func (dsuo *DataSourcingUpdateOne) Mutation() *DataSourcingMutation {
	return dsuo.mutation
}

// Where appends a list predicates to the DataSourcingUpdate builder.
func (dsuo *DataSourcingUpdateOne) Where(ps ...predicate.DataSourcing) *DataSourcingUpdateOne {
	dsuo.mutation.Where(ps...)
	return dsuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (dsuo *DataSourcingUpdateOne) Select(field string, fields ...string) *DataSourcingUpdateOne {
	dsuo.fields = append([]string{field}, fields...)
	return dsuo
}

// Save executes the query and returns the updated DataSourcing entity.
func (dsuo *DataSourcingUpdateOne) Save(ctx context.Context) (*DataSourcing, error) {
	return withHooks(ctx, dsuo.sqlSave, dsuo.mutation, dsuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (dsuo *DataSourcingUpdateOne) SaveX(ctx context.Context) *DataSourcing {
	node, err := dsuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (dsuo *DataSourcingUpdateOne) Exec(ctx context.Context) error {
	_, err := dsuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dsuo *DataSourcingUpdateOne) ExecX(ctx context.Context) {
	if err := dsuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (dsuo *DataSourcingUpdateOne) check() error {
	if v, ok := dsuo.mutation.State(); ok {
		if err := datasourcing.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "DataSourcing.state": %w`, err)}
		}
	}
	if v, ok := dsuo.mutation.PriorityOverride(); ok {
		if err := datasourcing.PriorityOverrideValidator(v); err != nil {
			return &ValidationError{Name: "priority_override", err: fmt.Errorf(`ent: validator failed for field "DataSourcing.priority_override": %w`, err)}
		}
	}
	return nil
}

func (dsuo *DataSourcingUpdateOne) sqlSave(ctx context.Context) (_node *DataSourcing, err error) {
	if err := dsuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(datasourcing.Table, datasourcing.Columns, sqlgraph.NewFieldSpec(datasourcing.FieldID, field.TypeUUID))
	id, ok := dsuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DataSourcing.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := dsuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, datasourcing.FieldID)
		for _, f := range fields {
			if !datasourcing.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != datasourcing.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := dsuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := dsuo.mutation.State(); ok {
		_spec.SetField(datasourcing.FieldState, field.TypeEnum, value)
	}
	if value, ok := dsuo.mutation.DocumentCollector(); ok {
		_spec.SetField(datasourcing.FieldDocumentCollector, field.TypeString, value)
	}
	if dsuo.mutation.DocumentCollectorCleared() {
		_spec.ClearField(datasourcing.FieldDocumentCollector, field.TypeString)
	}
	if value, ok := dsuo.mutation.DataExtractor(); ok {
		_spec.SetField(datasourcing.FieldDataExtractor, field.TypeString, value)
	}
	if dsuo.mutation.DataExtractorCleared() {
		_spec.ClearField(datasourcing.FieldDataExtractor, field.TypeString)
	}
	if value, ok := dsuo.mutation.DateOfNextDocumentSourcingAttempt(); ok {
		_spec.SetField(datasourcing.FieldDateOfNextDocumentSourcingAttempt, field.TypeTime, value)
	}
	if dsuo.mutation.DateOfNextDocumentSourcingAttemptCleared() {
		_spec.ClearField(datasourcing.FieldDateOfNextDocumentSourcingAttempt, field.TypeTime)
	}
	if value, ok := dsuo.mutation.AdminComment(); ok {
		_spec.SetField(datasourcing.FieldAdminComment, field.TypeString, value)
	}
	if dsuo.mutation.AdminCommentCleared() {
		_spec.ClearField(datasourcing.FieldAdminComment, field.TypeString)
	}
	if value, ok := dsuo.mutation.PriorityOverride(); ok {
		_spec.SetField(datasourcing.FieldPriorityOverride, field.TypeEnum, value)
	}
	if dsuo.mutation.PriorityOverrideCleared() {
		_spec.ClearField(datasourcing.FieldPriorityOverride, field.TypeEnum)
	}
	if value, ok := dsuo.mutation.Documents(); ok {
		_spec.SetField(datasourcing.FieldDocuments, field.TypeJSON, value)
	}
	if value, ok := dsuo.mutation.AppendedDocuments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, datasourcing.FieldDocuments, value)
		})
	}
	if dsuo.mutation.DocumentsCleared() {
		_spec.ClearField(datasourcing.FieldDocuments, field.TypeJSON)
	}
	if value, ok := dsuo.mutation.LastModifiedDate(); ok {
		_spec.SetField(datasourcing.FieldLastModifiedDate, field.TypeInt64, value)
	}
	if value, ok := dsuo.mutation.AddedLastModifiedDate(); ok {
		_spec.AddField(datasourcing.FieldLastModifiedDate, field.TypeInt64, value)
	}
	_node = &DataSourcing{config: dsuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, dsuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{datasourcing.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	dsuo.mutation.done = true
	return _node, nil
}
