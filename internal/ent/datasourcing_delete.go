// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/d-fine/dataland-sourcing-service/internal/ent/datasourcing"
	"github.com/d-fine/dataland-sourcing-service/internal/ent/predicate"
)

// DataSourcingDelete is the builder for deleting a DataSourcing entity.
type DataSourcingDelete struct {
	config
	hooks    []Hook
	mutation *DataSourcingMutation
}

// Where appends a list predicates to the DataSourcingDelete builder.
func (dsd *DataSourcingDelete) Where(ps ...predicate.DataSourcing) *DataSourcingDelete {
	dsd.mutation.Where(ps...)
	return dsd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (dsd *DataSourcingDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, dsd.sqlExec, dsd.mutation, dsd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (dsd *DataSourcingDelete) ExecX(ctx context.Context) int {
	n, err := dsd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (dsd *DataSourcingDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(datasourcing.Table, sqlgraph.NewFieldSpec(datasourcing.FieldID, field.TypeUUID))
	if ps := dsd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, dsd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	dsd.mutation.done = true
	return affected, err
}

// DataSourcingDeleteOne is the builder for deleting a single DataSourcing entity.
type DataSourcingDeleteOne struct {
	dsd *DataSourcingDelete
}

// Where appends a list predicates to the DataSourcingDelete builder.
func (dsdo *DataSourcingDeleteOne) Where(ps ...predicate.DataSourcing) *DataSourcingDeleteOne {
	dsdo.dsd.mutation.Where(ps...)
	return dsdo
}

// Exec executes the deletion query.
func (dsdo *DataSourcingDeleteOne) Exec(ctx context.Context) error {
	n, err := dsdo.dsd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{datasourcing.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (dsdo *DataSourcingDeleteOne) ExecX(ctx context.Context) {
	if err := dsdo.Exec(ctx); err != nil {
		panic(err)
	}
}
