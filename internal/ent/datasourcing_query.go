// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/d-fine/dataland-sourcing-service/internal/ent/datasourcing"
	"github.com/d-fine/dataland-sourcing-service/internal/ent/predicate"
	"github.com/google/uuid"
)

// DataSourcingQuery is the builder for querying DataSourcing entities.
type DataSourcingQuery struct {
	config
	ctx        *QueryContext
	order      []datasourcing.OrderOption
	inters     []Interceptor
	predicates []predicate.DataSourcing
	modifiers  []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DataSourcingQuery builder.
func (dsq *DataSourcingQuery) Where(ps ...predicate.DataSourcing) *DataSourcingQuery {
	dsq.predicates = append(dsq.predicates, ps...)
	return dsq
}

// Limit the number of records to be returned by this query.
func (dsq *DataSourcingQuery) Limit(limit int) *DataSourcingQuery {
	dsq.ctx.Limit = &limit
	return dsq
}

// Offset to start from.
func (dsq *DataSourcingQuery) Offset(offset int) *DataSourcingQuery {
	dsq.ctx.Offset = &offset
	return dsq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (dsq *DataSourcingQuery) Unique(unique bool) *DataSourcingQuery {
	dsq.ctx.Unique = &unique
	return dsq
}

// Order specifies how the records should be ordered.
func (dsq *DataSourcingQuery) Order(o ...datasourcing.OrderOption) *DataSourcingQuery {
	dsq.order = append(dsq.order, o...)
	return dsq
}

// First returns the first DataSourcing entity from the query.
// Returns a *NotFoundError when no DataSourcing was found.
func (dsq *DataSourcingQuery) First(ctx context.Context) (*DataSourcing, error) {
	nodes, err := dsq.Limit(1).All(setContextOp(ctx, dsq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{datasourcing.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (dsq *DataSourcingQuery) FirstX(ctx context.Context) *DataSourcing {
	node, err := dsq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first DataSourcing ID from the query.
// Returns a *NotFoundError when no DataSourcing ID was found.
func (dsq *DataSourcingQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = dsq.Limit(1).IDs(setContextOp(ctx, dsq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{datasourcing.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (dsq *DataSourcingQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := dsq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single DataSourcing entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one DataSourcing entity is found.
// Returns a *NotFoundError when no DataSourcing entities are found.
func (dsq *DataSourcingQuery) Only(ctx context.Context) (*DataSourcing, error) {
	nodes, err := dsq.Limit(2).All(setContextOp(ctx, dsq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{datasourcing.Label}
	default:
		return nil, &NotSingularError{datasourcing.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (dsq *DataSourcingQuery) OnlyX(ctx context.Context) *DataSourcing {
	node, err := dsq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only DataSourcing ID in the query.
// Returns a *NotSingularError when more than one DataSourcing ID is found.
// Returns a *NotFoundError when no entities are found.
func (dsq *DataSourcingQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = dsq.Limit(2).IDs(setContextOp(ctx, dsq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{datasourcing.Label}
	default:
		err = &NotSingularError{datasourcing.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (dsq *DataSourcingQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := dsq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of DataSourcings.
func (dsq *DataSourcingQuery) All(ctx context.Context) ([]*DataSourcing, error) {
	ctx = setContextOp(ctx, dsq.ctx, ent.OpQueryAll)
	if err := dsq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*DataSourcing, *DataSourcingQuery]()
	return withInterceptors[[]*DataSourcing](ctx, dsq, qr, dsq.inters)
}

// AllX is like All, but panics if an error occurs.
func (dsq *DataSourcingQuery) AllX(ctx context.Context) []*DataSourcing {
	nodes, err := dsq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of DataSourcing IDs.
func (dsq *DataSourcingQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if dsq.ctx.Unique == nil && dsq.path != nil {
		dsq.Unique(true)
	}
	ctx = setContextOp(ctx, dsq.ctx, ent.OpQueryIDs)
	if err = dsq.Select(datasourcing.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (dsq *DataSourcingQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := dsq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (dsq *DataSourcingQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, dsq.ctx, ent.OpQueryCount)
	if err := dsq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, dsq, querierCount[*DataSourcingQuery](), dsq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (dsq *DataSourcingQuery) CountX(ctx context.Context) int {
	count, err := dsq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (dsq *DataSourcingQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, dsq.ctx, ent.OpQueryExist)
	switch _, err := dsq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (dsq *DataSourcingQuery) ExistX(ctx context.Context) bool {
	exist, err := dsq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DataSourcingQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (dsq *DataSourcingQuery) Clone() *DataSourcingQuery {
	if dsq == nil {
		return nil
	}
	return &DataSourcingQuery{
		config:     dsq.config,
		ctx:        dsq.ctx.Clone(),
		order:      append([]datasourcing.OrderOption{}, dsq.order...),
		inters:     append([]Interceptor{}, dsq.inters...),
		predicates: append([]predicate.DataSourcing{}, dsq.predicates...),
		// clone intermediate query.
		sql:  dsq.sql.Clone(),
		path: dsq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CompanyID string `json:"company_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.DataSourcing.Query().
//		GroupBy(datasourcing.FieldCompanyID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (dsq *DataSourcingQuery) GroupBy(field string, fields ...string) *DataSourcingGroupBy {
	dsq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DataSourcingGroupBy{build: dsq}
	grbuild.flds = &dsq.ctx.Fields
	grbuild.label = datasourcing.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CompanyID string `json:"company_id,omitempty"`
//	}
//
//	client.DataSourcing.Query().
//		Select(datasourcing.FieldCompanyID).
//		Scan(ctx, &v)
func (dsq *DataSourcingQuery) Select(fields ...string) *DataSourcingSelect {
	dsq.ctx.Fields = append(dsq.ctx.Fields, fields...)
	sbuild := &DataSourcingSelect{DataSourcingQuery: dsq}
	sbuild.label = datasourcing.Label
	sbuild.flds, sbuild.scan = &dsq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DataSourcingSelect configured with the given aggregations.
func (dsq *DataSourcingQuery) Aggregate(fns ...AggregateFunc) *DataSourcingSelect {
	return dsq.Select().Aggregate(fns...)
}

func (dsq *DataSourcingQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range dsq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, dsq); err != nil {
				return err
			}
		}
	}
	for _, f := range dsq.ctx.Fields {
		if !datasourcing.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if dsq.path != nil {
		prev, err := dsq.path(ctx)
		if err != nil {
			return err
		}
		dsq.sql = prev
	}
	return nil
}

func (dsq *DataSourcingQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*DataSourcing, error) {
	var (
		nodes = []*DataSourcing{}
		_spec = dsq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*DataSourcing).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &DataSourcing{config: dsq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	if len(dsq.modifiers) > 0 {
		_spec.Modifiers = dsq.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, dsq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (dsq *DataSourcingQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := dsq.querySpec()
	if len(dsq.modifiers) > 0 {
		_spec.Modifiers = dsq.modifiers
	}
	_spec.Node.Columns = dsq.ctx.Fields
	if len(dsq.ctx.Fields) > 0 {
		_spec.Unique = dsq.ctx.Unique != nil && *dsq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, dsq.driver, _spec)
}

func (dsq *DataSourcingQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(datasourcing.Table, datasourcing.Columns, sqlgraph.NewFieldSpec(datasourcing.FieldID, field.TypeUUID))
	_spec.From = dsq.sql
	if unique := dsq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if dsq.path != nil {
		_spec.Unique = true
	}
	if fields := dsq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, datasourcing.FieldID)
		for i := range fields {
			if fields[i] != datasourcing.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := dsq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := dsq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := dsq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := dsq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (dsq *DataSourcingQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(dsq.driver.Dialect())
	t1 := builder.Table(datasourcing.Table)
	columns := dsq.ctx.Fields
	if len(columns) == 0 {
		columns = datasourcing.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if dsq.sql != nil {
		selector = dsq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if dsq.ctx.Unique != nil && *dsq.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range dsq.modifiers {
		m(selector)
	}
	for _, p := range dsq.predicates {
		p(selector)
	}
	for _, p := range dsq.order {
		p(selector)
	}
	if offset := dsq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := dsq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (dsq *DataSourcingQuery) ForUpdate(opts ...sql.LockOption) *DataSourcingQuery {
	if dsq.driver.Dialect() == dialect.Postgres {
		dsq.Unique(false)
	}
	dsq.modifiers = append(dsq.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return dsq
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (dsq *DataSourcingQuery) ForShare(opts ...sql.LockOption) *DataSourcingQuery {
	if dsq.driver.Dialect() == dialect.Postgres {
		dsq.Unique(false)
	}
	dsq.modifiers = append(dsq.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return dsq
}

// DataSourcingGroupBy is the group-by builder for DataSourcing entities.
type DataSourcingGroupBy struct {
	selector
	build *DataSourcingQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (dsgb *DataSourcingGroupBy) Aggregate(fns ...AggregateFunc) *DataSourcingGroupBy {
	dsgb.fns = append(dsgb.fns, fns...)
	return dsgb
}

// Scan applies the selector query and scans the result into the given value.
func (dsgb *DataSourcingGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, dsgb.build.ctx, ent.OpQueryGroupBy)
	if err := dsgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DataSourcingQuery, *DataSourcingGroupBy](ctx, dsgb.build, dsgb, dsgb.build.inters, v)
}

func (dsgb *DataSourcingGroupBy) sqlScan(ctx context.Context, root *DataSourcingQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(dsgb.fns))
	for _, fn := range dsgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*dsgb.flds)+len(dsgb.fns))
		for _, f := range *dsgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*dsgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := dsgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// DataSourcingSelect is the builder for selecting fields of DataSourcing entities.
type DataSourcingSelect struct {
	*DataSourcingQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (dss *DataSourcingSelect) Aggregate(fns ...AggregateFunc) *DataSourcingSelect {
	dss.fns = append(dss.fns, fns...)
	return dss
}

// Scan applies the selector query and scans the result into the given value.
func (dss *DataSourcingSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, dss.ctx, ent.OpQuerySelect)
	if err := dss.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DataSourcingQuery, *DataSourcingSelect](ctx, dss.DataSourcingQuery, dss, dss.inters, v)
}

func (dss *DataSourcingSelect) sqlScan(ctx context.Context, root *DataSourcingQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(dss.fns))
	for _, fn := range dss.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*dss.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := dss.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
