// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/d-fine/dataland-sourcing-service/internal/ent/datasourcing"
	"github.com/d-fine/dataland-sourcing-service/internal/ent/predicate"
	"github.com/d-fine/dataland-sourcing-service/internal/ent/request"
	"github.com/d-fine/dataland-sourcing-service/internal/ent/revision"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDataSourcing = "DataSourcing"
	TypeRequest      = "Request"
	TypeRevision     = "Revision"
)

// DataSourcingMutation represents an operation that mutates the DataSourcing nodes in the graph.
type DataSourcingMutation struct {
	config
	op                                     Op
	typ                                    string
	id                                     *uuid.UUID
	company_id                             *string
	data_type                              *string
	reporting_period                       *string
	state                                  *datasourcing.State
	document_collector                     *string
	data_extractor                         *string
	date_of_next_document_sourcing_attempt *time.Time
	admin_comment                          *string
	priority_override                      *datasourcing.PriorityOverride
	documents                              *[]string
	appenddocuments                        []string
	last_modified_date                     *int64
	addlast_modified_date                  *int64
	clearedFields                          map[string]struct{}
	done                                   bool
	oldValue                               func(context.Context) (*DataSourcing, error)
	predicates                             []predicate.DataSourcing
}

var _ ent.Mutation = (*DataSourcingMutation)(nil)

// datasourcingOption allows management of the mutation configuration using functional options.
type datasourcingOption func(*DataSourcingMutation)

// newDataSourcingMutation creates new mutation for the DataSourcing entity.
func newDataSourcingMutation(c config, op Op, opts ...datasourcingOption) *DataSourcingMutation {
	m := &DataSourcingMutation{
		config:        c,
		op:            op,
		typ:           TypeDataSourcing,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDataSourcingID sets the ID field of the mutation.
func withDataSourcingID(id uuid.UUID) datasourcingOption {
	return func(m *DataSourcingMutation) {
		var (
			err   error
			once  sync.Once
			value *DataSourcing
		)
		m.oldValue = func(ctx context.Context) (*DataSourcing, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DataSourcing.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDataSourcing sets the old DataSourcing of the mutation.
func withDataSourcing(node *DataSourcing) datasourcingOption {
	return func(m *DataSourcingMutation) {
		m.oldValue = func(context.Context) (*DataSourcing, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DataSourcingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DataSourcingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DataSourcing entities.
func (m *DataSourcingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DataSourcingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DataSourcingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DataSourcing.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *DataSourcingMutation) SetCompanyID(s string) {
	m.company_id = &s
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *DataSourcingMutation) CompanyID() (r string, exists bool) {
	v := m.company_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the DataSourcing entity.
// If the DataSourcing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataSourcingMutation) OldCompanyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *DataSourcingMutation) ResetCompanyID() {
	m.company_id = nil
}

// SetDataType sets the "data_type" field.
func (m *DataSourcingMutation) SetDataType(s string) {
	m.data_type = &s
}

// DataType returns the value of the "data_type" field in the mutation.
func (m *DataSourcingMutation) DataType() (r string, exists bool) {
	v := m.data_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDataType returns the old "data_type" field's value of the DataSourcing entity.
// If the DataSourcing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataSourcingMutation) OldDataType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataType: %w", err)
	}
	return oldValue.DataType, nil
}

// ResetDataType resets all changes to the "data_type" field.
func (m *DataSourcingMutation) ResetDataType() {
	m.data_type = nil
}

// SetReportingPeriod sets the "reporting_period" field.
func (m *DataSourcingMutation) SetReportingPeriod(s string) {
	m.reporting_period = &s
}

// ReportingPeriod returns the value of the "reporting_period" field in the mutation.
func (m *DataSourcingMutation) ReportingPeriod() (r string, exists bool) {
	v := m.reporting_period
	if v == nil {
		return
	}
	return *v, true
}

// OldReportingPeriod returns the old "reporting_period" field's value of the DataSourcing entity.
// If the DataSourcing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataSourcingMutation) OldReportingPeriod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportingPeriod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportingPeriod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportingPeriod: %w", err)
	}
	return oldValue.ReportingPeriod, nil
}

// ResetReportingPeriod resets all changes to the "reporting_period" field.
func (m *DataSourcingMutation) ResetReportingPeriod() {
	m.reporting_period = nil
}

// SetState sets the "state" field.
func (m *DataSourcingMutation) SetState(d datasourcing.State) {
	m.state = &d
}

// State returns the value of the "state" field in the mutation.
func (m *DataSourcingMutation) State() (r datasourcing.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the DataSourcing entity.
// If the DataSourcing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataSourcingMutation) OldState(ctx context.Context) (v datasourcing.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *DataSourcingMutation) ResetState() {
	m.state = nil
}

// SetDocumentCollector sets the "document_collector" field.
func (m *DataSourcingMutation) SetDocumentCollector(s string) {
	m.document_collector = &s
}

// DocumentCollector returns the value of the "document_collector" field in the mutation.
func (m *DataSourcingMutation) DocumentCollector() (r string, exists bool) {
	v := m.document_collector
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentCollector returns the old "document_collector" field's value of the DataSourcing entity.
// If the DataSourcing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataSourcingMutation) OldDocumentCollector(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentCollector is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentCollector requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentCollector: %w", err)
	}
	return oldValue.DocumentCollector, nil
}

// ClearDocumentCollector clears the value of the "document_collector" field.
func (m *DataSourcingMutation) ClearDocumentCollector() {
	m.document_collector = nil
	m.clearedFields[datasourcing.FieldDocumentCollector] = struct{}{}
}

// DocumentCollectorCleared returns if the "document_collector" field was cleared in this mutation.
func (m *DataSourcingMutation) DocumentCollectorCleared() bool {
	_, ok := m.clearedFields[datasourcing.FieldDocumentCollector]
	return ok
}

// ResetDocumentCollector resets all changes to the "document_collector" field.
func (m *DataSourcingMutation) ResetDocumentCollector() {
	m.document_collector = nil
	delete(m.clearedFields, datasourcing.FieldDocumentCollector)
}

// SetDataExtractor sets the "data_extractor" field.
func (m *DataSourcingMutation) SetDataExtractor(s string) {
	m.data_extractor = &s
}

// DataExtractor returns the value of the "data_extractor" field in the mutation.
func (m *DataSourcingMutation) DataExtractor() (r string, exists bool) {
	v := m.data_extractor
	if v == nil {
		return
	}
	return *v, true
}

// OldDataExtractor returns the old "data_extractor" field's value of the DataSourcing entity.
// If the DataSourcing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataSourcingMutation) OldDataExtractor(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataExtractor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataExtractor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataExtractor: %w", err)
	}
	return oldValue.DataExtractor, nil
}

// ClearDataExtractor clears the value of the "data_extractor" field.
func (m *DataSourcingMutation) ClearDataExtractor() {
	m.data_extractor = nil
	m.clearedFields[datasourcing.FieldDataExtractor] = struct{}{}
}

// DataExtractorCleared returns if the "data_extractor" field was cleared in this mutation.
func (m *DataSourcingMutation) DataExtractorCleared() bool {
	_, ok := m.clearedFields[datasourcing.FieldDataExtractor]
	return ok
}

// ResetDataExtractor resets all changes to the "data_extractor" field.
func (m *DataSourcingMutation) ResetDataExtractor() {
	m.data_extractor = nil
	delete(m.clearedFields, datasourcing.FieldDataExtractor)
}

// SetDateOfNextDocumentSourcingAttempt sets the "date_of_next_document_sourcing_attempt" field.
func (m *DataSourcingMutation) SetDateOfNextDocumentSourcingAttempt(t time.Time) {
	m.date_of_next_document_sourcing_attempt = &t
}

// DateOfNextDocumentSourcingAttempt returns the value of the "date_of_next_document_sourcing_attempt" field in the mutation.
func (m *DataSourcingMutation) DateOfNextDocumentSourcingAttempt() (r time.Time, exists bool) {
	v := m.date_of_next_document_sourcing_attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldDateOfNextDocumentSourcingAttempt returns the old "date_of_next_document_sourcing_attempt" field's value of the DataSourcing entity.
// If the DataSourcing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataSourcingMutation) OldDateOfNextDocumentSourcingAttempt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateOfNextDocumentSourcingAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateOfNextDocumentSourcingAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateOfNextDocumentSourcingAttempt: %w", err)
	}
	return oldValue.DateOfNextDocumentSourcingAttempt, nil
}

// ClearDateOfNextDocumentSourcingAttempt clears the value of the "date_of_next_document_sourcing_attempt" field.
func (m *DataSourcingMutation) ClearDateOfNextDocumentSourcingAttempt() {
	m.date_of_next_document_sourcing_attempt = nil
	m.clearedFields[datasourcing.FieldDateOfNextDocumentSourcingAttempt] = struct{}{}
}

// DateOfNextDocumentSourcingAttemptCleared returns if the "date_of_next_document_sourcing_attempt" field was cleared in this mutation.
func (m *DataSourcingMutation) DateOfNextDocumentSourcingAttemptCleared() bool {
	_, ok := m.clearedFields[datasourcing.FieldDateOfNextDocumentSourcingAttempt]
	return ok
}

// ResetDateOfNextDocumentSourcingAttempt resets all changes to the "date_of_next_document_sourcing_attempt" field.
func (m *DataSourcingMutation) ResetDateOfNextDocumentSourcingAttempt() {
	m.date_of_next_document_sourcing_attempt = nil
	delete(m.clearedFields, datasourcing.FieldDateOfNextDocumentSourcingAttempt)
}

// SetAdminComment sets the "admin_comment" field.
func (m *DataSourcingMutation) SetAdminComment(s string) {
	m.admin_comment = &s
}

// AdminComment returns the value of the "admin_comment" field in the mutation.
func (m *DataSourcingMutation) AdminComment() (r string, exists bool) {
	v := m.admin_comment
	if v == nil {
		return
	}
	return *v, true
}

// OldAdminComment returns the old "admin_comment" field's value of the DataSourcing entity.
// If the DataSourcing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataSourcingMutation) OldAdminComment(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdminComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdminComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdminComment: %w", err)
	}
	return oldValue.AdminComment, nil
}

// ClearAdminComment clears the value of the "admin_comment" field.
func (m *DataSourcingMutation) ClearAdminComment() {
	m.admin_comment = nil
	m.clearedFields[datasourcing.FieldAdminComment] = struct{}{}
}

// AdminCommentCleared returns if the "admin_comment" field was cleared in this mutation.
func (m *DataSourcingMutation) AdminCommentCleared() bool {
	_, ok := m.clearedFields[datasourcing.FieldAdminComment]
	return ok
}

// ResetAdminComment resets all changes to the "admin_comment" field.
func (m *DataSourcingMutation) ResetAdminComment() {
	m.admin_comment = nil
	delete(m.clearedFields, datasourcing.FieldAdminComment)
}

// SetPriorityOverride sets the "priority_override" field.
func (m *DataSourcingMutation) SetPriorityOverride(do datasourcing.PriorityOverride) {
	m.priority_override = &do
}

// PriorityOverride returns the value of the "priority_override" field in the mutation.
func (m *DataSourcingMutation) PriorityOverride() (r datasourcing.PriorityOverride, exists bool) {
	v := m.priority_override
	if v == nil {
		return
	}
	return *v, true
}

// OldPriorityOverride returns the old "priority_override" field's value of the DataSourcing entity.
// If the DataSourcing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataSourcingMutation) OldPriorityOverride(ctx context.Context) (v *datasourcing.PriorityOverride, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriorityOverride is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriorityOverride requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriorityOverride: %w", err)
	}
	return oldValue.PriorityOverride, nil
}

// ClearPriorityOverride clears the value of the "priority_override" field.
func (m *DataSourcingMutation) ClearPriorityOverride() {
	m.priority_override = nil
	m.clearedFields[datasourcing.FieldPriorityOverride] = struct{}{}
}

// PriorityOverrideCleared returns if the "priority_override" field was cleared in this mutation.
func (m *DataSourcingMutation) PriorityOverrideCleared() bool {
	_, ok := m.clearedFields[datasourcing.FieldPriorityOverride]
	return ok
}

// ResetPriorityOverride resets all changes to the "priority_override" field.
func (m *DataSourcingMutation) ResetPriorityOverride() {
	m.priority_override = nil
	delete(m.clearedFields, datasourcing.FieldPriorityOverride)
}

// SetDocuments sets the "documents" field.
func (m *DataSourcingMutation) SetDocuments(s []string) {
	m.documents = &s
	m.appenddocuments = nil
}

// Documents returns the value of the "documents" field in the mutation.
func (m *DataSourcingMutation) Documents() (r []string, exists bool) {
	v := m.documents
	if v == nil {
		return
	}
	return *v, true
}

// OldDocuments returns the old "documents" field's value of the DataSourcing entity.
// If the DataSourcing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataSourcingMutation) OldDocuments(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocuments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocuments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocuments: %w", err)
	}
	return oldValue.Documents, nil
}

// AppendDocuments adds s to the "documents" field.
func (m *DataSourcingMutation) AppendDocuments(s []string) {
	m.appenddocuments = append(m.appenddocuments, s...)
}

// AppendedDocuments returns the list of values that were appended to the "documents" field in this mutation.
func (m *DataSourcingMutation) AppendedDocuments() ([]string, bool) {
	if len(m.appenddocuments) == 0 {
		return nil, false
	}
	return m.appenddocuments, true
}

// ClearDocuments clears the value of the "documents" field.
func (m *DataSourcingMutation) ClearDocuments() {
	m.documents = nil
	m.appenddocuments = nil
	m.clearedFields[datasourcing.FieldDocuments] = struct{}{}
}

// DocumentsCleared returns if the "documents" field was cleared in this mutation.
func (m *DataSourcingMutation) DocumentsCleared() bool {
	_, ok := m.clearedFields[datasourcing.FieldDocuments]
	return ok
}

// ResetDocuments resets all changes to the "documents" field.
func (m *DataSourcingMutation) ResetDocuments() {
	m.documents = nil
	m.appenddocuments = nil
	delete(m.clearedFields, datasourcing.FieldDocuments)
}

// SetLastModifiedDate sets the "last_modified_date" field.
func (m *DataSourcingMutation) SetLastModifiedDate(i int64) {
	m.last_modified_date = &i
	m.addlast_modified_date = nil
}

// LastModifiedDate returns the value of the "last_modified_date" field in the mutation.
func (m *DataSourcingMutation) LastModifiedDate() (r int64, exists bool) {
	v := m.last_modified_date
	if v == nil {
		return
	}
	return *v, true
}

// OldLastModifiedDate returns the old "last_modified_date" field's value of the DataSourcing entity.
// If the DataSourcing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataSourcingMutation) OldLastModifiedDate(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastModifiedDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastModifiedDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastModifiedDate: %w", err)
	}
	return oldValue.LastModifiedDate, nil
}

// AddLastModifiedDate adds i to the "last_modified_date" field.
func (m *DataSourcingMutation) AddLastModifiedDate(i int64) {
	if m.addlast_modified_date != nil {
		*m.addlast_modified_date += i
	} else {
		m.addlast_modified_date = &i
	}
}

// AddedLastModifiedDate returns the value that was added to the "last_modified_date" field in this mutation.
func (m *DataSourcingMutation) AddedLastModifiedDate() (r int64, exists bool) {
	v := m.addlast_modified_date
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastModifiedDate resets all changes to the "last_modified_date" field.
func (m *DataSourcingMutation) ResetLastModifiedDate() {
	m.last_modified_date = nil
	m.addlast_modified_date = nil
}

// Where appends a list predicates to the DataSourcingMutation builder.
func (m *DataSourcingMutation) Where(ps ...predicate.DataSourcing) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DataSourcingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DataSourcingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DataSourcing, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DataSourcingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DataSourcingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DataSourcing).
func (m *DataSourcingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DataSourcingMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.company_id != nil {
		fields = append(fields, datasourcing.FieldCompanyID)
	}
	if m.data_type != nil {
		fields = append(fields, datasourcing.FieldDataType)
	}
	if m.reporting_period != nil {
		fields = append(fields, datasourcing.FieldReportingPeriod)
	}
	if m.state != nil {
		fields = append(fields, datasourcing.FieldState)
	}
	if m.document_collector != nil {
		fields = append(fields, datasourcing.FieldDocumentCollector)
	}
	if m.data_extractor != nil {
		fields = append(fields, datasourcing.FieldDataExtractor)
	}
	if m.date_of_next_document_sourcing_attempt != nil {
		fields = append(fields, datasourcing.FieldDateOfNextDocumentSourcingAttempt)
	}
	if m.admin_comment != nil {
		fields = append(fields, datasourcing.FieldAdminComment)
	}
	if m.priority_override != nil {
		fields = append(fields, datasourcing.FieldPriorityOverride)
	}
	if m.documents != nil {
		fields = append(fields, datasourcing.FieldDocuments)
	}
	if m.last_modified_date != nil {
		fields = append(fields, datasourcing.FieldLastModifiedDate)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DataSourcingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case datasourcing.FieldCompanyID:
		return m.CompanyID()
	case datasourcing.FieldDataType:
		return m.DataType()
	case datasourcing.FieldReportingPeriod:
		return m.ReportingPeriod()
	case datasourcing.FieldState:
		return m.State()
	case datasourcing.FieldDocumentCollector:
		return m.DocumentCollector()
	case datasourcing.FieldDataExtractor:
		return m.DataExtractor()
	case datasourcing.FieldDateOfNextDocumentSourcingAttempt:
		return m.DateOfNextDocumentSourcingAttempt()
	case datasourcing.FieldAdminComment:
		return m.AdminComment()
	case datasourcing.FieldPriorityOverride:
		return m.PriorityOverride()
	case datasourcing.FieldDocuments:
		return m.Documents()
	case datasourcing.FieldLastModifiedDate:
		return m.LastModifiedDate()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DataSourcingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case datasourcing.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case datasourcing.FieldDataType:
		return m.OldDataType(ctx)
	case datasourcing.FieldReportingPeriod:
		return m.OldReportingPeriod(ctx)
	case datasourcing.FieldState:
		return m.OldState(ctx)
	case datasourcing.FieldDocumentCollector:
		return m.OldDocumentCollector(ctx)
	case datasourcing.FieldDataExtractor:
		return m.OldDataExtractor(ctx)
	case datasourcing.FieldDateOfNextDocumentSourcingAttempt:
		return m.OldDateOfNextDocumentSourcingAttempt(ctx)
	case datasourcing.FieldAdminComment:
		return m.OldAdminComment(ctx)
	case datasourcing.FieldPriorityOverride:
		return m.OldPriorityOverride(ctx)
	case datasourcing.FieldDocuments:
		return m.OldDocuments(ctx)
	case datasourcing.FieldLastModifiedDate:
		return m.OldLastModifiedDate(ctx)
	}
	return nil, fmt.Errorf("unknown DataSourcing field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DataSourcingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case datasourcing.FieldCompanyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case datasourcing.FieldDataType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataType(v)
		return nil
	case datasourcing.FieldReportingPeriod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportingPeriod(v)
		return nil
	case datasourcing.FieldState:
		v, ok := value.(datasourcing.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case datasourcing.FieldDocumentCollector:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentCollector(v)
		return nil
	case datasourcing.FieldDataExtractor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataExtractor(v)
		return nil
	case datasourcing.FieldDateOfNextDocumentSourcingAttempt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateOfNextDocumentSourcingAttempt(v)
		return nil
	case datasourcing.FieldAdminComment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdminComment(v)
		return nil
	case datasourcing.FieldPriorityOverride:
		v, ok := value.(datasourcing.PriorityOverride)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriorityOverride(v)
		return nil
	case datasourcing.FieldDocuments:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocuments(v)
		return nil
	case datasourcing.FieldLastModifiedDate:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastModifiedDate(v)
		return nil
	}
	return fmt.Errorf("unknown DataSourcing field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DataSourcingMutation) AddedFields() []string {
	var fields []string
	if m.addlast_modified_date != nil {
		fields = append(fields, datasourcing.FieldLastModifiedDate)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DataSourcingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case datasourcing.FieldLastModifiedDate:
		return m.AddedLastModifiedDate()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DataSourcingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case datasourcing.FieldLastModifiedDate:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastModifiedDate(v)
		return nil
	}
	return fmt.Errorf("unknown DataSourcing numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DataSourcingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(datasourcing.FieldDocumentCollector) {
		fields = append(fields, datasourcing.FieldDocumentCollector)
	}
	if m.FieldCleared(datasourcing.FieldDataExtractor) {
		fields = append(fields, datasourcing.FieldDataExtractor)
	}
	if m.FieldCleared(datasourcing.FieldDateOfNextDocumentSourcingAttempt) {
		fields = append(fields, datasourcing.FieldDateOfNextDocumentSourcingAttempt)
	}
	if m.FieldCleared(datasourcing.FieldAdminComment) {
		fields = append(fields, datasourcing.FieldAdminComment)
	}
	if m.FieldCleared(datasourcing.FieldPriorityOverride) {
		fields = append(fields, datasourcing.FieldPriorityOverride)
	}
	if m.FieldCleared(datasourcing.FieldDocuments) {
		fields = append(fields, datasourcing.FieldDocuments)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DataSourcingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DataSourcingMutation) ClearField(name string) error {
	switch name {
	case datasourcing.FieldDocumentCollector:
		m.ClearDocumentCollector()
		return nil
	case datasourcing.FieldDataExtractor:
		m.ClearDataExtractor()
		return nil
	case datasourcing.FieldDateOfNextDocumentSourcingAttempt:
		m.ClearDateOfNextDocumentSourcingAttempt()
		return nil
	case datasourcing.FieldAdminComment:
		m.ClearAdminComment()
		return nil
	case datasourcing.FieldPriorityOverride:
		m.ClearPriorityOverride()
		return nil
	case datasourcing.FieldDocuments:
		m.ClearDocuments()
		return nil
	}
	return fmt.Errorf("unknown DataSourcing nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DataSourcingMutation) ResetField(name string) error {
	switch name {
	case datasourcing.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case datasourcing.FieldDataType:
		m.ResetDataType()
		return nil
	case datasourcing.FieldReportingPeriod:
		m.ResetReportingPeriod()
		return nil
	case datasourcing.FieldState:
		m.ResetState()
		return nil
	case datasourcing.FieldDocumentCollector:
		m.ResetDocumentCollector()
		return nil
	case datasourcing.FieldDataExtractor:
		m.ResetDataExtractor()
		return nil
	case datasourcing.FieldDateOfNextDocumentSourcingAttempt:
		m.ResetDateOfNextDocumentSourcingAttempt()
		return nil
	case datasourcing.FieldAdminComment:
		m.ResetAdminComment()
		return nil
	case datasourcing.FieldPriorityOverride:
		m.ResetPriorityOverride()
		return nil
	case datasourcing.FieldDocuments:
		m.ResetDocuments()
		return nil
	case datasourcing.FieldLastModifiedDate:
		m.ResetLastModifiedDate()
		return nil
	}
	return fmt.Errorf("unknown DataSourcing field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DataSourcingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DataSourcingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DataSourcingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DataSourcingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DataSourcingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DataSourcingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DataSourcingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DataSourcing unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DataSourcingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DataSourcing edge %s", name)
}

// RequestMutation represents an operation that mutates the Request nodes in the graph.
type RequestMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	company_id            *string
	data_type             *string
	reporting_period      *string
	user_id               *string
	state                 *request.State
	priority              *request.Priority
	member_comment        *string
	admin_comment         *string
	data_sourcing_id      *uuid.UUID
	creation_timestamp    *int64
	addcreation_timestamp *int64
	last_modified_date    *int64
	addlast_modified_date *int64
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*Request, error)
	predicates            []predicate.Request
}

var _ ent.Mutation = (*RequestMutation)(nil)

// requestOption allows management of the mutation configuration using functional options.
type requestOption func(*RequestMutation)

// newRequestMutation creates new mutation for the Request entity.
func newRequestMutation(c config, op Op, opts ...requestOption) *RequestMutation {
	m := &RequestMutation{
		config:        c,
		op:            op,
		typ:           TypeRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRequestID sets the ID field of the mutation.
func withRequestID(id uuid.UUID) requestOption {
	return func(m *RequestMutation) {
		var (
			err   error
			once  sync.Once
			value *Request
		)
		m.oldValue = func(ctx context.Context) (*Request, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Request.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRequest sets the old Request of the mutation.
func withRequest(node *Request) requestOption {
	return func(m *RequestMutation) {
		m.oldValue = func(context.Context) (*Request, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Request entities.
func (m *RequestMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RequestMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RequestMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Request.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *RequestMutation) SetCompanyID(s string) {
	m.company_id = &s
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *RequestMutation) CompanyID() (r string, exists bool) {
	v := m.company_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldCompanyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *RequestMutation) ResetCompanyID() {
	m.company_id = nil
}

// SetDataType sets the "data_type" field.
func (m *RequestMutation) SetDataType(s string) {
	m.data_type = &s
}

// DataType returns the value of the "data_type" field in the mutation.
func (m *RequestMutation) DataType() (r string, exists bool) {
	v := m.data_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDataType returns the old "data_type" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldDataType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataType: %w", err)
	}
	return oldValue.DataType, nil
}

// ResetDataType resets all changes to the "data_type" field.
func (m *RequestMutation) ResetDataType() {
	m.data_type = nil
}

// SetReportingPeriod sets the "reporting_period" field.
func (m *RequestMutation) SetReportingPeriod(s string) {
	m.reporting_period = &s
}

// ReportingPeriod returns the value of the "reporting_period" field in the mutation.
func (m *RequestMutation) ReportingPeriod() (r string, exists bool) {
	v := m.reporting_period
	if v == nil {
		return
	}
	return *v, true
}

// OldReportingPeriod returns the old "reporting_period" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldReportingPeriod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportingPeriod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportingPeriod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportingPeriod: %w", err)
	}
	return oldValue.ReportingPeriod, nil
}

// ResetReportingPeriod resets all changes to the "reporting_period" field.
func (m *RequestMutation) ResetReportingPeriod() {
	m.reporting_period = nil
}

// SetUserID sets the "user_id" field.
func (m *RequestMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *RequestMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *RequestMutation) ResetUserID() {
	m.user_id = nil
}

// SetState sets the "state" field.
func (m *RequestMutation) SetState(r request.State) {
	m.state = &r
}

// State returns the value of the "state" field in the mutation.
func (m *RequestMutation) State() (r request.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldState(ctx context.Context) (v request.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *RequestMutation) ResetState() {
	m.state = nil
}

// SetPriority sets the "priority" field.
func (m *RequestMutation) SetPriority(r request.Priority) {
	m.priority = &r
}

// Priority returns the value of the "priority" field in the mutation.
func (m *RequestMutation) Priority() (r request.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldPriority(ctx context.Context) (v request.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *RequestMutation) ResetPriority() {
	m.priority = nil
}

// SetMemberComment sets the "member_comment" field.
func (m *RequestMutation) SetMemberComment(s string) {
	m.member_comment = &s
}

// MemberComment returns the value of the "member_comment" field in the mutation.
func (m *RequestMutation) MemberComment() (r string, exists bool) {
	v := m.member_comment
	if v == nil {
		return
	}
	return *v, true
}

// OldMemberComment returns the old "member_comment" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldMemberComment(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemberComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemberComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemberComment: %w", err)
	}
	return oldValue.MemberComment, nil
}

// ClearMemberComment clears the value of the "member_comment" field.
func (m *RequestMutation) ClearMemberComment() {
	m.member_comment = nil
	m.clearedFields[request.FieldMemberComment] = struct{}{}
}

// MemberCommentCleared returns if the "member_comment" field was cleared in this mutation.
func (m *RequestMutation) MemberCommentCleared() bool {
	_, ok := m.clearedFields[request.FieldMemberComment]
	return ok
}

// ResetMemberComment resets all changes to the "member_comment" field.
func (m *RequestMutation) ResetMemberComment() {
	m.member_comment = nil
	delete(m.clearedFields, request.FieldMemberComment)
}

// SetAdminComment sets the "admin_comment" field.
func (m *RequestMutation) SetAdminComment(s string) {
	m.admin_comment = &s
}

// AdminComment returns the value of the "admin_comment" field in the mutation.
func (m *RequestMutation) AdminComment() (r string, exists bool) {
	v := m.admin_comment
	if v == nil {
		return
	}
	return *v, true
}

// OldAdminComment returns the old "admin_comment" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldAdminComment(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdminComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdminComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdminComment: %w", err)
	}
	return oldValue.AdminComment, nil
}

// ClearAdminComment clears the value of the "admin_comment" field.
func (m *RequestMutation) ClearAdminComment() {
	m.admin_comment = nil
	m.clearedFields[request.FieldAdminComment] = struct{}{}
}

// AdminCommentCleared returns if the "admin_comment" field was cleared in this mutation.
func (m *RequestMutation) AdminCommentCleared() bool {
	_, ok := m.clearedFields[request.FieldAdminComment]
	return ok
}

// ResetAdminComment resets all changes to the "admin_comment" field.
func (m *RequestMutation) ResetAdminComment() {
	m.admin_comment = nil
	delete(m.clearedFields, request.FieldAdminComment)
}

// SetDataSourcingID sets the "data_sourcing_id" field.
func (m *RequestMutation) SetDataSourcingID(u uuid.UUID) {
	m.data_sourcing_id = &u
}

// DataSourcingID returns the value of the "data_sourcing_id" field in the mutation.
func (m *RequestMutation) DataSourcingID() (r uuid.UUID, exists bool) {
	v := m.data_sourcing_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDataSourcingID returns the old "data_sourcing_id" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldDataSourcingID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataSourcingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataSourcingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataSourcingID: %w", err)
	}
	return oldValue.DataSourcingID, nil
}

// ClearDataSourcingID clears the value of the "data_sourcing_id" field.
func (m *RequestMutation) ClearDataSourcingID() {
	m.data_sourcing_id = nil
	m.clearedFields[request.FieldDataSourcingID] = struct{}{}
}

// DataSourcingIDCleared returns if the "data_sourcing_id" field was cleared in this mutation.
func (m *RequestMutation) DataSourcingIDCleared() bool {
	_, ok := m.clearedFields[request.FieldDataSourcingID]
	return ok
}

// ResetDataSourcingID resets all changes to the "data_sourcing_id" field.
func (m *RequestMutation) ResetDataSourcingID() {
	m.data_sourcing_id = nil
	delete(m.clearedFields, request.FieldDataSourcingID)
}

// SetCreationTimestamp sets the "creation_timestamp" field.
func (m *RequestMutation) SetCreationTimestamp(i int64) {
	m.creation_timestamp = &i
	m.addcreation_timestamp = nil
}

// CreationTimestamp returns the value of the "creation_timestamp" field in the mutation.
func (m *RequestMutation) CreationTimestamp() (r int64, exists bool) {
	v := m.creation_timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldCreationTimestamp returns the old "creation_timestamp" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldCreationTimestamp(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreationTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreationTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreationTimestamp: %w", err)
	}
	return oldValue.CreationTimestamp, nil
}

// AddCreationTimestamp adds i to the "creation_timestamp" field.
func (m *RequestMutation) AddCreationTimestamp(i int64) {
	if m.addcreation_timestamp != nil {
		*m.addcreation_timestamp += i
	} else {
		m.addcreation_timestamp = &i
	}
}

// AddedCreationTimestamp returns the value that was added to the "creation_timestamp" field in this mutation.
func (m *RequestMutation) AddedCreationTimestamp() (r int64, exists bool) {
	v := m.addcreation_timestamp
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreationTimestamp resets all changes to the "creation_timestamp" field.
func (m *RequestMutation) ResetCreationTimestamp() {
	m.creation_timestamp = nil
	m.addcreation_timestamp = nil
}

// SetLastModifiedDate sets the "last_modified_date" field.
func (m *RequestMutation) SetLastModifiedDate(i int64) {
	m.last_modified_date = &i
	m.addlast_modified_date = nil
}

// LastModifiedDate returns the value of the "last_modified_date" field in the mutation.
func (m *RequestMutation) LastModifiedDate() (r int64, exists bool) {
	v := m.last_modified_date
	if v == nil {
		return
	}
	return *v, true
}

// OldLastModifiedDate returns the old "last_modified_date" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldLastModifiedDate(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastModifiedDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastModifiedDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastModifiedDate: %w", err)
	}
	return oldValue.LastModifiedDate, nil
}

// AddLastModifiedDate adds i to the "last_modified_date" field.
func (m *RequestMutation) AddLastModifiedDate(i int64) {
	if m.addlast_modified_date != nil {
		*m.addlast_modified_date += i
	} else {
		m.addlast_modified_date = &i
	}
}

// AddedLastModifiedDate returns the value that was added to the "last_modified_date" field in this mutation.
func (m *RequestMutation) AddedLastModifiedDate() (r int64, exists bool) {
	v := m.addlast_modified_date
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastModifiedDate resets all changes to the "last_modified_date" field.
func (m *RequestMutation) ResetLastModifiedDate() {
	m.last_modified_date = nil
	m.addlast_modified_date = nil
}

// Where appends a list predicates to the RequestMutation builder.
func (m *RequestMutation) Where(ps ...predicate.Request) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Request, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Request).
func (m *RequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RequestMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.company_id != nil {
		fields = append(fields, request.FieldCompanyID)
	}
	if m.data_type != nil {
		fields = append(fields, request.FieldDataType)
	}
	if m.reporting_period != nil {
		fields = append(fields, request.FieldReportingPeriod)
	}
	if m.user_id != nil {
		fields = append(fields, request.FieldUserID)
	}
	if m.state != nil {
		fields = append(fields, request.FieldState)
	}
	if m.priority != nil {
		fields = append(fields, request.FieldPriority)
	}
	if m.member_comment != nil {
		fields = append(fields, request.FieldMemberComment)
	}
	if m.admin_comment != nil {
		fields = append(fields, request.FieldAdminComment)
	}
	if m.data_sourcing_id != nil {
		fields = append(fields, request.FieldDataSourcingID)
	}
	if m.creation_timestamp != nil {
		fields = append(fields, request.FieldCreationTimestamp)
	}
	if m.last_modified_date != nil {
		fields = append(fields, request.FieldLastModifiedDate)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case request.FieldCompanyID:
		return m.CompanyID()
	case request.FieldDataType:
		return m.DataType()
	case request.FieldReportingPeriod:
		return m.ReportingPeriod()
	case request.FieldUserID:
		return m.UserID()
	case request.FieldState:
		return m.State()
	case request.FieldPriority:
		return m.Priority()
	case request.FieldMemberComment:
		return m.MemberComment()
	case request.FieldAdminComment:
		return m.AdminComment()
	case request.FieldDataSourcingID:
		return m.DataSourcingID()
	case request.FieldCreationTimestamp:
		return m.CreationTimestamp()
	case request.FieldLastModifiedDate:
		return m.LastModifiedDate()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case request.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case request.FieldDataType:
		return m.OldDataType(ctx)
	case request.FieldReportingPeriod:
		return m.OldReportingPeriod(ctx)
	case request.FieldUserID:
		return m.OldUserID(ctx)
	case request.FieldState:
		return m.OldState(ctx)
	case request.FieldPriority:
		return m.OldPriority(ctx)
	case request.FieldMemberComment:
		return m.OldMemberComment(ctx)
	case request.FieldAdminComment:
		return m.OldAdminComment(ctx)
	case request.FieldDataSourcingID:
		return m.OldDataSourcingID(ctx)
	case request.FieldCreationTimestamp:
		return m.OldCreationTimestamp(ctx)
	case request.FieldLastModifiedDate:
		return m.OldLastModifiedDate(ctx)
	}
	return nil, fmt.Errorf("unknown Request field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case request.FieldCompanyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case request.FieldDataType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataType(v)
		return nil
	case request.FieldReportingPeriod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportingPeriod(v)
		return nil
	case request.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case request.FieldState:
		v, ok := value.(request.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case request.FieldPriority:
		v, ok := value.(request.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case request.FieldMemberComment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemberComment(v)
		return nil
	case request.FieldAdminComment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdminComment(v)
		return nil
	case request.FieldDataSourcingID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataSourcingID(v)
		return nil
	case request.FieldCreationTimestamp:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreationTimestamp(v)
		return nil
	case request.FieldLastModifiedDate:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastModifiedDate(v)
		return nil
	}
	return fmt.Errorf("unknown Request field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RequestMutation) AddedFields() []string {
	var fields []string
	if m.addcreation_timestamp != nil {
		fields = append(fields, request.FieldCreationTimestamp)
	}
	if m.addlast_modified_date != nil {
		fields = append(fields, request.FieldLastModifiedDate)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RequestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case request.FieldCreationTimestamp:
		return m.AddedCreationTimestamp()
	case request.FieldLastModifiedDate:
		return m.AddedLastModifiedDate()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case request.FieldCreationTimestamp:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreationTimestamp(v)
		return nil
	case request.FieldLastModifiedDate:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastModifiedDate(v)
		return nil
	}
	return fmt.Errorf("unknown Request numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(request.FieldMemberComment) {
		fields = append(fields, request.FieldMemberComment)
	}
	if m.FieldCleared(request.FieldAdminComment) {
		fields = append(fields, request.FieldAdminComment)
	}
	if m.FieldCleared(request.FieldDataSourcingID) {
		fields = append(fields, request.FieldDataSourcingID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RequestMutation) ClearField(name string) error {
	switch name {
	case request.FieldMemberComment:
		m.ClearMemberComment()
		return nil
	case request.FieldAdminComment:
		m.ClearAdminComment()
		return nil
	case request.FieldDataSourcingID:
		m.ClearDataSourcingID()
		return nil
	}
	return fmt.Errorf("unknown Request nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RequestMutation) ResetField(name string) error {
	switch name {
	case request.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case request.FieldDataType:
		m.ResetDataType()
		return nil
	case request.FieldReportingPeriod:
		m.ResetReportingPeriod()
		return nil
	case request.FieldUserID:
		m.ResetUserID()
		return nil
	case request.FieldState:
		m.ResetState()
		return nil
	case request.FieldPriority:
		m.ResetPriority()
		return nil
	case request.FieldMemberComment:
		m.ResetMemberComment()
		return nil
	case request.FieldAdminComment:
		m.ResetAdminComment()
		return nil
	case request.FieldDataSourcingID:
		m.ResetDataSourcingID()
		return nil
	case request.FieldCreationTimestamp:
		m.ResetCreationTimestamp()
		return nil
	case request.FieldLastModifiedDate:
		m.ResetLastModifiedDate()
		return nil
	}
	return fmt.Errorf("unknown Request field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RequestMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RequestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RequestMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RequestMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Request unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RequestMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Request edge %s", name)
}

// RevisionMutation represents an operation that mutates the Revision nodes in the graph.
type RevisionMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	entity_id     *uuid.UUID
	kind          *revision.Kind
	state         *string
	admin_comment *string
	timestamp     *int64
	addtimestamp  *int64
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Revision, error)
	predicates    []predicate.Revision
}

var _ ent.Mutation = (*RevisionMutation)(nil)

// revisionOption allows management of the mutation configuration using functional options.
type revisionOption func(*RevisionMutation)

// newRevisionMutation creates new mutation for the Revision entity.
func newRevisionMutation(c config, op Op, opts ...revisionOption) *RevisionMutation {
	m := &RevisionMutation{
		config:        c,
		op:            op,
		typ:           TypeRevision,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRevisionID sets the ID field of the mutation.
func withRevisionID(id uuid.UUID) revisionOption {
	return func(m *RevisionMutation) {
		var (
			err   error
			once  sync.Once
			value *Revision
		)
		m.oldValue = func(ctx context.Context) (*Revision, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Revision.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRevision sets the old Revision of the mutation.
func withRevision(node *Revision) revisionOption {
	return func(m *RevisionMutation) {
		m.oldValue = func(context.Context) (*Revision, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RevisionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RevisionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Revision entities.
func (m *RevisionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RevisionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RevisionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Revision.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEntityID sets the "entity_id" field.
func (m *RevisionMutation) SetEntityID(u uuid.UUID) {
	m.entity_id = &u
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *RevisionMutation) EntityID() (r uuid.UUID, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the Revision entity.
// If the Revision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RevisionMutation) OldEntityID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *RevisionMutation) ResetEntityID() {
	m.entity_id = nil
}

// SetKind sets the "kind" field.
func (m *RevisionMutation) SetKind(r revision.Kind) {
	m.kind = &r
}

// Kind returns the value of the "kind" field in the mutation.
func (m *RevisionMutation) Kind() (r revision.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Revision entity.
// If the Revision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RevisionMutation) OldKind(ctx context.Context) (v revision.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *RevisionMutation) ResetKind() {
	m.kind = nil
}

// SetState sets the "state" field.
func (m *RevisionMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *RevisionMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Revision entity.
// If the Revision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RevisionMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *RevisionMutation) ResetState() {
	m.state = nil
}

// SetAdminComment sets the "admin_comment" field.
func (m *RevisionMutation) SetAdminComment(s string) {
	m.admin_comment = &s
}

// AdminComment returns the value of the "admin_comment" field in the mutation.
func (m *RevisionMutation) AdminComment() (r string, exists bool) {
	v := m.admin_comment
	if v == nil {
		return
	}
	return *v, true
}

// OldAdminComment returns the old "admin_comment" field's value of the Revision entity.
// If the Revision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RevisionMutation) OldAdminComment(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdminComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdminComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdminComment: %w", err)
	}
	return oldValue.AdminComment, nil
}

// ClearAdminComment clears the value of the "admin_comment" field.
func (m *RevisionMutation) ClearAdminComment() {
	m.admin_comment = nil
	m.clearedFields[revision.FieldAdminComment] = struct{}{}
}

// AdminCommentCleared returns if the "admin_comment" field was cleared in this mutation.
func (m *RevisionMutation) AdminCommentCleared() bool {
	_, ok := m.clearedFields[revision.FieldAdminComment]
	return ok
}

// ResetAdminComment resets all changes to the "admin_comment" field.
func (m *RevisionMutation) ResetAdminComment() {
	m.admin_comment = nil
	delete(m.clearedFields, revision.FieldAdminComment)
}

// SetTimestamp sets the "timestamp" field.
func (m *RevisionMutation) SetTimestamp(i int64) {
	m.timestamp = &i
	m.addtimestamp = nil
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *RevisionMutation) Timestamp() (r int64, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Revision entity.
// If the Revision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RevisionMutation) OldTimestamp(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// AddTimestamp adds i to the "timestamp" field.
func (m *RevisionMutation) AddTimestamp(i int64) {
	if m.addtimestamp != nil {
		*m.addtimestamp += i
	} else {
		m.addtimestamp = &i
	}
}

// AddedTimestamp returns the value that was added to the "timestamp" field in this mutation.
func (m *RevisionMutation) AddedTimestamp() (r int64, exists bool) {
	v := m.addtimestamp
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *RevisionMutation) ResetTimestamp() {
	m.timestamp = nil
	m.addtimestamp = nil
}

// Where appends a list predicates to the RevisionMutation builder.
func (m *RevisionMutation) Where(ps ...predicate.Revision) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RevisionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RevisionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Revision, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RevisionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RevisionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Revision).
func (m *RevisionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RevisionMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.entity_id != nil {
		fields = append(fields, revision.FieldEntityID)
	}
	if m.kind != nil {
		fields = append(fields, revision.FieldKind)
	}
	if m.state != nil {
		fields = append(fields, revision.FieldState)
	}
	if m.admin_comment != nil {
		fields = append(fields, revision.FieldAdminComment)
	}
	if m.timestamp != nil {
		fields = append(fields, revision.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RevisionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case revision.FieldEntityID:
		return m.EntityID()
	case revision.FieldKind:
		return m.Kind()
	case revision.FieldState:
		return m.State()
	case revision.FieldAdminComment:
		return m.AdminComment()
	case revision.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RevisionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case revision.FieldEntityID:
		return m.OldEntityID(ctx)
	case revision.FieldKind:
		return m.OldKind(ctx)
	case revision.FieldState:
		return m.OldState(ctx)
	case revision.FieldAdminComment:
		return m.OldAdminComment(ctx)
	case revision.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown Revision field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RevisionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case revision.FieldEntityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case revision.FieldKind:
		v, ok := value.(revision.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case revision.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case revision.FieldAdminComment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdminComment(v)
		return nil
	case revision.FieldTimestamp:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown Revision field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RevisionMutation) AddedFields() []string {
	var fields []string
	if m.addtimestamp != nil {
		fields = append(fields, revision.FieldTimestamp)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RevisionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case revision.FieldTimestamp:
		return m.AddedTimestamp()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RevisionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case revision.FieldTimestamp:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown Revision numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RevisionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(revision.FieldAdminComment) {
		fields = append(fields, revision.FieldAdminComment)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RevisionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RevisionMutation) ClearField(name string) error {
	switch name {
	case revision.FieldAdminComment:
		m.ClearAdminComment()
		return nil
	}
	return fmt.Errorf("unknown Revision nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RevisionMutation) ResetField(name string) error {
	switch name {
	case revision.FieldEntityID:
		m.ResetEntityID()
		return nil
	case revision.FieldKind:
		m.ResetKind()
		return nil
	case revision.FieldState:
		m.ResetState()
		return nil
	case revision.FieldAdminComment:
		m.ResetAdminComment()
		return nil
	case revision.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown Revision field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RevisionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RevisionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RevisionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RevisionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RevisionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RevisionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RevisionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Revision unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RevisionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Revision edge %s", name)
}
