package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/d-fine/dataland-sourcing-service/internal/domain"
	"github.com/d-fine/dataland-sourcing-service/internal/domain/entity"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ============ Revision store fake ============

type testRevisionStore struct {
	mu   sync.Mutex
	logs map[string][]entity.Revision
}

func newTestRevisionStore() *testRevisionStore {
	return &testRevisionStore{logs: make(map[string][]entity.Revision)}
}

func (s *testRevisionStore) Append(ctx context.Context, revision entity.Revision) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs[revision.EntityID] = append(s.logs[revision.EntityID], revision)
	return nil
}

func (s *testRevisionStore) ListSince(ctx context.Context, entityID string, afterTimestamp int64) ([]entity.Revision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.Revision
	for _, revision := range s.logs[entityID] {
		if revision.Timestamp > afterTimestamp {
			out = append(out, revision)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp < out[j].Timestamp })
	return out, nil
}

// ============ Request repository fake ============

type testRequestRepository struct {
	mu        sync.Mutex
	requests  map[string]*entity.Request
	revisions *testRevisionStore
	updateErr map[string]error // per request id, returned by Update
}

func newTestRequestRepository(revisions *testRevisionStore) *testRequestRepository {
	return &testRequestRepository{
		requests:  make(map[string]*entity.Request),
		revisions: revisions,
		updateErr: make(map[string]error),
	}
}

func cloneRequest(request *entity.Request) *entity.Request {
	clone := *request
	return &clone
}

func (r *testRequestRepository) appendRevision(request *entity.Request) {
	if r.revisions == nil {
		return
	}
	_ = r.revisions.Append(context.Background(), entity.Revision{
		EntityID:     request.ID,
		Kind:         entity.RevisionKindRequest,
		State:        string(request.State),
		AdminComment: request.AdminComment,
		Timestamp:    request.LastModifiedDate,
	})
}

func (r *testRequestRepository) Create(ctx context.Context, request *entity.Request) (*entity.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if request.ID == "" {
		request.ID = uuid.New().String()
	}
	r.requests[request.ID] = cloneRequest(request)
	r.appendRevision(request)
	return cloneRequest(request), nil
}

func (r *testRequestRepository) GetByID(ctx context.Context, requestID string) (*entity.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	request, ok := r.requests[requestID]
	if !ok {
		return nil, domain.NewNotFoundError("request", requestID)
	}
	return cloneRequest(request), nil
}

func (r *testRequestRepository) Update(ctx context.Context, request *entity.Request) (*entity.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.updateErr[request.ID]; err != nil {
		return nil, err
	}
	if _, ok := r.requests[request.ID]; !ok {
		return nil, domain.NewNotFoundError("request", request.ID)
	}
	r.requests[request.ID] = cloneRequest(request)
	r.appendRevision(request)
	return cloneRequest(request), nil
}

func matchesRequestFilter(request *entity.Request, filter domain.RequestSearchFilter) bool {
	if filter.CompanyID != nil && request.CompanyID != *filter.CompanyID {
		return false
	}
	if filter.DataType != nil && request.DataType != *filter.DataType {
		return false
	}
	if filter.ReportingPeriod != nil && request.ReportingPeriod != *filter.ReportingPeriod {
		return false
	}
	if filter.UserID != nil && request.UserID != *filter.UserID {
		return false
	}
	if len(filter.States) > 0 {
		found := false
		for _, state := range filter.States {
			if request.State == state {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if len(filter.Priorities) > 0 {
		found := false
		for _, priority := range filter.Priorities {
			if request.Priority == priority {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (r *testRequestRepository) Search(ctx context.Context, filter domain.RequestSearchFilter, offset, limit int) ([]*entity.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.Request
	for _, request := range r.requests {
		if matchesRequestFilter(request, filter) {
			matched = append(matched, cloneRequest(request))
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreationTimestamp != matched[j].CreationTimestamp {
			return matched[i].CreationTimestamp < matched[j].CreationTimestamp
		}
		return matched[i].ID < matched[j].ID
	})
	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *testRequestRepository) Count(ctx context.Context, filter domain.RequestSearchFilter) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, request := range r.requests {
		if matchesRequestFilter(request, filter) {
			count++
		}
	}
	return count, nil
}

// ============ Data sourcing repository fake ============

type testDataSourcingRepository struct {
	mu          sync.Mutex
	entities    map[string]*entity.DataSourcing
	requests    *testRequestRepository
	revisions   *testRevisionStore
	createErr   error
	completeErr error
	createCalls int

	// hideLiveOnce makes the next FindLiveByDimension miss, simulating a
	// lookup that raced with another writer's insert.
	hideLiveOnce bool

	// beforeComplete runs at the start of CompleteWithRequests, before the
	// per-request state re-check, simulating a writer that slipped in
	// between the caller's snapshot and the transaction.
	beforeComplete func()
}

func newTestDataSourcingRepository(requests *testRequestRepository, revisions *testRevisionStore) *testDataSourcingRepository {
	return &testDataSourcingRepository{
		entities:  make(map[string]*entity.DataSourcing),
		requests:  requests,
		revisions: revisions,
	}
}

func cloneDataSourcing(dataSourcing *entity.DataSourcing) *entity.DataSourcing {
	clone := *dataSourcing
	clone.Documents = append([]string(nil), dataSourcing.Documents...)
	clone.AssociatedRequestIDs = append([]string(nil), dataSourcing.AssociatedRequestIDs...)
	return &clone
}

func (r *testDataSourcingRepository) appendRevision(dataSourcing *entity.DataSourcing) {
	if r.revisions == nil {
		return
	}
	_ = r.revisions.Append(context.Background(), entity.Revision{
		EntityID:     dataSourcing.ID,
		Kind:         entity.RevisionKindDataSourcing,
		State:        string(dataSourcing.State),
		AdminComment: dataSourcing.AdminComment,
		Timestamp:    dataSourcing.LastModifiedDate,
	})
}

func (r *testDataSourcingRepository) Create(ctx context.Context, dataSourcing *entity.DataSourcing) (*entity.DataSourcing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createCalls++
	if r.createErr != nil {
		return nil, r.createErr
	}
	if dataSourcing.ID == "" {
		dataSourcing.ID = uuid.New().String()
	}
	r.entities[dataSourcing.ID] = cloneDataSourcing(dataSourcing)
	r.appendRevision(dataSourcing)
	return cloneDataSourcing(dataSourcing), nil
}

func (r *testDataSourcingRepository) GetByID(ctx context.Context, dataSourcingID string) (*entity.DataSourcing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dataSourcing, ok := r.entities[dataSourcingID]
	if !ok {
		return nil, domain.NewNotFoundError("data sourcing entity", dataSourcingID)
	}
	return cloneDataSourcing(dataSourcing), nil
}

func (r *testDataSourcingRepository) Update(ctx context.Context, dataSourcing *entity.DataSourcing) (*entity.DataSourcing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entities[dataSourcing.ID]; !ok {
		return nil, domain.NewNotFoundError("data sourcing entity", dataSourcing.ID)
	}
	r.entities[dataSourcing.ID] = cloneDataSourcing(dataSourcing)
	r.appendRevision(dataSourcing)
	return cloneDataSourcing(dataSourcing), nil
}

func (r *testDataSourcingRepository) FindLiveByDimension(ctx context.Context, dimension entity.Dimension) (*entity.DataSourcing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.hideLiveOnce {
		r.hideLiveOnce = false
		return nil, domain.NewNotFoundError("data sourcing entity", dimension.Key())
	}
	for _, dataSourcing := range r.entities {
		if dataSourcing.Dimension() == dimension && !dataSourcing.IsTerminal() {
			return cloneDataSourcing(dataSourcing), nil
		}
	}
	return nil, domain.NewNotFoundError("data sourcing entity", dimension.Key())
}

func (r *testDataSourcingRepository) AttachRequest(ctx context.Context, dataSourcingID, requestID string) (*entity.DataSourcing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dataSourcing, ok := r.entities[dataSourcingID]
	if !ok {
		return nil, domain.NewNotFoundError("data sourcing entity", dataSourcingID)
	}
	for _, existing := range dataSourcing.AssociatedRequestIDs {
		if existing == requestID {
			return cloneDataSourcing(dataSourcing), nil
		}
	}
	dataSourcing.AssociatedRequestIDs = append(dataSourcing.AssociatedRequestIDs, requestID)
	return cloneDataSourcing(dataSourcing), nil
}

func (r *testDataSourcingRepository) CompleteWithRequests(ctx context.Context, dataSourcing *entity.DataSourcing, requests []*entity.Request) (*entity.DataSourcing, error) {
	if r.beforeComplete != nil {
		r.beforeComplete()
	}

	r.mu.Lock()
	if r.completeErr != nil {
		r.mu.Unlock()
		return nil, r.completeErr
	}
	if _, ok := r.entities[dataSourcing.ID]; !ok {
		r.mu.Unlock()
		return nil, domain.NewNotFoundError("data sourcing entity", dataSourcing.ID)
	}
	r.entities[dataSourcing.ID] = cloneDataSourcing(dataSourcing)
	r.appendRevision(dataSourcing)
	r.mu.Unlock()

	for _, request := range requests {
		// Mirrors the locked re-check of the real repository: a request
		// that turned terminal after the caller's snapshot stays put.
		current, err := r.requests.GetByID(ctx, request.ID)
		if err != nil {
			return nil, fmt.Errorf("cascade read failed: %w", err)
		}
		switch current.State {
		case entity.RequestStateWithdrawn, entity.RequestStateProcessed:
			continue
		}
		if _, err := r.requests.Update(ctx, request); err != nil {
			return nil, fmt.Errorf("cascade write failed: %w", err)
		}
	}
	return cloneDataSourcing(dataSourcing), nil
}

func (r *testDataSourcingRepository) Search(ctx context.Context, filter domain.DataSourcingSearchFilter, offset, limit int) ([]*entity.DataSourcing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.DataSourcing
	for _, dataSourcing := range r.entities {
		if matchesDataSourcingFilter(dataSourcing, filter) {
			matched = append(matched, cloneDataSourcing(dataSourcing))
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func matchesDataSourcingFilter(dataSourcing *entity.DataSourcing, filter domain.DataSourcingSearchFilter) bool {
	if filter.CompanyID != nil && dataSourcing.CompanyID != *filter.CompanyID {
		return false
	}
	if filter.DataType != nil && dataSourcing.DataType != *filter.DataType {
		return false
	}
	if filter.ReportingPeriod != nil && dataSourcing.ReportingPeriod != *filter.ReportingPeriod {
		return false
	}
	return true
}

func (r *testDataSourcingRepository) Count(ctx context.Context, filter domain.DataSourcingSearchFilter) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, dataSourcing := range r.entities {
		if matchesDataSourcingFilter(dataSourcing, filter) {
			count++
		}
	}
	return count, nil
}

func (r *testDataSourcingRepository) ListByAssignedCompany(ctx context.Context, companyID string) ([]*entity.DataSourcing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.DataSourcing
	for _, dataSourcing := range r.entities {
		collector := dataSourcing.DocumentCollector != nil && *dataSourcing.DocumentCollector == companyID
		extractor := dataSourcing.DataExtractor != nil && *dataSourcing.DataExtractor == companyID
		if collector || extractor {
			matched = append(matched, cloneDataSourcing(dataSourcing))
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched, nil
}

// ============ Collaborator fakes ============

type testCompanyRoles struct {
	roles map[string][]domain.Role // key: userID + "/" + companyID
}

func newTestCompanyRoles() *testCompanyRoles {
	return &testCompanyRoles{roles: make(map[string][]domain.Role)}
}

func (s *testCompanyRoles) grant(userID, companyID string, roles ...domain.Role) {
	s.roles[userID+"/"+companyID] = roles
}

func (s *testCompanyRoles) GetRolesOf(ctx context.Context, userID, companyID string) ([]domain.Role, error) {
	return s.roles[userID+"/"+companyID], nil
}

type testTierService struct {
	premium map[string]bool
	err     error
}

func newTestTierService() *testTierService {
	return &testTierService{premium: make(map[string]bool)}
}

func (s *testTierService) IsPremium(ctx context.Context, userID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.premium[userID], nil
}

type testDimensionValidator struct {
	invalid map[string]bool // key: companyID + "/" + dataType
	err     error
}

func newTestDimensionValidator() *testDimensionValidator {
	return &testDimensionValidator{invalid: make(map[string]bool)}
}

func (v *testDimensionValidator) IsValidDimension(ctx context.Context, companyID, dataType string) (bool, error) {
	if v.err != nil {
		return false, v.err
	}
	return !v.invalid[companyID+"/"+dataType], nil
}

// ============ Shared fixtures ============

func strPtr(s string) *string { return &s }

type testEnv struct {
	revisions        *testRevisionStore
	requestRepo      *testRequestRepository
	dataSourcingRepo *testDataSourcingRepository
	companyRoles     *testCompanyRoles
	tiers            *testTierService
	dimensions       *testDimensionValidator
}

func newTestEnv() *testEnv {
	revisions := newTestRevisionStore()
	requestRepo := newTestRequestRepository(revisions)
	return &testEnv{
		revisions:        revisions,
		requestRepo:      requestRepo,
		dataSourcingRepo: newTestDataSourcingRepository(requestRepo, revisions),
		companyRoles:     newTestCompanyRoles(),
		tiers:            newTestTierService(),
		dimensions:       newTestDimensionValidator(),
	}
}

func (e *testEnv) requestUsecase() domain.RequestUsecase {
	grouper := NewDimensionGrouper(e.dataSourcingRepo, testLogger())
	return NewRequestUsecase(e.requestRepo, grouper, e.dimensions, testLogger())
}

func (e *testEnv) dataSourcingUsecase() domain.DataSourcingUsecase {
	return NewDataSourcingUsecase(e.dataSourcingRepo, e.requestRepo, e.revisions, e.companyRoles, testLogger())
}

func (e *testEnv) historyUsecase() domain.HistoryUsecase {
	return NewHistoryUsecase(e.requestRepo, e.revisions, NewHistoryReconciler(DefaultProximityThresholdMillis), testLogger())
}

func (e *testEnv) rebalanceUsecase() domain.RebalanceUsecase {
	return NewRebalanceUsecase(e.requestRepo, e.tiers, DefaultRebalancePageSize, testLogger())
}
