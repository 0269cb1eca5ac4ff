package database

import (
	"context"
	"fmt"

	"github.com/d-fine/dataland-sourcing-service/internal/domain"
	"github.com/d-fine/dataland-sourcing-service/internal/domain/entity"
	"github.com/d-fine/dataland-sourcing-service/internal/ent"
	"github.com/d-fine/dataland-sourcing-service/internal/ent/revision"
)

// revisionStore is the ent implementation of domain.RevisionStore. The
// repositories write revisions inside their own transactions; this store is
// the shared read path plus a standalone append for callers outside a
// repository write.
type revisionStore struct {
	client *ent.Client
}

// NewRevisionStore creates a RevisionStore backed by ent.
func NewRevisionStore(client *ent.Client) domain.RevisionStore {
	return &revisionStore{client: client}
}

func (s *revisionStore) Append(ctx context.Context, rev entity.Revision) error {
	entityID, err := parseID(rev.EntityID)
	if err != nil {
		return fmt.Errorf("invalid entity id: %w", err)
	}

	_, err = s.client.Revision.Create().
		SetEntityID(entityID).
		SetKind(revision.Kind(rev.Kind)).
		SetState(rev.State).
		SetNillableAdminComment(rev.AdminComment).
		SetTimestamp(rev.Timestamp).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to append revision: %w", err)
	}
	return nil
}

func (s *revisionStore) ListSince(ctx context.Context, entityID string, afterTimestamp int64) ([]entity.Revision, error) {
	id, err := parseID(entityID)
	if err != nil {
		return nil, domain.NewNotFoundError("entity", entityID)
	}

	rows, err := s.client.Revision.Query().
		Where(
			revision.EntityID(id),
			revision.TimestampGT(afterTimestamp),
		).
		Order(ent.Asc(revision.FieldTimestamp), ent.Asc(revision.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list revisions: %w", err)
	}

	result := make([]entity.Revision, len(rows))
	for i, row := range rows {
		result[i] = toRevisionEntity(row)
	}
	return result, nil
}
