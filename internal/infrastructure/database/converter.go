package database

import (
	"github.com/google/uuid"

	"github.com/d-fine/dataland-sourcing-service/internal/domain/entity"
	"github.com/d-fine/dataland-sourcing-service/internal/ent"
)

// toRequestEntity converts an ent row to the domain entity at the
// infrastructure boundary.
func toRequestEntity(row *ent.Request) *entity.Request {
	if row == nil {
		return nil
	}
	request := &entity.Request{
		ID:                row.ID.String(),
		CompanyID:         row.CompanyID,
		DataType:          row.DataType,
		ReportingPeriod:   row.ReportingPeriod,
		UserID:            row.UserID,
		State:             entity.RequestState(row.State),
		Priority:          entity.RequestPriority(row.Priority),
		MemberComment:     row.MemberComment,
		AdminComment:      row.AdminComment,
		CreationTimestamp: row.CreationTimestamp,
		LastModifiedDate:  row.LastModifiedDate,
	}
	if row.DataSourcingID != nil {
		id := row.DataSourcingID.String()
		request.DataSourcingID = &id
	}
	return request
}

// toDataSourcingEntity converts an ent row plus the ids of its associated
// requests, which live on the request table.
func toDataSourcingEntity(row *ent.DataSourcing, associatedRequestIDs []string) *entity.DataSourcing {
	if row == nil {
		return nil
	}
	dataSourcing := &entity.DataSourcing{
		ID:                                row.ID.String(),
		CompanyID:                         row.CompanyID,
		DataType:                          row.DataType,
		ReportingPeriod:                   row.ReportingPeriod,
		State:                             entity.DataSourcingState(row.State),
		DocumentCollector:                 row.DocumentCollector,
		DataExtractor:                     row.DataExtractor,
		DateOfNextDocumentSourcingAttempt: row.DateOfNextDocumentSourcingAttempt,
		AdminComment:                      row.AdminComment,
		Documents:                         row.Documents,
		AssociatedRequestIDs:              associatedRequestIDs,
		LastModifiedDate:                  row.LastModifiedDate,
	}
	if row.PriorityOverride != nil {
		priority := entity.RequestPriority(*row.PriorityOverride)
		dataSourcing.PriorityOverride = &priority
	}
	return dataSourcing
}

func toRevisionEntity(row *ent.Revision) entity.Revision {
	return entity.Revision{
		EntityID:     row.EntityID.String(),
		Kind:         entity.RevisionKind(row.Kind),
		State:        row.State,
		AdminComment: row.AdminComment,
		Timestamp:    row.Timestamp,
	}
}

// parseID converts an opaque domain id back into the storage key.
func parseID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}
