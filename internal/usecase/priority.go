package usecase

import "github.com/d-fine/dataland-sourcing-service/internal/domain/entity"

// TargetPriority is the priority policy: premium requesters get High,
// everyone else Low. Pure function; the rebalancer applies it in batch.
func TargetPriority(isPremium bool) entity.RequestPriority {
	if isPremium {
		return entity.RequestPriorityHigh
	}
	return entity.RequestPriorityLow
}

// DerivedPriority resolves the priority of a data sourcing entity: an admin
// override wins; otherwise the entity is High as soon as any associated
// request is High.
func DerivedPriority(dataSourcing *entity.DataSourcing, requests []*entity.Request) entity.RequestPriority {
	if dataSourcing.PriorityOverride != nil {
		return *dataSourcing.PriorityOverride
	}
	for _, request := range requests {
		if request.Priority == entity.RequestPriorityHigh {
			return entity.RequestPriorityHigh
		}
	}
	return entity.RequestPriorityLow
}
