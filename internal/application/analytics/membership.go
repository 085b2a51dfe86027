package analytics

import (
	"slices"

	"github.com/google/uuid"
	"github.com/sangkips/autocare-api/internal/domain/entity"
)

// Lifecycle splits the membership orders of a range into first-time and returning buyers
type Lifecycle struct {
	NewCount     int
	RenewedCount int
}

// ClassifyMemberships walks in-range orders oldest first. A customer's first order in the
// range is "new" unless they bought before the range; every other order is "renewed".
// A lapse followed by a new purchase is still "renewed".
func ClassifyMemberships(orders []entity.MembershipOrder, priorCustomers []uuid.UUID) Lifecycle {
	prior := make(map[uuid.UUID]struct{}, len(priorCustomers))
	for _, id := range priorCustomers {
		prior[id] = struct{}{}
	}

	sorted := slices.Clone(orders)
	slices.SortStableFunc(sorted, func(a, b entity.MembershipOrder) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	var lc Lifecycle
	seen := make(map[uuid.UUID]struct{})
	for _, o := range sorted {
		_, hadPrior := prior[o.CustomerID]
		_, seenInRange := seen[o.CustomerID]
		if !hadPrior && !seenInRange {
			lc.NewCount++
		} else {
			lc.RenewedCount++
		}
		seen[o.CustomerID] = struct{}{}
	}
	return lc
}
