package impl

import (
	"crossing/internal/domain/entity"

	"github.com/google/uuid"
)

// classifyBlur types a crossing from where each party stood relative to
// their own home. Travel wins over long when both apply.
func classifyBlur(subjectHome, otherHome *entity.Address, subjectAt, otherAt entity.Coordinates, homeRadiusKm float64) entity.BlurType {
	if isTraveling(subjectHome, subjectAt, homeRadiusKm) {
		return entity.BlurTypeTravel
	}

	if isTraveling(otherHome, otherAt, homeRadiusKm) {
		return entity.BlurTypeLong
	}

	return entity.BlurTypeNeighbor
}

// A user without a home is never traveling.
func isTraveling(home *entity.Address, at entity.Coordinates, homeRadiusKm float64) bool {
	if home == nil {
		return false
	}

	return home.Coordinates().DistanceKm(at) > homeRadiusKm
}

// blurExemptions is the entitlement state of one subject, loaded once per page.
type blurExemptions struct {
	passes    map[string]bool
	purchases map[uuid.UUID]map[string]bool
	pairs     map[entity.PairKey]*entity.PairAggregate
}

// blurExempt reports whether the subject may see the exact detail of a
// blurrable row of the given type.
func blurExempt(userID, otherUserID uuid.UUID, blurType entity.BlurType, ex blurExemptions) bool {
	category := blurType.Category()

	if ex.passes[category] {
		return true
	}

	if ex.purchases[otherUserID][category] {
		return true
	}

	return ex.pairs[entity.NewPairKey(userID, otherUserID)].HasCrossFeatureMatch()
}
