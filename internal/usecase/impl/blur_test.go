package impl

import (
	"testing"

	"crossing/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestClassifyBlur(t *testing.T) {
	home := func(c entity.Coordinates) *entity.Address {
		return &entity.Address{Kind: entity.AddressKindHome, Latitude: c.Latitude, Longitude: c.Longitude}
	}

	tests := []struct {
		name        string
		subjectHome *entity.Address
		otherHome   *entity.Address
		subjectAt   entity.Coordinates
		otherAt     entity.Coordinates
		want        entity.BlurType
	}{
		{name: "both at home", subjectHome: home(taipei101), otherHome: home(nearTaipei), subjectAt: taipei101, otherAt: nearTaipei, want: entity.BlurTypeNeighbor},
		{name: "counterpart away", subjectHome: home(taipei101), otherHome: home(taoyuan), subjectAt: taipei101, otherAt: nearTaipei, want: entity.BlurTypeLong},
		{name: "subject away", subjectHome: home(taoyuan), otherHome: home(nearTaipei), subjectAt: taipei101, otherAt: nearTaipei, want: entity.BlurTypeTravel},
		{name: "both away prefers travel", subjectHome: home(taoyuan), otherHome: home(taoyuan), subjectAt: taipei101, otherAt: nearTaipei, want: entity.BlurTypeTravel},
		{name: "no homes", subjectAt: taipei101, otherAt: taoyuan, want: entity.BlurTypeNeighbor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyBlur(tt.subjectHome, tt.otherHome, tt.subjectAt, tt.otherAt, 20))
		})
	}
}

func TestBlurExempt(t *testing.T) {
	userID, other := uuid.New(), uuid.New()

	assert.False(t, blurExempt(userID, other, entity.BlurTypeLong, blurExemptions{}))

	assert.True(t, blurExempt(userID, other, entity.BlurTypeLong, blurExemptions{
		passes: map[string]bool{"long": true},
	}))
	assert.False(t, blurExempt(userID, other, entity.BlurTypeTravel, blurExemptions{
		passes: map[string]bool{"long": true},
	}))

	assert.True(t, blurExempt(userID, other, entity.BlurTypeTravel, blurExemptions{
		purchases: map[uuid.UUID]map[string]bool{other: {"travel": true}},
	}))

	key := entity.NewPairKey(userID, other)
	assert.False(t, blurExempt(userID, other, entity.BlurTypeTravel, blurExemptions{
		pairs: map[entity.PairKey]*entity.PairAggregate{key: {Key: key, Categories: []string{entity.CategoryCrossing}}},
	}))
	assert.True(t, blurExempt(userID, other, entity.BlurTypeTravel, blurExemptions{
		pairs: map[entity.PairKey]*entity.PairAggregate{key: {Key: key, Categories: []string{entity.CategoryCrossing, "chat"}}},
	}))
}
