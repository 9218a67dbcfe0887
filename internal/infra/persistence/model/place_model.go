package model

// PlaceModel mirrors the 'places' gazetteer table used for offline geocoding.
type PlaceModel struct {
	ID         int64   `gorm:"primaryKey"`
	Name       string  `gorm:"type:varchar(200);not null;index"`
	Country    string  `gorm:"type:varchar(2)"`
	Latitude   float64 `gorm:"type:double precision;not null"`
	Longitude  float64 `gorm:"type:double precision;not null"`
	Population int64   `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (PlaceModel) TableName() string {
	return "places"
}

// All lists every model, in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&AddressModel{},
		&GeoPointModel{},
		&MatchRecordModel{},
		&PairAggregateModel{},
		&RankingEntryModel{},
		&HiddenSnapshotModel{},
		&UserBlockModel{},
		&UserHideModel{},
		&PassModel{},
		&PurchaseLogModel{},
		&PlaceModel{},
	}
}
