package postgres

import (
	"context"
	"strings"

	"crossing/internal/domain/entity"
	domainerrors "crossing/internal/domain/errors"
	"crossing/internal/domain/service"
	"crossing/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gazetteerGeocoder resolves addresses against the offline places table.
// A query of the form "Name, CC" restricts the match to country CC; among
// several matches the most populous place wins.
type gazetteerGeocoder struct {
	db *gorm.DB
}

// NewGeocoder is the constructor for gazetteerGeocoder.
func NewGeocoder(db *gorm.DB) service.Geocoder {
	return &gazetteerGeocoder{db: db}
}

func (g *gazetteerGeocoder) Geocode(ctx context.Context, query string) (*entity.Place, error) {
	name, country := splitPlaceQuery(query)
	if name == "" {
		return nil, service.ErrPlaceNotFound
	}

	db := g.db.WithContext(ctx).Where("LOWER(name) = ?", strings.ToLower(name))
	if country != "" {
		db = db.Where("UPPER(country) = ?", strings.ToUpper(country))
	}

	var placeM model.PlaceModel
	if err := db.Order("population DESC").First(&placeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrPlaceNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to geocode")
	}

	return &entity.Place{
		Name:        placeM.Name,
		Country:     placeM.Country,
		Coordinates: entity.Coordinates{Longitude: placeM.Longitude, Latitude: placeM.Latitude},
		Population:  placeM.Population,
	}, nil
}

func splitPlaceQuery(query string) (name, country string) {
	query = strings.TrimSpace(query)
	idx := strings.LastIndex(query, ",")
	if idx < 0 {
		return query, ""
	}

	suffix := strings.TrimSpace(query[idx+1:])
	if len(suffix) == 2 {
		return strings.TrimSpace(query[:idx]), suffix
	}

	return query, ""
}
