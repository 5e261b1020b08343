// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"foodcart/internal/domain/entity"
	domainerrors "foodcart/internal/domain/errors"
	"foodcart/internal/domain/repository"
	"foodcart/internal/errors"
	"foodcart/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// geoCacheRepository implements the domain.GeoCacheRepository interface.
type geoCacheRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGeoCacheRepository is the constructor for geoCacheRepository.
func NewGeoCacheRepository(db *gorm.DB) repository.GeoCacheRepository {
	return &geoCacheRepository{
		db:  db,
		now: time.Now,
	}
}

// Lookup returns the coordinate stored for an exact normalized address.
func (repo *geoCacheRepository) Lookup(ctx context.Context, address entity.Address) (entity.Coordinate, bool, error) {
	var placeM model.PlaceGeolocationModel
	err := repo.db.WithContext(ctx).
		Where("address = ?", address.String()).
		Take(&placeM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.Coordinate{}, false, nil
		}

		return entity.Coordinate{}, false, errors.Wrap(err, "failed to look up place geolocation")
	}

	return toCoordinateDomain(&placeM), true, nil
}

// Store inserts the entry, or overwrites the coordinate and timestamp of an existing one.
func (repo *geoCacheRepository) Store(ctx context.Context, address entity.Address, coord entity.Coordinate) error {
	placeM := &model.PlaceGeolocationModel{
		Address:   address.String(),
		Lon:       coord.Lon,
		Lat:       coord.Lat,
		UpdatedAt: repo.now(),
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "address"}},
			DoUpdates: clause.AssignmentColumns([]string{"lon", "lat", "updated_at"}),
		}).
		Create(placeM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid place geolocation")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to store place geolocation")
	}

	return nil
}

// --- Mapper Functions ---

// toCoordinateDomain converts a GORM PlaceGeolocationModel to a domain Coordinate.
func toCoordinateDomain(data *model.PlaceGeolocationModel) entity.Coordinate {
	return entity.Coordinate{Lon: data.Lon, Lat: data.Lat}
}
