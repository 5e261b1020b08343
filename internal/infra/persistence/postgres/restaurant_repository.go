package postgres

import (
	"context"

	"foodcart/internal/domain/entity"
	"foodcart/internal/domain/repository"
	"foodcart/internal/errors"
	"foodcart/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// restaurantRepository implements the domain.RestaurantRepository interface.
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{db: db}
}

// ListRestaurants returns all restaurants ordered by name.
func (repo *restaurantRepository) ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error) {
	var restaurantModels []*model.RestaurantModel
	err := repo.db.WithContext(ctx).
		Order("name ASC").
		Order("id ASC").
		Find(&restaurantModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	restaurants := make([]*entity.Restaurant, 0, len(restaurantModels))
	for _, restaurantM := range restaurantModels {
		restaurants = append(restaurants, toRestaurantDomain(restaurantM))
	}

	return restaurants, nil
}

// FindRestaurantByID retrieves a restaurant by its ID.
func (repo *restaurantRepository) FindRestaurantByID(ctx context.Context, id int64) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&restaurantM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by ID")
	}

	return toRestaurantDomain(&restaurantM), nil
}

// --- Mapper Functions ---

// toRestaurantDomain converts a GORM RestaurantModel to a domain Restaurant entity.
func toRestaurantDomain(data *model.RestaurantModel) *entity.Restaurant {
	if data == nil {
		return nil
	}

	return &entity.Restaurant{
		ID:           data.ID,
		Name:         data.Name,
		Address:      data.Address,
		ContactPhone: data.ContactPhone,
	}
}
