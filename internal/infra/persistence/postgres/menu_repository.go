package postgres

import (
	"context"

	"foodcart/internal/domain/entity"
	"foodcart/internal/domain/repository"
	"foodcart/internal/errors"
	"foodcart/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// menuRepository implements the domain.MenuRepository interface.
type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository is the constructor for menuRepository.
func NewMenuRepository(db *gorm.DB) repository.MenuRepository {
	return &menuRepository{db: db}
}

// ListAvailableMenuRecords returns menu records currently marked available.
func (repo *menuRepository) ListAvailableMenuRecords(ctx context.Context) ([]entity.MenuRecord, error) {
	return repo.listMenuRecords(ctx, repo.db.WithContext(ctx).Where("availability = ?", true))
}

// ListMenuRecords returns all menu records regardless of availability.
func (repo *menuRepository) ListMenuRecords(ctx context.Context) ([]entity.MenuRecord, error) {
	return repo.listMenuRecords(ctx, repo.db.WithContext(ctx))
}

func (repo *menuRepository) listMenuRecords(_ context.Context, query *gorm.DB) ([]entity.MenuRecord, error) {
	var itemModels []*model.RestaurantMenuItemModel
	if err := query.Order("restaurant_id ASC").Order("product_id ASC").Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list menu records")
	}

	records := make([]entity.MenuRecord, 0, len(itemModels))
	for _, itemM := range itemModels {
		records = append(records, toMenuRecordDomain(itemM))
	}

	return records, nil
}

// ListProducts returns the product catalogue ordered by ID.
func (repo *menuRepository) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).Order("id ASC").Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// --- Mapper Functions ---

// toMenuRecordDomain converts a GORM RestaurantMenuItemModel to a domain MenuRecord.
func toMenuRecordDomain(data *model.RestaurantMenuItemModel) entity.MenuRecord {
	return entity.MenuRecord{
		RestaurantID: data.RestaurantID,
		ProductID:    data.ProductID,
		Available:    data.Availability,
	}
}

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:            data.ID,
		Name:          data.Name,
		Category:      data.Category,
		Price:         data.Price,
		SpecialStatus: data.SpecialStatus,
		Description:   data.Description,
	}
}
