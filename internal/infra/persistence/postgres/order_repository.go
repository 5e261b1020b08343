package postgres

import (
	"cmp"
	"context"
	"slices"
	"time"

	"foodcart/internal/domain/entity"
	domainerrors "foodcart/internal/domain/errors"
	"foodcart/internal/domain/repository"
	"foodcart/internal/errors"
	"foodcart/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// ListActiveOrders returns unfinished orders with items, unprocessed first,
// then by registration time.
func (repo *orderRepository) ListActiveOrders(ctx context.Context) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Where("status <> ?", entity.OrderStatusFinished.String()).
		Order("registered_at ASC").
		Order("id ASC").
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	// Stable sort keeps registration order within each status.
	slices.SortStableFunc(orders, func(a, b *entity.Order) int {
		return cmp.Compare(a.Status.Rank(), b.Status.Rank())
	})

	return orders, nil
}

// FindOrderByID retrieves an order with its items.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id int64) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Where("id = ?", id).
		Take(&orderM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// AssignRestaurant commits the order to a restaurant and marks it processed.
func (repo *orderRepository) AssignRestaurant(ctx context.Context, orderID, restaurantID int64, processedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", orderID).
		Updates(map[string]any{
			"restaurant_id": restaurantID,
			"status":        entity.OrderStatusProcessed.String(),
			"processed_at":  processedAt,
		})

	if err := result.Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRestaurantNotFound.WrapMessage("invalid restaurant reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to assign restaurant")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel with its items to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.OrderItem{
			ProductID: itemM.ProductID,
			Quantity:  itemM.Quantity,
			UnitPrice: itemM.ItemPrice,
		})
	}

	return &entity.Order{
		ID:                   data.ID,
		FirstName:            data.FirstName,
		LastName:             data.LastName,
		PhoneNumber:          data.PhoneNumber,
		DeliveryAddress:      data.Address,
		Status:               entity.OrderStatus(data.Status),
		PaymentMethod:        entity.PaymentMethod(data.Payment),
		Comment:              data.Comments,
		AssignedRestaurantID: data.RestaurantID,
		RegisteredAt:         data.RegisteredAt,
		ProcessedAt:          data.ProcessedAt,
		DeliveredAt:          data.DeliveredAt,
		Items:                items,
	}
}
