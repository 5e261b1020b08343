package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "foodcart/internal/delivery/context"
	"foodcart/internal/domain/entity"
	domainerrors "foodcart/internal/domain/errors"
	"foodcart/internal/domain/repository"
	"foodcart/internal/errors"
	"foodcart/internal/usecase"
)

type orderService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
	now       func() time.Time
}

// NewOrderService creates a new order service instance
func NewOrderService(txManager repository.TransactionManager, logger *slog.Logger) usecase.OrderUsecase {
	return &orderService{
		txManager: txManager,
		logger:    logger,
		now:       time.Now,
	}
}

// AssignRestaurant validates the order and restaurant and records the assignment in one transaction
func (s *orderService) AssignRestaurant(ctx context.Context, input *usecase.AssignRestaurantInput) (*entity.Order, error) {
	var assigned *entity.Order

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		orderRepo := factory.NewOrderRepository()

		order, err := orderRepo.FindOrderByID(ctx, input.OrderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to find order")
		}
		if order.Status == entity.OrderStatusFinished {
			return domainerrors.ErrOrderAlreadyFinished
		}

		if _, err := factory.NewRestaurantRepository().FindRestaurantByID(ctx, input.RestaurantID); err != nil {
			if errors.Is(err, repository.ErrRestaurantNotFound) {
				return domainerrors.ErrRestaurantNotFound
			}

			return errors.Wrap(err, "failed to find restaurant")
		}

		processedAt := s.now()
		if err := orderRepo.AssignRestaurant(ctx, order.ID, input.RestaurantID, processedAt); err != nil {
			return errors.Wrap(err, "failed to assign restaurant")
		}

		restaurantID := input.RestaurantID
		order.AssignedRestaurantID = &restaurantID
		order.Status = entity.OrderStatusProcessed
		order.ProcessedAt = &processedAt
		assigned = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).InfoContext(ctx, "Order assigned to restaurant",
		slog.Int64("orderID", input.OrderID),
		slog.Int64("restaurantID", input.RestaurantID),
	)

	return assigned, nil
}
