package impl

import (
	"context"
	"testing"
	"time"

	"foodcart/internal/domain/entity"
	domainerrors "foodcart/internal/domain/errors"
	"foodcart/internal/domain/repository"
	"foodcart/internal/errors"
	mockRepo "foodcart/internal/mocks/repository"
	"foodcart/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceMocks struct {
	txManager      *mockRepo.MockTransactionManager
	factory        *mockRepo.MockRepositoryFactory
	orderRepo      *mockRepo.MockOrderRepository
	restaurantRepo *mockRepo.MockRestaurantRepository
}

func newOrderServiceForTest(t *testing.T, now time.Time) (*orderService, *orderServiceMocks) {
	t.Helper()

	m := &orderServiceMocks{
		txManager:      mockRepo.NewMockTransactionManager(t),
		factory:        mockRepo.NewMockRepositoryFactory(t),
		orderRepo:      mockRepo.NewMockOrderRepository(t),
		restaurantRepo: mockRepo.NewMockRestaurantRepository(t),
	}

	m.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		})
	m.factory.EXPECT().NewOrderRepository().Return(m.orderRepo).Maybe()
	m.factory.EXPECT().NewRestaurantRepository().Return(m.restaurantRepo).Maybe()

	svc := NewOrderService(m.txManager, newDiscardLogger()).(*orderService)
	svc.now = func() time.Time { return now }

	return svc, m
}

func TestOrderService_AssignRestaurant_Success(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	svc, m := newOrderServiceForTest(t, now)
	ctx := context.Background()

	m.orderRepo.EXPECT().FindOrderByID(ctx, int64(7)).Return(newOrder(7, "Delivery 1", productA), nil)
	m.restaurantRepo.EXPECT().FindRestaurantByID(ctx, int64(3)).Return(&entity.Restaurant{ID: 3, Name: "X"}, nil)
	m.orderRepo.EXPECT().AssignRestaurant(ctx, int64(7), int64(3), now).Return(nil)

	order, err := svc.AssignRestaurant(ctx, &usecase.AssignRestaurantInput{OrderID: 7, RestaurantID: 3})
	require.NoError(t, err)

	require.NotNil(t, order.AssignedRestaurantID)
	assert.Equal(t, int64(3), *order.AssignedRestaurantID)
	assert.Equal(t, entity.OrderStatusProcessed, order.Status)
	assert.Equal(t, now, *order.ProcessedAt)
	assert.True(t, order.IsManuallyAssigned())
}

func TestOrderService_AssignRestaurant_OrderNotFound(t *testing.T) {
	svc, m := newOrderServiceForTest(t, time.Now())

	m.orderRepo.EXPECT().FindOrderByID(mock.Anything, int64(7)).Return(nil, repository.ErrOrderNotFound)

	order, err := svc.AssignRestaurant(context.Background(), &usecase.AssignRestaurantInput{OrderID: 7, RestaurantID: 3})
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_AssignRestaurant_FinishedOrder(t *testing.T) {
	svc, m := newOrderServiceForTest(t, time.Now())

	finished := newOrder(7, "Delivery 1", productA)
	finished.Status = entity.OrderStatusFinished
	m.orderRepo.EXPECT().FindOrderByID(mock.Anything, int64(7)).Return(finished, nil)

	_, err := svc.AssignRestaurant(context.Background(), &usecase.AssignRestaurantInput{OrderID: 7, RestaurantID: 3})
	assert.ErrorIs(t, err, domainerrors.ErrOrderAlreadyFinished)
}

func TestOrderService_AssignRestaurant_RestaurantNotFound(t *testing.T) {
	svc, m := newOrderServiceForTest(t, time.Now())

	m.orderRepo.EXPECT().FindOrderByID(mock.Anything, int64(7)).Return(newOrder(7, "Delivery 1", productA), nil)
	m.restaurantRepo.EXPECT().FindRestaurantByID(mock.Anything, int64(3)).Return(nil, repository.ErrRestaurantNotFound)

	_, err := svc.AssignRestaurant(context.Background(), &usecase.AssignRestaurantInput{OrderID: 7, RestaurantID: 3})
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
}

func TestOrderService_AssignRestaurant_UpdateFails(t *testing.T) {
	svc, m := newOrderServiceForTest(t, time.Now())

	m.orderRepo.EXPECT().FindOrderByID(mock.Anything, int64(7)).Return(newOrder(7, "Delivery 1", productA), nil)
	m.restaurantRepo.EXPECT().FindRestaurantByID(mock.Anything, int64(3)).Return(&entity.Restaurant{ID: 3}, nil)
	m.orderRepo.EXPECT().AssignRestaurant(mock.Anything, int64(7), int64(3), mock.Anything).Return(errors.New("deadlock"))

	order, err := svc.AssignRestaurant(context.Background(), &usecase.AssignRestaurantInput{OrderID: 7, RestaurantID: 3})
	assert.Nil(t, order)
	assert.ErrorContains(t, err, "deadlock")
}
