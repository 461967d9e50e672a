package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"cafe-service/models"
	"cafe-service/repository"

	"go.uber.org/zap"
)

const maxNoteLen = 255

// OrderService defines the interface for order composition and mutation.
type OrderService interface {
	// PlaceOrder turns "an order with N lines" into one consistent result:
	// either the order and all N items exist afterwards, or nothing does.
	PlaceOrder(ctx context.Context, req *models.PlaceOrderRequest) (*models.OrderResponse, *ServiceError)
	ListOrders(ctx context.Context) ([]models.OrderResponse, *ServiceError)
	GetOrder(ctx context.Context, id uint) (*models.OrderResponse, *ServiceError)
	UpdateOrder(ctx context.Context, id uint, req *models.UpdateOrderRequest) (*models.OrderResponse, *ServiceError)
	DeleteOrder(ctx context.Context, id uint) *ServiceError

	ListOrderItems(ctx context.Context) ([]models.OrderItem, *ServiceError)
	GetOrderItem(ctx context.Context, id uint) (*models.OrderItem, *ServiceError)
	ListOrderItemsForOrder(ctx context.Context, orderID uint) ([]models.OrderItem, *ServiceError)
	CreateOrderItem(ctx context.Context, req *models.CreateOrderItemRequest) (*models.OrderItem, *ServiceError)
	UpdateOrderItem(ctx context.Context, id uint, req *models.UpdateOrderItemRequest) (*models.OrderItem, *ServiceError)
	DeleteOrderItem(ctx context.Context, id uint) *ServiceError
}

type orderServiceImpl struct {
	repo   repository.OrderRepository
	logger *zap.Logger
}

// NewOrderService creates a new OrderService.
func NewOrderService(repo repository.OrderRepository, logger *zap.Logger) OrderService {
	return &orderServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *orderServiceImpl) PlaceOrder(ctx context.Context, req *models.PlaceOrderRequest) (*models.OrderResponse, *ServiceError) {
	if len(req.Items) == 0 {
		return nil, validationError("items", "at least one line is required")
	}

	createdAt := time.Now()
	if req.CreatedAt != nil {
		createdAt = *req.CreatedAt
	}

	order := &models.Order{CreatedAt: createdAt}
	for _, line := range req.Items {
		item, serr := buildItem(line.MenuItemID, line.Quantity, line.Note)
		if serr != nil {
			return nil, serr
		}
		order.OrderItems = append(order.OrderItems, *item)
	}

	if err := s.repo.PlaceOrder(ctx, order); err != nil {
		s.logger.Warn("Order placement rolled back",
			zap.Int("lines", len(req.Items)),
			zap.Error(err),
		)
		return nil, storeError(err, "order", 0)
	}

	// Re-read joined so every item carries its resolved menu item.
	placed, err := s.repo.FindByID(ctx, order.ID)
	if err != nil {
		return nil, storeError(err, "order", order.ID)
	}

	s.logger.Info("Order placed",
		zap.Uint("id", placed.ID),
		zap.Int("items", len(placed.OrderItems)),
	)
	return withTotal(placed), nil
}

func (s *orderServiceImpl) ListOrders(ctx context.Context) ([]models.OrderResponse, *ServiceError) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list orders", zap.Error(err))
		return nil, transactionFailure(err)
	}

	responses := make([]models.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, *withTotal(&orders[i]))
	}
	return responses, nil
}

func (s *orderServiceImpl) GetOrder(ctx context.Context, id uint) (*models.OrderResponse, *ServiceError) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "order", id)
	}
	return withTotal(order), nil
}

func (s *orderServiceImpl) UpdateOrder(ctx context.Context, id uint, req *models.UpdateOrderRequest) (*models.OrderResponse, *ServiceError) {
	if req.CreatedAt == nil {
		return s.GetOrder(ctx, id)
	}
	order, err := s.repo.UpdateCreatedAt(ctx, id, *req.CreatedAt)
	if err != nil {
		return nil, storeError(err, "order", id)
	}
	return withTotal(order), nil
}

func (s *orderServiceImpl) DeleteOrder(ctx context.Context, id uint) *ServiceError {
	if err := s.repo.DeleteCascade(ctx, id); err != nil {
		return storeError(err, "order", id)
	}
	s.logger.Info("Order deleted", zap.Uint("id", id))
	return nil
}

func (s *orderServiceImpl) ListOrderItems(ctx context.Context) ([]models.OrderItem, *ServiceError) {
	items, err := s.repo.FindAllItems(ctx)
	if err != nil {
		s.logger.Error("Failed to list order items", zap.Error(err))
		return nil, transactionFailure(err)
	}
	return items, nil
}

func (s *orderServiceImpl) GetOrderItem(ctx context.Context, id uint) (*models.OrderItem, *ServiceError) {
	item, err := s.repo.FindItemByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "order item", id)
	}
	return item, nil
}

func (s *orderServiceImpl) ListOrderItemsForOrder(ctx context.Context, orderID uint) ([]models.OrderItem, *ServiceError) {
	if _, err := s.repo.FindByID(ctx, orderID); err != nil {
		return nil, storeError(err, "order", orderID)
	}
	items, err := s.repo.FindItemsByOrder(ctx, orderID)
	if err != nil {
		return nil, transactionFailure(err)
	}
	return items, nil
}

func (s *orderServiceImpl) CreateOrderItem(ctx context.Context, req *models.CreateOrderItemRequest) (*models.OrderItem, *ServiceError) {
	item, serr := buildItem(req.MenuItemID, req.Quantity, req.Note)
	if serr != nil {
		return nil, serr
	}
	item.OrderID = req.OrderID

	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, storeError(err, "order item", 0)
	}
	return s.GetOrderItem(ctx, item.ID)
}

func (s *orderServiceImpl) UpdateOrderItem(ctx context.Context, id uint, req *models.UpdateOrderItemRequest) (*models.OrderItem, *ServiceError) {
	item, err := s.repo.FindItemByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "order item", id)
	}

	if req.OrderID != nil {
		item.OrderID = *req.OrderID
	}
	if req.MenuItemID != nil {
		item.MenuItemID = *req.MenuItemID
	}
	if req.Quantity != nil {
		if *req.Quantity < 1 {
			return nil, validationError("quantity", "quantity must be at least 1")
		}
		item.Quantity = *req.Quantity
	}
	if req.Note != nil {
		note, serr := normalizeNote(req.Note)
		if serr != nil {
			return nil, serr
		}
		item.Note = note
	}

	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, storeError(err, "order item", id)
	}
	return s.GetOrderItem(ctx, id)
}

func (s *orderServiceImpl) DeleteOrderItem(ctx context.Context, id uint) *ServiceError {
	if err := s.repo.DeleteItem(ctx, id); err != nil {
		return storeError(err, "order item", id)
	}
	return nil
}

// buildItem validates one requested line and produces the row to insert. An
// omitted quantity defaults to 1; an explicit quantity below 1 is rejected,
// never clamped. A note that is blank after trimming is stored as NULL.
func buildItem(menuItemID uint, quantity *int, note *string) (*models.OrderItem, *ServiceError) {
	if menuItemID == 0 {
		return nil, validationError("menuItemId", "menuItemId is required")
	}
	qty := 1
	if quantity != nil {
		if *quantity < 1 {
			return nil, validationError("quantity", "quantity must be at least 1")
		}
		qty = *quantity
	}
	normalized, serr := normalizeNote(note)
	if serr != nil {
		return nil, serr
	}
	return &models.OrderItem{
		MenuItemID: menuItemID,
		Quantity:   qty,
		Note:       normalized,
	}, nil
}

func normalizeNote(note *string) (*string, *ServiceError) {
	if note == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*note)
	if trimmed == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(trimmed) > maxNoteLen {
		return nil, validationError("note", "note must be at most 255 characters")
	}
	return &trimmed, nil
}

func withTotal(order *models.Order) *models.OrderResponse {
	return &models.OrderResponse{
		Order: *order,
		Total: OrderTotalCents(order.OrderItems),
	}
}
