package services

import (
	"context"
	"strings"

	"cafe-service/cache"
	"cafe-service/models"
	"cafe-service/repository"

	"go.uber.org/zap"
)

const (
	maxNameLen     = 100
	maxCategoryLen = 20
)

// MenuService defines the interface for catalog business logic.
type MenuService interface {
	ListMenuItems(ctx context.Context) ([]models.MenuItem, *ServiceError)
	GetMenuItem(ctx context.Context, id uint) (*models.MenuItem, *ServiceError)
	CreateMenuItem(ctx context.Context, req *models.CreateMenuItemRequest) (*models.MenuItem, *ServiceError)
	UpdateMenuItem(ctx context.Context, id uint, req *models.UpdateMenuItemRequest) (*models.MenuItem, *ServiceError)
	// DeleteMenuItem cascades: every order item referencing the menu item is
	// removed in the same transaction as the menu item itself.
	DeleteMenuItem(ctx context.Context, id uint) *ServiceError
	CategoryCounts(ctx context.Context) (map[string]int, *ServiceError)
}

type menuServiceImpl struct {
	repo   repository.MenuRepository
	cache  *cache.MenuCache
	logger *zap.Logger
}

// NewMenuService creates a new MenuService. The cache may be nil.
func NewMenuService(repo repository.MenuRepository, menuCache *cache.MenuCache, logger *zap.Logger) MenuService {
	return &menuServiceImpl{
		repo:   repo,
		cache:  menuCache,
		logger: logger,
	}
}

// ListMenuItems returns the catalog sorted by category then name. The sort is
// applied on every call; storage order is never relied on.
func (s *menuServiceImpl) ListMenuItems(ctx context.Context) ([]models.MenuItem, *ServiceError) {
	if items, ok := s.cache.GetList(ctx); ok {
		return items, nil
	}

	items, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list menu items", zap.Error(err))
		return nil, transactionFailure(err)
	}
	SortMenuItems(items)

	s.cache.SetListAsync(items)
	return items, nil
}

func (s *menuServiceImpl) GetMenuItem(ctx context.Context, id uint) (*models.MenuItem, *ServiceError) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "menu item", id)
	}
	return item, nil
}

func (s *menuServiceImpl) CreateMenuItem(ctx context.Context, req *models.CreateMenuItemRequest) (*models.MenuItem, *ServiceError) {
	item := &models.MenuItem{}
	if serr := applyMenuFields(item, req.Name, req.Category, req.Price); serr != nil {
		return nil, serr
	}

	if err := s.repo.Create(ctx, item); err != nil {
		s.logger.Error("Failed to create menu item", zap.Error(err))
		return nil, transactionFailure(err)
	}
	s.cache.Invalidate(ctx)

	s.logger.Info("Menu item created",
		zap.Uint("id", item.ID),
		zap.String("name", item.Name),
		zap.String("category", item.Category),
	)
	return item, nil
}

func (s *menuServiceImpl) UpdateMenuItem(ctx context.Context, id uint, req *models.UpdateMenuItemRequest) (*models.MenuItem, *ServiceError) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "menu item", id)
	}

	name, category, price := item.Name, item.Category, item.PriceCents.String()
	if req.Name != nil {
		name = *req.Name
	}
	if req.Category != nil {
		category = *req.Category
	}
	if req.Price != nil {
		price = *req.Price
	}
	if serr := applyMenuFields(item, name, category, price); serr != nil {
		return nil, serr
	}

	if err := s.repo.Update(ctx, item); err != nil {
		s.logger.Error("Failed to update menu item", zap.Uint("id", id), zap.Error(err))
		return nil, transactionFailure(err)
	}
	s.cache.Invalidate(ctx)
	return item, nil
}

func (s *menuServiceImpl) DeleteMenuItem(ctx context.Context, id uint) *ServiceError {
	removed, err := s.repo.DeleteCascade(ctx, id)
	if err != nil {
		return storeError(err, "menu item", id)
	}
	s.cache.Invalidate(ctx)

	s.logger.Info("Menu item deleted",
		zap.Uint("id", id),
		zap.Int64("order_items_removed", removed),
	)
	return nil
}

func (s *menuServiceImpl) CategoryCounts(ctx context.Context) (map[string]int, *ServiceError) {
	items, serr := s.ListMenuItems(ctx)
	if serr != nil {
		return nil, serr
	}
	return CategoryCounts(items), nil
}

// applyMenuFields validates and assigns the writable catalog fields. No
// partial assignment happens on failure paths that matter: callers discard
// the item when a ServiceError is returned.
func applyMenuFields(item *models.MenuItem, name, category, price string) *ServiceError {
	name = strings.TrimSpace(name)
	if name == "" {
		return validationError("name", "name must not be empty")
	}
	if len(name) > maxNameLen {
		return validationError("name", "name must be at most 100 characters")
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return validationError("category", "category must not be empty")
	}
	if len(category) > maxCategoryLen {
		return validationError("category", "category must be at most 20 characters")
	}
	cents, err := models.ParseCents(price)
	if err != nil {
		return validationError("price", err.Error())
	}

	item.Name = name
	item.Category = category
	item.PriceCents = cents
	return nil
}
