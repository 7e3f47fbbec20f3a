package inventory

import (
	"HealthPantry-Backend/domain"
	"HealthPantry-Backend/entities"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultExpiryHorizonDays is how far ahead an item counts as "Expiring".
const DefaultExpiryHorizonDays = 5

type (
	InventoryService interface {
		AddItem(ctx context.Context, req domain.AddInventoryItemRequest, accountID string) (domain.InventoryItemResponse, error)
		UpdateItem(ctx context.Context, id string, req domain.UpdateInventoryItemRequest, accountID string) error
		DeleteItem(ctx context.Context, id string, accountID string) error
		GetItems(ctx context.Context, accountID string, status string, page, limit int) ([]domain.InventoryItemResponse, int64, error)
		GetExpiringItems(ctx context.Context, accountID string, days int) ([]domain.InventoryItemResponse, error)

		// GetSnapshot returns the in-stock items the engine scores against.
		GetSnapshot(ctx context.Context, accountID string) (domain.InventorySnapshot, error)
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
	}
)

func NewInventoryService(inventoryRepository InventoryRepository) InventoryService {
	return &inventoryService{inventoryRepository: inventoryRepository}
}

func determineStatus(expiryDate *time.Time, now time.Time) string {
	if expiryDate == nil {
		return "Safe"
	}
	if expiryDate.Before(now) {
		return "Expired"
	}
	horizon := now.AddDate(0, 0, DefaultExpiryHorizonDays)
	if expiryDate.Before(horizon) {
		return "Expiring"
	}
	return "Safe"
}

func toResponse(item *entities.InventoryItem) domain.InventoryItemResponse {
	return domain.InventoryItemResponse{
		ID:         item.ID.String(),
		Name:       item.Name,
		Quantity:   item.Quantity,
		Unit:       item.Unit,
		InStock:    item.InStock,
		ExpiryDate: item.ExpiryDate,
		Status:     item.Status,
		CreatedAt:  item.CreatedAt,
	}
}

func (s *inventoryService) AddItem(ctx context.Context, req domain.AddInventoryItemRequest, accountID string) (domain.InventoryItemResponse, error) {
	if req.Quantity <= 0 {
		return domain.InventoryItemResponse{}, domain.ErrInvalidQuantity
	}

	accountUUID, err := uuid.Parse(accountID)
	if err != nil {
		return domain.InventoryItemResponse{}, domain.ErrParseUUID
	}

	var expiryDate *time.Time
	if req.ExpiryDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.InventoryItemResponse{}, domain.ErrInvalidExpiryDate
		}
		expiryDate = &parsed
	}

	item := &entities.InventoryItem{
		ID:            uuid.New(),
		AccountID:     accountUUID,
		Name:          req.Name,
		Quantity:      req.Quantity,
		Unit:          req.Unit,
		InStock:       true,
		ExpiryDate:    expiryDate,
		Status:        determineStatus(expiryDate, time.Now()),
		AddedManually: true,
	}

	if err := s.inventoryRepository.AddItem(ctx, item); err != nil {
		return domain.InventoryItemResponse{}, err
	}

	return toResponse(item), nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, id string, req domain.UpdateInventoryItemRequest, accountID string) error {
	item, err := s.inventoryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInventoryItemNotFound
		}
		return err
	}

	if item.AccountID.String() != accountID {
		return domain.ErrUnauthorizedAccess
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Quantity > 0 {
		item.Quantity = req.Quantity
	}
	if req.Unit != "" {
		item.Unit = req.Unit
	}
	if req.ExpiryDate != "" {
		expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		item.ExpiryDate = &expiryDate
	}
	if req.InStock != nil {
		item.InStock = *req.InStock
	}
	item.Status = determineStatus(item.ExpiryDate, time.Now())

	return s.inventoryRepository.UpdateItem(ctx, item)
}

func (s *inventoryService) DeleteItem(ctx context.Context, id string, accountID string) error {
	item, err := s.inventoryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInventoryItemNotFound
		}
		return err
	}

	if item.AccountID.String() != accountID {
		return domain.ErrUnauthorizedAccess
	}

	return s.inventoryRepository.DeleteItem(ctx, id)
}

func (s *inventoryService) GetItems(ctx context.Context, accountID string, status string, page, limit int) ([]domain.InventoryItemResponse, int64, error) {
	items, count, err := s.inventoryRepository.GetItems(ctx, accountID, status, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.InventoryItemResponse
	for _, item := range items {
		response = append(response, toResponse(item))
	}
	return response, count, nil
}

func (s *inventoryService) GetExpiringItems(ctx context.Context, accountID string, days int) ([]domain.InventoryItemResponse, error) {
	if days <= 0 {
		days = DefaultExpiryHorizonDays
	}
	now := time.Now()
	items, err := s.inventoryRepository.GetItemsByExpiryRange(ctx, accountID, now, now.AddDate(0, 0, days))
	if err != nil {
		return nil, err
	}

	var response []domain.InventoryItemResponse
	for _, item := range items {
		response = append(response, toResponse(item))
	}
	return response, nil
}

func (s *inventoryService) GetSnapshot(ctx context.Context, accountID string) (domain.InventorySnapshot, error) {
	items, err := s.inventoryRepository.GetInStockItems(ctx, accountID)
	if err != nil {
		return domain.InventorySnapshot{}, err
	}

	snapshot := domain.InventorySnapshot{
		AccountID: accountID,
		TakenAt:   time.Now(),
	}
	for _, item := range items {
		snapshot.Items = append(snapshot.Items, toResponse(item))
	}
	return snapshot, nil
}
