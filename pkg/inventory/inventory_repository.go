package inventory

import (
	"HealthPantry-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	InventoryRepository interface {
		AddItem(ctx context.Context, item *entities.InventoryItem) error
		GetItemByID(ctx context.Context, id string) (*entities.InventoryItem, error)
		UpdateItem(ctx context.Context, item *entities.InventoryItem) error
		DeleteItem(ctx context.Context, id string) error
		GetItems(ctx context.Context, accountID string, status string, page, limit int) ([]*entities.InventoryItem, int64, error)
		GetInStockItems(ctx context.Context, accountID string) ([]*entities.InventoryItem, error)
		GetItemsByExpiryRange(ctx context.Context, accountID string, startDate, endDate time.Time) ([]*entities.InventoryItem, error)
	}

	inventoryRepository struct {
		db *gorm.DB
	}
)

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) AddItem(ctx context.Context, item *entities.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventoryRepository) GetItemByID(ctx context.Context, id string) (*entities.InventoryItem, error) {
	var item entities.InventoryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepository) UpdateItem(ctx context.Context, item *entities.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *inventoryRepository) DeleteItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.InventoryItem{}).Error
}

func (r *inventoryRepository) GetItems(ctx context.Context, accountID string, status string, page, limit int) ([]*entities.InventoryItem, int64, error) {
	var items []*entities.InventoryItem
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.InventoryItem{}).Where("account_id = ?", accountID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, count, nil
}

func (r *inventoryRepository) GetInStockItems(ctx context.Context, accountID string) ([]*entities.InventoryItem, error) {
	var items []*entities.InventoryItem
	if err := r.db.WithContext(ctx).
		Where("account_id = ? AND in_stock = ?", accountID, true).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *inventoryRepository) GetItemsByExpiryRange(ctx context.Context, accountID string, startDate, endDate time.Time) ([]*entities.InventoryItem, error) {
	var items []*entities.InventoryItem
	if err := r.db.WithContext(ctx).
		Where("account_id = ? AND in_stock = ? AND expiry_date IS NOT NULL AND expiry_date BETWEEN ? AND ?",
			accountID, true, startDate, endDate).
		Order("expiry_date ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
