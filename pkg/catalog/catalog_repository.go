package catalog

import (
	"HealthPantry-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	CatalogRepository interface {
		AddProduct(ctx context.Context, product *entities.CatalogProduct) error
		GetProductByID(ctx context.Context, id string) (*entities.CatalogProduct, error)
		GetProductByBarcode(ctx context.Context, barcode string) (*entities.CatalogProduct, error)
		UpdateProduct(ctx context.Context, product *entities.CatalogProduct) error
		GetProducts(ctx context.Context, region string, page, limit int) ([]*entities.CatalogProduct, int64, error)
		// GetCandidates returns every product carrying stats for the region,
		// price stats and stores preloaded, for one matching pass.
		GetCandidates(ctx context.Context, region string) ([]*entities.CatalogProduct, error)

		GetPriceStat(ctx context.Context, productID, region string) (*entities.ProductPriceStat, error)
		SavePriceStat(ctx context.Context, stat *entities.ProductPriceStat) error
		AddStore(ctx context.Context, store *entities.ProductStore) error
	}

	catalogRepository struct {
		db *gorm.DB
	}
)

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) AddProduct(ctx context.Context, product *entities.CatalogProduct) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *catalogRepository) GetProductByID(ctx context.Context, id string) (*entities.CatalogProduct, error) {
	var product entities.CatalogProduct
	if err := r.db.WithContext(ctx).
		Preload("PriceStats").
		Preload("Stores").
		Where("id = ?", id).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *catalogRepository) GetProductByBarcode(ctx context.Context, barcode string) (*entities.CatalogProduct, error) {
	var product entities.CatalogProduct
	if err := r.db.WithContext(ctx).
		Preload("PriceStats").
		Preload("Stores").
		Where("barcode = ?", barcode).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *catalogRepository) UpdateProduct(ctx context.Context, product *entities.CatalogProduct) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *catalogRepository) GetProducts(ctx context.Context, region string, page, limit int) ([]*entities.CatalogProduct, int64, error) {
	var products []*entities.CatalogProduct
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.CatalogProduct{})
	if region != "" {
		query = query.
			Joins("JOIN product_price_stats ON product_price_stats.product_id = catalog_products.id").
			Where("product_price_stats.region = ?", region).
			Distinct()
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.
		Preload("PriceStats").
		Preload("Stores").
		Order("catalog_products.name ASC").
		Offset(offset).Limit(limit).
		Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, count, nil
}

func (r *catalogRepository) GetCandidates(ctx context.Context, region string) ([]*entities.CatalogProduct, error) {
	var products []*entities.CatalogProduct
	query := r.db.WithContext(ctx).Model(&entities.CatalogProduct{})
	if region != "" {
		query = query.
			Joins("JOIN product_price_stats ON product_price_stats.product_id = catalog_products.id").
			Where("product_price_stats.region = ?", region).
			Distinct()
	}
	if err := query.
		Preload("PriceStats").
		Preload("Stores").
		Order("catalog_products.id ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *catalogRepository) GetPriceStat(ctx context.Context, productID, region string) (*entities.ProductPriceStat, error) {
	var stat entities.ProductPriceStat
	if err := r.db.WithContext(ctx).
		Where("product_id = ? AND region = ?", productID, region).
		First(&stat).Error; err != nil {
		return nil, err
	}
	return &stat, nil
}

func (r *catalogRepository) SavePriceStat(ctx context.Context, stat *entities.ProductPriceStat) error {
	return r.db.WithContext(ctx).Save(stat).Error
}

func (r *catalogRepository) AddStore(ctx context.Context, store *entities.ProductStore) error {
	return r.db.WithContext(ctx).Create(store).Error
}
