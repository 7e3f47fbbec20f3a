package catalog

import (
	"HealthPantry-Backend/domain"
	"HealthPantry-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// verifiedScanThreshold is how many independent scans confirm a product.
const verifiedScanThreshold = 3

type (
	CatalogService interface {
		AddProduct(ctx context.Context, req domain.AddProductRequest) (domain.ProductResponse, error)
		GetProducts(ctx context.Context, region string, page, limit int) ([]domain.ProductResponse, int64, error)
		RecordScan(ctx context.Context, barcode string) error
		ReportPrice(ctx context.Context, req domain.ReportPriceRequest) error

		// FindCandidates exposes the matchable product set for one region to
		// the suggestion engine.
		FindCandidates(ctx context.Context, region string) ([]domain.ProductResponse, error)
	}

	catalogService struct {
		catalogRepository CatalogRepository
	}
)

func NewCatalogService(catalogRepository CatalogRepository) CatalogService {
	return &catalogService{catalogRepository: catalogRepository}
}

// ToResponse flattens a product with its price stat for the given region.
// The price field stays nil when the product carries no stats there.
func ToResponse(product *entities.CatalogProduct, region string) domain.ProductResponse {
	res := domain.ProductResponse{
		ID:        product.ID.String(),
		Barcode:   product.Barcode,
		Name:      product.Name,
		Brand:     product.Brand,
		Category:  product.Category,
		Verified:  product.Verified,
		ScanCount: product.ScanCount,
		CreatedAt: product.CreatedAt,
	}
	for _, stat := range product.PriceStats {
		if region != "" && stat.Region != region {
			continue
		}
		res.Price = &domain.RegionalPrice{
			Region:        stat.Region,
			AvgPriceCents: stat.AvgPriceCents,
			MinPriceCents: stat.MinPriceCents,
			MaxPriceCents: stat.MaxPriceCents,
			PurchaseCount: stat.PurchaseCount,
		}
		break
	}
	for _, store := range product.Stores {
		if region != "" && store.Region != region {
			continue
		}
		res.Stores = append(res.Stores, store.StoreName)
	}
	return res
}

func (s *catalogService) AddProduct(ctx context.Context, req domain.AddProductRequest) (domain.ProductResponse, error) {
	if existing, err := s.catalogRepository.GetProductByBarcode(ctx, req.Barcode); err == nil && existing != nil {
		return domain.ProductResponse{}, domain.ErrDuplicateBarcode
	}

	product := &entities.CatalogProduct{
		ID:        uuid.New(),
		Barcode:   req.Barcode,
		Name:      req.Name,
		Brand:     req.Brand,
		Category:  req.Category,
		ScanCount: 1,
	}
	if err := s.catalogRepository.AddProduct(ctx, product); err != nil {
		return domain.ProductResponse{}, err
	}
	return ToResponse(product, ""), nil
}

func (s *catalogService) GetProducts(ctx context.Context, region string, page, limit int) ([]domain.ProductResponse, int64, error) {
	products, count, err := s.catalogRepository.GetProducts(ctx, region, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.ProductResponse
	for _, p := range products {
		response = append(response, ToResponse(p, region))
	}
	return response, count, nil
}

func (s *catalogService) RecordScan(ctx context.Context, barcode string) error {
	product, err := s.catalogRepository.GetProductByBarcode(ctx, barcode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}

	product.ScanCount++
	if product.ScanCount >= verifiedScanThreshold {
		product.Verified = true
	}
	return s.catalogRepository.UpdateProduct(ctx, product)
}

func (s *catalogService) ReportPrice(ctx context.Context, req domain.ReportPriceRequest) error {
	if req.PriceCents <= 0 {
		return domain.ErrInvalidPrice
	}

	product, err := s.catalogRepository.GetProductByBarcode(ctx, req.Barcode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}

	stat, err := s.catalogRepository.GetPriceStat(ctx, product.ID.String(), req.Region)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		stat = &entities.ProductPriceStat{
			ID:            uuid.New(),
			ProductID:     product.ID,
			Region:        req.Region,
			AvgPriceCents: req.PriceCents,
			MinPriceCents: req.PriceCents,
			MaxPriceCents: req.PriceCents,
			PurchaseCount: 1,
		}
	} else {
		// Running average over the reported purchases.
		total := stat.AvgPriceCents*int64(stat.PurchaseCount) + req.PriceCents
		stat.PurchaseCount++
		stat.AvgPriceCents = total / int64(stat.PurchaseCount)
		if req.PriceCents < stat.MinPriceCents {
			stat.MinPriceCents = req.PriceCents
		}
		if req.PriceCents > stat.MaxPriceCents {
			stat.MaxPriceCents = req.PriceCents
		}
	}

	if err := s.catalogRepository.SavePriceStat(ctx, stat); err != nil {
		return err
	}

	if req.StoreName != "" {
		known := false
		for _, store := range product.Stores {
			if store.StoreName == req.StoreName && store.Region == req.Region {
				known = true
				break
			}
		}
		if !known {
			if err := s.catalogRepository.AddStore(ctx, &entities.ProductStore{
				ID:        uuid.New(),
				ProductID: product.ID,
				StoreName: req.StoreName,
				Region:    req.Region,
			}); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *catalogService) FindCandidates(ctx context.Context, region string) ([]domain.ProductResponse, error) {
	products, err := s.catalogRepository.GetCandidates(ctx, region)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, ToResponse(p, region))
	}
	return response, nil
}
