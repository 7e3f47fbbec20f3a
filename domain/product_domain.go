package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddProduct    = "product added successfully"
	MessageSuccessGetProducts   = "products retrieved successfully"
	MessageSuccessReportPrice   = "price reported successfully"
	MessageSuccessRecordScan    = "scan recorded successfully"
	MessageFailedAddProduct     = "failed to add product"
	MessageFailedGetProducts    = "failed to retrieve products"
	MessageFailedReportPrice    = "failed to report price"
	MessageFailedRecordScan     = "failed to record scan"

	ErrProductNotFound  = errors.New("product not found")
	ErrDuplicateBarcode = errors.New("a product with this barcode already exists")
	ErrInvalidPrice     = errors.New("price must be positive")
)

type (
	AddProductRequest struct {
		Barcode  string `json:"barcode" validate:"required"`
		Name     string `json:"name" validate:"required"`
		Brand    string `json:"brand" validate:"omitempty"`
		Category string `json:"category" validate:"omitempty"`
	}

	ReportPriceRequest struct {
		Barcode    string `json:"barcode" validate:"required"`
		Region     string `json:"region" validate:"required"`
		PriceCents int64  `json:"price_cents" validate:"required,gt=0"`
		StoreName  string `json:"store_name" validate:"omitempty"`
	}

	RegionalPrice struct {
		Region        string `json:"region"`
		AvgPriceCents int64  `json:"avg_price_cents"`
		MinPriceCents int64  `json:"min_price_cents"`
		MaxPriceCents int64  `json:"max_price_cents"`
		PurchaseCount int    `json:"purchase_count"`
	}

	ProductResponse struct {
		ID        string         `json:"id"`
		Barcode   string         `json:"barcode"`
		Name      string         `json:"name"`
		Brand     string         `json:"brand"`
		Category  string         `json:"category"`
		Verified  bool           `json:"verified"`
		ScanCount int            `json:"scan_count"`
		Price     *RegionalPrice `json:"price,omitempty"`
		Stores    []string       `json:"stores,omitempty"`
		CreatedAt time.Time      `json:"created_at"`
	}
)
