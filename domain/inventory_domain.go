package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddInventoryItem    = "inventory item added successfully"
	MessageSuccessUpdateInventoryItem = "inventory item updated successfully"
	MessageSuccessDeleteInventoryItem = "inventory item deleted successfully"
	MessageSuccessGetInventoryItems   = "inventory items retrieved successfully"
	MessageSuccessGetExpiringItems    = "expiring items retrieved successfully"

	MessageFailedAddInventoryItem    = "failed to add inventory item"
	MessageFailedUpdateInventoryItem = "failed to update inventory item"
	MessageFailedDeleteInventoryItem = "failed to delete inventory item"
	MessageFailedGetInventoryItems   = "failed to retrieve inventory items"
	MessageFailedGetExpiringItems    = "failed to retrieve expiring items"

	ErrInventoryItemNotFound = errors.New("inventory item not found")
	ErrInvalidExpiryDate     = errors.New("invalid expiry date")
	ErrInvalidQuantity       = errors.New("quantity must be positive")
)

type (
	AddInventoryItemRequest struct {
		Name       string  `json:"name" validate:"required"`
		Quantity   float64 `json:"quantity" validate:"required,gt=0"`
		Unit       string  `json:"unit" validate:"required"`
		ExpiryDate string  `json:"expiry_date" validate:"omitempty"`
	}

	UpdateInventoryItemRequest struct {
		Name       string  `json:"name" validate:"omitempty"`
		Quantity   float64 `json:"quantity" validate:"omitempty,gt=0"`
		Unit       string  `json:"unit" validate:"omitempty"`
		ExpiryDate string  `json:"expiry_date" validate:"omitempty"`
		InStock    *bool   `json:"in_stock" validate:"omitempty"`
	}

	InventoryItemResponse struct {
		ID         string     `json:"id"`
		Name       string     `json:"name"`
		Quantity   float64    `json:"quantity"`
		Unit       string     `json:"unit"`
		InStock    bool       `json:"in_stock"`
		ExpiryDate *time.Time `json:"expiry_date,omitempty"`
		Status     string     `json:"status"`
		CreatedAt  time.Time  `json:"created_at"`
	}

	// InventorySnapshot is the immutable view the engine scores against
	// for the duration of one orchestration call.
	InventorySnapshot struct {
		AccountID string                  `json:"account_id"`
		TakenAt   time.Time               `json:"taken_at"`
		Items     []InventoryItemResponse `json:"items"`
	}
)
