package models

import "gorm.io/gorm"

type MenuItem struct {
	gorm.Model
	Name              string `json:"name"`
	Description       string `json:"description"`
	Price             int    `json:"price"`
	Category          string `json:"category"`
	ImageURL          string `json:"image_url"`
	Stock             int    `json:"stock"`
	LowStockThreshold int    `json:"low_stock_threshold"`
	Available         bool   `json:"available"`
	IsFeatured        bool   `json:"is_featured"`
	SortOrder         int    `json:"sort_order"`
}

// MenuItemUpdate carries a partial update. Pointer fields distinguish "not
// sent" from an explicit zero or false, so a caller sending price:0 or
// available:false is honored instead of being ignored.
type MenuItemUpdate struct {
	Name              *string `json:"name"`
	Description       *string `json:"description"`
	Price             *int    `json:"price"`
	Category          *string `json:"category"`
	ImageURL          *string `json:"image_url"`
	Stock             *int    `json:"stock"`
	LowStockThreshold *int    `json:"low_stock_threshold"`
	Available         *bool   `json:"available"`
	IsFeatured        *bool   `json:"is_featured"`
	SortOrder         *int    `json:"sort_order"`
}

type MenuItemResponse struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	Price             int    `json:"price"`
	PriceCents        int    `json:"price_cents"`
	Category          string `json:"category"`
	ImageURL          string `json:"image_url"`
	Stock             int    `json:"stock"`
	LowStockThreshold int    `json:"low_stock_threshold"`
	Available         bool   `json:"available"`
	IsFeatured        bool   `json:"is_featured"`
	SortOrder         int    `json:"sort_order"`
	IsLowStock        bool   `json:"is_low_stock"`
	IsSoldOut         bool   `json:"is_sold_out"`
	CreatedAt         string `json:"created_at"`
	UpdatedAt         string `json:"updated_at"`
}

// ToMenuItemResponse is the single place the derived display flags are
// computed. Every endpoint returning menu items goes through it so the flags
// cannot drift between handlers.
func ToMenuItemResponse(item MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:                item.ID,
		Name:              item.Name,
		Description:       item.Description,
		Price:             item.Price,
		PriceCents:        item.Price,
		Category:          item.Category,
		ImageURL:          item.ImageURL,
		Stock:             item.Stock,
		LowStockThreshold: item.LowStockThreshold,
		Available:         item.Available,
		IsFeatured:        item.IsFeatured,
		SortOrder:         item.SortOrder,
		IsLowStock:        item.Stock > 0 && item.Stock <= item.LowStockThreshold,
		IsSoldOut:         item.Stock == 0 && !item.Available,
		CreatedAt:         item.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:         item.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToMenuItemResponses(items []MenuItem) []MenuItemResponse {
	responses := make([]MenuItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, ToMenuItemResponse(item))
	}
	return responses
}
