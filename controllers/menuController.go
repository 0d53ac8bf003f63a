package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/bentobaitos/bento-api/initializers"
	"github.com/bentobaitos/bento-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetMenu returns items for the storefront. Unavailable items never show up
// here; the admin listing is the place to see everything.
func GetMenu(ctx *gin.Context) {
	var items []models.MenuItem
	result := initializers.DB.Where("available = ?", true).Order("sort_order ASC, id ASC").Find(&items)
	if result.Error != nil {
		log.Println("Database error:", result.Error)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch menu", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"items": models.ToMenuItemResponses(items)})
}

func GetMenuItem(ctx *gin.Context) {
	itemID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid menu item ID", err)
		return
	}

	var item models.MenuItem
	result := initializers.DB.Where("available = ?", true).First(&item, itemID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
		} else {
			log.Println("Database error:", result.Error)
			respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch menu item", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, models.ToMenuItemResponse(item))
}

func GetAdminMenu(ctx *gin.Context) {
	var items []models.MenuItem
	result := initializers.DB.Order("sort_order ASC, id ASC").Find(&items)
	if result.Error != nil {
		log.Println("Database error:", result.Error)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch menu", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"items": models.ToMenuItemResponses(items)})
}

type CreateMenuItemInput struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	Price             int    `json:"price"`
	Category          string `json:"category"`
	ImageURL          string `json:"image_url"`
	Stock             int    `json:"stock"`
	LowStockThreshold int    `json:"low_stock_threshold"`
	Available         *bool  `json:"available"`
	IsFeatured        bool   `json:"is_featured"`
	SortOrder         int    `json:"sort_order"`
}

func CreateMenuItem(ctx *gin.Context) {
	var input CreateMenuItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if input.Name == "" || input.Category == "" || input.Price <= 0 {
		respondWithError(ctx, http.StatusBadRequest, "Missing required fields: name, category, price", nil)
		return
	}

	available := true
	if input.Available != nil {
		available = *input.Available
	}

	item := models.MenuItem{
		Name:              input.Name,
		Description:       input.Description,
		Price:             input.Price,
		Category:          input.Category,
		ImageURL:          input.ImageURL,
		Stock:             input.Stock,
		LowStockThreshold: input.LowStockThreshold,
		Available:         available,
		IsFeatured:        input.IsFeatured,
		SortOrder:         input.SortOrder,
	}

	if err := initializers.DB.Create(&item).Error; err != nil {
		log.Println("Database error:", err)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create menu item", err)
		return
	}

	ctx.JSON(http.StatusCreated, models.ToMenuItemResponse(item))
}

// UpdateMenuItem applies a partial update: fields absent from the body keep
// their stored value, explicit zeroes and falses are applied.
func UpdateMenuItem(ctx *gin.Context) {
	itemID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid menu item ID", err)
		return
	}

	var input models.MenuItemUpdate
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var item models.MenuItem
	result := initializers.DB.First(&item, itemID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
		} else {
			log.Println("Database error:", result.Error)
			respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch menu item", result.Error)
		}
		return
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.ImageURL != nil {
		item.ImageURL = *input.ImageURL
	}
	if input.Stock != nil {
		item.Stock = *input.Stock
	}
	if input.LowStockThreshold != nil {
		item.LowStockThreshold = *input.LowStockThreshold
	}
	if input.Available != nil {
		item.Available = *input.Available
	}
	if input.IsFeatured != nil {
		item.IsFeatured = *input.IsFeatured
	}
	if input.SortOrder != nil {
		item.SortOrder = *input.SortOrder
	}

	// Stock hitting zero forces the item off the storefront.
	if item.Stock == 0 && input.Stock != nil {
		item.Available = false
	}

	if err := initializers.DB.Save(&item).Error; err != nil {
		log.Println("Database error:", err)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update menu item", err)
		return
	}

	ctx.JSON(http.StatusOK, models.ToMenuItemResponse(item))
}

func DeleteMenuItem(ctx *gin.Context) {
	itemID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid menu item ID", err)
		return
	}

	result := initializers.DB.Delete(&models.MenuItem{}, itemID)
	if result.Error != nil {
		log.Println("Database error:", result.Error)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete menu item", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Menu item deleted successfully"})
}

type AdjustStockInput struct {
	Operation string `json:"operation"`
	Amount    int    `json:"amount"`
}

// AdjustStock handles set/add/subtract. Subtract clamps at zero, and any
// adjustment that lands on zero flips the item unavailable.
func AdjustStock(ctx *gin.Context) {
	itemID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid menu item ID", err)
		return
	}

	var input AdjustStockInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var item models.MenuItem
	result := initializers.DB.First(&item, itemID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
		} else {
			log.Println("Database error:", result.Error)
			respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch menu item", result.Error)
		}
		return
	}

	switch input.Operation {
	case "set":
		item.Stock = input.Amount
	case "add":
		item.Stock += input.Amount
	case "subtract":
		item.Stock -= input.Amount
		if item.Stock < 0 {
			item.Stock = 0
		}
	default:
		respondWithError(ctx, http.StatusBadRequest, "Invalid operation. Use set, add or subtract", nil)
		return
	}

	if item.Stock == 0 {
		item.Available = false
	}

	if err := initializers.DB.Save(&item).Error; err != nil {
		log.Println("Database error:", err)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to adjust stock", err)
		return
	}

	ctx.JSON(http.StatusOK, models.ToMenuItemResponse(item))
}

func ToggleAvailability(ctx *gin.Context) {
	itemID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid menu item ID", err)
		return
	}

	var item models.MenuItem
	result := initializers.DB.First(&item, itemID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
		} else {
			log.Println("Database error:", result.Error)
			respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch menu item", result.Error)
		}
		return
	}

	if err := initializers.DB.Model(&item).Update("available", !item.Available).Error; err != nil {
		log.Println("Database error:", err)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to toggle availability", err)
		return
	}

	ctx.JSON(http.StatusOK, models.ToMenuItemResponse(item))
}
