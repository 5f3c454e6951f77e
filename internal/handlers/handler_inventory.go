package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/middleware"
)

// inventoryHandler handles HTTP requests related to stock items.
type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
	forecastService  portssvc.ForecastService
}

// newInventoryHandler creates a new inventoryHandler.
func newInventoryHandler(is portssvc.InventorySvcFacade, fs portssvc.ForecastService) *inventoryHandler {
	return &inventoryHandler{
		inventoryService: is,
		forecastService:  fs,
	}
}

// registerInventoryRoutes registers routes related to stock items.
func registerInventoryRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade, forecastService portssvc.ForecastService) {
	h := newInventoryHandler(inventoryService, forecastService)

	inventory := rg.Group("/inventory")
	{
		inventory.POST("", h.createItem)
		inventory.GET("", h.listItems)
		inventory.GET("/analysis", h.getSalesAnalysis)
		inventory.GET("/:id", h.getItemByID)
		inventory.PUT("/:id", h.updateItem)
		inventory.DELETE("/:id", h.deleteItem)
	}
}

// createItem godoc
// @Summary Create a new stock item
// @Description Adds a stock item with its unit price and on-hand quantity
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   item body dto.CreateInventoryItemRequest true "Item details"
// @Success 201 {object} dto.InventoryItemResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create item"
// @Router /inventory [post]
func (h *inventoryHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.inventoryService.CreateItem(c.Request.Context(), req.ToDomainItem())
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating item", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create item in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		}
		return
	}

	logger.Info("Inventory item created successfully", slog.String("item_id", created.ItemID))
	c.JSON(http.StatusCreated, dto.ToInventoryItemResponse(created))
}

// getItemByID godoc
// @Summary Get a stock item by ID
// @Description Retrieves details for a specific stock item
// @Tags inventory
// @Produce  json
// @Param   id path string true "Item ID"
// @Success 200 {object} dto.InventoryItemResponse
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to retrieve item"
// @Router /inventory/{id} [get]
func (h *inventoryHandler) getItemByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("id")

	item, err := h.inventoryService.GetItemByID(c.Request.Context(), itemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Inventory item not found", slog.String("item_id", itemID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		} else {
			logger.Error("Failed to get item from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve item"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToInventoryItemResponse(item))
}

// listItems godoc
// @Summary List stock items
// @Description Retrieves a paginated list of stock items, optionally filtered by a name substring
// @Tags inventory
// @Produce  json
// @Param   search query string false "Name substring (case-insensitive)"
// @Param   limit query int false "Page size" default(100)
// @Param   offset query int false "Page offset" default(0)
// @Success 200 {array} dto.InventoryItemResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to list items"
// @Router /inventory [get]
func (h *inventoryHandler) listItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListInventoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListItems", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	items, err := h.inventoryService.ListItems(c.Request.Context(), params.Search, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list items from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list items"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListInventoryItemResponse(items))
}

// updateItem godoc
// @Summary Update a stock item
// @Description Updates a stock item's details including its on-hand quantity
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   id path string true "Item ID"
// @Param   item body dto.UpdateInventoryItemRequest true "Updated item details"
// @Success 200 {object} dto.InventoryItemResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to update item"
// @Router /inventory/{id} [put]
func (h *inventoryHandler) updateItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("id")

	var req dto.UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	item := req.ToDomainItem()
	item.ItemID = itemID

	updated, err := h.inventoryService.UpdateItem(c.Request.Context(), item)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Inventory item not found for update", slog.String("item_id", itemID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating item", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update item in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		}
		return
	}

	logger.Info("Inventory item updated successfully", slog.String("item_id", itemID))
	c.JSON(http.StatusOK, dto.ToInventoryItemResponse(updated))
}

// deleteItem godoc
// @Summary Delete a stock item
// @Description Removes a stock item
// @Tags inventory
// @Produce  json
// @Param   id path string true "Item ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to delete item"
// @Router /inventory/{id} [delete]
func (h *inventoryHandler) deleteItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("id")

	if err := h.inventoryService.DeleteItem(c.Request.Context(), itemID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Inventory item not found for delete", slog.String("item_id", itemID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		} else {
			logger.Error("Failed to delete item in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		}
		return
	}

	logger.Info("Inventory item deleted successfully", slog.String("item_id", itemID))
	c.Status(http.StatusNoContent)
}

// getSalesAnalysis godoc
// @Summary Analyze inventory sales
// @Description Builds a per-item demand analysis with predicted monthly sales, growth, turnover and restock recommendations
// @Tags inventory
// @Produce  json
// @Success 200 {object} dto.InventorySalesAnalysisResponse
// @Failure 500 {object} map[string]string "Failed to analyze inventory sales"
// @Router /inventory/analysis [get]
func (h *inventoryHandler) getSalesAnalysis(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to analyze inventory sales")

	analysis, err := h.forecastService.AnalyzeInventorySales(c.Request.Context())
	if err != nil {
		logger.Error("Failed to analyze inventory sales", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze inventory sales"})
		return
	}

	logger.Info("Inventory sales analysis generated successfully", slog.Int("item_count", len(analysis.AllItemsAnalysis)))
	c.JSON(http.StatusOK, dto.ToInventorySalesAnalysisResponse(analysis))
}
