package handlers

import (
	"net/http"
	"strconv"
	"strings"

	apperrors "gear-garage-backend/internal/errors"
	"gear-garage-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogHandler handles HTTP requests for catalog item operations
type CatalogHandler struct {
	catalogService service.CatalogServiceInterface
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService service.CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// SearchCatalogItems handles GET /catalog-items
// @Summary Search catalog items
// @Description Search catalog items by gear category and free-text query over brand, model and variant.
// @Tags catalog
// @Produce json
// @Param category query string false "Gear category filter"
// @Param q query string false "Free-text query"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.CatalogItemListResponse "Search results"
// @Failure 400 {object} map[string]interface{} "Invalid category"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /catalog-items [get]
func (h *CatalogHandler) SearchCatalogItems(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.catalogService.Search(c.Query("category"), c.Query("q"), page, pageSize)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetCatalogItem handles GET /catalog-items/:id
// @Summary Get a catalog item
// @Description Get a single catalog item by id.
// @Tags catalog
// @Produce json
// @Param id path string true "Catalog item ID (UUID)"
// @Success 200 {object} service.CatalogItemResponse "Catalog item found"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 404 {object} map[string]interface{} "Catalog item not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /catalog-items/{id} [get]
func (h *CatalogHandler) GetCatalogItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid catalog item ID"})
		return
	}

	resp, err := h.catalogService.GetByID(id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateCatalogItem handles POST /catalog-items
// @Summary Create a catalog item
// @Description Create a new catalog item. Admin only.
// @Tags catalog
// @Accept json
// @Produce json
// @Param item body service.CreateCatalogItemRequest true "Catalog item data"
// @Success 201 {object} service.CatalogItemResponse "Catalog item created"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /catalog-items [post]
func (h *CatalogHandler) CreateCatalogItem(c *gin.Context) {
	var req service.CreateCatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.catalogService.Create(&req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// UpdateCatalogItem handles PUT /catalog-items/:id
// @Summary Update a catalog item
// @Description Apply a partial update to a catalog item. Existing build snapshots are unaffected. Admin only.
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Catalog item ID (UUID)"
// @Param item body service.UpdateCatalogItemRequest true "Fields to update"
// @Success 200 {object} service.CatalogItemResponse "Catalog item updated"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Catalog item not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /catalog-items/{id} [put]
func (h *CatalogHandler) UpdateCatalogItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid catalog item ID"})
		return
	}

	var req service.UpdateCatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.catalogService.Update(id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) handleError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err), strings.Contains(err.Error(), "validation failed"):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
