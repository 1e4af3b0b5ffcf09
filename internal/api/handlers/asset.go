package handlers

import (
	"net/http"

	apperrors "gear-garage-backend/internal/errors"
	"gear-garage-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AssetHandler streams catalog item images fetched through the credentialed
// asset store
type AssetHandler struct {
	assetService service.AssetServiceInterface
}

// NewAssetHandler creates a new asset handler
func NewAssetHandler(assetService service.AssetServiceInterface) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
	}
}

// GetCatalogImage handles GET /assets/:id
// @Summary Get a catalog item image
// @Description Stream the image for a catalog item. Missing items, items without an image, and store failures all yield 404; the client falls back to a placeholder.
// @Tags assets
// @Produce octet-stream
// @Param id path string true "Catalog item ID (UUID)"
// @Success 200 {file} binary "Image bytes"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 404 {object} map[string]interface{} "Asset not found"
// @Failure 502 {object} map[string]interface{} "Asset store unreachable"
// @Router /assets/{id} [get]
func (h *AssetHandler) GetCatalogImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid catalog item ID"})
		return
	}

	handle, err := h.assetService.GetCatalogImage(c.Request.Context(), id)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsTransport(err):
			c.JSON(http.StatusBadGateway, gin.H{"error": "asset store unreachable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	defer handle.Revoke()

	contentType := handle.ContentType()
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(http.StatusOK, contentType, handle.Bytes())
}
