package handlers

import (
	"net/http"
	"strings"

	apperrors "gear-garage-backend/internal/errors"
	"gear-garage-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BuildHandler handles HTTP requests for build operations. Builds are
// addressed by access token only; there is no id-based route.
type BuildHandler struct {
	buildService service.BuildServiceInterface
}

// NewBuildHandler creates a new build handler
func NewBuildHandler(buildService service.BuildServiceInterface) *BuildHandler {
	return &BuildHandler{
		buildService: buildService,
	}
}

// CreateBuild handles POST /builds/temp
// @Summary Create a temporary build
// @Description Create a temporary build and receive its private access token. The build expires after the configured TTL unless promoted.
// @Tags builds
// @Accept json
// @Produce json
// @Param build body service.CreateBuildRequest true "Build data"
// @Success 201 {object} service.CreateBuildResponse "Build created"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /builds/temp [post]
func (h *BuildHandler) CreateBuild(c *gin.Context) {
	var req service.CreateBuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.buildService.CreateTemp(&req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetBuild handles GET /builds/:token
// @Summary Get a build by access token
// @Description Retrieve a build. Expired temporary builds and consumed tokens yield 404.
// @Tags builds
// @Produce json
// @Param token path string true "Build access token"
// @Success 200 {object} service.BuildResponse "Build found"
// @Failure 404 {object} map[string]interface{} "Build not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /builds/{token} [get]
func (h *BuildHandler) GetBuild(c *gin.Context) {
	resp, err := h.buildService.GetByToken(c.Param("token"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateBuild handles PATCH /builds/:token
// @Summary Update a temporary build
// @Description Apply a partial update to a temporary build. Shared builds are immutable and yield 409.
// @Tags builds
// @Accept json
// @Produce json
// @Param token path string true "Build access token"
// @Param build body service.UpdateBuildRequest true "Fields to update"
// @Success 200 {object} service.BuildResponse "Build updated"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Build not found"
// @Failure 409 {object} map[string]interface{} "Build already shared"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /builds/{token} [patch]
func (h *BuildHandler) UpdateBuild(c *gin.Context) {
	var req service.UpdateBuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.buildService.Update(c.Param("token"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// PromoteBuild handles POST /builds/:token/promote
// @Summary Promote a temporary build to shared
// @Description Convert a temporary build into a durable shared one. The old token stops resolving; the response carries a fresh token and shareable URL. One-way and single-use.
// @Tags builds
// @Produce json
// @Param token path string true "Build access token"
// @Success 200 {object} service.PromoteBuildResponse "Build promoted"
// @Failure 404 {object} map[string]interface{} "Build not found"
// @Failure 409 {object} map[string]interface{} "Build already shared"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /builds/{token}/promote [post]
func (h *BuildHandler) PromoteBuild(c *gin.Context) {
	resp, err := h.buildService.Promote(c.Param("token"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ValidateBuild handles POST /builds/validate
// @Summary Validate a parts list
// @Description Run the completeness rules over a submitted parts list without storing anything.
// @Tags builds
// @Accept json
// @Produce json
// @Param parts body service.ValidateBuildRequest true "Parts to validate"
// @Success 200 {object} service.ValidateBuildResponse "Validation result"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /builds/validate [post]
func (h *BuildHandler) ValidateBuild(c *gin.Context) {
	var req service.ValidateBuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.buildService.Validate(&req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *BuildHandler) handleError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsInvalidState(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err), strings.Contains(err.Error(), "validation failed"):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
