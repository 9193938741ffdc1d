package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"business-catalog-api/internal/middleware"
	"business-catalog-api/internal/models"
	"business-catalog-api/internal/repositories"
	"business-catalog-api/internal/services"
)

// SnapshotHandler serves the published snapshot history
type SnapshotHandler struct {
	catalogService services.CatalogService
}

// NewSnapshotHandler creates a new snapshot handler
func NewSnapshotHandler(catalogService services.CatalogService) *SnapshotHandler {
	return &SnapshotHandler{catalogService: catalogService}
}

// @Summary List snapshots
// @Description Published catalog versions, newest first
// @Tags snapshots
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} models.Snapshot
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /snapshots [get]
func (h *SnapshotHandler) ListSnapshots(c *gin.Context) {
	var opts repositories.ListOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		badRequest(c, err.Error())
		return
	}

	snapshots, err := h.catalogService.ListSnapshots(c.Request.Context(), opts)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshots)
}

// @Summary Publish a snapshot
// @Description Records the live catalog under a version. Returns 200 with unchanged=true when the catalog equals the latest snapshot.
// @Tags snapshots
// @Accept json
// @Produce json
// @Param request body services.PublishRequest true "Version and notes"
// @Success 201 {object} services.PublishResult
// @Success 200 {object} services.PublishResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /snapshots [post]
func (h *SnapshotHandler) Publish(c *gin.Context) {
	var req services.PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	req.PublishedBy = middleware.Subject(c)

	result, err := h.catalogService.Publish(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	if result.Unchanged {
		c.JSON(http.StatusOK, result)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// @Summary Get a snapshot
// @Tags snapshots
// @Produce json
// @Param version path string true "Snapshot version"
// @Success 200 {object} models.Snapshot
// @Failure 404 {object} ErrorResponse
// @Router /snapshots/{version} [get]
func (h *SnapshotHandler) GetSnapshot(c *gin.Context) {
	snapshot, err := h.catalogService.GetSnapshot(c.Request.Context(), c.Param("version"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// @Summary Get a snapshot document
// @Description The OpenAPI document exactly as it was published
// @Tags snapshots
// @Produce json
// @Param version path string true "Snapshot version"
// @Success 200 {object} catalog.Document
// @Failure 404 {object} ErrorResponse
// @Router /snapshots/{version}/openapi.json [get]
func (h *SnapshotHandler) GetSnapshotDocument(c *gin.Context) {
	snapshot, err := h.catalogService.GetSnapshot(c.Request.Context(), c.Param("version"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header(ChecksumHeader, snapshot.Checksum)
	c.Data(http.StatusOK, "application/json; charset=utf-8", snapshot.Document)
}

// @Summary Get a snapshot lint report
// @Tags snapshots
// @Produce json
// @Param version path string true "Snapshot version"
// @Success 200 {object} catalog.Report
// @Failure 404 {object} ErrorResponse
// @Router /snapshots/{version}/lint [get]
func (h *SnapshotHandler) GetSnapshotLint(c *gin.Context) {
	run, err := h.catalogService.GetLintRun(c.Request.Context(), c.Param("version"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", run.Report)
}

// @Summary Delete a snapshot
// @Tags snapshots
// @Param version path string true "Snapshot version"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /snapshots/{version} [delete]
func (h *SnapshotHandler) DeleteSnapshot(c *gin.Context) {
	if err := h.catalogService.DeleteSnapshot(c.Request.Context(), c.Param("version")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DiffResponse is a contract diff with its breaking flag
type DiffResponse struct {
	*models.Diff
	Breaking bool `json:"breaking"`
}

// @Summary Diff two snapshots
// @Description Paths, operations, schemas and required fields added or removed between two versions. Use "current" for the live catalog.
// @Tags snapshots
// @Produce json
// @Param from query string true "Base version"
// @Param to query string false "Target version" default(current)
// @Success 200 {object} DiffResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /snapshots/diff [get]
func (h *SnapshotHandler) Diff(c *gin.Context) {
	from := c.Query("from")
	if from == "" {
		badRequest(c, "from is required")
		return
	}
	to := c.DefaultQuery("to", services.CurrentVersion)

	diff, err := h.catalogService.Diff(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, DiffResponse{Diff: diff, Breaking: diff.Breaking()})
}
