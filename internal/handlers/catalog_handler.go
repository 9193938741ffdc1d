package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"business-catalog-api/internal/catalog"
	"business-catalog-api/internal/services"
)

// ChecksumHeader carries the sha256 of the live document
const ChecksumHeader = "X-Catalog-Checksum"

// CatalogHandler serves the rendered catalog and its lookups
type CatalogHandler struct {
	catalogService services.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// @Summary Get the catalog
// @Description Full OpenAPI 3.0.3 document of the business API
// @Tags catalog
// @Produce json
// @Success 200 {object} catalog.Document
// @Router /catalog/openapi.json [get]
func (h *CatalogHandler) GetJSON(c *gin.Context) {
	h.render(c, "", services.FormatJSON)
}

// @Summary Get the catalog as YAML
// @Tags catalog
// @Produce application/yaml
// @Success 200 {string} string
// @Router /catalog/openapi.yaml [get]
func (h *CatalogHandler) GetYAML(c *gin.Context) {
	h.render(c, "", services.FormatYAML)
}

// @Summary Get one domain of the catalog
// @Description Paths, tags and schemas of a single domain (store, hr, delivery, work)
// @Tags catalog
// @Produce json,application/yaml
// @Param domain path string true "Domain name"
// @Param format query string false "json or yaml" default(json)
// @Success 200 {object} catalog.Document
// @Failure 404 {object} ErrorResponse
// @Router /catalog/domains/{domain} [get]
func (h *CatalogHandler) GetDomain(c *gin.Context) {
	h.render(c, c.Param("domain"), services.Format(c.DefaultQuery("format", string(services.FormatJSON))))
}

func (h *CatalogHandler) render(c *gin.Context, domain string, format services.Format) {
	data, err := h.catalogService.Render(domain, format)
	if err != nil {
		respondError(c, err)
		return
	}

	contentType := "application/json; charset=utf-8"
	if format == services.FormatYAML {
		contentType = "application/yaml; charset=utf-8"
	}
	c.Header(ChecksumHeader, h.catalogService.Checksum())
	c.Data(http.StatusOK, contentType, data)
}

// @Summary List routes
// @Description Flattened (path, method) table of the catalog
// @Tags catalog
// @Produce json
// @Param domain query string false "Restrict to one domain"
// @Success 200 {array} catalog.Route
// @Failure 404 {object} ErrorResponse
// @Router /catalog/routes [get]
func (h *CatalogHandler) ListRoutes(c *gin.Context) {
	routes, err := h.catalogService.Routes(c.Query("domain"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, routes)
}

// VerbsResponse lists the verbs documented for one URL template
type VerbsResponse struct {
	Path  string   `json:"path"`
	Verbs []string `json:"verbs"`
}

// @Summary Get verbs of a path
// @Tags catalog
// @Produce json
// @Param path query string true "URL template, e.g. /store/group/{uuid}"
// @Success 200 {object} VerbsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /catalog/verbs [get]
func (h *CatalogHandler) GetVerbs(c *gin.Context) {
	path := c.Query("path")
	verbs, err := h.catalogService.Verbs(path)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, VerbsResponse{Path: path, Verbs: verbs})
}

// @Summary Query the catalog
// @Description Evaluates a gjson path against the rendered document
// @Tags catalog
// @Produce json
// @Param q query string true "gjson path, e.g. components.schemas.hr\\.user.required"
// @Success 200 {object} object
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /catalog/query [get]
func (h *CatalogHandler) Query(c *gin.Context) {
	res, err := h.catalogService.Query(c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(res.Raw))
}

// LintResponse summarises a lint report
type LintResponse struct {
	OK       bool              `json:"ok"`
	Errors   int               `json:"errors"`
	Warnings int               `json:"warnings"`
	Findings []catalog.Finding `json:"findings"`
}

// @Summary Lint the catalog
// @Description Consistency report of the live catalog
// @Tags catalog
// @Produce json
// @Param rule query string false "Only findings of one rule"
// @Success 200 {object} LintResponse
// @Router /catalog/lint [get]
func (h *CatalogHandler) GetLint(c *gin.Context) {
	report := h.catalogService.Lint()
	resp := LintResponse{
		OK:       report.OK(),
		Errors:   report.Errors(),
		Warnings: report.Warnings(),
		Findings: report.Findings,
	}
	if rule := c.Query("rule"); rule != "" {
		resp.Findings = report.ByRule(rule)
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Check a payload
// @Description Validates a create payload against a resource schema
// @Tags catalog
// @Accept json
// @Produce json
// @Param domain path string true "Domain name"
// @Param resource path string true "Resource name, e.g. purchase-entry"
// @Param payload body object true "Create payload"
// @Success 200 {object} services.CheckResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} services.CheckResult
// @Router /catalog/check/{domain}/{resource} [post]
func (h *CatalogHandler) CheckPayload(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		badRequest(c, "failed to read request body")
		return
	}

	result, err := h.catalogService.Check(c.Param("domain"), c.Param("resource"), payload)
	if err != nil {
		respondError(c, err)
		return
	}
	if !result.Valid {
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}
	c.JSON(http.StatusOK, result)
}
