package lambda

import (
	"errors"
	"net/http"
	"strings"

	"business-catalog-api/internal/catalog"
	"business-catalog-api/internal/services"
)

// Prefix is stripped from incoming paths so the function can sit behind
// the same base path as the HTTP server
const Prefix = "/api/v1/catalog"

// NewCatalogHandler serves the read-only catalog endpoints
func NewCatalogHandler(svc services.CatalogService) HandlerFunc {
	return func(req *Request) (*Response, error) {
		if req.Method != http.MethodGet {
			return Error(http.StatusMethodNotAllowed, "Method not allowed"), nil
		}

		path := strings.TrimPrefix(req.Path, Prefix)
		switch {
		case path == "/openapi.json" || path == "" || path == "/":
			return render(svc, "", services.FormatJSON)
		case path == "/openapi.yaml":
			return render(svc, "", services.FormatYAML)
		case strings.HasPrefix(path, "/domains/"):
			domain := strings.Trim(strings.TrimPrefix(path, "/domains/"), "/")
			if domain == "" {
				return Error(http.StatusNotFound, "Not found"), nil
			}
			format := services.FormatJSON
			if req.QueryParams["format"] == string(services.FormatYAML) {
				format = services.FormatYAML
			}
			return render(svc, domain, format)
		case path == "/routes":
			routes, err := svc.Routes(req.QueryParams["domain"])
			if err != nil {
				return fromError(err), nil
			}
			return JSON(http.StatusOK, routes), nil
		case path == "/verbs":
			template := req.QueryParams["path"]
			if template == "" {
				return Error(http.StatusBadRequest, "path query parameter is required"), nil
			}
			verbs, err := svc.Verbs(template)
			if err != nil {
				return fromError(err), nil
			}
			return JSON(http.StatusOK, map[string]any{"path": template, "verbs": verbs}), nil
		case path == "/lint":
			return JSON(http.StatusOK, svc.Lint()), nil
		default:
			return Error(http.StatusNotFound, "Not found"), nil
		}
	}
}

func render(svc services.CatalogService, domain string, format services.Format) (*Response, error) {
	data, err := svc.Render(domain, format)
	if err != nil {
		return fromError(err), nil
	}
	resp := Raw(http.StatusOK, contentType(format), data)
	resp.Headers["X-Catalog-Checksum"] = svc.Checksum()
	return resp, nil
}

func contentType(format services.Format) string {
	if format == services.FormatYAML {
		return "application/yaml"
	}
	return "application/json"
}

func fromError(err error) *Response {
	switch {
	case errors.Is(err, catalog.ErrUnknownDomain), errors.Is(err, catalog.ErrUnknownPath):
		return Error(http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidRequest):
		return Error(http.StatusBadRequest, err.Error())
	default:
		return Error(http.StatusInternalServerError, "Internal server error")
	}
}
