// Package docs serves the API documentation from a static OpenAPI description
// embedded in the binary.
package docs

import (
	"embed"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var specFS embed.FS

// Handler serves the embedded OpenAPI document.
type Handler struct {
	document map[string]interface{}
	raw      []byte
}

// New parses the embedded OpenAPI description.
func New() (*Handler, error) {
	raw, err := specFS.ReadFile("openapi.yaml")
	if err != nil {
		return nil, fmt.Errorf("read openapi spec: %w", err)
	}

	var document map[string]interface{}
	if err := yaml.Unmarshal(raw, &document); err != nil {
		return nil, fmt.Errorf("parse openapi spec: %w", err)
	}

	return &Handler{document: document, raw: raw}, nil
}

// RegisterRoutes mounts the documentation endpoints.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/api-docs", h.GetJSON)
	r.GET("/api-docs/openapi.yaml", h.GetYAML)
}

// GetJSON serves the OpenAPI document as JSON.
func (h *Handler) GetJSON(c *gin.Context) {
	c.JSON(http.StatusOK, h.document)
}

// GetYAML serves the raw OpenAPI YAML.
func (h *Handler) GetYAML(c *gin.Context) {
	c.Data(http.StatusOK, "application/yaml", h.raw)
}
