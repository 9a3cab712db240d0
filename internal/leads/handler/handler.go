package handler

import (
	"capyngen_lead_backend/internal/leads/service"
	"capyngen_lead_backend/internal/leads/transport"
	"capyngen_lead_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the public lead intake route.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Submit)
}

// Submit accepts lead data from the frontend form.
func (h *Handler) Submit(c *gin.Context) {
	var req transport.SubmitLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.ValidationFailed(c, []transport.FieldError{
			{Field: "body", Message: "Invalid JSON body"},
		})
		return
	}

	result, err := h.svc.Submit(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result.Message)
}
