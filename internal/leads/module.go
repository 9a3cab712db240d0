// Package leads provides the lead intake bounded context: the public form
// endpoint, its validation, the lead record store and the notification email.
package leads

import (
	"capyngen_lead_backend/internal/email"
	"capyngen_lead_backend/internal/leads/handler"
	"capyngen_lead_backend/internal/leads/repository"
	"capyngen_lead_backend/internal/leads/service"
	"capyngen_lead_backend/platform/logger"
	"capyngen_lead_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the leads bounded context module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.LeadsRepository
}

// NewModule creates and initializes the leads module with all its dependencies.
func NewModule(pool *pgxpool.Pool, sender email.Sender, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, sender, val, log)
	h := handler.New(svc)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// Repository returns the repository for direct access if needed.
func (m *Module) Repository() repository.LeadsRepository {
	return m.repo
}

// RegisterRoutes mounts the lead intake routes on the provided group.
func (m *Module) RegisterRoutes(rg *gin.RouterGroup) {
	m.handler.RegisterRoutes(rg)
}
