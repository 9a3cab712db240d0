// Package service implements the lead submission flow: validate the form
// payload, persist the lead, then send the notification email. Persistence
// happens before mail; a mail failure never rolls the stored lead back.
package service

import (
	"context"
	"time"

	"capyngen_lead_backend/internal/email"
	"capyngen_lead_backend/internal/leads/repository"
	"capyngen_lead_backend/internal/leads/transport"
	"capyngen_lead_backend/platform/apperr"
	"capyngen_lead_backend/platform/logger"
	"capyngen_lead_backend/platform/validator"

	"github.com/google/uuid"
)

const (
	msgMailSent       = "Mail sent successfully ✅"
	msgValidationFail = "Validation failed"
	msgStoreFail      = "Failed to store lead"
	msgMailFail       = "Failed to send email"
)

type Service struct {
	repo   repository.LeadsRepository
	sender email.Sender
	val    *validator.Validator
	log    *logger.Logger
}

func New(repo repository.LeadsRepository, sender email.Sender, val *validator.Validator, log *logger.Logger) *Service {
	return &Service{repo: repo, sender: sender, val: val, log: log}
}

// SubmitResult reports a successful submission.
type SubmitResult struct {
	LeadID  uuid.UUID
	Message string
}

// Submit validates the payload, persists the lead and sends the notification
// email. Exactly one store write and at most one mail call happen per
// invocation, in that order.
func (s *Service) Submit(ctx context.Context, req transport.SubmitLeadRequest) (SubmitResult, error) {
	req.Normalize()
	if err := s.val.Struct(req); err != nil {
		return SubmitResult{}, apperr.Validation(msgValidationFail).
			WithDetails(transport.FieldErrorsFrom(err))
	}

	lead, err := s.repo.Create(ctx, toCreateParams(req))
	if err != nil {
		s.log.DatabaseError("create lead", err)
		return SubmitResult{}, apperr.Persistence(msgStoreFail, err)
	}

	notification := buildNotification(lead, time.Now())

	providerID, err := s.sender.Send(ctx, notification)
	s.log.MailEvent(senderName(s.sender), notification.To, notification.Subject, err)
	if err != nil {
		// The lead is already durably stored. This is a delivery failure,
		// not a data-loss failure.
		return SubmitResult{}, apperr.Mail(msgMailFail, err)
	}

	s.log.Info("lead submitted", "lead_id", lead.ID.String(), "mail_id", providerID)

	return SubmitResult{LeadID: lead.ID, Message: msgMailSent}, nil
}

func toCreateParams(req transport.SubmitLeadRequest) repository.CreateLeadParams {
	params := repository.CreateLeadParams{
		FullName:     req.FullName,
		Phone:        req.Phone,
		City:         req.City,
		BrandName:    req.BrandName,
		Website:      req.Website,
		BusinessType: req.BusinessType,
		Services:     req.Services,
		Budget:       req.Budget,
		BestTime:     req.BestTime,
	}
	if req.Email != "" {
		params.Email = &req.Email
	}
	if req.Notes != "" {
		params.Notes = &req.Notes
	}
	return params
}

func senderName(s email.Sender) string {
	switch s.(type) {
	case *email.SMTPSender:
		return "smtp"
	case *email.BrevoSender:
		return "api"
	default:
		return "custom"
	}
}
