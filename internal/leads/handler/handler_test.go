package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"capyngen_lead_backend/internal/email"
	"capyngen_lead_backend/internal/leads/repository"
	"capyngen_lead_backend/internal/leads/service"
	"capyngen_lead_backend/platform/logger"
	"capyngen_lead_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type stubRepo struct {
	createCalls int
	createErr   error
}

func (s *stubRepo) Create(_ context.Context, params repository.CreateLeadParams) (repository.Lead, error) {
	s.createCalls++
	if s.createErr != nil {
		return repository.Lead{}, s.createErr
	}
	return repository.Lead{
		ID:           uuid.New(),
		FullName:     params.FullName,
		Email:        params.Email,
		Phone:        params.Phone,
		City:         params.City,
		BrandName:    params.BrandName,
		Website:      params.Website,
		BusinessType: params.BusinessType,
		Services:     params.Services,
		Budget:       params.Budget,
		BestTime:     params.BestTime,
		Notes:        params.Notes,
		CreatedAt:    time.Now(),
	}, nil
}

func (s *stubRepo) GetByID(_ context.Context, _ uuid.UUID) (repository.Lead, error) {
	return repository.Lead{}, repository.ErrNotFound
}

type stubSender struct {
	sendCalls int
	sendErr   error
}

func (s *stubSender) Send(_ context.Context, _ email.Message) (string, error) {
	s.sendCalls++
	if s.sendErr != nil {
		return "", s.sendErr
	}
	return "msg-1", nil
}

func newTestEngine(repo repository.LeadsRepository, sender email.Sender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.New(repo, sender, validator.New(), logger.New("development"))
	engine := gin.New()
	New(svc).RegisterRoutes(engine.Group("/api/lead"))
	return engine
}

func postLead(t *testing.T, engine *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/lead", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

const validBody = `{
	"fullName": "Jane Doe",
	"phone": "555-1234",
	"city": "Austin",
	"brandName": "Acme",
	"website": "No Website",
	"businessType": "Retail",
	"services": ["SEO", "Ads"],
	"budget": "$1000-2000",
	"bestTime": "Evenings"
}`

func TestSubmit_ValidPayload_Returns200Envelope(t *testing.T) {
	repo := &stubRepo{}
	sender := &stubSender{}
	engine := newTestEngine(repo, sender)

	rec := postLead(t, engine, validBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		OK      bool   `json:"ok"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !resp.OK || resp.Message != "Mail sent successfully ✅" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}

	if repo.createCalls != 1 || sender.sendCalls != 1 {
		t.Fatalf("expected one write and one send, got %d and %d", repo.createCalls, sender.sendCalls)
	}
}

func TestSubmit_EmptyServices_Returns400AndNoStoreWrite(t *testing.T) {
	repo := &stubRepo{}
	sender := &stubSender{}
	engine := newTestEngine(repo, sender)

	body := strings.Replace(validBody, `["SEO", "Ads"]`, `[]`, 1)
	rec := postLead(t, engine, body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		OK     bool `json:"ok"`
		Errors []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.OK {
		t.Fatal("expected ok=false")
	}
	found := false
	for _, fe := range resp.Errors {
		if fe.Field == "services" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an error entry referencing services, got %+v", resp.Errors)
	}

	if repo.createCalls != 0 {
		t.Fatalf("expected no store write, got %d", repo.createCalls)
	}
	if sender.sendCalls != 0 {
		t.Fatalf("expected no mail call, got %d", sender.sendCalls)
	}
}

func TestSubmit_MailFailure_Returns500AndLeadStored(t *testing.T) {
	repo := &stubRepo{}
	sender := &stubSender{sendErr: errors.New("provider unavailable")}
	engine := newTestEngine(repo, sender)

	rec := postLead(t, engine, validBody)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		OK      bool   `json:"ok"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.OK {
		t.Fatal("expected ok=false")
	}
	if resp.Message != "Failed to send email" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
	if !strings.Contains(resp.Error, "provider unavailable") {
		t.Fatalf("expected underlying provider error, got %q", resp.Error)
	}

	if repo.createCalls != 1 {
		t.Fatalf("lead must be stored before the mail attempt, got %d writes", repo.createCalls)
	}
}

func TestSubmit_PersistenceFailure_Returns500(t *testing.T) {
	repo := &stubRepo{createErr: errors.New("connection refused")}
	sender := &stubSender{}
	engine := newTestEngine(repo, sender)

	rec := postLead(t, engine, validBody)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", rec.Code, rec.Body.String())
	}
	if sender.sendCalls != 0 {
		t.Fatalf("expected no mail call after store failure, got %d", sender.sendCalls)
	}
}

func TestSubmit_MalformedJSON_Returns400(t *testing.T) {
	repo := &stubRepo{}
	engine := newTestEngine(repo, &stubSender{})

	rec := postLead(t, engine, `{"fullName": `)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if repo.createCalls != 0 {
		t.Fatalf("expected no store write, got %d", repo.createCalls)
	}
}
