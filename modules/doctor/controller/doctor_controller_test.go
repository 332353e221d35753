package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clinic-appointment-api/core/errors"
	"clinic-appointment-api/modules/doctor/dto"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type stubDoctorService struct {
	slots    []string
	slotsErr *errors.AppError
	created  *dto.DoctorResponse
	deleted  *errors.AppError
}

func (s *stubDoctorService) Create(_ context.Context, _ *dto.CreateDoctorRequest) (*dto.DoctorResponse, *errors.AppError) {
	if s.created == nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "All fields are required", nil)
	}
	return s.created, nil
}

func (s *stubDoctorService) GetByID(_ context.Context, _ uuid.UUID) (*dto.DoctorResponse, *errors.AppError) {
	return nil, errors.NewAppError(errors.ErrNotFound, "Doctor not found", nil)
}

func (s *stubDoctorService) List(_ context.Context) ([]dto.DoctorResponse, *errors.AppError) {
	return []dto.DoctorResponse{}, nil
}

func (s *stubDoctorService) Delete(_ context.Context, _ uuid.UUID) *errors.AppError {
	return s.deleted
}

func (s *stubDoctorService) GetAvailableSlots(_ context.Context, _ uuid.UUID, date string) ([]string, *errors.AppError) {
	if s.slotsErr != nil {
		return nil, s.slotsErr
	}
	if date == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Date is required", nil)
	}
	return s.slots, nil
}

func request(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGetSlotsResponseShape(t *testing.T) {
	ctrl := NewDoctorController(&stubDoctorService{slots: []string{"09:00", "09:30"}})
	ctx, rec := request(t, http.MethodGet, "/api/v1/doctors/x/slots?date=2026-03-10", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues(uuid.NewString())

	if err := ctrl.GetSlots(ctx); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	// Slots answer with availableSlots at the top level, not under data.
	var body struct {
		Success        bool     `json:"success"`
		AvailableSlots []string `json:"availableSlots"`
		Data           any      `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success {
		t.Error("success = false")
	}
	if len(body.AvailableSlots) != 2 || body.AvailableSlots[0] != "09:00" {
		t.Errorf("availableSlots = %v", body.AvailableSlots)
	}
	if body.Data != nil {
		t.Errorf("unexpected data field: %v", body.Data)
	}
}

func TestGetSlotsMissingDate(t *testing.T) {
	ctrl := NewDoctorController(&stubDoctorService{})
	ctx, rec := request(t, http.MethodGet, "/api/v1/doctors/x/slots", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues(uuid.NewString())

	if err := ctrl.GetSlots(ctx); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetSlotsInvalidDoctorID(t *testing.T) {
	ctrl := NewDoctorController(&stubDoctorService{})
	ctx, rec := request(t, http.MethodGet, "/api/v1/doctors/abc/slots?date=2026-03-10", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("abc")

	if err := ctrl.GetSlots(ctx); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetDoctorNotFound(t *testing.T) {
	ctrl := NewDoctorController(&stubDoctorService{})
	ctx, rec := request(t, http.MethodGet, "/api/v1/doctors/x", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues(uuid.NewString())

	if err := ctrl.Get(ctx); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Success || body.Message != "Doctor not found" {
		t.Errorf("body = %+v", body)
	}
}

func TestCreateDoctorResponses(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		ctrl := NewDoctorController(&stubDoctorService{created: &dto.DoctorResponse{ID: uuid.NewString(), Name: "Dr. A"}})
		ctx, rec := request(t, http.MethodPost, "/api/v1/doctors", `{"name":"Dr. A","specialization":"GP","workingHours":{"start":"09:00","end":"17:00"}}`)

		if err := ctrl.Create(ctx); err != nil {
			t.Fatalf("handler: %v", err)
		}
		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201", rec.Code)
		}
	})

	t.Run("validation failure", func(t *testing.T) {
		ctrl := NewDoctorController(&stubDoctorService{})
		ctx, rec := request(t, http.MethodPost, "/api/v1/doctors", `{"name":"Dr. A"}`)

		if err := ctrl.Create(ctx); err != nil {
			t.Fatalf("handler: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}

func TestDeleteDoctorMessage(t *testing.T) {
	ctrl := NewDoctorController(&stubDoctorService{})
	ctx, rec := request(t, http.MethodDelete, "/api/v1/doctors/x", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues(uuid.NewString())

	if err := ctrl.Delete(ctx); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || body.Message != "Doctor deleted successfully" {
		t.Errorf("body = %+v", body)
	}
}
