package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ostrv1/LessonDesk/internal/domain"
	"github.com/ostrv1/LessonDesk/internal/handler/dto"
	hmocks "github.com/ostrv1/LessonDesk/internal/handler/mocks"
	"github.com/ostrv1/LessonDesk/internal/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockBookingSvc, *hmocks.MockAttendanceSvc, http.Handler) {
	t.Helper()
	bookingSvc := hmocks.NewMockBookingSvc(t)
	attendanceSvc := hmocks.NewMockAttendanceSvc(t)

	h := NewHandler(pricing.NewCalculator(pricing.DefaultConfig()), bookingSvc, attendanceSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/quotes", h.QuotePrice)
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/payment", h.ConfirmPayment)
		api.POST("/bookings/:id/reschedule", h.RescheduleBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/bookings/:id/no-show", h.ResolveTeacherNoShow)
		api.POST("/bookings/:id/complete", h.CompleteBooking)
		api.POST("/bookings/:id/attendance", h.RecordAttendance)
		api.GET("/bookings/:id/attendance", h.ListAttendance)
		api.GET("/students/:id/bookings", h.ListStudentBookings)
		api.GET("/teachers/:id/bookings", h.ListTeacherBookings)
	}

	return bookingSvc, attendanceSvc, r
}

func sampleBooking() *domain.Booking {
	start := time.Now().UTC().Add(96 * time.Hour)
	return &domain.Booking{
		ID:               uuid.New().String(),
		StudentID:        uuid.New().String(),
		TeacherID:        uuid.New().String(),
		LessonType:       domain.LessonTypeIndividual,
		DurationMinutes:  60,
		ScheduledStart:   start,
		ScheduledEnd:     start.Add(time.Hour),
		Status:           domain.BookingStatusPending,
		BasePrice:        decimal.RequireFromString("30.00"),
		TaxAmount:        decimal.RequireFromString("3.00"),
		CommissionAmount: decimal.RequireFromString("6.00"),
		TotalPrice:       decimal.RequireFromString("33.00"),
		TeacherEarnings:  decimal.RequireFromString("24.00"),
		Version:          1,
		CreatedAt:        time.Now().UTC(),
	}
}

// --- Quotes ---

func TestHandler_QuotePrice_Success(t *testing.T) {
	_, _, r := setupRouter(t)

	body, _ := json.Marshal(dto.QuoteRequest{
		HourlyRate:      "30",
		LessonType:      "individual",
		DurationMinutes: 60,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quotes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.QuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "30.00", resp.Subtotal)
	assert.Equal(t, "3.00", resp.TaxAmount)
	assert.Equal(t, "33.00", resp.Total)
	assert.Equal(t, "24.00", resp.TeacherEarnings)
}

func TestHandler_QuotePrice_InvalidRate(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"hourly_rate":"abc","lesson_type":"individual","duration_minutes":60}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quotes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_QuotePrice_UnknownLessonType(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"hourly_rate":"30","lesson_type":"workshop","duration_minutes":60}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quotes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_QuotePrice_BadDuration(t *testing.T) {
	_, _, r := setupRouter(t)

	body, _ := json.Marshal(dto.QuoteRequest{
		HourlyRate:      "30",
		LessonType:      "individual",
		DurationMinutes: 50,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quotes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	booking := sampleBooking()
	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(booking, nil)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		StudentID:       booking.StudentID,
		TeacherID:       booking.TeacherID,
		HourlyRate:      "30",
		LessonType:      "individual",
		DurationMinutes: 60,
		ScheduledStart:  booking.ScheduledStart.Format(time.RFC3339),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, booking.ID, resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "33.00", resp.TotalPrice)
}

func TestHandler_CreateBooking_InvalidStart(t *testing.T) {
	_, _, r := setupRouter(t)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		StudentID:       uuid.New().String(),
		TeacherID:       uuid.New().String(),
		HourlyRate:      "30",
		LessonType:      "individual",
		DurationMinutes: 60,
		ScheduledStart:  "tomorrow",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_TeacherUnavailable(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrTeacherUnavailable)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		StudentID:       uuid.New().String(),
		TeacherID:       uuid.New().String(),
		HourlyRate:      "30",
		LessonType:      "individual",
		DurationMinutes: 60,
		ScheduledStart:  time.Now().UTC().Add(96 * time.Hour).Format(time.RFC3339),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "teacher_unavailable", resp.Reason)
}

func TestHandler_ConfirmPayment_Success(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	booking := sampleBooking()
	booking.Status = domain.BookingStatusConfirmed
	bookingSvc.EXPECT().ConfirmPayment(mock.Anything, booking.ID, "pay_123").Return(booking, nil)

	body := []byte(`{"payment_ref":"pay_123"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+booking.ID+"/payment", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Status)
}

func TestHandler_ConfirmPayment_MissingRef(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().ConfirmPayment(mock.Anything, id, "").Return(nil, domain.ErrPaymentRequired)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+id+"/payment", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
}

func TestHandler_ConfirmPayment_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/not-a-uuid/payment", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RescheduleBooking_Denied(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().
		Reschedule(mock.Anything, id, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &domain.RescheduleDeniedError{Reason: domain.RescheduleInsufficientNotice})

	body, _ := json.Marshal(dto.RescheduleRequest{
		NewStart: time.Now().UTC().Add(120 * time.Hour).Format(time.RFC3339),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+id+"/reschedule", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "insufficient_notice", resp.Reason)
}

func TestHandler_RescheduleBooking_Success(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	booking := sampleBooking()
	booking.Status = domain.BookingStatusConfirmed
	booking.RescheduleCount = 1
	bookingSvc.EXPECT().
		Reschedule(mock.Anything, booking.ID, mock.Anything, "conflict", mock.Anything).
		Return(booking, nil)

	body, _ := json.Marshal(dto.RescheduleRequest{
		NewStart: booking.ScheduledStart.Format(time.RFC3339),
		Reason:   "conflict",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+booking.ID+"/reschedule", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.RescheduleCount)
}

func TestHandler_CancelBooking_Success(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	booking := sampleBooking()
	booking.Status = domain.BookingStatusCancelled
	refund := decimal.RequireFromString("33.00")
	bookingSvc.EXPECT().Cancel(mock.Anything, booking.ID, "change of plans", mock.Anything).Return(booking, refund, nil)

	body, _ := json.Marshal(dto.CancelRequest{Reason: "change of plans"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+booking.ID+"/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CancellationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Booking.Status)
	assert.Equal(t, "33.00", resp.RefundAmount)
}

func TestHandler_CancelBooking_Conflict(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Cancel(mock.Anything, id, "", mock.Anything).Return(nil, decimal.Zero, domain.ErrConflict)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+id+"/cancel", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "conflict_retry", resp.Reason)
}

func TestHandler_ResolveTeacherNoShow_Success(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	booking := sampleBooking()
	booking.Status = domain.BookingStatusCancelled
	refund := decimal.RequireFromString("33.00")
	bookingSvc.EXPECT().CancelTeacherNoShow(mock.Anything, booking.ID, mock.Anything).Return(booking, refund, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+booking.ID+"/no-show", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CancellationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "33.00", resp.RefundAmount)
}

func TestHandler_CompleteBooking_TooEarly(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().
		MarkComplete(mock.Anything, id, mock.Anything).
		Return(nil, fmt.Errorf("scheduled end not reached: %w", domain.ErrTooEarly))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+id+"/complete", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "too_early", resp.Reason)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Get(mock.Anything, id).Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListStudentBookings_Success(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	booking := sampleBooking()
	bookingSvc.EXPECT().ListByStudent(mock.Anything, booking.StudentID).Return([]*domain.Booking{booking}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/students/"+booking.StudentID+"/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, booking.ID, resp[0].ID)
}

// --- Attendance ---

func TestHandler_RecordAttendance_Join(t *testing.T) {
	_, attendanceSvc, r := setupRouter(t)

	bookingID := uuid.New().String()
	participantID := uuid.New().String()
	join := time.Now().UTC()
	rec := &domain.AttendanceRecord{
		BookingID:     bookingID,
		ParticipantID: participantID,
		Role:          domain.RoleStudent,
		Status:        domain.AttendancePresent,
		JoinTime:      &join,
	}

	attendanceSvc.EXPECT().MarkJoin(mock.Anything, bookingID, participantID, mock.Anything).Return(rec, nil)

	body, _ := json.Marshal(dto.AttendanceRequest{
		ParticipantID: participantID,
		Event:         "join",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/attendance", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AttendanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "present", resp.Status)
}

func TestHandler_RecordAttendance_Absence(t *testing.T) {
	_, attendanceSvc, r := setupRouter(t)

	bookingID := uuid.New().String()
	participantID := uuid.New().String()
	rec := &domain.AttendanceRecord{
		BookingID:       bookingID,
		ParticipantID:   participantID,
		Role:            domain.RoleTeacher,
		Status:          domain.AttendanceAbsent,
		ReportedAbsence: true,
		AbsenceReason:   "sick",
	}

	attendanceSvc.EXPECT().ReportAbsence(mock.Anything, bookingID, participantID, "sick", mock.Anything).Return(rec, nil)

	body, _ := json.Marshal(dto.AttendanceRequest{
		ParticipantID: participantID,
		Event:         "absent",
		Reason:        "sick",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/attendance", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AttendanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "absent", resp.Status)
	assert.True(t, resp.ReportedAbsence)
}

func TestHandler_RecordAttendance_UnknownEvent(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"participant_id":"` + uuid.New().String() + `","event":"skip"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+uuid.New().String()+"/attendance", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListAttendance_Success(t *testing.T) {
	_, attendanceSvc, r := setupRouter(t)

	bookingID := uuid.New().String()
	records := []*domain.AttendanceRecord{
		{BookingID: bookingID, Role: domain.RoleTeacher, Status: domain.AttendancePresent},
		{BookingID: bookingID, Role: domain.RoleStudent, Status: domain.AttendanceLate, LateMinutes: 20},
	}

	attendanceSvc.EXPECT().ListByBooking(mock.Anything, bookingID).Return(records, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+bookingID+"/attendance", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.AttendanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, 20, resp[1].LateMinutes)
}
