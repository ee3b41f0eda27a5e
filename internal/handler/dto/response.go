package dto

import (
	"time"

	"github.com/ostrv1/LessonDesk/internal/domain"
	"github.com/shopspring/decimal"
)

type QuoteResponse struct {
	HourlyRate       string `json:"hourly_rate"`
	LessonType       string `json:"lesson_type"`
	DurationMinutes  int    `json:"duration_minutes"`
	PackageQuantity  int    `json:"package_quantity"`
	PerLessonPrice   string `json:"per_lesson_price"`
	PackageDiscount  string `json:"package_discount"`
	Subtotal         string `json:"subtotal"`
	TaxAmount        string `json:"tax_amount"`
	CommissionAmount string `json:"commission_amount"`
	Total            string `json:"total"`
	TeacherEarnings  string `json:"teacher_earnings"`
}

type BookingResponse struct {
	ID               string `json:"id"`
	StudentID        string `json:"student_id"`
	TeacherID        string `json:"teacher_id"`
	LessonType       string `json:"lesson_type"`
	DurationMinutes  int    `json:"duration_minutes"`
	ScheduledStart   string `json:"scheduled_start"`
	ScheduledEnd     string `json:"scheduled_end"`
	Status           string `json:"status"`
	RescheduleCount  int    `json:"reschedule_count"`
	BasePrice        string `json:"base_price"`
	TaxAmount        string `json:"tax_amount"`
	CommissionAmount string `json:"commission_amount"`
	TotalPrice       string `json:"total_price"`
	TeacherEarnings  string `json:"teacher_earnings"`
	Notes            string `json:"notes,omitempty"`
	CreatedAt        string `json:"created_at"`
}

type CancellationResponse struct {
	Booking      BookingResponse `json:"booking"`
	RefundAmount string          `json:"refund_amount"`
}

type AttendanceResponse struct {
	BookingID       string `json:"booking_id"`
	ParticipantID   string `json:"participant_id"`
	Role            string `json:"role"`
	Status          string `json:"status"`
	JoinTime        string `json:"join_time,omitempty"`
	LeaveTime       string `json:"leave_time,omitempty"`
	LateMinutes     int    `json:"late_minutes,omitempty"`
	ReportedAbsence bool   `json:"reported_absence"`
	AbsenceReason   string `json:"absence_reason,omitempty"`
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

func ToQuoteResponse(q domain.PricingQuote) QuoteResponse {
	return QuoteResponse{
		HourlyRate:       q.HourlyRate.StringFixed(2),
		LessonType:       string(q.LessonType),
		DurationMinutes:  q.DurationMinutes,
		PackageQuantity:  q.PackageQuantity,
		PerLessonPrice:   q.PerLessonPrice.StringFixed(2),
		PackageDiscount:  q.PackageDiscount.String(),
		Subtotal:         q.Subtotal.StringFixed(2),
		TaxAmount:        q.TaxAmount.StringFixed(2),
		CommissionAmount: q.CommissionAmount.StringFixed(2),
		Total:            q.Total.StringFixed(2),
		TeacherEarnings:  q.TeacherEarnings.StringFixed(2),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:               b.ID,
		StudentID:        b.StudentID,
		TeacherID:        b.TeacherID,
		LessonType:       string(b.LessonType),
		DurationMinutes:  b.DurationMinutes,
		ScheduledStart:   b.ScheduledStart.Format(time.RFC3339),
		ScheduledEnd:     b.ScheduledEnd.Format(time.RFC3339),
		Status:           string(b.Status),
		RescheduleCount:  b.RescheduleCount,
		BasePrice:        b.BasePrice.StringFixed(2),
		TaxAmount:        b.TaxAmount.StringFixed(2),
		CommissionAmount: b.CommissionAmount.StringFixed(2),
		TotalPrice:       b.TotalPrice.StringFixed(2),
		TeacherEarnings:  b.TeacherEarnings.StringFixed(2),
		Notes:            b.Notes,
		CreatedAt:        b.CreatedAt.Format(time.RFC3339),
	}
}

func ToCancellationResponse(b *domain.Booking, refund decimal.Decimal) CancellationResponse {
	return CancellationResponse{
		Booking:      ToBookingResponse(b),
		RefundAmount: refund.StringFixed(2),
	}
}

func ToAttendanceResponse(rec *domain.AttendanceRecord) AttendanceResponse {
	resp := AttendanceResponse{
		BookingID:       rec.BookingID,
		ParticipantID:   rec.ParticipantID,
		Role:            string(rec.Role),
		Status:          string(rec.Status),
		LateMinutes:     rec.LateMinutes,
		ReportedAbsence: rec.ReportedAbsence,
		AbsenceReason:   rec.AbsenceReason,
	}
	if rec.JoinTime != nil {
		resp.JoinTime = rec.JoinTime.Format(time.RFC3339)
	}
	if rec.LeaveTime != nil {
		resp.LeaveTime = rec.LeaveTime.Format(time.RFC3339)
	}
	return resp
}
