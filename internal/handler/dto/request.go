package dto

type QuoteRequest struct {
	HourlyRate      string `json:"hourly_rate" binding:"required"`
	LessonType      string `json:"lesson_type" binding:"required,oneof=individual group trial"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,gt=0"`
	PackageQuantity int    `json:"package_quantity"`
}

// CreateBookingRequest carries the quote inputs rather than a client-built
// quote: the server re-prices so amounts can't be tampered with.
type CreateBookingRequest struct {
	StudentID       string `json:"student_id" binding:"required,uuid"`
	TeacherID       string `json:"teacher_id" binding:"required,uuid"`
	HourlyRate      string `json:"hourly_rate" binding:"required"`
	LessonType      string `json:"lesson_type" binding:"required,oneof=individual group trial"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,gt=0"`
	PackageQuantity int    `json:"package_quantity"`
	ScheduledStart  string `json:"scheduled_start" binding:"required"`
	Notes           string `json:"notes"`
}

type ConfirmPaymentRequest struct {
	PaymentRef string `json:"payment_ref"`
}

type RescheduleRequest struct {
	NewStart string `json:"new_start" binding:"required"`
	Reason   string `json:"reason"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

type AttendanceRequest struct {
	ParticipantID string `json:"participant_id" binding:"required,uuid"`
	Event         string `json:"event" binding:"required,oneof=join leave absent"`
	Reason        string `json:"reason"`
}
