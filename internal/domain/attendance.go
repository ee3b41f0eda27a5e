package domain

import "time"

type ParticipantRole string

const (
	RoleTeacher ParticipantRole = "teacher"
	RoleStudent ParticipantRole = "student"
)

type AttendanceStatus string

const (
	// AttendanceExpected is the initial state before any join/leave/absence
	// event arrives for the participant.
	AttendanceExpected   AttendanceStatus = "expected"
	AttendancePresent    AttendanceStatus = "present"
	AttendanceLate       AttendanceStatus = "late"
	AttendanceEarlyLeave AttendanceStatus = "early_leave"
	AttendanceAbsent     AttendanceStatus = "absent"
)

type AttendanceEvent string

const (
	AttendanceEventJoin   AttendanceEvent = "join"
	AttendanceEventLeave  AttendanceEvent = "leave"
	AttendanceEventAbsent AttendanceEvent = "absent"
)

func (e AttendanceEvent) Valid() bool {
	switch e {
	case AttendanceEventJoin, AttendanceEventLeave, AttendanceEventAbsent:
		return true
	}
	return false
}

// AttendanceRecord tracks one participant's presence for one booking.
// LateMinutes is set only when Status is late.
type AttendanceRecord struct {
	BookingID       string           `json:"booking_id"`
	ParticipantID   string           `json:"participant_id"`
	Role            ParticipantRole  `json:"role"`
	Status          AttendanceStatus `json:"status"`
	JoinTime        *time.Time       `json:"join_time,omitempty"`
	LeaveTime       *time.Time       `json:"leave_time,omitempty"`
	LateMinutes     int              `json:"late_minutes,omitempty"`
	ReportedAbsence bool             `json:"reported_absence"`
	AbsenceReason   string           `json:"absence_reason,omitempty"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
