package models

import "time"

// BookingStatus is the booking lifecycle tag. Unknown values are rejected at
// the API boundary; the store only ever sees the three known states.
type BookingStatus string

const (
	StatusPending  BookingStatus = "pending"
	StatusApproved BookingStatus = "approved"
	StatusRejected BookingStatus = "rejected"
)

func ParseBookingStatus(raw string) (BookingStatus, bool) {
	switch BookingStatus(raw) {
	case StatusPending, StatusApproved, StatusRejected:
		return BookingStatus(raw), true
	}
	return "", false
}

type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
	RoleViewer     Role = "viewer"
)

func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleSuperAdmin, RoleAdmin, RoleUser, RoleViewer:
		return Role(raw), true
	}
	return "", false
}

type AdType string

const (
	AdImage AdType = "image"
	AdVideo AdType = "video"
)

func ParseAdType(raw string) (AdType, bool) {
	switch AdType(raw) {
	case AdImage, AdVideo:
		return AdType(raw), true
	}
	return "", false
}

type Room struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Capacity    int       `db:"capacity" json:"capacity"`
	Description string    `db:"description" json:"description"`
	ImageURL    string    `db:"image_url" json:"imageUrl"`
	Equipment   string    `db:"equipment" json:"equipment"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

type Booking struct {
	ID          int64         `db:"id" json:"id"`
	RoomID      int64         `db:"room_id" json:"roomId"`
	UserName    string        `db:"user_name" json:"userName"`
	Title       string        `db:"title" json:"title"`
	StartTime   time.Time     `db:"start_time" json:"startTime"`
	EndTime     time.Time     `db:"end_time" json:"endTime"`
	Attendees   int           `db:"attendees" json:"attendees"`
	Applicant   string        `db:"applicant" json:"applicant"`
	Contact     string        `db:"contact" json:"contact"`
	Description string        `db:"description" json:"description"`
	Status      BookingStatus `db:"status" json:"status"`
	CreatedAt   time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updatedAt"`
}

// BookingWithRoom is a booking row joined with its room's name, the shape the
// list endpoints and reports return.
type BookingWithRoom struct {
	Booking
	RoomName string `db:"room_name" json:"roomName"`
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
// Half-open semantics: intervals that merely touch do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

type Ad struct {
	ID              int64     `db:"id" json:"id"`
	Type            AdType    `db:"type" json:"type"`
	URL             string    `db:"url" json:"url"`
	DurationSeconds int       `db:"duration_seconds" json:"durationSeconds"`
	Active          bool      `db:"active" json:"active"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
}

type Setting struct {
	Key   string `db:"key" json:"key"`
	Value string `db:"value" json:"value"`
}

// SettingKeyRunningText is the fixed key behind /api/settings/running-text.
const SettingKeyRunningText = "running_text"

type ReportTotals struct {
	Today int `json:"today"`
	Week  int `json:"week"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

type RoomCount struct {
	RoomID   int64  `db:"room_id" json:"roomId"`
	RoomName string `db:"room_name" json:"roomName"`
	Count    int    `db:"count" json:"count"`
}

type StatusCount struct {
	Status BookingStatus `db:"status" json:"status"`
	Count  int           `db:"count" json:"count"`
}

type Report struct {
	Totals   ReportTotals      `json:"totals"`
	ByRoom   []RoomCount       `json:"byRoom"`
	ByStatus []StatusCount     `json:"byStatus"`
	History  []BookingWithRoom `json:"history"`
}

type ServerMetricSample struct {
	ID                string    `db:"id"`
	CapturedAt        time.Time `db:"captured_at"`
	ProcessRSSBytes   int64     `db:"process_rss_bytes"`
	SystemMemoryTotal int64     `db:"system_memory_total_bytes"`
	SystemMemoryUsed  int64     `db:"system_memory_used_bytes"`
	DiskTotalBytes    int64     `db:"disk_total_bytes"`
	DiskUsedBytes     int64     `db:"disk_used_bytes"`
	ProcessCpuLoad    float64   `db:"process_cpu_load"`
	SystemCpuLoad     float64   `db:"system_cpu_load"`
}
