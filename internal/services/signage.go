package services

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"roomdesk-backend-go/internal/models"
	"roomdesk-backend-go/internal/store"
)

// SchedulePhase tags where a booking sits relative to the current time:
// upcoming, in_progress or done.
type SchedulePhase string

const (
	PhaseUpcoming   SchedulePhase = "upcoming"
	PhaseInProgress SchedulePhase = "in_progress"
	PhaseDone       SchedulePhase = "done"
)

func PhaseAt(now, start, end time.Time) SchedulePhase {
	switch {
	case !end.After(now):
		return PhaseDone
	case !start.After(now):
		return PhaseInProgress
	default:
		return PhaseUpcoming
	}
}

type SignageBooking struct {
	models.BookingWithRoom
	Phase SchedulePhase `json:"phase"`
}

// SignageFrame is the payload lobby displays render: the approved bookings in
// the active window, the active ad rotation and the running text.
type SignageFrame struct {
	GeneratedAt time.Time        `json:"generatedAt"`
	Bookings    []SignageBooking `json:"bookings"`
	Ads         []models.Ad      `json:"ads"`
	RunningText string           `json:"runningText"`
}

func BuildSignageFrame(st store.Store, now time.Time, window time.Duration) (SignageFrame, error) {
	bookings, err := st.ListActiveBookings(now, window)
	if err != nil {
		return SignageFrame{}, err
	}
	ads, err := st.ListActiveAds()
	if err != nil {
		return SignageFrame{}, err
	}
	text, err := st.GetSetting(models.SettingKeyRunningText)
	if err != nil {
		return SignageFrame{}, err
	}
	frame := SignageFrame{
		GeneratedAt: now,
		Bookings:    make([]SignageBooking, 0, len(bookings)),
		Ads:         ads,
		RunningText: text,
	}
	for _, booking := range bookings {
		frame.Bookings = append(frame.Bookings, SignageBooking{
			BookingWithRoom: booking,
			Phase:           PhaseAt(now, booking.StartTime, booking.EndTime),
		})
	}
	return frame, nil
}

// SignageHub fans frames out to connected display sockets. Add and Remove are
// called from handler goroutines, so the client set is mutex-guarded.
type SignageHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	ch      chan SignageFrame
}

func NewSignageHub() *SignageHub {
	return &SignageHub{
		clients: map[*websocket.Conn]bool{},
		ch:      make(chan SignageFrame, 16),
	}
}

func (h *SignageHub) Run(ctx context.Context) {
	for {
		select {
		case frame := <-h.ch:
			h.mu.Lock()
			for conn := range h.clients {
				_ = conn.WriteJSON(frame)
			}
			h.mu.Unlock()
		case <-ctx.Done():
			return
		}
	}
}

func (h *SignageHub) Broadcast(frame SignageFrame) {
	select {
	case h.ch <- frame:
	default:
	}
}

func (h *SignageHub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
}

func (h *SignageHub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}
