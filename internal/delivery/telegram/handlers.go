package telegram

import (
	"errors"
	"strings"
	"time"

	"hrms-lite/internal/app/service"
	"hrms-lite/internal/delivery/telegram/flows"
	"hrms-lite/internal/delivery/telegram/keyboards"
	"hrms-lite/internal/delivery/telegram/middleware"
	"hrms-lite/internal/delivery/telegram/router"
	"hrms-lite/internal/domain"
	"hrms-lite/pkg/calendar"

	"gopkg.in/telebot.v3"
)

type Handler struct {
	Bot        *telebot.Bot
	Attendance *service.AttendanceService
	Dashboard  *service.DashboardService
	Async      *service.AsyncService
	Calendar   *calendar.CalendarController
}

func (h *Handler) Register() {
	r := router.New()
	flows.RegisterDashboard(r, h.Dashboard, h.Async)
	r.CalDelegate = h.Calendar.HandleCallback
	r.Attach(h.Bot)

	h.Bot.Handle("/start", h.handleStart)
	h.Bot.Handle("/summary", h.handleSummary)
	h.Bot.Handle("/present", func(c telebot.Context) error {
		return h.handleMark(c, domain.StatusPresent)
	})
	h.Bot.Handle("/absent", func(c telebot.Context) error {
		return h.handleMark(c, domain.StatusAbsent)
	})
	h.Bot.Handle("/mark", h.handleMarkCalendar)
}

func (h *Handler) handleStart(c telebot.Context) error {
	title, markup := keyboards.BuildStartKeyboard()
	return c.Send(title, markup)
}

func (h *Handler) handleSummary(c telebot.Context) error {
	res, err := h.Async.SubmitAsync(func() (any, error) {
		return h.Dashboard.Summary()
	})
	if err != nil {
		return c.Send("Failed to load summary: " + err.Error())
	}
	return c.Send(flows.FormatSummary(res.(domain.DashboardSummary)))
}

// handleMark serves /present and /absent: employee id plus an optional date,
// today when omitted.
func (h *Handler) handleMark(c telebot.Context, status domain.AttendanceStatus) error {
	args := c.Args()
	if len(args) < 1 {
		return c.Send("Usage: /" + strings.ToLower(string(status)) + " <employee_id> [YYYY-MM-DD]")
	}
	employeeID := args[0]
	date := time.Now()
	if len(args) > 1 {
		parsed, err := time.Parse("2006-01-02", args[1])
		if err != nil {
			return c.Send("Bad date, expected YYYY-MM-DD")
		}
		date = parsed
	}
	return h.mark(c, employeeID, date, status, false)
}

// handleMarkCalendar serves /mark: the day comes from the inline calendar.
func (h *Handler) handleMarkCalendar(c telebot.Context) error {
	args := c.Args()
	if len(args) < 2 {
		return c.Send("Usage: /mark <employee_id> <Present|Absent>")
	}
	employeeID := args[0]
	status := domain.AttendanceStatus(args[1])
	if !status.Valid() {
		return c.Send("Status must be Present or Absent")
	}
	h.Calendar.OnDate = func(date time.Time, c telebot.Context) error {
		return h.mark(c, employeeID, date, status, true)
	}
	return h.Calendar.ShowCalendar(c)
}

func (h *Handler) mark(c telebot.Context, employeeID string, date time.Time, status domain.AttendanceStatus, edit bool) error {
	res, err := h.Async.SubmitAsync(func() (any, error) {
		return h.Attendance.Mark(employeeID, date, status)
	})
	var text string
	switch {
	case errors.Is(err, domain.ErrEmployeeNotFound):
		text = "Unknown employee: " + employeeID
	case err != nil:
		text = "Failed to record attendance: " + err.Error()
	default:
		rec := res.(domain.AttendanceRecord)
		text = rec.FullName + " marked " + string(rec.Status) + " for " + rec.Date.Format("2006-01-02")
	}
	if edit {
		return middleware.EditOrSend(c, text, nil)
	}
	return c.Send(text)
}
