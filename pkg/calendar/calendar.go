package calendar

import (
	"strconv"
	"strings"
	"time"

	"gopkg.in/telebot.v3"
)

// CalendarController renders an inline month calendar and reports the picked
// day through OnDate. Callback data uses the cal_ prefix so a callback router
// can delegate here.
type CalendarController struct {
	Bot    *telebot.Bot
	OnDate func(time.Time, telebot.Context) error
}

func (cc *CalendarController) ShowCalendar(c telebot.Context) error {
	now := time.Now()
	return SendCalendar(c, now.Year(), int(now.Month()))
}

// SendCalendar draws the day grid for the given month with prev/next buttons.
func SendCalendar(c telebot.Context, year, month int) error {
	markup := &telebot.ReplyMarkup{}
	days := daysInMonth(year, month)
	var rows []telebot.Row
	week := telebot.Row{}
	for d := 1; d <= days; d++ {
		date := time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC)
		btn := markup.Data(strconv.Itoa(d), "cal_day", date.Format("2006-01-02"))
		week = append(week, btn)
		if len(week) == 7 {
			rows = append(rows, week)
			week = telebot.Row{}
		}
	}
	if len(week) > 0 {
		rows = append(rows, week)
	}
	prev := markup.Data("<", "cal_prev", strconv.Itoa(month)+"-"+strconv.Itoa(year))
	next := markup.Data(">", "cal_next", strconv.Itoa(month)+"-"+strconv.Itoa(year))
	rows = append(rows, telebot.Row{prev, next})
	markup.Inline(rows...)

	title := "Pick a date: " + time.Month(month).String() + " " + strconv.Itoa(year)
	if c.Callback() != nil {
		return c.Edit(title, markup)
	}
	return c.Send(title, markup)
}

// HandleCallback processes cal_day / cal_prev / cal_next callbacks.
func (cc *CalendarController) HandleCallback(c telebot.Context) error {
	if c.Callback() == nil {
		return nil
	}
	raw := strings.TrimPrefix(c.Data(), "\f")
	split := strings.SplitN(raw, "|", 2)
	if len(split) != 2 {
		return nil
	}
	key, payload := split[0], split[1]

	switch key {
	case "cal_day":
		date, err := time.Parse("2006-01-02", payload)
		if err != nil {
			return c.Send("Bad date")
		}
		if cc.OnDate != nil {
			return cc.OnDate(date, c)
		}
		return nil
	case "cal_prev", "cal_next":
		parts := strings.Split(payload, "-")
		if len(parts) != 2 {
			return nil
		}
		month, _ := strconv.Atoi(parts[0])
		year, _ := strconv.Atoi(parts[1])
		if key == "cal_prev" {
			month--
			if month < 1 {
				month = 12
				year--
			}
		} else {
			month++
			if month > 12 {
				month = 1
				year++
			}
		}
		return SendCalendar(c, year, month)
	}
	return nil
}

func daysInMonth(year, month int) int {
	t := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return t.Day()
}
