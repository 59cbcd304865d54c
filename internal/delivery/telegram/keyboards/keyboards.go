package keyboards

import (
	"gopkg.in/telebot.v3"
)

// BuildStartKeyboard is the /start menu.
func BuildStartKeyboard() (string, *telebot.ReplyMarkup) {
	markup := &telebot.ReplyMarkup{}
	summary := markup.Data("Dashboard summary", "summary")
	markup.Inline(markup.Row(summary))
	title := "HRMS Lite bot.\n" +
		"/summary — today's dashboard counts\n" +
		"/present <employee_id> [YYYY-MM-DD] — mark present\n" +
		"/absent <employee_id> [YYYY-MM-DD] — mark absent\n" +
		"/mark <employee_id> <Present|Absent> — pick the day from a calendar"
	return title, markup
}
