package flows

import (
	"fmt"

	"hrms-lite/internal/app/service"
	"hrms-lite/internal/delivery/telegram/middleware"
	"hrms-lite/internal/delivery/telegram/router"
	"hrms-lite/internal/domain"

	"gopkg.in/telebot.v3"
)

func RegisterDashboard(r *router.CallbackRouter, dashboard *service.DashboardService, async *service.AsyncService) {
	r.Register("summary", func(c telebot.Context, payload string) error {
		res, err := async.SubmitAsync(func() (any, error) {
			return dashboard.Summary()
		})
		if err != nil {
			return middleware.EditOrSend(c, "Failed to load summary: "+err.Error(), nil)
		}
		return middleware.EditOrSend(c, FormatSummary(res.(domain.DashboardSummary)), nil)
	})
}

func FormatSummary(s domain.DashboardSummary) string {
	return fmt.Sprintf("Employees: %d\nPresent today: %d\nAbsent today: %d",
		s.TotalEmployees, s.PresentToday, s.AbsentToday)
}
