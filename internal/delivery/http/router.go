package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func NewRouter(h *Handler, origins []string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "HRMS Lite API",
	})

	corsCfg := cors.Config{
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}
	if len(origins) > 0 {
		corsCfg.AllowOrigins = strings.Join(origins, ", ")
		corsCfg.AllowCredentials = true
	}
	app.Use(cors.New(corsCfg))

	api := app.Group("/api")

	api.Post("/employees", h.CreateEmployee)
	api.Get("/employees", h.ListEmployees)
	api.Delete("/employees/:employee_id", h.DeleteEmployee)

	api.Post("/attendance", h.UpsertAttendance)
	api.Get("/attendance", h.ListAttendance)
	api.Put("/attendance/:id", h.UpdateAttendance)

	api.Get("/dashboard/summary", h.DashboardSummary)

	return app
}
