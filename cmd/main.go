package main

import (
	"database/sql"
	"log"
	"time"

	"hrms-lite/config"
	"hrms-lite/internal/app/service"
	httpdelivery "hrms-lite/internal/delivery/http"
	"hrms-lite/internal/delivery/telegram"
	"hrms-lite/internal/repository/sqlite"
	"hrms-lite/pkg/calendar"
	"hrms-lite/pkg/workerpool"

	"gopkg.in/telebot.v3"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	log.Println("Starting HRMS Lite API...")

	cfg := config.LoadConfig()

	db, err := sql.Open("sqlite3", cfg.DatabaseURL+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := sqlite.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	employeeRepo := sqlite.NewEmployeeRepo(db)
	attendanceRepo := sqlite.NewAttendanceRepo(db)

	employees := service.NewEmployeeService(employeeRepo)
	attendance := service.NewAttendanceService(attendanceRepo, employeeRepo)
	dashboard := service.NewDashboardService(employeeRepo, attendanceRepo)

	if cfg.TelegramToken != "" {
		pool := workerpool.NewWorkerPool(4, 32)
		defer pool.Close()

		bot, err := telebot.NewBot(telebot.Settings{
			Token:  cfg.TelegramToken,
			Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
		})
		if err != nil {
			log.Fatalf("Failed to start bot: %v", err)
		}
		handler := &telegram.Handler{
			Bot:        bot,
			Attendance: attendance,
			Dashboard:  dashboard,
			Async:      service.NewAsyncService(pool),
			Calendar:   &calendar.CalendarController{Bot: bot},
		}
		handler.Register()
		go bot.Start()
		log.Println("Telegram bot started")
	}

	h := httpdelivery.NewHandler(employees, attendance, dashboard)
	app := httpdelivery.NewRouter(h, cfg.CORSOrigins)

	log.Printf("Listening on %s", cfg.HTTPAddr)
	if err := app.Listen(cfg.HTTPAddr); err != nil {
		log.Fatalf("HTTP server stopped: %v", err)
	}
}
