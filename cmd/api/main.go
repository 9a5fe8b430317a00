package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anjiri1684/mockprep/analysis"
	config "github.com/anjiri1684/mockprep/configs"
	"github.com/anjiri1684/mockprep/database"
	"github.com/anjiri1684/mockprep/handlers"
	"github.com/anjiri1684/mockprep/jobs"
	"github.com/anjiri1684/mockprep/notifications"
	"github.com/anjiri1684/mockprep/routes"
	"github.com/anjiri1684/mockprep/services"
	"github.com/anjiri1684/mockprep/store"
	"github.com/anjiri1684/mockprep/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

func openStore(settings config.Settings) store.Store {
	if settings.DatabaseURL == "" {
		log.Println("⚠️ DATABASE_URL not set, using in-memory store with demo data")
		s, err := store.NewSeededMemoryStore(time.Now())
		if err != nil {
			log.Fatalf("🔥 Failed to seed memory store: %v", err)
		}
		return s
	}

	db := database.ConnectDB(settings.DatabaseURL)
	if err := database.Migrate(db); err != nil {
		log.Fatalf("🔥 %v", err)
	}
	if err := database.SeedAdmin(db, settings.AdminEmail, settings.AdminPassword, settings.AdminFullName); err != nil {
		log.Printf("⚠️ %v", err)
	}
	if err := database.SeedDemoData(db, time.Now()); err != nil {
		log.Printf("⚠️ %v", err)
	}
	return store.NewGormStore(db)
}

func main() {
	settings := config.Load()
	s := openStore(settings)
	mailer := notifications.NewMailer(settings.BrevoAPIKey, settings.EmailSender, settings.EmailSenderName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := websocket.NewHub()
	go hub.Run(ctx)
	runner := analysis.NewRunner(settings.AnalysisTick, hub)

	seed := time.Now().UnixNano()
	h := &handlers.Handler{
		Store:       s,
		Interviews:  services.NewInterviewService(s, mailer, rand.New(rand.NewSource(seed))),
		Assessments: services.NewAssessmentService(s),
		Trainer:     services.NewTrainerService(s, settings.TrainerLatency, rand.New(rand.NewSource(seed+1))),
		Sentiment:   services.NewSentimentAnalyzer(settings.AnalysisLatency),
		Analysis:    runner,
		Hub:         hub,
		Mailer:      mailer,
		JWTSecret:   settings.JWTSecret,
		TokenTTL:    72 * time.Hour,
	}

	if settings.CloudinaryURL != "" {
		media, err := services.NewMediaService(settings.CloudinaryURL)
		if err != nil {
			log.Printf("⚠️ Cloudinary disabled: %v", err)
		} else {
			h.Media = media
			tmpl, err := services.LoadReportTemplate(settings.ReportTemplate)
			if err != nil {
				log.Printf("⚠️ Feedback report template not loaded: %v", err)
			} else {
				h.Reports = services.NewReportService(s, tmpl, services.ChromeRenderer{}, media)
			}
		}
	} else {
		log.Println("⚠️ CLOUDINARY_URL not set, uploads and PDF reports disabled")
	}

	c := cron.New()
	if err := jobs.New(s, mailer).Schedule(c, settings.ReminderSchedule); err != nil {
		log.Fatalf("🔥 Failed to schedule jobs: %v", err)
	}
	go c.Start()

	app := fiber.New(fiber.Config{
		Prefork:           false,
		AppName:           "MockPrep",
		CaseSensitive:     true,
		StrictRouting:     true,
		EnablePrintRoutes: settings.AppEnv != "production",
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorHandler:      handlers.ErrorHandler,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Kolkata",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to MockPrep API",
		})
	})

	routes.Register(app, h)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	go func() {
		<-ctx.Done()
		log.Println("Shutting down...")
		runner.Shutdown()
		<-c.Stop().Done()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("⚠️ Shutdown: %v", err)
		}
	}()

	log.Printf("✅ Server is running on port %s", settings.Port)
	if err := app.Listen(":" + settings.Port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
