package config

import (
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var loadEnvOnce sync.Once

func Config(key string) string {
	loadEnvOnce.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("Warning: .env file not found, reading from system environment variables")
		}
	})

	return os.Getenv(key)
}

type Settings struct {
	Port             string
	AppEnv           string
	JWTSecret        string
	DatabaseURL      string
	AnalysisTick     time.Duration
	TrainerLatency   time.Duration
	AnalysisLatency  time.Duration
	CloudinaryURL    string
	BrevoAPIKey      string
	EmailSender      string
	EmailSenderName  string
	ReminderSchedule string
	AdminEmail       string
	AdminPassword    string
	AdminFullName    string
	ReportTemplate   string
}

const devJWTSecret = "mockprep-dev-secret"

func Load() Settings {
	s := Settings{
		Port:             withDefault(Config("PORT"), "8080"),
		AppEnv:           withDefault(Config("APP_ENV"), "development"),
		JWTSecret:        Config("JWT_SECRET"),
		DatabaseURL:      Config("DATABASE_URL"),
		AnalysisTick:     durationOr(Config("ANALYSIS_TICK"), 3*time.Second),
		TrainerLatency:   durationOr(Config("TRAINER_LATENCY"), time.Second),
		AnalysisLatency:  durationOr(Config("ANALYSIS_LATENCY"), 2*time.Second),
		CloudinaryURL:    Config("CLOUDINARY_URL"),
		BrevoAPIKey:      Config("BREVO_API_KEY"),
		EmailSender:      Config("EMAIL_SENDER"),
		EmailSenderName:  Config("EMAIL_SENDER_NAME"),
		ReminderSchedule: withDefault(Config("REMINDER_SCHEDULE"), "*/5 * * * *"),
		AdminEmail:       Config("ADMIN_EMAIL"),
		AdminPassword:    Config("ADMIN_PASSWORD"),
		AdminFullName:    withDefault(Config("ADMIN_FULL_NAME"), "MockPrep Admin"),
		ReportTemplate:   withDefault(Config("REPORT_TEMPLATE"), "templates/feedback_report.html"),
	}

	if s.JWTSecret == "" {
		if s.AppEnv == "production" {
			log.Fatal("🔥 JWT_SECRET must be set in production")
		}
		log.Println("⚠️ JWT_SECRET not set, using development secret")
		s.JWTSecret = devJWTSecret
	}
	return s
}

func withDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func durationOr(v string, def time.Duration) time.Duration {
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("⚠️ Invalid duration %q, using %s", v, def)
		return def
	}
	return d
}
