package config

import (
	"os"
	"strings"
)

// Env holds process-wide configuration, loaded once in main and passed down.
type Env struct {
	AppAddr string
	GinMode string
	AppEnv  string

	DatabaseDSN string

	SecretKey []byte

	AdminUsername string
	AdminPassword string

	EmailUser string
	EmailPass string
	SMTPHost  string
	SMTPPort  string

	GoogleMapsAPIKey string

	CORSAllowedOrigins []string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "development"
	}

	dsn := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dsn == "" {
		dsn = "root:@tcp(127.0.0.1:3306)/bagages?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"
	}

	secret := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secret == "" {
		secret = "dev-secret-key-change-in-production"
	}

	smtpHost := strings.TrimSpace(os.Getenv("SMTP_HOST"))
	if smtpHost == "" {
		smtpHost = "smtp.gmail.com"
	}
	smtpPort := strings.TrimSpace(os.Getenv("SMTP_PORT"))
	if smtpPort == "" {
		smtpPort = "587"
	}

	var origins []string
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:5173", "http://127.0.0.1:5173"}
	}

	return Env{
		AppAddr:            appAddr,
		GinMode:            strings.TrimSpace(os.Getenv("GIN_MODE")),
		AppEnv:             appEnv,
		DatabaseDSN:        dsn,
		SecretKey:          []byte(secret),
		AdminUsername:      strings.TrimSpace(os.Getenv("ADMIN_USERNAME")),
		AdminPassword:      os.Getenv("ADMIN_PASSWORD"),
		EmailUser:          strings.TrimSpace(os.Getenv("EMAIL_USER")),
		EmailPass:          os.Getenv("EMAIL_PASS"),
		SMTPHost:           smtpHost,
		SMTPPort:           smtpPort,
		GoogleMapsAPIKey:   strings.TrimSpace(os.Getenv("GOOGLE_MAPS_API_KEY")),
		CORSAllowedOrigins: origins,
	}
}

// IsProduction reports whether mail should really be sent.
func (e Env) IsProduction() bool {
	return e.AppEnv == "production"
}
