package config

import "os"

// Config holds environment-driven configuration.
type Config struct {
	Addr          string
	DatabaseURL   string
	JWTSecret     string
	UploadsDir    string
	OperatorEmail string
	SMTPAddr      string
	SMTPFrom      string
}

// Load reads configuration from environment variables.
func Load() Config {
	cfg := Config{
		Addr:          os.Getenv("STOREFRONT_ADDR"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		UploadsDir:    os.Getenv("UPLOADS_DIR"),
		OperatorEmail: os.Getenv("OPERATOR_EMAIL"),
		SMTPAddr:      os.Getenv("SMTP_ADDR"),
		SMTPFrom:      os.Getenv("SMTP_FROM"),
	}

	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.UploadsDir == "" {
		cfg.UploadsDir = "./uploads"
	}
	if cfg.OperatorEmail == "" {
		cfg.OperatorEmail = "inbox@modernhomeinteriorsug.com"
	}
	if cfg.SMTPFrom == "" {
		cfg.SMTPFrom = "noreply@modernhomeinteriorsug.com"
	}

	return cfg
}
