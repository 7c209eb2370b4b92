package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// DB
	DatabaseURL string `envconfig:"DATABASE_URL" default:"tablebook.db"`
	// JWT
	JWTSecret   string `envconfig:"JWT_SECRET" required:"true"`
	JWTTTLHours int    `envconfig:"JWT_TTL_HOURS" default:"24"`
	// Email (Brevo transactional API)
	BrevoAPIKey     string `envconfig:"BREVO_API_KEY"`
	EmailSender     string `envconfig:"EMAIL_SENDER"`
	EmailSenderName string `envconfig:"EMAIL_SENDER_NAME" default:"Tablebook"`
	// Network
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}

func (c App) JWTTTL() time.Duration {
	return time.Duration(c.JWTTTLHours) * time.Hour
}
