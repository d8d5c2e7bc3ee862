package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type ServerConfig struct {
	PostgresDSN string `env:"POSTGRES_DSN,required,notEmpty"`
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`

	JWTSecret string `env:"JWT_SECRET" envDefault:"dev-only-secret"`

	SessionInactivityTimeout time.Duration `env:"SESSION_INACTIVITY_TIMEOUT" envDefault:"120s"`
	MoveCooldown             time.Duration `env:"MOVE_COOLDOWN" envDefault:"1s"`
	MoveWindow               time.Duration `env:"MOVE_WINDOW" envDefault:"10s"`
	MoveWindowMax            int           `env:"MOVE_WINDOW_MAX" envDefault:"5"`
	StartWindow              time.Duration `env:"START_WINDOW" envDefault:"60s"`
	StartWindowMax           int           `env:"START_WINDOW_MAX" envDefault:"2"`

	CaptchaSecret    string  `env:"CAPTCHA_SECRET"`
	CaptchaVerifyURL string  `env:"CAPTCHA_VERIFY_URL" envDefault:"https://www.google.com/recaptcha/api/siteverify"`
	CaptchaMinScore  float64 `env:"CAPTCHA_MIN_SCORE" envDefault:"0.5"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}
