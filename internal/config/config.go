package config

import (
	"fmt"
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string `env:"ENV" env-default:"local"`
	HTTPServer HTTPServer
	Storage    Storage
	Admin      Admin
	Mail       Mail
	BaseURL    string `env:"BASE_URL"`
	EventName  string `env:"EVENT_NAME" env-default:"Leegion Party"`
}

type HTTPServer struct {
	Port        int           `env:"PORT" env-default:"4000"`
	Timeout     time.Duration `env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type Storage struct {
	Path  string `env:"DB_PATH" env-default:"./reservations.db"`
	QRDir string `env:"QR_DIR" env-default:"./qr-codes"`
}

type Admin struct {
	Password       string `env:"ADMIN_PASSWORD" env-default:"leegionAdmin2025"`
	Email          string `env:"ADMIN_EMAIL"`
	ExportFilename string `env:"EXPORT_FILENAME" env-default:"leegion_guest_list.csv"`
}

// Mail credentials are optional: notifications are enabled only when both
// User and Pass are set.
type Mail struct {
	Host string `env:"EMAIL_HOST" env-default:"smtp.gmail.com"`
	Port int    `env:"EMAIL_PORT" env-default:"587"`
	User string `env:"EMAIL_USER"`
	Pass string `env:"EMAIL_PASS"`
}

func (m Mail) Enabled() bool {
	return m.User != "" && m.Pass != ""
}

func (s HTTPServer) Address() string {
	return fmt.Sprintf(":%d", s.Port)
}

// MustLoad reads configuration from the environment (optionally seeded from a
// .env file) and exits on failure. Called exactly once at startup; the result
// is passed into every component.
func MustLoad() *Config {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = fmt.Sprintf("http://localhost:%d", cfg.HTTPServer.Port)
	}

	return &cfg
}
