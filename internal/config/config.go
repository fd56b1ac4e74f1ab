package config

import "time"

type Config struct {
	Environment  Environment
	Log          Log
	HTTP         HTTPServer
	DatabasePath string `env:"DATABASE_PATH" envDefault:"payments.db"`

	Auth     Auth     `envPrefix:"AUTH_"`
	Provider Provider `envPrefix:"PROVIDER_"`
}

type Provider struct {
	BaseApiURL string        `env:"BASE_API_URL"`
	APIKey     string        `env:"API_KEY"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"30s"`
	// Initial balance (minor units) granted to newly provisioned remote
	// customers; the default provisioning policy reads this value.
	InitialBalance int64 `env:"INITIAL_BALANCE" envDefault:"50000"`
}

type Auth struct {
	JWTSecret string `env:"JWT_SECRET"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
