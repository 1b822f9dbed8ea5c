package config

import "github.com/caarlos0/env/v11"

// Config holds all process configuration, loaded once at startup and
// passed into the services that need it.
type Config struct {
	Port           string   `env:"PORT" envDefault:"8080"`
	AWSRegion      string   `env:"AWS_REGION" envDefault:"us-east-1"`
	S3Bucket       string   `env:"S3_BUCKET_NAME"`
	JWTSecret      string   `env:"JWT_SECRET,required"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Load parses the configuration from the environment
func Load() (Config, error) {
	return env.ParseAs[Config]()
}
