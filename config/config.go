package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port             string `envconfig:"PORT" default:"8000"`
	MongoURI         string `envconfig:"MONGODB_URI" default:"mongodb://localhost:27017"`
	Database         string `envconfig:"MONGODB_DATABASE" default:"storefront"`
	JWTSecret        string `envconfig:"JWT_SECRET" required:"true"`
	PostmarkAPIToken string `envconfig:"POSTMARK_API_TOKEN"`
	EmailSender      string `envconfig:"EMAIL_SENDER"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
