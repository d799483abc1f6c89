package config

import (
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

type AppConfig struct {
	TableName          string        `env:"TABLE_NAME,required"`
	TopicArn           string        `env:"TOPIC_ARN,default="`
	StreamArn          string        `env:"STREAM_ARN,default="`
	StreamPollInterval time.Duration `env:"STREAM_POLL_INTERVAL,default=2s"`
	MealDBVersion      string        `env:"MEALDB_VERSION,default=v1"`
	MealDBToken        string        `env:"MEALDB_TOKEN,default=1"`
}

// Load reads the application config from the environment. A .env file is
// honored when present, which only matters outside Lambda.
func Load() (AppConfig, error) {
	_ = godotenv.Load()
	var cfg AppConfig
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}
