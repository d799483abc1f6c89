package config_test

import (
	"testing"
	"time"

	"calvillo.me/recetas/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("RequiresTableName", func(t *testing.T) {
		t.Setenv("TABLE_NAME", "")
		if _, err := config.Load(); err == nil {
			t.Fatal("Expected an error without TABLE_NAME")
		}
	})

	t.Run("AppliesDefaults", func(t *testing.T) {
		t.Setenv("TABLE_NAME", "RecetasData")
		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("Failed to load config: %s", err)
		}
		if cfg.TableName != "RecetasData" {
			t.Errorf("TableName is %s", cfg.TableName)
		}
		if cfg.StreamPollInterval != 2*time.Second {
			t.Errorf("StreamPollInterval is %s", cfg.StreamPollInterval)
		}
		if cfg.MealDBVersion != "v1" || cfg.MealDBToken != "1" {
			t.Errorf("MealDB defaults are %s/%s", cfg.MealDBVersion, cfg.MealDBToken)
		}
	})

	t.Run("ReadsOverrides", func(t *testing.T) {
		t.Setenv("TABLE_NAME", "RecetasData")
		t.Setenv("STREAM_POLL_INTERVAL", "500ms")
		t.Setenv("TOPIC_ARN", "arn:aws:sns:us-east-1:012345678912:recetas")
		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("Failed to load config: %s", err)
		}
		if cfg.StreamPollInterval != 500*time.Millisecond {
			t.Errorf("StreamPollInterval is %s", cfg.StreamPollInterval)
		}
		if cfg.TopicArn != "arn:aws:sns:us-east-1:012345678912:recetas" {
			t.Errorf("TopicArn is %s", cfg.TopicArn)
		}
	})
}
