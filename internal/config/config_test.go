package config

import "testing"

func TestLoad(t *testing.T) {
	t.Run("defaults apply when env is empty", func(t *testing.T) {
		t.Setenv("MONGO_URI", "")
		t.Setenv("MONGO_DB", "")
		t.Setenv("PORT", "")
		t.Setenv("REDIS_HOST", "")

		cfg := Load()
		if cfg.MongoURI != "mongodb://localhost:27017" {
			t.Fatalf("MongoURI = %q", cfg.MongoURI)
		}
		if cfg.MongoDB != "ecommerce_db" {
			t.Fatalf("MongoDB = %q", cfg.MongoDB)
		}
		if cfg.Port != "8080" {
			t.Fatalf("Port = %q", cfg.Port)
		}
		if cfg.RedisHost != "" {
			t.Fatalf("RedisHost = %q, want empty", cfg.RedisHost)
		}
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("MONGO_URI", "mongodb://db:27017")
		t.Setenv("MONGO_DB", "shop")
		t.Setenv("PORT", "9090")
		t.Setenv("REDIS_HOST", "cache:6379")
		t.Setenv("REDIS_PASSWORD", "secret")

		cfg := Load()
		if cfg.MongoURI != "mongodb://db:27017" || cfg.MongoDB != "shop" || cfg.Port != "9090" {
			t.Fatalf("unexpected config %+v", cfg)
		}
		if cfg.RedisHost != "cache:6379" || cfg.RedisPassword != "secret" {
			t.Fatalf("unexpected redis config %+v", cfg)
		}
	})
}
