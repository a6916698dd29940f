package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/akorfaa/ecommerce-api/internal/config"
	"github.com/akorfaa/ecommerce-api/internal/store"
)

var (
	Client *mongo.Client
	Mongo  *mongo.Database
	Redis  *redis.Client
)

// ConnectDatabases initializes the process-wide MongoDB and Redis clients.
// The connections live for the lifetime of the process.
func ConnectDatabases(cfg config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	connectMongo(ctx, cfg)
	connectRedis(ctx, cfg)
}

func connectMongo(ctx context.Context, cfg config.Config) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("❌ MongoDB connection error:", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("❌ MongoDB ping error:", err)
	}

	Client = client
	Mongo = client.Database(cfg.MongoDB)
	log.Println("✅ Connected to MongoDB, database:", cfg.MongoDB)
}

func connectRedis(ctx context.Context, cfg config.Config) {
	if cfg.RedisHost == "" {
		log.Println("⚠️  REDIS_HOST not set — rate limiting disabled")
		return
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisHost,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Fatal("❌ Redis connection error:", err)
	}
	log.Println("✅ Connected to Redis")
}

// EnsureIndexes creates the unique indexes on users.username and users.email.
// Registration relies on these to close the check-then-insert race.
func EnsureIndexes(ctx context.Context) error {
	_, err := Mongo.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}

// Collections wires the named collections into a store.Store.
func Collections() *store.Store {
	if Mongo == nil {
		panic("❌ Mongo database not initialized — call database.ConnectDatabases() first")
	}
	return &store.Store{
		Products: store.Wrap(Mongo.Collection("products")),
		Users:    store.Wrap(Mongo.Collection("users")),
		Carts:    store.Wrap(Mongo.Collection("carts")),
	}
}
