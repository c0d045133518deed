package cache

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is nil when Redis is unreachable; every helper degrades to a
// no-op so the API keeps working without the cache.
var Client *redis.Client

func Init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "127.0.0.1:6379"
	}
	Client = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	if _, err := Client.Ping(context.Background()).Result(); err != nil {
		log.Printf("⚠️ Redis unavailable (%v), caching disabled", err)
		Client = nil
		return
	}
	log.Println("✅ Redis connected")
}

// GetJSON loads key into dest. Returns false on miss, disabled cache, or
// a stale payload that no longer unmarshals.
func GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if Client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	data, err := Client.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(data), dest) == nil
}

// SetJSON stores value under key with a TTL, best effort.
func SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if Client == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	Client.Set(ctx, key, data, ttl)
}

// Invalidate drops all keys matching pattern. Mutations call this so the
// next read goes back to the database.
func Invalidate(ctx context.Context, pattern string) {
	if Client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	keys, err := Client.Keys(ctx, pattern).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	Client.Del(ctx, keys...)
}

// RevokeToken denylists a JWT until it would have expired anyway.
func RevokeToken(ctx context.Context, token string, ttl time.Duration) {
	if Client == nil || ttl <= 0 {
		return
	}
	Client.Set(ctx, "revoked:"+token, "1", ttl)
}

// TokenRevoked reports whether a JWT has been logged out. With the cache
// disabled tokens stay valid until expiry.
func TokenRevoked(ctx context.Context, token string) bool {
	if Client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	n, err := Client.Exists(ctx, "revoked:"+token).Result()
	return err == nil && n > 0
}
