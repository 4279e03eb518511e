package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/sjjames020/TranquiliTea/internal/config"

	"github.com/redis/go-redis/v9"
)

// Cache envuelve un cliente Redis opcional. Con receiver nil o sin
// cliente configurado todas las operaciones son no-op, así los
// servicios no tienen que preguntar si hay Redis o no.
type Cache struct {
	client *redis.Client
}

// New conecta a Redis si hay dirección configurada. Sin REDIS_ADDR
// devuelve un cache deshabilitado (no es un error).
func New(cfg *config.Config) (*Cache, error) {
	if cfg.RedisAddr == "" {
		log.Println("[redis] sin REDIS_ADDR, cache deshabilitado")
		return &Cache{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	log.Println("[redis] conectado OK")
	return &Cache{client: client}, nil
}

// GetJSON lee una key de Redis, si existe deserializa el JSON en `dest`.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil || c.client == nil {
		return false, nil
	}

	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		// no existe la clave
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON serializa `value` a JSON y lo guarda en Redis con TTL en segundos.
func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttlSeconds int) error {
	if c == nil || c.client == nil {
		return nil
	}

	b, err := json.Marshal(value)
	if err != nil {
		return err
	}

	ttl := time.Duration(ttlSeconds) * time.Second
	return c.client.Set(ctx, key, b, ttl).Err()
}

// Del invalida una key (se usa después de cada mutación de entradas).
func (c *Cache) Del(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, key).Err()
}
