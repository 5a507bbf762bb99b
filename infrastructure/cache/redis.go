package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-media-os-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const keyPrefix = "smos:"

// Cache guarda valores serializados em JSON com prazo de expiração
type Cache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any) error
	Close() error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache conecta ao Redis e valida a conexão.
// Retorna nil sem erro quando REDIS_URL não está configurada.
func NewRedisCache(cfg *config.Config) (*RedisCache, error) {
	if cfg.Redis.URL == "" {
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("url do redis inválida: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("falha ao conectar no redis: %w", err)
	}

	logrus.WithField("ttl", cfg.Redis.CacheTTL.String()).Info("Conexão com o Redis estabelecida")

	return NewWithClient(client, cfg.Redis.CacheTTL), nil
}

func NewWithClient(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	bs, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("erro ao ler chave do cache: %w", err)
	}

	if err := json.Unmarshal(bs, dest); err != nil {
		return false, fmt.Errorf("erro ao decodificar valor do cache: %w", err)
	}

	return true, nil
}

func (c *RedisCache) SetJSON(ctx context.Context, key string, value any) error {
	bs, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("erro ao serializar valor do cache: %w", err)
	}

	if err := c.client.Set(ctx, keyPrefix+key, bs, c.ttl).Err(); err != nil {
		return fmt.Errorf("erro ao gravar chave no cache: %w", err)
	}

	return nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
