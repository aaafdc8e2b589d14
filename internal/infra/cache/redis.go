// Package cache адаптер Redis для кэширования снапшота статуса.
// При недоступном Redis конструктор возвращает nil - вызывающие
// обязаны деградировать до прямого чтения из БД.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client тонкая обертка над go-redis
type Client struct {
	rdb *redis.Client
}

// New подключается к Redis и проверяет соединение коротким пингом.
// Возвращает nil при неудаче - кэширование просто отключается.
func New(addr, password string, db int) *Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil
	}

	return &Client{rdb: rdb}
}

// Get читает значение по ключу; отсутствие ключа - пустая строка без ошибки
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

// Set записывает значение с TTL
func (c *Client) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

// Close закрывает соединение с Redis
func (c *Client) Close() error {
	return c.rdb.Close()
}
