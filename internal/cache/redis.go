package cache

import (
	"time"

	"github.com/gomodule/redigo/redis"
)

// RedisStore implements Store over a redigo connection pool.
type RedisStore struct {
	pool *redis.Pool
}

// NewRedisPool creates a connection pool for the given address.
func NewRedisPool(addr string) *redis.Pool {
	return &redis.Pool{
		MaxIdle:     10,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", addr)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			if time.Since(t) < time.Minute {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}
}

// NewRedisStore creates a Store backed by the given pool.
func NewRedisStore(pool *redis.Pool) *RedisStore {
	return &RedisStore{pool: pool}
}

func (s *RedisStore) Get(key string) ([]byte, bool, error) {
	conn := s.pool.Get()
	defer conn.Close()

	value, err := redis.Bytes(conn.Do("GET", key))
	if err == redis.ErrNil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (s *RedisStore) Set(key string, value []byte, ttl time.Duration) error {
	conn := s.pool.Get()
	defer conn.Close()

	if ttl > 0 {
		_, err := conn.Do("SET", key, value, "PX", ttl.Milliseconds())
		return err
	}
	_, err := conn.Do("SET", key, value)
	return err
}

func (s *RedisStore) Delete(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	conn := s.pool.Get()
	defer conn.Close()

	args := make([]interface{}, len(keys))
	for i, key := range keys {
		args[i] = key
	}

	_, err := conn.Do("DEL", args...)
	return err
}
