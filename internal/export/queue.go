package export

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gomodule/redigo/redis"
)

// Job describes one pending notes export.
type Job struct {
	ID          string    `json:"id"`
	UserID      uint64    `json:"user_id"`
	TargetEmail string    `json:"target_email"`
	RequestedAt time.Time `json:"requested_at"`
}

// Queue hands export jobs from the request path to the worker.
type Queue interface {
	// Enqueue adds a job and returns immediately.
	Enqueue(job Job) error

	// Dequeue blocks until a job is available or the context is cancelled.
	Dequeue(ctx context.Context) (*Job, error)
}

// RedisQueue is a Queue over a Redis list.
type RedisQueue struct {
	pool *redis.Pool
	key  string
}

// NewRedisQueue creates a Queue on the given list key.
func NewRedisQueue(pool *redis.Pool, key string) *RedisQueue {
	return &RedisQueue{pool: pool, key: key}
}

func (q *RedisQueue) Enqueue(job Job) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return err
	}

	conn := q.pool.Get()
	defer conn.Close()

	_, err = conn.Do("LPUSH", q.key, payload)
	return err
}

// Dequeue polls with a short BRPOP timeout so context cancellation is
// noticed between blocks.
func (q *RedisQueue) Dequeue(ctx context.Context) (*Job, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		payload, err := q.pop()
		if err != nil {
			return nil, err
		}
		if payload == nil {
			continue
		}

		var job Job
		if err := json.Unmarshal(payload, &job); err != nil {
			return nil, err
		}
		return &job, nil
	}
}

func (q *RedisQueue) pop() ([]byte, error) {
	conn := q.pool.Get()
	defer conn.Close()

	values, err := redis.Values(conn.Do("BRPOP", q.key, 1))
	if err == redis.ErrNil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	// BRPOP returns [key, value].
	if len(values) != 2 {
		return nil, nil
	}
	return redis.Bytes(values[1], nil)
}

// MemoryQueue is an in-process Queue used in tests.
type MemoryQueue struct {
	jobs chan Job
}

// NewMemoryQueue creates a buffered in-process queue.
func NewMemoryQueue(size int) *MemoryQueue {
	return &MemoryQueue{jobs: make(chan Job, size)}
}

func (q *MemoryQueue) Enqueue(job Job) error {
	q.jobs <- job
	return nil
}

func (q *MemoryQueue) Dequeue(ctx context.Context) (*Job, error) {
	select {
	case job := <-q.jobs:
		return &job, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
