package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/lineboard/lineboard-backend/internal/pkg/logger"
)

// KeyLock serializes writers per period key so two uploads for the same day
// or month never interleave their read-merge-write cycles.
type KeyLock interface {
	// Acquire blocks until the key is held or ctx expires. The returned
	// func releases the hold and is safe to call once.
	Acquire(ctx context.Context, key string) (func(), error)
}

const (
	lockPrefix    = "lineboard:lock:"
	lockTTL       = 30 * time.Second
	lockRetryWait = 50 * time.Millisecond
)

// NewKeyLock returns a Redis-backed lock when a client is configured, so
// locks hold across replicas. Without Redis it degrades to an in-process
// lock, which is correct for the single-binary deployment.
func NewKeyLock(rdb redis.UniversalClient, baseLog *logger.Logger) KeyLock {
	log := baseLog.With("service", "KeyLock")
	if rdb == nil {
		log.Info("Redis not configured, using in-process period locks")
		return &localKeyLock{locks: map[string]*localLockEntry{}}
	}
	return &redisKeyLock{rdb: rdb, log: log}
}

type redisKeyLock struct {
	rdb redis.UniversalClient
	log *logger.Logger
}

// releaseScript deletes the lock only when it still holds our token, so an
// expired-and-retaken lock is never released by the old holder.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

func (l *redisKeyLock) Acquire(ctx context.Context, key string) (func(), error) {
	redisKey := lockPrefix + key
	token := uuid.NewString()

	for {
		ok, err := l.rdb.SetNX(ctx, redisKey, token, lockTTL).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetryWait):
		}
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			// Release rides on a fresh context; the request's may be done.
			rctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := releaseScript.Run(rctx, l.rdb, []string{redisKey}, token).Err(); err != nil {
				l.log.Warn("Failed to release period lock", "key", key, "error", err)
			}
		})
	}
	return release, nil
}

type localKeyLock struct {
	mu    sync.Mutex
	locks map[string]*localLockEntry
}

type localLockEntry struct {
	sem  chan struct{}
	refs int
}

func (l *localKeyLock) Acquire(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	e := l.locks[key]
	if e == nil {
		e = &localLockEntry{sem: make(chan struct{}, 1)}
		l.locks[key] = e
	}
	e.refs++
	l.mu.Unlock()

	select {
	case e.sem <- struct{}{}:
	case <-ctx.Done():
		l.unref(key, e)
		return nil, ctx.Err()
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			<-e.sem
			l.unref(key, e)
		})
	}
	return release, nil
}

func (l *localKeyLock) unref(key string, e *localLockEntry) {
	l.mu.Lock()
	e.refs--
	if e.refs == 0 {
		delete(l.locks, key)
	}
	l.mu.Unlock()
}
