package throttle

import (
	"context"
	"sync"
	"time"

	"github.com/littlelemon-next/internal/cache"
)

// HistoryStore 限流历史存储：按键读写请求时间戳序列
type HistoryStore interface {
	Get(ctx context.Context, key string) ([]time.Time, error)
	Set(ctx context.Context, key string, history []time.Time, ttl time.Duration) error
}

// RedisHistoryStore 基于 Redis 的历史存储（JSON 序列化时间戳切片）
type RedisHistoryStore struct{}

// NewRedisHistoryStore 创建 Redis 历史存储
func NewRedisHistoryStore() *RedisHistoryStore {
	return &RedisHistoryStore{}
}

// Get 读取限流历史
func (s *RedisHistoryStore) Get(ctx context.Context, key string) ([]time.Time, error) {
	var history []time.Time
	found, err := cache.GetJSON(ctx, key, &history)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return history, nil
}

// Set 写入限流历史，ttl 为窗口长度
func (s *RedisHistoryStore) Set(ctx context.Context, key string, history []time.Time, ttl time.Duration) error {
	return cache.SetJSON(ctx, key, history, ttl)
}

type memoryEntry struct {
	history   []time.Time
	expiresAt time.Time
}

// MemoryHistoryStore 进程内历史存储（Redis 未启用时的降级实现）
type MemoryHistoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryHistoryStore 创建进程内历史存储
func NewMemoryHistoryStore() *MemoryHistoryStore {
	return &MemoryHistoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get 读取限流历史
func (s *MemoryHistoryStore) Get(ctx context.Context, key string) ([]time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[key]
	if !ok {
		return nil, nil
	}
	if s.now().After(entry.expiresAt) {
		delete(s.entries, key)
		return nil, nil
	}
	history := make([]time.Time, len(entry.history))
	copy(history, entry.history)
	return history, nil
}

// Set 写入限流历史
func (s *MemoryHistoryStore) Set(ctx context.Context, key string, history []time.Time, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = memoryEntry{
		history:   history,
		expiresAt: s.now().Add(ttl),
	}
	return nil
}
