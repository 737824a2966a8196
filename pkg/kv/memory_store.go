package kv

import (
	"context"
	"sync"
	"time"
)

// MemoryStore 内存实现，测试和本地开发用
type MemoryStore struct {
	mu    sync.Mutex
	items map[string]*memItem
}

type memItem struct {
	value     string
	count     int64
	expiresAt time.Time // 零值表示不过期
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]*memItem)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.live(key)
	if !ok {
		return "", false, nil
	}
	return it.value, true, nil
}

func (s *MemoryStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := &memItem{value: value}
	if ttl > 0 {
		it.expiresAt = time.Now().Add(ttl)
	}
	s.items[key] = it
	return nil
}

func (s *MemoryStore) Incr(ctx context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.live(key)
	if !ok {
		it = &memItem{}
		s.items[key] = it
	}
	it.count++
	return it.count, nil
}

func (s *MemoryStore) Expire(ctx context.Context, key string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if it, ok := s.live(key); ok {
		if ttl > 0 {
			it.expiresAt = time.Now().Add(ttl)
		} else {
			it.expiresAt = time.Time{}
		}
	}
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}

// live 取未过期的条目，过期懒删除；调用方需持锁
func (s *MemoryStore) live(key string) (*memItem, bool) {
	it, ok := s.items[key]
	if !ok {
		return nil, false
	}
	if !it.expiresAt.IsZero() && time.Now().After(it.expiresAt) {
		delete(s.items, key)
		return nil, false
	}
	return it, true
}
