package kv

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupGormStore(t *testing.T) *GormStore {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		t.Fatalf("建表失败: %v", err)
	}
	return NewGormStore(db)
}

// 两种实现跑同一组行为测试
func stores(t *testing.T) map[string]Store {
	return map[string]Store{
		"gorm":   setupGormStore(t),
		"memory": NewMemoryStore(),
	}
}

func TestStore_GetSet(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok, _ := s.Get(ctx, "missing"); ok {
				t.Error("missing key should not exist")
			}

			if err := s.Set(ctx, "a", "v1", 0); err != nil {
				t.Fatalf("Set: %v", err)
			}
			v, ok, err := s.Get(ctx, "a")
			if err != nil || !ok || v != "v1" {
				t.Errorf("Get = (%q, %v, %v), want (v1, true, nil)", v, ok, err)
			}

			// 覆盖写
			s.Set(ctx, "a", "v2", 0)
			v, _, _ = s.Get(ctx, "a")
			if v != "v2" {
				t.Errorf("after overwrite: %q", v)
			}
		})
	}
}

func TestStore_Expiry(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			s.Set(ctx, "brief", "x", 10*time.Millisecond)
			time.Sleep(30 * time.Millisecond)
			if _, ok, _ := s.Get(ctx, "brief"); ok {
				t.Error("expired key should be gone")
			}
		})
	}
}

func TestStore_Incr(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			for want := int64(1); want <= 3; want++ {
				got, err := s.Incr(ctx, "ctr")
				if err != nil {
					t.Fatalf("Incr: %v", err)
				}
				if got != want {
					t.Errorf("Incr = %d, want %d", got, want)
				}
			}
		})
	}
}

func TestStore_IncrExpiredCounterRestarts(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			s.Incr(ctx, "win")
			s.Incr(ctx, "win")
			s.Expire(ctx, "win", 10*time.Millisecond)
			time.Sleep(30 * time.Millisecond)

			got, err := s.Incr(ctx, "win")
			if err != nil {
				t.Fatalf("Incr: %v", err)
			}
			if got != 1 {
				t.Errorf("new window counter = %d, want 1", got)
			}
		})
	}
}

func TestGormStore_DeleteExpired(t *testing.T) {
	ctx := context.Background()
	s := setupGormStore(t)

	s.Set(ctx, "old1", "x", 5*time.Millisecond)
	s.Set(ctx, "old2", "x", 5*time.Millisecond)
	s.Set(ctx, "keep", "x", time.Hour)
	time.Sleep(20 * time.Millisecond)

	n, err := s.DeleteExpired(ctx)
	if err != nil {
		t.Fatalf("DeleteExpired: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted = %d, want 2", n)
	}
	if _, ok, _ := s.Get(ctx, "keep"); !ok {
		t.Error("live key should survive the sweep")
	}
}
