package kv

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry 键值表
// 过期采用懒删除 + 定时清扫（internal/task）兜底
type Entry struct {
	Key       string     `gorm:"primaryKey;size:255;column:k"`
	Value     string     `gorm:"type:text"`
	Count     int64      `gorm:"default:0"`
	ExpiresAt *time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (Entry) TableName() string { return "kv_entries" }

// GormStore 数据库实现
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Get 读取键值，过期的键视同不存在并顺手删除
func (s *GormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var e Entry
	err := s.db.WithContext(ctx).Where("k = ?", key).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	if e.ExpiresAt != nil && time.Now().After(*e.ExpiresAt) {
		s.db.WithContext(ctx).Where("k = ?", key).Delete(&Entry{})
		return "", false, nil
	}

	return e.Value, true, nil
}

// Set 覆盖写入
func (s *GormStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	e := Entry{Key: key, Value: value, ExpiresAt: expiry(ttl)}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "k"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "expires_at", "updated_at"}),
	}).Create(&e).Error
}

// Incr 计数器自增
// upsert 保证并发自增在数据库层原子；过期的计数器先清掉，相当于开新窗口
func (s *GormStore) Incr(ctx context.Context, key string) (int64, error) {
	now := time.Now()
	db := s.db.WithContext(ctx)

	// 清理过期计数器（窄竞态可接受，下个窗口自愈）
	db.Where("k = ? AND expires_at IS NOT NULL AND expires_at < ?", key, now).Delete(&Entry{})

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "k"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"count": gorm.Expr("kv_entries.count + 1")}),
	}).Create(&Entry{Key: key, Count: 1}).Error
	if err != nil {
		return 0, err
	}

	var e Entry
	if err := db.Where("k = ?", key).First(&e).Error; err != nil {
		return 0, err
	}
	return e.Count, nil
}

// Expire 设置过期时间
func (s *GormStore) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return s.db.WithContext(ctx).Model(&Entry{}).
		Where("k = ?", key).
		Update("expires_at", expiry(ttl)).Error
}

// Delete 删除键
func (s *GormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("k = ?", key).Delete(&Entry{}).Error
}

// DeleteExpired 批量清理过期键，返回清理条数（供定时任务调用）
func (s *GormStore) DeleteExpired(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("expires_at IS NOT NULL AND expires_at < ?", time.Now()).
		Delete(&Entry{})
	return res.RowsAffected, res.Error
}

func expiry(ttl time.Duration) *time.Time {
	if ttl <= 0 {
		return nil
	}
	t := time.Now().Add(ttl)
	return &t
}
