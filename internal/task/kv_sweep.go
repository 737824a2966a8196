package task

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"selling-sisters-api/pkg/kv"
)

// KVSweepTask 定时清理 kv_entries 里过期的限流计数和幂等记录
// 读路径已做惰性过期，这里只是控制表的体积
type KVSweepTask struct {
	store  *kv.GormStore
	cron   *cron.Cron
	logger *zap.Logger
}

func NewKVSweepTask(store *kv.GormStore, logger *zap.Logger) *KVSweepTask {
	return &KVSweepTask{
		store:  store,
		cron:   cron.New(),
		logger: logger,
	}
}

// Start 注册并启动定时任务
func (t *KVSweepTask) Start() error {
	if _, err := t.cron.AddFunc("@every 10m", t.sweep); err != nil {
		return err
	}
	t.cron.Start()
	t.logger.Info("KV 清理任务已启动", zap.String("schedule", "@every 10m"))
	return nil
}

// Stop 停止调度，等待进行中的任务结束
func (t *KVSweepTask) Stop() {
	<-t.cron.Stop().Done()
}

func (t *KVSweepTask) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	deleted, err := t.store.DeleteExpired(ctx)
	if err != nil {
		t.logger.Warn("KV 清理失败", zap.Error(err))
		return
	}
	if deleted > 0 {
		t.logger.Info("KV 清理完成", zap.Int64("deleted", deleted))
	}
}
