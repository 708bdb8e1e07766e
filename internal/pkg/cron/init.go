package cron

import (
	"fmt"
	log "log/slog"
)

// InitCron 注册并启动定时任务，mgr 为 nil 表示未启用
func InitCron(mgr *Manager) error {
	if mgr == nil {
		return nil
	}
	if err := mgr.RegisterJobs(); err != nil {
		return fmt.Errorf("invalid reconcile spec %q: %w", mgr.reconcileSpec, err)
	}
	mgr.Start()
	log.Info("Cron Jobs started", "reconcile", mgr.reconcileSpec)
	return nil
}
