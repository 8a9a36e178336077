package cron

import log "log/slog"

// InitCron 注册并启动刷新与清理任务
func InitCron(mgr *Manager) error {
	if err := mgr.RegisterJobs(); err != nil {
		return err
	}
	mgr.Start()
	log.Info("Cron Jobs started", "jobs", 2)
	return nil
}
