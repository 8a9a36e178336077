package cron

import (
	"LyvoAdmin/internal/api/config"
	"LyvoAdmin/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine           *cron.Cron
	feedRefreshJob   *job.FeedRefreshJob
	dismissalPruning *job.DismissalPruneJob
}

func NewCronManager(feedRefreshJob *job.FeedRefreshJob, dismissalPruning *job.DismissalPruneJob) *Manager {
	return &Manager{
		engine:           cron.New(cron.WithSeconds()),
		feedRefreshJob:   feedRefreshJob,
		dismissalPruning: dismissalPruning,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(config.Cfg.Feed.PollSpec, s.feedRefreshJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("@daily", s.dismissalPruning); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
