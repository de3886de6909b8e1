package worker

import (
	"context"
	"errors"

	"github.com/eshop-next/internal/config"
	"github.com/eshop-next/internal/logger"
	"github.com/eshop-next/internal/queue"

	"github.com/hibiken/asynq"
)

// Service 异步任务消费服务
type Service struct {
	name     string
	cfg      *config.QueueConfig
	consumer *Consumer
	server   *asynq.Server
}

// NewService 创建消费服务
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	if consumer == nil {
		return nil, errors.New("worker consumer is nil")
	}
	return &Service{
		name:     "worker",
		cfg:      cfg,
		consumer: consumer,
	}, nil
}

// Name 服务名称
func (s *Service) Name() string {
	if s == nil || s.name == "" {
		return "worker"
	}
	return s.name
}

// Start 启动消费服务
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.consumer == nil {
		return errors.New("worker not initialized")
	}
	if s.cfg == nil || !s.cfg.Enabled {
		logger.Infow("worker_disabled")
		<-ctx.Done()
		return nil
	}

	opt, serverCfg := queue.BuildServerConfig(s.cfg)
	s.server = asynq.NewServer(opt, serverCfg)

	mux := asynq.NewServeMux()
	s.consumer.Register(mux)

	logger.Infow("worker_starting", "concurrency", serverCfg.Concurrency)
	return s.server.Run(mux)
}

// Stop 停止消费服务
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	s.server.Shutdown()
	logger.Infow("worker_stopped")
	return nil
}
