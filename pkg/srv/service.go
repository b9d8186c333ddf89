package srv

import (
	"context"
	"time"

	"github.com/sandevgo/termcore/pkg/log"
)

// shutdownGrace bounds how long a single service may take to stop.
const shutdownGrace = 5 * time.Second

type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// StartServices launches every service in its own goroutine. Start errors are
// delivered on the returned channel, which is buffered for all services.
func StartServices(ctx context.Context, services []Service) <-chan error {
	logger := log.FromCtx(ctx)
	errs := make(chan error, len(services))
	for _, service := range services {
		go func(service Service) {
			if err := service.Start(ctx); err != nil {
				logger.Error().Err(err).Msgf("%T failed to start", service)
				errs <- err
			}
		}(service)
	}
	return errs
}

// ShutdownServices blocks until ctx is done or a service fails to start, then
// stops every service in reverse order. The start error, if any, is returned.
func ShutdownServices(ctx context.Context, services []Service, errs <-chan error) error {
	var startErr error
	select {
	case <-ctx.Done():
	case startErr = <-errs:
	}

	for i := len(services) - 1; i >= 0; i-- {
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownGrace)
		if err := services[i].Shutdown(sctx); err != nil {
			log.FromCtx(ctx).Error().Err(err).Msgf("%T failed to shutdown", services[i])
		}
		cancel()
	}
	return startErr
}
