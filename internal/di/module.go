package di

import (
	"go.uber.org/fx"

	"github.com/SwatiP012/Momo-Muffin-backend/internal/adapter/notify"
	"github.com/SwatiP012/Momo-Muffin-backend/internal/app"
	"github.com/SwatiP012/Momo-Muffin-backend/internal/config"
	"github.com/SwatiP012/Momo-Muffin-backend/internal/logger"
	"github.com/SwatiP012/Momo-Muffin-backend/internal/metrics"
	"github.com/SwatiP012/Momo-Muffin-backend/internal/pkg/auth"
	"github.com/SwatiP012/Momo-Muffin-backend/internal/server/http/handlers"
	"github.com/SwatiP012/Momo-Muffin-backend/internal/server/http/router"
	"github.com/SwatiP012/Momo-Muffin-backend/internal/storage/postgres"
	"github.com/SwatiP012/Momo-Muffin-backend/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		auth.Module,
		postgres.Module,
		notify.Module,
		usecase.Module,
		fx.Provide(
			func(p notify.Publisher) app.EventPublisher { return p },
			func(s *postgres.Storage) app.HealthChecker { return s },
			func(m *metrics.Metrics) app.PublishRecorder { return m },
			func(f *app.StorefrontFacade) handlers.StorefrontFacade { return f },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
