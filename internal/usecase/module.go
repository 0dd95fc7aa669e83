package usecase

import (
	"go.uber.org/fx"

	"github.com/SwatiP012/Momo-Muffin-backend/internal/metrics"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	NewOrderUseCase,
	NewStatsUseCase,
	NewStoreUseCase,
	func(m *metrics.Metrics) TransitionRecorder { return m },
)
