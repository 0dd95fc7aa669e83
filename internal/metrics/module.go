package metrics

import "go.uber.org/fx"

// Module provides the Prometheus registry and service collectors.
var Module = fx.Provide(
	NewRegistry,
	New,
)
