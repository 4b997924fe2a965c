package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/devfolio/pkg/domain"
)

// LoggingHooks returns lifecycle hooks that log every event.
// Failed validations log at Info with their first messages; the rest at Debug.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnValidate: func(ctx context.Context, e *domain.ValidationEvent) {
			if e.Success {
				logger.DebugContext(ctx, "portfolio_valid",
					"source", e.Source,
					"duration", e.Duration,
				)
				return
			}
			first := make([]string, 0, 3)
			for i, v := range e.Violations {
				if i == 3 {
					break
				}
				first = append(first, v.String())
			}
			logger.InfoContext(ctx, "portfolio_invalid",
				"source", e.Source,
				"violations", len(e.Violations),
				"first", first,
			)
		},
		OnStore: func(ctx context.Context, e *domain.StoreEvent) {
			attrs := []any{"id", e.ID, "source", e.Source}
			if e.Diff != nil {
				attrs = append(attrs, "added", e.Diff.Added, "changed", e.Diff.Changed, "removed", e.Diff.Removed)
			}
			logger.InfoContext(ctx, string(e.Type), attrs...)
		},
	}
}
