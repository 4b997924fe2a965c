/*
Package observability turns validation and store events into Prometheus
metrics and structured log lines.

Metrics.Hooks and LoggingHooks both return domain.LifecycleHooks, so they can
be merged and handed to a devfolio.Validator or a portfolio.Manager.
*/
package observability
