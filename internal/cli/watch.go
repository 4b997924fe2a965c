package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/devfolio"
	"github.com/aretw0/devfolio/pkg/ports"
)

// settleDelay lets editors finish writing before a changed file is re-read.
const settleDelay = 100 * time.Millisecond

// WatchSource is a document source that reports changes.
type WatchSource interface {
	ports.DocumentSource
	ports.Watchable
}

// RunWatch validates every document of src, then re-validates each document
// that changes until ctx is done.
func RunWatch(ctx context.Context, v *devfolio.Validator, src WatchSource, opts ValidateOptions, out io.Writer, logger *slog.Logger) error {
	reports, err := validateSource(ctx, v, src, opts.Stats)
	if err != nil {
		return err
	}
	for _, r := range reports {
		if err := writeReport(out, r, opts.JSON); err != nil {
			return err
		}
	}

	watchCh, err := src.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to watch: %w", err)
	}

	logger.Info("Starting Watcher")
	if !opts.JSON {
		printSystemMessage(out, "Waiting for changes...")
	}

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stopping watcher")
			return nil
		case id, ok := <-watchCh:
			if !ok {
				return nil
			}
			logger.Info("Change detected", "id", id)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(settleDelay):
			}

			data, err := src.Get(id)
			if err != nil {
				// Removed or renamed files surface as not found.
				logger.Debug("Changed document is gone", "id", id, "err", err)
				continue
			}
			if err := writeReport(out, check(v, id, data, opts.Stats), opts.JSON); err != nil {
				return err
			}
		}
	}
}
