package dispatch

import (
	"context"

	"github.com/fluxframe/frame/internal/core/store"
	"go.uber.org/zap"
)

// Run registers stores, calls Dispatch until it reports termination or ctx
// is done, then releases the stores. Cancellation is checked between
// Dispatch calls only.
func Run(ctx context.Context, d *Dispatcher, stores ...store.Store) error {
	d.EnterRefs(stores...)
	defer d.DropRefs()

	d.log.Info("dispatch start",
		zap.Float64("max_stack_time", d.maxStackTime),
		zap.Int("stores", d.Slots()),
	)

	for d.Dispatch() {
		select {
		case <-ctx.Done():
			d.log.Info("dispatch cancelled",
				zap.Error(ctx.Err()),
				zap.Uint64("frames", d.Frames()),
				zap.Uint64("delivered", d.Delivered()),
			)
			return ctx.Err()
		default:
		}
	}

	d.log.Info("dispatch stopped",
		zap.Uint64("frames", d.Frames()),
		zap.Uint64("delivered", d.Delivered()),
	)
	return nil
}
