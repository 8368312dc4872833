package server

import (
	"context"
	"time"

	"github.com/probelab/beliefnet/pkg/observability"
)

// queryFanout dispatches query events to several hook implementations,
// letting metrics and logging observe the same stream.
type queryFanout []observability.QueryHooks

func (f queryFanout) OnQueryStart(ctx context.Context, id, network, node string) {
	for _, h := range f {
		h.OnQueryStart(ctx, id, network, node)
	}
}

func (f queryFanout) OnQueryComplete(ctx context.Context, id, network, node string, observed bool, duration time.Duration, err error) {
	for _, h := range f {
		h.OnQueryComplete(ctx, id, network, node, observed, duration, err)
	}
}

// storeFanout dispatches store events to several hook implementations.
type storeFanout []observability.StoreHooks

func (f storeFanout) OnStoreOp(ctx context.Context, op, network string, duration time.Duration, err error) {
	for _, h := range f {
		h.OnStoreOp(ctx, op, network, duration, err)
	}
}
