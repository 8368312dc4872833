package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Query hooks
	q := NoopQueryHooks{}
	q.OnQueryStart(ctx, "id-1", "lawn", "grass_wet")
	q.OnQueryComplete(ctx, "id-1", "lawn", "grass_wet", false, time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "network")
	c.OnCacheMiss(ctx, "network")
	c.OnCacheSet(ctx, "network", 1024)

	// Store hooks
	s := NoopStoreHooks{}
	s.OnStoreOp(ctx, "save", "lawn", time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Query().(NoopQueryHooks); !ok {
		t.Error("Query() should return NoopQueryHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := Store().(NoopStoreHooks); !ok {
		t.Error("Store() should return NoopStoreHooks by default")
	}

	// Set custom hooks
	customQuery := &testQueryHooks{}
	SetQueryHooks(customQuery)
	if Query() != customQuery {
		t.Error("SetQueryHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customStore := &testStoreHooks{}
	SetStoreHooks(customStore)
	if Store() != customStore {
		t.Error("SetStoreHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Query().(NoopQueryHooks); !ok {
		t.Error("Reset() should restore NoopQueryHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testQueryHooks{}
	SetQueryHooks(custom)

	// Setting nil should be ignored
	SetQueryHooks(nil)

	if Query() != custom {
		t.Error("SetQueryHooks(nil) should be ignored")
	}

	Reset()
}

func TestLogHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Nil loggers fall back to the default logger.
	q := NewLogQueryHooks(nil)
	q.OnQueryStart(ctx, "id-1", "lawn", "grass_wet")
	q.OnQueryComplete(ctx, "id-1", "lawn", "grass_wet", true, time.Millisecond, nil)
	q.OnQueryComplete(ctx, "id-2", "lawn", "grass_wet", false, time.Millisecond, context.Canceled)

	s := NewLogStoreHooks(nil)
	s.OnStoreOp(ctx, "save", "lawn", time.Millisecond, nil)
	s.OnStoreOp(ctx, "load", "lawn", time.Millisecond, context.Canceled)
}

// Test implementations
type testQueryHooks struct{ NoopQueryHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testStoreHooks struct{ NoopStoreHooks }
