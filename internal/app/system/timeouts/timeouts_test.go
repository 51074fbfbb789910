package timeouts_test

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/commtrack/internal/app/system/timeouts"
	"go.uber.org/zap"
)

func TestConfigure_IgnoresZero(t *testing.T) {
	t.Cleanup(timeouts.Reset)

	timeouts.Configure(timeouts.Config{Page: 30 * time.Second})

	got := timeouts.Current()
	if got.Page != 30*time.Second {
		t.Errorf("Page = %v, want 30s", got.Page)
	}
	if got.Ping != timeouts.DefaultPing {
		t.Errorf("Ping = %v, want default %v", got.Ping, timeouts.DefaultPing)
	}
	if got.Fetch != timeouts.DefaultFetch {
		t.Errorf("Fetch = %v, want default %v", got.Fetch, timeouts.DefaultFetch)
	}
}

func TestReset(t *testing.T) {
	timeouts.Configure(timeouts.Config{Ping: time.Minute, Fetch: time.Minute, Page: time.Minute})
	timeouts.Reset()

	if timeouts.Ping() != timeouts.DefaultPing || timeouts.Fetch() != timeouts.DefaultFetch || timeouts.Page() != timeouts.DefaultPage {
		t.Errorf("Reset did not restore defaults: %+v", timeouts.Current())
	}
}

func TestWithTimeout_Expires(t *testing.T) {
	ctx, cancel := timeouts.WithTimeout(context.Background(), 10*time.Millisecond, zap.NewNop(), "test")
	defer cancel()

	select {
	case <-ctx.Done():
		if ctx.Err() != context.DeadlineExceeded {
			t.Errorf("ctx.Err() = %v, want DeadlineExceeded", ctx.Err())
		}
	case <-time.After(time.Second):
		t.Fatal("context did not expire")
	}
}
