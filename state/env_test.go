package state

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
)

func TestContextWithEnv(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	if ctx == nil {
		t.Fatal("ContextWithEnv() returned nil")
	}

	env := EnvFromContext(ctx)
	if env == nil {
		t.Fatal("EnvFromContext() returned nil")
	}

	if env.start.IsZero() {
		t.Error("Environment start time not set")
	}
}

func TestEnvFromContext(t *testing.T) {
	t.Run("valid context", func(t *testing.T) {
		ctx := ContextWithEnv(context.Background())
		env := EnvFromContext(ctx)

		if env == nil {
			t.Error("Expected non-nil environment")
		}
	})

	t.Run("panic on missing env", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("EnvFromContext() on bare context should panic")
			}
		}()
		EnvFromContext(context.Background())
	})
}

func TestUptime(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	env := EnvFromContext(ctx)

	time.Sleep(10 * time.Millisecond)
	if env.Uptime() <= 0 {
		t.Error("Uptime() should be positive")
	}
}

func TestStdLogRedirect(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	env := EnvFromContext(ctx)

	// no logger set - both must be safe no-ops
	env.RedirectStdLog()
	env.RestoreStdLog()

	env.Log = zaptest.NewLogger(t)
	env.RedirectStdLog()
	if env.restoreStdLog == nil {
		t.Error("RedirectStdLog() did not capture restore function")
	}
	env.RestoreStdLog()
}
