package state

import (
	"context"
	"testing"
	"time"
)

func TestEnvRoundTrip(t *testing.T) {
	ctx := ContextWithEnv(context.Background())

	env := EnvFromContext(ctx)
	if env == nil {
		t.Fatalf("EnvFromContext() returned nil")
	}
	if EnvFromContext(ctx) != env {
		t.Errorf("repeated lookups return different env instances")
	}
	if env.Uptime() < 0 || env.Uptime() > time.Minute {
		t.Errorf("Uptime() = %v, not plausible for a fresh env", env.Uptime())
	}
}

func TestEnvFromContextPanicsWithoutEnv(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("EnvFromContext() on bare context did not panic")
		}
	}()
	EnvFromContext(context.Background())
}
