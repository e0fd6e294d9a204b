package observability

import (
	"context"
	"testing"

	"github.com/ringbookhq/ringbook/internal/config"
	"github.com/ringbookhq/ringbook/internal/platform/logging"
)

func TestInitUptrace_StaysOff(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{
			name: "toggle off",
			cfg: config.Config{
				UptraceEnabled: false,
				UptraceDSN:     "https://token@api.uptrace.dev/1",
			},
		},
		{
			name: "missing dsn",
			cfg: config.Config{
				UptraceEnabled: true,
				UptraceDSN:     "   ",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.ServiceName = "ringbook-api"
			tt.cfg.ServiceVersion = "dev"
			tt.cfg.AppEnv = config.EnvDev

			shutdown, err := InitUptrace(tt.cfg, logging.NewNop())
			if err != nil {
				t.Fatalf("init uptrace: %v", err)
			}
			if err := shutdown(context.Background()); err != nil {
				t.Fatalf("shutdown uptrace: %v", err)
			}
		})
	}
}
