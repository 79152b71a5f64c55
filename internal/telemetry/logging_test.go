package telemetry

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func newBufLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestFromContext(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		logger, buf := newBufLogger()
		ctx := WithLogger(context.Background(), logger)

		FromContext(ctx).Debug("ping")

		if !strings.Contains(buf.String(), "ping") {
			t.Errorf("expected record in buffer, got %q", buf.String())
		}
	})

	t.Run("missing logger falls back to default", func(t *testing.T) {
		if FromContext(context.Background()) != slog.Default() {
			t.Error("expected the default logger")
		}
	})
}

func TestLoggerAttrs(t *testing.T) {
	tests := []struct {
		name string
		with func(*slog.Logger) *slog.Logger
		want string
	}{
		{
			name: "sheet id",
			with: func(l *slog.Logger) *slog.Logger { return WithSheetID(l, 42) },
			want: "sheet_id=42",
		},
		{
			name: "request id",
			with: func(l *slog.Logger) *slog.Logger { return WithRequestID(l, "req-1") },
			want: "request_id=req-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufLogger()
			tt.with(logger).Info("op")

			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("expected %q in %q", tt.want, buf.String())
			}
		})
	}
}
