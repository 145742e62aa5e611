package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". A nil error yields an empty Attr, which
// slog handlers skip.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier. An empty id yields an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// TenantID records the tenant whose rule tables were used. An empty id yields
// an empty Attr.
func TenantID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("tenant_id", id)
}

// Record names the kind of configuration record, site or client.
func Record(kind string) slog.Attr {
	return slog.String("record", kind)
}

func Field(name string) slog.Attr {
	return slog.String("field", name)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Outcome groups the counts of a validation pass.
func Outcome(valid bool, errors, warnings int) slog.Attr {
	return slog.Group("outcome",
		slog.Bool("valid", valid),
		slog.Int("errors", errors),
		slog.Int("warnings", warnings),
	)
}
