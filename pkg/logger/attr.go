package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Error records err under "error". A nil err yields an empty Attr, which
// slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errs under "errors", keyed by position.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Kind records a document kind such as "cpf" or "cnpj".
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// Value records a document value. Callers pass the masked form.
func Value(masked string) slog.Attr {
	return slog.String("value", masked)
}

func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

func Status(code int) slog.Attr {
	return slog.Int("status", code)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
