package sloghelper

import (
	"log/slog"
)

func Bool(key string, value bool) slog.Attr {
	return slog.Attr{
		Key:   key,
		Value: slog.BoolValue(value),
	}
}

// Renders the error as its message. A nil error renders as an empty
// string.
func Error(key string, value error) slog.Attr {
	if value == nil {
		return String(key, "")
	}
	return slog.Attr{
		Key:   key,
		Value: slog.StringValue(value.Error()),
	}
}

func Int(key string, value int) slog.Attr {
	return slog.Attr{
		Key:   key,
		Value: slog.Int64Value(int64(value)),
	}
}

func String(key, value string) slog.Attr {
	return slog.Attr{
		Key:   key,
		Value: slog.StringValue(value),
	}
}
