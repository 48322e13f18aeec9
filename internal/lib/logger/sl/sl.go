package sl

import "log/slog"

// Err возвращает slog-атрибут с текстом ошибки
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
