// Package telemetry обеспечивает наблюдаемость клиента.
//
// Structured logging через slog: уровень задаётся переменной
// LOG_LEVEL, формат — LOG_FORMAT. Логи идут в stderr, чтобы не
// мешать данным в stdout.
package telemetry
