// Package logx configures tgnotify's structured logging.
//
// This repo uses a small wrapper (logx.Logger) on top of zerolog to keep
// console output readable (short timestamp + short caller) while leaving
// fields structured for JSON sinks. The zero Logger is a safe no-op, so
// library types can hold one without nil checks.
package logx
