// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) with a console encoding suited for an
// interactive CLI tool.
//
// # Run Correlation
//
// Every command invocation gets a unique run_id. The WithRunID helper
// attaches it to the root logger, ensuring that all logs produced by a single
// run can be correlated when output is collected centrally.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log = logger.WithRunID(log)
//	log.Info("server launched")
package logger
