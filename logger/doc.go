// Package logger provides structured logging for knife queues using zerolog.
//
// It supports JSON and console output, level configuration and
// component-scoped loggers with structured fields. Queues log through
// logger.Get("knife.queue") unless a logger is injected, and the verb
// logging wrapper records every verb at debug level.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("knife.queue")
//	log.Debug("verb completed", logger.Fields(logger.FieldVerb, "map"))
package logger
