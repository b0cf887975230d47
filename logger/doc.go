// Package logger provides structured logging for creational using zerolog.
//
// Factory decorators, pools and the bootstrap App log through a *Logger with
// map-shaped fields, so call sites stay independent of zerolog itself.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("pool")
//	log.Info("instance reused", logger.Fields(logger.FieldPool, "widgets"))
package logger
