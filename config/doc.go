// Package config loads and validates creational configuration.
//
// It uses Viper to read an optional config.yml and godotenv to read an
// optional .env file, then lets environment variables override file values
// (FACTORY_VARIANT=2 overrides factory.variant).
//
// # Configuration
//
//	name: demo
//	environment: development
//	factory:
//	  variant: "2"          # pin a variant; empty means "use priority"
//	  priority: ["1", "2"]
//	  collaboration: permit # or reject
//	pool:
//	  enabled: true
//	  max_idle: 4
//	logging:
//	  level: info
//	  format: json
//
// # Usage
//
//	cfg, err := config.Load("demo")
package config
