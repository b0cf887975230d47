// Package validation provides struct tag validation for configuration types
// using go-playground/validator.
//
//	type FactoryConfig struct {
//	    Variant string `mapstructure:"variant" validate:"omitempty,variant"`
//	}
//	err := validation.Validate(cfg)
//
// The "variant" tag accepts any spelling the variant package parses
// ("2", "v2", "variant-2").
//
// Failures are returned as *errors.AppError with code INVALID_CONFIG and a
// "fields" detail listing every offending field.
package validation
