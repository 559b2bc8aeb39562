// Package validation checks configuration structs and verb arguments.
//
// Struct tag validation (go-playground/validator) is used for loaded
// configuration; the fluent Validator collects argument errors inside a
// verb before it touches any data. Both report INVALID_INPUT errors from
// the errors package.
//
// # Struct Tag Validation
//
//	type Config struct {
//	    Backend      string `mapstructure:"backend" validate:"omitempty,oneof=eager lazy"`
//	    MaxSnapshots int    `mapstructure:"max_snapshots" validate:"gte=0"`
//	}
//	err := validation.Validate(cfg)
//
// # Argument Validation
//
//	err := validation.New().
//	    Min("n", n, 1).
//	    NonZero("step", step).
//	    Validate()
package validation
