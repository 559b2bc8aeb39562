// Package config loads configuration files and environment variables into
// Go structs using Viper and godotenv.
//
// Load resolves a YAML file and an optional .env file for a name, binds
// environment variables (optionally restricted to a prefix), unmarshals the
// result and then applies defaults and validation when the target struct
// implements Defaulter or Validatable.
//
// # Usage
//
//	var cfg queue.Config
//	err := config.Load("knife", &cfg, config.WithEnvPrefix("KNIFE"))
//
// With the KNIFE prefix, KNIFE_POLICY=manual sets the policy key and
// KNIFE_LOGGING_LEVEL=debug sets logging.level.
package config
