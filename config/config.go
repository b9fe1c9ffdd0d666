// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/adreel-cli/adreel/constant"
	"github.com/adreel-cli/adreel/filesystem"
	"github.com/adreel-cli/adreel/where"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// DotEnv is the file consulted for ADREEL_* variables before environment binding.
var DotEnv = ".env"

// Setup initializes the global configuration state, including defaults, environment bindings, and localized file resolution.
func Setup() error {
	// A .env file is optional; anything else wrong with it is reported.
	if err := godotenv.Load(DotEnv); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	viper.SetConfigName(constant.Adreel)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Adreel)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}
