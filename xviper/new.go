// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xviper

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultNameFlag = "name"
	DefaultFileFlag = "file"
)

// Option is a configuration step applied to a Viper instance
type Option func(*viper.Viper) error

func AddConfigPaths(paths ...string) Option {
	return func(v *viper.Viper) error {
		for _, p := range paths {
			v.AddConfigPath(p)
		}

		return nil
	}
}

// SetEnvPrefix sets the environment prefix.  Nested keys map to environment variables with
// dots replaced by underscores, e.g. CAMAD_TOKEN_SIGNINGKEY for token.signingKey.
func SetEnvPrefix(prefix string) Option {
	return func(v *viper.Viper) error {
		v.SetEnvPrefix(prefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		return nil
	}
}

func SetConfigName(name string) Option {
	return func(v *viper.Viper) error {
		v.SetConfigName(name)
		return nil
	}
}

func AutomaticEnv(v *viper.Viper) error {
	v.AutomaticEnv()
	return nil
}

func BindPFlags(fs *pflag.FlagSet) Option {
	return func(v *viper.Viper) error {
		return v.BindPFlags(fs)
	}
}

// BindConfig applies the --file flag if it is set, otherwise the --name flag if it is set.
// Flags that are absent from the flag set are ignored.
func BindConfig(fs *pflag.FlagSet, fileFlag, nameFlag string) Option {
	return func(v *viper.Viper) error {
		if f := fs.Lookup(fileFlag); f != nil && len(f.Value.String()) > 0 {
			v.SetConfigFile(f.Value.String())
			return nil
		}

		if f := fs.Lookup(nameFlag); f != nil && len(f.Value.String()) > 0 {
			v.SetConfigName(f.Value.String())
		}

		return nil
	}
}

// StdOptions is the standard set of configuration steps for a CAMA binary.
func StdOptions(applicationName string, fs *pflag.FlagSet) Option {
	return func(v *viper.Viper) error {
		return apply(
			v,
			AddConfigPaths(
				fmt.Sprintf("/etc/%s", applicationName),
				fmt.Sprintf("$HOME/.%s", applicationName),
				".",
			),
			SetEnvPrefix(applicationName),
			AutomaticEnv,
			SetConfigName(applicationName),
			BindConfig(fs, DefaultFileFlag, DefaultNameFlag),
			BindPFlags(fs),
		)
	}
}

// ReadInConfig reads the configuration file.  A missing file is not an error when
// required is false, since every setting has a default or an environment override.
func ReadInConfig(required bool) Option {
	return func(v *viper.Viper) error {
		err := v.ReadInConfig()
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound && !required {
			return nil
		}

		return errors.Wrap(err, "unable to read configuration")
	}
}

func apply(v *viper.Viper, o ...Option) error {
	for _, f := range o {
		if err := f(v); err != nil {
			return err
		}
	}

	return nil
}

// New creates a Viper instance and applies the given options in order.
func New(o ...Option) (*viper.Viper, error) {
	return Configure(viper.New(), o...)
}

// Configure applies options to an existing Viper instance.
func Configure(v *viper.Viper, o ...Option) (*viper.Viper, error) {
	if err := apply(v, o...); err != nil {
		return nil, err
	}

	return v, nil
}
