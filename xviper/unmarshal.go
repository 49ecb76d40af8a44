// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xviper

import (
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// DecodeHook is the mapstructure hook used for all configuration sections: durations
// and comma-separated lists may be written as strings.
func DecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		mapstructure.TextUnmarshallerHookFunc(),
	)
}

type keyUnmarshaler interface {
	UnmarshalKey(string, interface{}, ...viper.DecoderConfigOption) error
}

// UnmarshalKey decodes one configuration section with the standard decode hook.
func UnmarshalKey(u keyUnmarshaler, key string, target interface{}) error {
	if err := u.UnmarshalKey(key, target, viper.DecodeHook(DecodeHook())); err != nil {
		return errors.Wrapf(err, "unable to unmarshal configuration key [%s]", key)
	}

	return nil
}

type defaulter interface {
	SetDefault(string, interface{})
}

// Defaults maps configuration keys onto their default values
type Defaults map[string]interface{}

// ApplyDefaults sets each default on the given Viper, or anything else with SetDefault
func ApplyDefaults(d defaulter, v Defaults) {
	for key, value := range v {
		d.SetDefault(key, value)
	}
}

type unmarshaler interface {
	Unmarshal(interface{}, ...viper.DecoderConfigOption) error
}

// Unmarshal decodes the whole configuration with the standard decode hook.  Unlike
// UnmarshalKey, environment overrides apply to every key that has a default.
func Unmarshal(u unmarshaler, target interface{}) error {
	return errors.Wrap(
		u.Unmarshal(target, viper.DecodeHook(DecodeHook())),
		"unable to unmarshal configuration",
	)
}
