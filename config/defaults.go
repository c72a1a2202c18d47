package config

import (
	"reflect"

	"dario.cat/mergo"

	"github.com/agiangrant/tailcss/preset"
	"github.com/agiangrant/tailcss/variant"
)

// Defaults is what a configuration file gets for the keys it leaves out.
func Defaults() Config {
	strict := true
	return Config{
		DarkMode: string(variant.DarkMedia),
		Features: Features{StrictMode: &strict},
		Presets:  []string{preset.NameDefault},
		Logging:  LoggingConfig{Level: "info"},
	}
}

// Starter is the configuration "init" writes.
func Starter() Config {
	cfg := Defaults()
	cfg.Content = []string{
		"src/**/*.html",
		"src/**/*.js",
		"src/**/*.jsx",
		"src/**/*.ts",
		"src/**/*.tsx",
	}
	return cfg
}

// ApplyDefaults fills the zero fields of cfg from Defaults. Set fields are
// left alone; a flag pointer that is set keeps its value even when false.
func ApplyDefaults(cfg *Config) error {
	return mergo.Merge(cfg, Defaults(), mergo.WithTransformers(keepSetFlags{}))
}

// keepSetFlags stops mergo from descending into a non-nil *bool, where a
// false would count as empty and be replaced.
type keepSetFlags struct{}

func (keepSetFlags) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if typ != reflect.TypeOf((*bool)(nil)) {
		return nil
	}
	return func(dst, src reflect.Value) error {
		if dst.CanSet() && dst.IsNil() {
			dst.Set(src)
		}
		return nil
	}
}
