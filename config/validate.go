package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"

	"github.com/agiangrant/tailcss/css"
	"github.com/agiangrant/tailcss/diag"
	"github.com/agiangrant/tailcss/order"
	"github.com/agiangrant/tailcss/preset"
	"github.com/agiangrant/tailcss/utility"
	"github.com/agiangrant/tailcss/variant"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report fields by their configuration names.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("utility_key", func(fl validator.FieldLevel) bool {
			return utility.ValidKey(fl.Field().String())
		})

		_ = v.RegisterValidation("css_type", func(fl validator.FieldLevel) bool {
			_, ok := css.ParseDataType(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("ordering_key", func(fl validator.FieldLevel) bool {
			_, err := order.ParseKey(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("utility_group", func(fl validator.FieldLevel) bool {
			_, ok := css.ParseGroup(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("modifier_mode", func(fl validator.FieldLevel) bool {
			_, ok := utility.ParseModifierMode(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("dark_mode", func(fl validator.FieldLevel) bool {
			_, ok := variant.ParseDarkMode(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("preset", func(fl validator.FieldLevel) bool {
			_, err := preset.Lookup(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("log_level", func(fl validator.FieldLevel) bool {
			_, err := ParseLevel(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks cfg and reports every problem found.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("configuration is nil")
	}

	var errs error
	if err := validatorInstance().Struct(cfg); err != nil {
		errs = multierr.Append(errs, convertValidationError(err))
	}

	// Static and configured utilities form one layer.
	seen := make(map[string]bool, len(cfg.StaticUtilities)+len(cfg.Utilities))
	for key := range cfg.StaticUtilities {
		seen[key] = true
	}
	for _, u := range cfg.Utilities {
		if seen[u.Key] {
			errs = multierr.Append(errs, &diag.ConflictError{Key: u.Key, Layer: UserLayer})
		}
		seen[u.Key] = true
	}
	return errs
}

func convertValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	var errs error
	for _, fe := range verrs {
		field := fe.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}
		errs = multierr.Append(errs, fmt.Errorf("%s: %s", field, describe(fe)))
	}
	return errs
}

func describe(fe validator.FieldError) string {
	value := fmt.Sprintf("%v", fe.Value())
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must not be empty"
	case "contains":
		return fmt.Sprintf("%q must contain %q", value, fe.Param())
	case "utility_key":
		return fmt.Sprintf("%q is not a valid utility key", value)
	case "css_type":
		return fmt.Sprintf("unknown type %q (known: %s)", value, strings.Join(css.DataTypes(), ", "))
	case "ordering_key":
		return fmt.Sprintf("unknown ordering key %q", value)
	case "utility_group":
		return fmt.Sprintf("unknown group %q", value)
	case "modifier_mode":
		return fmt.Sprintf("unknown modifier mode %q (opacity or template)", value)
	case "dark_mode":
		return fmt.Sprintf("unknown dark mode %q (media or selector)", value)
	case "preset":
		return fmt.Sprintf("unknown preset %q (known: %s)", value, strings.Join(preset.Names(), ", "))
	case "log_level":
		return fmt.Sprintf("unknown level %q", value)
	}
	return fmt.Sprintf("failed %q validation", fe.Tag())
}
