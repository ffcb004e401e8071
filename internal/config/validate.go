package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"
)

// SupportedSchema is the range of config schema versions this build reads.
const SupportedSchema = "^1.0.0"

// ErrInvalidConfig is matched by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

var (
	validate     *validator.Validate //nolint:gochecknoglobals // Validators cache struct metadata; build once
	validateOnce sync.Once           //nolint:gochecknoglobals // Guards validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0] //nolint:mnd // name,opts
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("schema_version", validSchemaVersion)
		validate = v
	})
	return validate
}

// validSchemaVersion accepts semantic versions inside SupportedSchema.
func validSchemaVersion(fl validator.FieldLevel) bool {
	ver, err := semver.NewVersion(fl.Field().String())
	if err != nil {
		return false
	}
	constraint, err := semver.NewConstraint(SupportedSchema)
	if err != nil {
		return false
	}
	return constraint.Check(ver)
}

// Validate checks every field. The returned error matches ErrInvalidConfig
// and lists each problem as "section.field: reason".
func (c *Config) Validate() error {
	err := getValidator().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, fmt.Sprintf("%s: %s", fieldPath(fe), describe(fe)))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
}

// fieldPath turns "Config.view.page_size" into "view.page_size".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "url":
		return fmt.Sprintf("%q is not a valid URL", fe.Value())
	case "oneof":
		return fmt.Sprintf("%v must be one of [%s]", fe.Value(), fe.Param())
	case "min":
		return fmt.Sprintf("%v must be at least %s", fe.Value(), fe.Param())
	case "max":
		return fmt.Sprintf("%v must be at most %s", fe.Value(), fe.Param())
	case "gt":
		return fmt.Sprintf("%v must be greater than %s", fe.Value(), fe.Param())
	case "hexcolor":
		return fmt.Sprintf("%q is not a hex color", fe.Value())
	case "schema_version":
		return fmt.Sprintf("%q is not a supported schema version (%s)", fe.Value(), SupportedSchema)
	default:
		return "failed " + fe.Tag()
	}
}
