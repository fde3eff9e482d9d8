package pace

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var validate *validator.Validate
var translator ut.Translator

func init() {
	validate = validator.New()
	var ok bool
	translator, ok = ut.New(en.New(), en.New()).GetTranslator("en")
	if !ok {
		panic("pace: failed to get 'en' translator")
	}

	if err := en_translations.RegisterDefaultTranslations(validate, translator); err != nil {
		panic(err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})
}

// Config describes a pacing rate, either as a minimum interval or as a
// maximum number of values per second. At most one may be set; the zero
// Config disables pacing.
type Config struct {
	Interval  time.Duration `json:"interval" validate:"gte=0,excluded_with=PerSecond"`
	PerSecond float64       `json:"perSecond" validate:"omitempty,gt=0"`
}

// Validate checks the Config against its declared tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		verrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}

		var fields FieldErrors
		for _, verror := range verrors {
			field := FieldError{
				Field: verror.Field(),
				Err:   customErrForTag(verror.Tag(), verror),
			}
			fields = append(fields, field)
		}
		return fields
	}

	return nil
}

// MinInterval resolves the Config to the gap enforced between values.
func (c Config) MinInterval() time.Duration {
	if c.PerSecond <= 0 {
		return c.Interval
	}

	ns := float64(time.Second) / c.PerSecond
	if ns >= math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}

	return time.Duration(ns)
}

// WrapConfig is Wrap with the interval taken from a validated Config.
func WrapConfig[T any](p Producer[T], cfg Config, opts ...Option) (*Sequence[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return Wrap(p, cfg.MinInterval(), opts...), nil
}

// FieldError represents a single validation error for a specific field.
type FieldError struct {
	Field string `json:"field"`
	Err   string `json:"error"`
}

// FieldErrors represents a collection of field errors.
type FieldErrors []FieldError

// Error implements the error interface, returning a human-readable
// summary of all field errors.
func (fe FieldErrors) Error() string {
	parts := make([]string, len(fe))
	for i, f := range fe {
		parts[i] = f.Field + ": " + f.Err
	}
	return strings.Join(parts, "; ")
}

// Fields returns the errors keyed by field name.
func (fe FieldErrors) Fields() map[string]string {
	m := make(map[string]string, len(fe))
	for _, f := range fe {
		m[f.Field] = f.Err
	}
	return m
}

func customErrForTag(tag string, verror validator.FieldError) string {
	switch tag {
	case "excluded_with":
		return "Cannot be combined with " + verror.Param()
	default:
		return verror.Translate(translator)
	}
}
