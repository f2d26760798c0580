package modelcheck

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"gopkg.in/yaml.v3"
)

// Visitor performs the host pipeline's default validation over a model and
// writes failures into the action context's error map.
type Visitor interface {
	Visit(actx *ActionContext, state ValidationState, prefix string, model any)
}

// TagValidator is the default Visitor: struct-tag validation backed by
// go-playground/validator with english translations. Field names in error
// keys follow json tags. Non-struct models (and non-struct collection
// elements) are ignored; the default pass must never raise.
type TagValidator struct {
	validate  *validator.Validate
	trans     ut.Translator
	overrides map[string]string
}

// TagOption configures the TagValidator.
type TagOption func(*TagValidator) error

// WithMessageOverrides replaces the translated message for the given
// validator tags. Templates may reference {field} and {param}.
func WithMessageOverrides(overrides map[string]string) TagOption {
	return func(t *TagValidator) error {
		for tag, tmpl := range overrides {
			t.overrides[tag] = tmpl
		}
		return nil
	}
}

// WithMessageOverridesFile loads message overrides from a YAML file
// mapping validator tags to message templates:
//
//	required: "{field} is required"
//	email: "{field} must be a valid email address"
func WithMessageOverridesFile(path string) TagOption {
	return func(t *TagValidator) error {
		content, err := os.ReadFile(path)
		if err != nil {
			return errors.Join(ErrLoadingOverrides, err)
		}

		overrides := make(map[string]string)
		if err := yaml.Unmarshal(content, &overrides); err != nil {
			return errors.Join(ErrLoadingOverrides, err)
		}
		for tag, tmpl := range overrides {
			t.overrides[tag] = tmpl
		}
		return nil
	}
}

// NewTagValidator constructs a TagValidator with english translations.
func NewTagValidator(opts ...TagOption) (*TagValidator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Error keys should use wire names, not Go field names.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	trans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	t := &TagValidator{
		validate:  validate,
		trans:     trans,
		overrides: make(map[string]string),
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Engine exposes the underlying validator for custom tag registration.
func (t *TagValidator) Engine() *validator.Validate {
	return t.validate
}

// Visit implements Visitor. Failures are appended to the error map; the
// tag pass is additive with respect to keys already populated by a typed
// validator.
func (t *TagValidator) Visit(actx *ActionContext, state ValidationState, prefix string, model any) {
	if actx == nil || state.Suppressed(prefix) {
		return
	}
	if actx.Errors == nil {
		actx.Errors = NewErrors()
	}

	value, typ, ok := indirect(model)
	if !ok {
		return
	}

	switch typ.Kind() {
	case reflect.Struct:
		t.visitStruct(actx, prefix, value)
	case reflect.Slice, reflect.Array:
		rv := reflect.ValueOf(value)
		for i := 0; i < rv.Len(); i++ {
			elem, elemTyp, ok := indirect(rv.Index(i).Interface())
			if !ok || elemTyp.Kind() != reflect.Struct {
				continue
			}
			key := JoinKey(prefix, fmt.Sprintf("[%d]", i))
			if state.Suppressed(key) {
				continue
			}
			t.visitStruct(actx, key, elem)
		}
	}
}

func (t *TagValidator) visitStruct(actx *ActionContext, prefix string, model any) {
	err := t.validate.Struct(model)
	if err == nil {
		return
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Not a tag failure (e.g. the model cannot be introspected); the
		// default pass stays silent rather than surfacing engine errors.
		return
	}

	for _, fe := range verrs {
		actx.Errors.Add(JoinKey(prefix, fieldPath(fe)), t.message(fe))
	}
}

// fieldPath converts the engine's namespace ("User.profile.name") into a
// relative property path ("profile.name") by dropping the root segment.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// message renders the failure message, preferring a configured override
// for the failed tag over the engine's translation.
func (t *TagValidator) message(fe validator.FieldError) string {
	if tmpl, ok := t.overrides[fe.Tag()]; ok {
		msg := strings.ReplaceAll(tmpl, "{field}", fe.Field())
		return strings.ReplaceAll(msg, "{param}", fe.Param())
	}
	return fe.Translate(t.trans)
}
