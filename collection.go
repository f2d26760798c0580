package modelcheck

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/modelcheck/pkg/rules"
)

// collectionPlaceholder stands in for the binding prefix when a collection
// validator is synthesized without one. The adapter strips it while
// computing error keys, so it must never appear in the final error map.
const collectionPlaceholder = "{{collection}}"

// collectionValidator validates slice and array models element-wise by
// delegating to the element type's validator. Failure paths are rewritten
// to carry the element index: prefix[i].path.
type collectionValidator struct {
	elem   rules.Validator
	prefix string
}

// CollectionOf wraps an element validator into a validator for slices and
// arrays of that element type. Failure paths are prefixed with the given
// binding prefix and the element index.
//
// The adapter synthesizes these on the fly for collection models whose
// element type has a registered validator; explicit use is only needed to
// register a collection validator under its own type.
func CollectionOf(elem rules.Validator, prefix string) rules.Validator {
	if prefix == "" {
		prefix = collectionPlaceholder
	}
	return &collectionValidator{elem: elem, prefix: prefix}
}

func (v *collectionValidator) Validate(ctx *rules.Context) []rules.Failure {
	rv := reflect.ValueOf(ctx.Model)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil
	}

	var failures []rules.Failure
	for i := 0; i < rv.Len(); i++ {
		ev := rv.Index(i)
		for ev.Kind() == reflect.Pointer || ev.Kind() == reflect.Interface {
			if ev.IsNil() {
				break
			}
			ev = ev.Elem()
		}
		if (ev.Kind() == reflect.Pointer || ev.Kind() == reflect.Interface) && ev.IsNil() {
			continue
		}

		for _, f := range v.elem.Validate(ctx.WithModel(ev.Interface())) {
			failures = append(failures, rules.Failure{
				Path:    JoinKey(fmt.Sprintf("%s[%d]", v.prefix, i), f.Path),
				Message: f.Message,
			})
		}
	}
	return failures
}
