package jsondec

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
)

// Bind finishes the object builder and binds the decoded fields onto struct
// type T using key resolution: the json struct tag first, then the
// snake_case form of the field name. Decoded values are assigned when
// assignable or convertible to the field type; anything else fails with a
// key-annotated frame. (Free function for Go version compatibility.)
func Bind[T any](b *ObjectBuilder) Decoder[T] {
	inner := b.Decoder()
	var t T
	rt := reflect.TypeOf(t)
	if rt == nil || rt.Kind() != reflect.Struct {
		return Decoder[T]{run: func(_ context.Context, v any) (T, *DecodeError) {
			var zero T
			return zero, fail(CodeTypeMismatch, "Bind[T] requires struct T", v)
		}}
	}
	idxByKey := make(map[string]int)
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		key := resolveStructKey(sf)
		if key == "" || key == "-" {
			continue
		}
		idxByKey[key] = i
	}
	return Decoder[T]{run: func(ctx context.Context, v any) (T, *DecodeError) {
		var zero T
		m, derr := inner.run(ctx, v)
		if derr != nil {
			return zero, derr
		}
		rv := reflect.New(rt).Elem()
		for key, val := range m {
			idx, ok := idxByKey[key]
			if !ok {
				continue
			}
			fv := rv.Field(idx)
			if val == nil {
				// Leave the zero value for absent/null decodes.
				continue
			}
			vv := reflect.ValueOf(val)
			switch {
			case vv.Type().AssignableTo(fv.Type()):
				fv.Set(vv)
			case vv.Type().ConvertibleTo(fv.Type()):
				fv.Set(vv.Convert(fv.Type()))
			default:
				derr := fail(CodeTypeMismatch,
					fmt.Sprintf("cannot bind %T to field %s", val, rt.Field(idx).Name), v)
				derr.Frames[0].Key = key
				return zero, derr
			}
		}
		return rv.Interface().(T), nil
	}}
}

// resolveStructKey maps a struct field to its decoded-field key.
func resolveStructKey(sf reflect.StructField) string {
	if tag, ok := sf.Tag.Lookup("json"); ok {
		if name, _, _ := strings.Cut(tag, ","); name != "" {
			return name
		}
	}
	return strcase.ToSnake(sf.Name)
}
