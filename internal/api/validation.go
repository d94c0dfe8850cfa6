package api

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/pageza/dippingsauce/backend/internal/types"
)

var registerOnce sync.Once

// RegisterValidators teaches gin's validator to report fields by their
// json or form name and to look inside types.Optional fields
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(payloadName)
		v.RegisterCustomTypeFunc(optionalValue,
			types.Optional[string]{},
			types.Optional[int]{},
			types.Optional[uint]{},
			types.Optional[bool]{},
		)
	})
}

func payloadName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// optionalValue hands the validator the pointer held by an Optional, so an
// absent or null field is skipped by omitempty and a present one is checked
func optionalValue(field reflect.Value) interface{} {
	if !field.FieldByName("Set").Bool() {
		return nil
	}
	return field.FieldByName("Value").Interface()
}
