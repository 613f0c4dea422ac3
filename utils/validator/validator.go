package validatorx

import (
	"reflect"
	"sync"
	"time"

	gpvalidator "github.com/go-playground/validator/v10"

	"github.com/oleksandr-romashko/contacts-api/model"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()

	// Validate model.Date fields through their underlying time value.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(model.Date); ok {
			return d.Time
		}
		return nil
	}, model.Date{})

	// pastdate: today or earlier. Birthdates are checked here at the
	// boundary; the query engine itself trusts any stored value.
	_ = v.RegisterValidation("pastdate", func(fl gpvalidator.FieldLevel) bool {
		t, ok := fl.Field().Interface().(time.Time)
		if !ok {
			return false
		}
		return !t.After(time.Now())
	})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}
