package dto

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/pvlbrzn/ITSchool/internal/domain/model"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators installs custom binding rules into gin's validator.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		registerErr = registerRules(v)
	})
	return registerErr
}

func registerRules(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"notblank":        notBlank,
		"course_language": courseLanguage,
		"course_type":     courseType,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func courseLanguage(fl validator.FieldLevel) bool {
	return model.ValidLanguage(model.Language(fl.Field().String()))
}

func courseType(fl validator.FieldLevel) bool {
	return model.ValidCourseType(model.CourseType(fl.Field().String()))
}
