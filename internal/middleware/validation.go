package middleware

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/usc-bienestar/backend/internal/app/models"
)

// RegisterValidators installs the catalog validators on gin's binding
// engine. Called once during router setup.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("coursecategory", func(fl validator.FieldLevel) bool {
		return models.CourseCategory(fl.Field().String()).Valid()
	})

	v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		return models.Weekday(fl.Field().String()).Valid()
	})

	v.RegisterValidation("adminrole", func(fl validator.FieldLevel) bool {
		return models.AdminRole(fl.Field().String()).Valid()
	})
}
