package request

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jefdiaz/balanceone-api/internal/domain/entity"
)

// RegisterValidators installs custom binding validators on Gin's
// validator engine. Called once during startup.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("receiptdate", func(fl validator.FieldLevel) bool {
		return entity.IsValidReceiptDate(fl.Field().String())
	})
}
