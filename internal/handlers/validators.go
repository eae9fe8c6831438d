package handlers

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// barcodePattern accepts 1 to 64 letters, digits, dots, dashes or underscores.
var barcodePattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

var registerOnce sync.Once

func validateBarcode(fl validator.FieldLevel) bool {
	return barcodePattern.MatchString(fl.Field().String())
}

// RegisterValidators adds the custom binding rules to gin's validator.
// It is safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		err = v.RegisterValidation("barcode", validateBarcode)
	})
	return err
}
