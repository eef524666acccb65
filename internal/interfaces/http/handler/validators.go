package handler

import (
	"errors"

	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/domain/glasses"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the custom binding validators. Call once
// during startup, before the router handles requests.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("paymentmethod", validPaymentMethod)
	}
}

func validPaymentMethod(fl validator.FieldLevel) bool {
	return glasses.PaymentMethod(fl.Field().String()).IsValid()
}

// bindErrorMessage translates a binding failure into the legacy wire
// message. A bad payment method gets its own message; every other
// missing or malformed field collapses into the blanket one.
func bindErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fieldErr := range validationErrs {
			if fieldErr.Tag() == "paymentmethod" {
				return "Payment method must be Installments or Cash"
			}
		}
	}
	return "All fields are required"
}

// installmentBindErrorMessage translates a binding failure on the
// installment payload, which reports per-field messages.
func installmentBindErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		// Errors arrive in struct field order, so a missing amount
		// wins over a missing paid date, matching the legacy checks.
		if validationErrs[0].Field() == "PaidDate" {
			return "Paid date is required"
		}
	}
	return "Amount is required"
}
