// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// validCurrencies contains the ISO 4217 currency codes accepted in settings.
var validCurrencies = map[string]bool{
	"AED": true, "ARS": true, "AUD": true, "BDT": true, "BRL": true,
	"CAD": true, "CHF": true, "CLP": true, "CNY": true, "COP": true,
	"CZK": true, "DKK": true, "EGP": true, "EUR": true, "GBP": true,
	"HKD": true, "HUF": true, "IDR": true, "ILS": true, "INR": true,
	"JPY": true, "KES": true, "KRW": true, "MXN": true, "MYR": true,
	"NGN": true, "NOK": true, "NZD": true, "PHP": true, "PKR": true,
	"PLN": true, "RON": true, "RUB": true, "SAR": true, "SEK": true,
	"SGD": true, "THB": true, "TRY": true, "TWD": true, "UAH": true,
	"USD": true, "VND": true, "ZAR": true,
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("iso4217", validateISO4217)
		_ = v.RegisterValidation("theme", validateTheme)
		_ = v.RegisterValidation("sort_field", validateSortField)
		_ = v.RegisterValidation("sort_order", validateSortOrder)
	}
}

func validateISO4217(fl validator.FieldLevel) bool {
	return validCurrencies[fl.Field().String()]
}

func validateTheme(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "light", "dark":
		return true
	}
	return false
}

func validateSortField(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "date", "amount", "category", "status":
		return true
	}
	return false
}

func validateSortOrder(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "asc", "desc":
		return true
	}
	return false
}
