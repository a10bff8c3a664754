package utils

import (
	"dental-clinic-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	validate                   *validator.Validate
	regexAtLeastOneSpecialChar = regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar)
	regexAtLeastOneUppercase   = regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase)
	regexPhoneNumber           = regexp.MustCompile(constvars.RegexPhoneNumberGeneral)
	regexBranchCode            = regexp.MustCompile(constvars.RegexBranchCode)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("object_id", validateObjectID)
	validate.RegisterValidation("tooth_number", validateToothNumber)
	validate.RegisterValidation("branch_code", validateBranchCode)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	return len(password) >= 8 &&
		regexAtLeastOneSpecialChar.MatchString(password) &&
		regexAtLeastOneUppercase.MatchString(password)
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return regexPhoneNumber.MatchString(fl.Field().String())
}

func validateObjectID(fl validator.FieldLevel) bool {
	return primitive.IsValidObjectID(fl.Field().String())
}

func validateToothNumber(fl validator.FieldLevel) bool {
	return IsValidToothNumber(int(fl.Field().Int()))
}

func validateBranchCode(fl validator.FieldLevel) bool {
	return regexBranchCode.MatchString(fl.Field().String())
}

// IsValidToothNumber accepts FDI two-digit notation: permanent teeth in
// quadrants 1-4 (teeth 1-8), primary teeth in quadrants 5-8 (teeth 1-5).
// Zero denotes a finding that covers the whole mouth.
func IsValidToothNumber(number int) bool {
	if number == 0 {
		return true
	}
	quadrant, tooth := number/10, number%10
	switch {
	case quadrant >= 1 && quadrant <= 4:
		return tooth >= 1 && tooth <= 8
	case quadrant >= 5 && quadrant <= 8:
		return tooth >= 1 && tooth <= 5
	default:
		return false
	}
}
