package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// New returns a validator with the project's custom tags registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("notblank_trim", NotBlankTrim)
	_ = v.RegisterValidation("no_emoji", NoEmoji)
	_ = v.RegisterValidation("no_nul", NoNUL)
	_ = v.RegisterValidation("valid_utf8", ValidUTF8)
}

// NotBlankTrim rejects strings made only of whitespace. Use together with
// required, which already rejects the empty string.
func NotBlankTrim(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// NoEmoji validates that a string does not contain emoji characters
func NoEmoji(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, r := range val {
		// Supplementary planes are mostly emoji and pictographs
		if r > 0x1F000 {
			return false
		}
		if unicode.In(r, unicode.So, unicode.Sk) {
			return false
		}
	}
	return true
}

// NoNUL rejects strings containing a NUL byte, which Postgres TEXT cannot store.
func NoNUL(fl validator.FieldLevel) bool {
	return !strings.ContainsRune(fl.Field().String(), 0)
}

// ValidUTF8 rejects byte sequences that are not valid UTF-8.
func ValidUTF8(fl validator.FieldLevel) bool {
	return utf8.ValidString(fl.Field().String())
}
