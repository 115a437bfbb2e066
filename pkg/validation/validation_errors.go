package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing Portuguese labels
var FieldLabels = map[string]string{
	// Candidate fields
	"Name":        "Nome",
	"TaxID":       "CPF",
	"Professions": "Profissões",

	// Contest fields
	"Agency":    "Órgão",
	"Edital":    "Edital",
	"Code":      "Código do Concurso",
	"Positions": "Vagas",

	// Position fields
	"Profession": "Profissão",
	"Vacancies":  "Quantidade de Vagas",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required", "notblank_trim":
		return fmt.Sprintf("%s: Campo obrigatório", label)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: Máximo de %s caracteres", label, param)
		}
		return fmt.Sprintf("%s: Máximo de %s", label, param)

	case "gte":
		return fmt.Sprintf("%s: Deve ser maior ou igual a %s", label, param)

	case "no_nul", "valid_utf8":
		return fmt.Sprintf("%s: Contém caracteres inválidos", label)

	case "no_emoji":
		return fmt.Sprintf("%s: Não pode conter emojis ou símbolos especiais", label)

	default:
		return fmt.Sprintf("%s: Validação falhou (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the label for a field, keeping any slice index
// ("Professions[1]" becomes "Profissões[1]").
func getFieldLabel(fieldName string) string {
	base, index := fieldName, ""
	if i := strings.IndexByte(fieldName, '['); i >= 0 {
		base, index = fieldName[:i], fieldName[i:]
	}
	if label, ok := FieldLabels[base]; ok {
		return label + index
	}
	return formatCamelCase(base) + index
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
