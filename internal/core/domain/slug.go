package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CompanySlug turns a company name into its URL slug: lowercase, with
// internal whitespace runs collapsed to single hyphens.
// "Grupo Incorporador SC" -> "grupo-incorporador-sc".
func CompanySlug(name string) string {
	lower := cases.Lower(language.Und).String(name)
	return strings.Join(strings.Fields(lower), "-")
}
