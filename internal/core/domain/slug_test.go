package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompanySlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases and hyphenates", "Grupo Incorporador SC", "grupo-incorporador-sc"},
		{"single word", "Prime", "prime"},
		{"collapses whitespace runs", "Construtora   Atlântico", "construtora-atlântico"},
		{"trims surrounding space", "  Imobiliária Litoral  ", "imobiliária-litoral"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompanySlug(tt.in))
		})
	}
}

func TestFilterByCompanySlug(t *testing.T) {
	listings := fixtureListings()
	listings[0].Company = "Grupo Incorporador SC"

	got := FilterByCompanySlug(listings, "grupo-incorporador-sc")

	assert.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)

	assert.Empty(t, FilterByCompanySlug(listings, "nobody"))
}
