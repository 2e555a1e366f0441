package catalog_test

import (
	"testing"

	"github.com/fwojciec/catalog"
	"github.com/stretchr/testify/assert"
)

func TestIsTerm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"Fall 2022", true},
		{"Winter 2023", true},
		{"Summer 2023", true},
		{"Spring 2023", false},
		{"fall 2022", false},
		{"Fall 22", false},
		{"Not offered", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, catalog.IsTerm(tt.input))
		})
	}
}

func TestFilterTerms(t *testing.T) {
	t.Parallel()

	t.Run("keeps vocabulary terms in source order", func(t *testing.T) {
		t.Parallel()

		got := catalog.FilterTerms([]string{"Winter 2023", "New!", "Fall 2022", "Summer 2023"})

		assert.Equal(t, []string{"Winter 2023", "Fall 2022", "Summer 2023"}, got)
	})

	t.Run("returns empty slice when nothing matches", func(t *testing.T) {
		t.Parallel()

		got := catalog.FilterTerms([]string{"This course is not offered"})

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestTermAbbrev(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Fall", catalog.TermAbbrev("Fall 2022"))
	assert.Equal(t, "Winter", catalog.TermAbbrev("  Winter 2023 "))
	assert.Equal(t, "Summer", catalog.TermAbbrev("Summer"))
	assert.Empty(t, catalog.TermAbbrev(""))
}

func TestTermCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		term   string
		want   string
		wantOK bool
	}{
		{"Fall 2022", "202209", true},
		{"Winter 2023", "202301", true},
		{"Summer 2023", "202305", true},
		{"Spring 2023", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			t.Parallel()

			got, ok := catalog.TermCode(tt.term)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
