package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "Nguyen Van A", "Nguyen Van A"},
		{"percent escaped", "100%", `100\%`},
		{"underscore escaped", "van_a", `van\_a`},
		{"backslash escaped first", `a\b`, `a\\b`},
		{"combined", `\%_`, `\\\%\_`},
		// Operator characters of other query languages stay literal
		// text; only LIKE metacharacters need neutralizing.
		{"dollar passes through", "$where", "$where"},
		{"braces pass through", "{$gt: 1}", "{$gt: 1}"},
		{"brackets pass through", "[a-z]#", "[a-z]#"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLike(tt.in))
		})
	}
}
