package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLikePattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		term     string
		expected string
	}{
		{name: "plain term unchanged", term: "furto", expected: "furto"},
		{name: "percent escaped", term: "100%", expected: `100\%`},
		{name: "underscore escaped", term: "agente_id", expected: `agente\_id`},
		{name: "backslash escaped", term: `a\b`, expected: `a\\b`},
		{name: "mixed metacharacters", term: `%_\`, expected: `\%\_\\`},
		{name: "empty term", term: "", expected: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, escapeLikePattern(tc.term))
		})
	}
}
