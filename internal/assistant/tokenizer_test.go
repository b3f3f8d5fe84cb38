package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    []string
	}{
		{
			name:    "empty",
			message: "",
			want:    []string{},
		},
		{
			name:    "punctuation only",
			message: "!!! ?? ...",
			want:    []string{},
		},
		{
			name:    "short words only",
			message: "a b is to",
			want:    []string{},
		},
		{
			name:    "punctuation splits words and case is folded",
			message: "  Hi, my Tomato-leaves are YELLOW!  ",
			want: []string{
				"tomato", "leaves", "are", "yellow",
				"tomato leaves", "leaves are", "are yellow",
				"tomato leaves are", "leaves are yellow",
			},
		},
		{
			name:    "underscore is a word character",
			message: "soil_ph test",
			want:    []string{"soil_ph", "test", "soil_ph test"},
		},
		{
			name:    "non latin letters survive",
			message: "Томат болеет",
			want:    []string{"томат", "болеет", "томат болеет"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.message))
		})
	}
}

func TestTokenize_NGrams(t *testing.T) {
	tokens := Tokenize("tomato early blight treatment")

	assert.Contains(t, tokens, "early blight")
	assert.Contains(t, tokens, "early blight treatment")
	assert.Len(t, tokens, 4+3+2)
}

func TestTokenize_KeepsDuplicates(t *testing.T) {
	tokens := Tokenize("water water water")

	assert.Equal(t, []string{
		"water", "water", "water",
		"water water", "water water",
		"water water water",
	}, tokens)
}
