package cardimport

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Draft
	}{
		{
			name:  "single card",
			input: "Q: What is 2+2?\nA: 4\n",
			want:  []Draft{{Question: "What is 2+2?", Answer: "4"}},
		},
		{
			name: "multiline answer and separator",
			input: `Q: List the primary colours
A: red
blue
yellow
---
Q: Capital of France?
A: Paris`,
			want: []Draft{
				{Question: "List the primary colours", Answer: "red\nblue\nyellow"},
				{Question: "Capital of France?", Answer: "Paris"},
			},
		},
		{
			name:  "new question closes previous card",
			input: "Q: one\nA: 1\nQ: two\nA: 2\n",
			want: []Draft{
				{Question: "one", Answer: "1"},
				{Question: "two", Answer: "2"},
			},
		},
		{
			name:  "question without answer skipped",
			input: "Q: orphan\n---\nQ: kept\nA: yes\n",
			want:  []Draft{{Question: "kept", Answer: "yes"}},
		},
		{
			name:  "text outside blocks ignored",
			input: "# Notes\nsome intro\n\nQ: x\r\nA: y\r\n",
			want:  []Draft{{Question: "x", Answer: "y"}},
		},
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseText(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasMarkers(t *testing.T) {
	t.Parallel()

	assert.True(t, HasMarkers("Q: a\nA: b"))
	assert.False(t, HasMarkers("Q: only a question"))
	assert.False(t, HasMarkers("The mitochondria is the powerhouse of the cell."))
}
