package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		firstName string
		lastName  string
	}{
		{name: "two tokens", input: "John Doe", firstName: "John", lastName: "Doe"},
		{name: "middle name joins into last", input: "John Michael Doe", firstName: "John", lastName: "Michael Doe"},
		{name: "irregular whitespace", input: "  John   Doe  ", firstName: "John", lastName: "Doe"},
		{name: "single token", input: "John", firstName: "John", lastName: ""},
		{name: "empty", input: "", firstName: "", lastName: ""},
		{name: "whitespace only", input: "   ", firstName: "", lastName: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := SplitName(tt.input)
			assert.Equal(t, tt.firstName, first)
			assert.Equal(t, tt.lastName, last)
		})
	}
}
