package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestWindowContains checks the range boundaries are inclusive
func TestWindowContains(t *testing.T) {
	w := Window{Label: WindowOnline, From: 1, To: 120}

	tests := []struct {
		name   string
		number int
		want   bool
	}{
		{name: "below the window", number: 0, want: false},
		{name: "first number", number: 1, want: true},
		{name: "last number", number: 120, want: true},
		{name: "above the window", number: 121, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.Contains(tt.number))
		})
	}
}

// TestWindowSize checks an inverted range counts as empty
func TestWindowSize(t *testing.T) {
	assert.Equal(t, 120, Window{From: 1, To: 120}.Size())
	assert.Equal(t, 1, Window{From: 5, To: 5}.Size())
	assert.Equal(t, 0, Window{From: 201, To: 200}.Size())
}
