package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLimit(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{name: "empty", raw: "", want: 0},
		{name: "valid", raw: "20", want: 20},
		{name: "non-numeric", raw: "abc", want: 0},
		{name: "negative passed through", raw: "-5", want: -5},
		{name: "over maximum passed through", raw: "999", want: 999},
		{name: "trailing garbage", raw: "10x", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLimit(tt.raw))
		})
	}
}
