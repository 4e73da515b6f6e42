package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataURIContentType(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "png", input: "data:image/png;base64,iVBORw0KGgo=", want: "image/png"},
		{name: "webp", input: "data:image/webp;base64,UklGRg==", want: "image/webp"},
		{name: "missing base64 marker", input: "data:image/png,plain", want: ""},
		{name: "not a data uri", input: "https://cdn.example.com/a.png", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dataURIContentType(tt.input))
		})
	}
}
