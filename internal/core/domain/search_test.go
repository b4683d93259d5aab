package domain

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single line", "hello", []string{"hello"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"blank lines kept", "a\n\nb", []string{"a", "", "b"}},
		{"only newline", "\n", []string{""}},
		{"bare carriage return kept inside", "a\rb\n", []string{"a\rb"}},
		{"double trailing newline", "a\n\n", []string{"a", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.input))
		})
	}
}

func TestDocument_Lines(t *testing.T) {
	doc := Document{Path: "poem.txt", Content: "Rust:\nsafe, fast, productive.\nPick three."}

	lines := doc.Lines()

	require.Len(t, lines, 3)
	assert.Equal(t, "Rust:", lines[0])
	assert.Equal(t, "Pick three.", lines[2])
}

func TestDocument_LinesShareContent(t *testing.T) {
	doc := Document{Content: "first\nsecond"}

	lines := doc.Lines()

	require.Len(t, lines, 2)
	base := uintptr(unsafe.Pointer(unsafe.StringData(doc.Content)))
	second := uintptr(unsafe.Pointer(unsafe.StringData(lines[1])))
	assert.Equal(t, base+6, second)
}
