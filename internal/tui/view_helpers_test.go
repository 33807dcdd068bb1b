package tui

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestFitText_KeepsShortText(t *testing.T) {
	assert.Equal(t, "hello", fitText("hello", 10))
	assert.Equal(t, "hello", fitText("hello", 5))
}

func TestFitText_TruncatesWithEllipsis(t *testing.T) {
	assert.Equal(t, "hello w...", fitText("hello world!", 10))
}

func TestFitText_TruncatesCyrillicOnRuneBoundary(t *testing.T) {
	got := fitText("Привет, как дела?", 10)

	assert.True(t, utf8.ValidString(got), "truncation must not cut a rune in half")
	assert.Equal(t, "Привет,...", got)
}

func TestFitText_TinyWidthStaysValidUTF8(t *testing.T) {
	got := fitText("Привет", 2)

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "Пр", got)
}

func TestFitText_NonPositiveWidthReturnsInput(t *testing.T) {
	assert.Equal(t, "Привет", fitText("Привет", 0))
	assert.Equal(t, "Привет", fitText("Привет", -1))
}
