package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentStreamText(t *testing.T) {
	stream := []byte("BT\n/F1 12 Tf\n72 720 Td\n(1. Purpose) Tj\n0 -14 Td\n(Clean the tank.) Tj\nET")

	text := contentStreamText(stream)
	assert.Equal(t, "1. Purpose\nClean the tank.", text)
}

func TestContentStreamText_TJArrays(t *testing.T) {
	stream := []byte("[(Hel) -20 (lo) -30 ( world)] TJ")
	assert.Equal(t, "Hello world", contentStreamText(stream))
}

func TestContentStreamText_NextLineOperator(t *testing.T) {
	stream := []byte("(first) Tj\n(second) '")
	assert.Equal(t, "first\nsecond", contentStreamText(stream))
}

func TestContentStreamText_IgnoresNonTextOperators(t *testing.T) {
	stream := []byte("q\n1 0 0 1 50 50 cm\n/Im0 Do\nQ")
	assert.Equal(t, "", contentStreamText(stream))
}

func TestDecodePDFString(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`plain`, "plain"},
		{`a\(b\)c`, "a(b)c"},
		{`tab\there`, "tab\there"},
		{`back\\slash`, `back\slash`},
		{`octal\040space`, "octal space"},
		{`\101BC`, "ABC"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, decodePDFString([]byte(tc.in)))
	}
}

func TestTidyPDFText(t *testing.T) {
	assert.Equal(t, "a\nb", tidyPDFText("  a  \n\n\n b \n"))
	assert.Equal(t, "", tidyPDFText("\n \n"))
}
