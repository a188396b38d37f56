package extract_test

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redline/internal/extract"
)

// buildDocx assembles a minimal DOCX archive whose word/document.xml contains
// the given paragraphs.
func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var body bytes.Buffer
	body.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>`)
		if err := xmlEscape(&body, p); err != nil {
			t.Fatal(err)
		}
		body.WriteString(`</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write(body.Bytes())
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func xmlEscape(buf *bytes.Buffer, s string) error {
	for _, r := range s {
		switch r {
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '&':
			buf.WriteString("&amp;")
		default:
			buf.WriteRune(r)
		}
	}
	return nil
}

func TestText_PlainText(t *testing.T) {
	text, err := extract.Text("notes.txt", []byte("1. Purpose\nclean things"))
	require.NoError(t, err)
	assert.Equal(t, "1. Purpose\nclean things", text)
}

func TestText_Docx(t *testing.T) {
	data := buildDocx(t, "1. Purpose", "This SOP defines cleaning steps.", "2. Scope", "All lab equipment.")

	text, err := extract.Text("sop.docx", data)
	require.NoError(t, err)
	assert.Equal(t, "1. Purpose\nThis SOP defines cleaning steps.\n2. Scope\nAll lab equipment.", text)
}

func TestText_DocxSkipsEmptyParagraphs(t *testing.T) {
	data := buildDocx(t, "first", "", "   ", "second")

	text, err := extract.Text("sop.docx", data)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond", text)
}

func TestText_DocRoutedThroughDocx(t *testing.T) {
	// A real DOCX mislabeled .doc still extracts.
	data := buildDocx(t, "legacy name, modern format")
	text, err := extract.Text("sop.doc", data)
	require.NoError(t, err)
	assert.Equal(t, "legacy name, modern format", text)

	// A genuine binary .doc is not a ZIP and fails with a descriptive error.
	_, err = extract.Text("sop.doc", []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1})
	assert.Error(t, err)
}

func TestText_DocxWithoutDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = extract.Text("sop.docx", buf.Bytes())
	assert.ErrorContains(t, err, "word/document.xml")
}

func TestText_UnsupportedFormat(t *testing.T) {
	_, err := extract.Text("image.png", []byte("x"))
	assert.ErrorIs(t, err, extract.ErrUnsupportedFormat)
}

func TestText_CorruptPDF(t *testing.T) {
	_, err := extract.Text("broken.pdf", []byte("not a pdf at all"))
	assert.Error(t, err)
}
