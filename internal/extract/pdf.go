package extract

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// pdfText extracts text from a PDF by walking each page's content stream
// operators. Best effort: pages whose streams yield nothing are skipped, and
// a PDF with no extractable text at all (e.g. scanned images) errors so the
// caller can surface a useful failure instead of comparing empty documents.
func pdfText(data []byte) (string, error) {
	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return "", fmt.Errorf("reading pdf: %w", err)
	}

	var out strings.Builder
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		pageText := pageContentText(ctx, pageNr)
		if pageText == "" {
			continue
		}
		if out.Len() > 0 {
			out.WriteByte('\n')
		}
		out.WriteString(pageText)
	}

	if out.Len() == 0 {
		return "", fmt.Errorf("no extractable text in pdf (%d pages)", ctx.PageCount)
	}
	return out.String(), nil
}

func pageContentText(ctx *model.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
	if err != nil {
		return ""
	}
	stream, err := io.ReadAll(r)
	if err != nil || len(stream) == 0 {
		return ""
	}
	return contentStreamText(stream)
}

// pdfLiteral matches PDF string literals: (text).
var pdfLiteral = regexp.MustCompile(`\(((?:\\.|[^\\)])*)\)`)

// contentStreamText walks text-showing operators (Tj, TJ, ') in a page
// content stream and joins their string literals, inserting breaks for the
// positioning operators (Td, TD, T*) so lines stay line-shaped.
func contentStreamText(stream []byte) string {
	var sb strings.Builder

	for _, line := range bytes.Split(stream, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		switch {
		case bytes.HasSuffix(line, []byte("Tj")) || bytes.HasSuffix(line, []byte("TJ")):
			for _, m := range pdfLiteral.FindAllSubmatch(line, -1) {
				sb.WriteString(decodePDFString(m[1]))
			}
		case bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("(")):
			for _, m := range pdfLiteral.FindAllSubmatch(line, -1) {
				sb.WriteByte('\n')
				sb.WriteString(decodePDFString(m[1]))
			}
		case bytes.HasSuffix(line, []byte("Td")) || bytes.HasSuffix(line, []byte("TD")) || bytes.Equal(line, []byte("T*")):
			sb.WriteByte('\n')
		}
	}

	return tidyPDFText(sb.String())
}

// decodePDFString resolves backslash escapes in a PDF string literal,
// including octal byte escapes like \040.
func decodePDFString(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch c := raw[i]; c {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '\\', '(', ')':
			sb.WriteByte(c)
		default:
			if c >= '0' && c <= '7' {
				val := int(c - '0')
				for n := 0; n < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; n++ {
					i++
					val = val*8 + int(raw[i]-'0')
				}
				sb.WriteByte(byte(val))
			} else {
				sb.WriteByte(c)
			}
		}
	}
	return sb.String()
}

// tidyPDFText collapses runs of blank lines and trims each line, keeping the
// line structure the positioning operators produced.
func tidyPDFText(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
