package textextract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/ebolowa/contract-insight/internal/common"
)

// extractPDF decodes page content streams in page order and harvests the
// text-showing operators. pdfcpu handles structure validation and stream
// decoding; we only walk the operators.
func (e *Extractor) extractPDF(ctx context.Context, data []byte) (string, int, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	pdfCtx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return "", 0, fmt.Errorf("read pdf: %w: %v", common.ErrCorruptDocument, err)
	}

	pageCount := pdfCtx.PageCount
	if pageCount == 0 {
		return "", 0, fmt.Errorf("pdf has no pages: %w", common.ErrCorruptDocument)
	}
	limit := pageCount
	if e.cfg.MaxPages > 0 && e.cfg.MaxPages < limit {
		limit = e.cfg.MaxPages
	}

	var sb strings.Builder
	for page := 1; page <= limit; page++ {
		if err := ctx.Err(); err != nil {
			return "", pageCount, err
		}
		r, err := pdfcpu.ExtractPageContent(pdfCtx, page)
		if err != nil {
			return "", pageCount, fmt.Errorf("page %d content: %w: %v", page, common.ErrCorruptDocument, err)
		}
		if r == nil {
			continue
		}
		content, err := io.ReadAll(r)
		if err != nil {
			return "", pageCount, fmt.Errorf("page %d read: %w: %v", page, common.ErrCorruptDocument, err)
		}
		pageText := decodeContentText(content)
		if pageText != "" {
			sb.WriteString(pageText)
			sb.WriteString("\n")
		}
	}

	return sb.String(), pageCount, nil
}

// decodeContentText walks a decoded PDF content stream and collects the
// arguments of the text-showing operators (Tj, TJ, ', "). Literal strings
// honor the standard escapes; hex strings are decoded byte-wise. TD/Td/T*
// operators become line breaks so paragraph reading order survives.
func decodeContentText(content []byte) string {
	var out strings.Builder
	i := 0
	n := len(content)

	// pending holds string arguments until we know the operator consuming them
	var pending []string

	flushAsText := func() {
		for _, s := range pending {
			out.WriteString(s)
		}
		pending = pending[:0]
	}

	for i < n {
		c := content[i]
		switch {
		case c == '(':
			s, next := readLiteralString(content, i)
			pending = append(pending, s)
			i = next
		case c == '<' && i+1 < n && content[i+1] != '<':
			s, next := readHexString(content, i)
			pending = append(pending, s)
			i = next
		case c == '[':
			// TJ arrays interleave strings and kerning numbers; strings are
			// handled by the cases above on the next iterations.
			i++
		case isOperatorChar(c):
			op, next := readToken(content, i)
			switch op {
			case "Tj", "TJ":
				flushAsText()
			case "'", "\"":
				out.WriteString("\n")
				flushAsText()
			case "Td", "TD", "T*", "BT":
				out.WriteString("\n")
				pending = pending[:0]
			default:
				pending = pending[:0]
			}
			i = next
		default:
			i++
		}
	}
	return out.String()
}

func isOperatorChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '\'' || c == '"' || c == '*'
}

func readToken(b []byte, start int) (string, int) {
	i := start
	for i < len(b) && (isOperatorChar(b[i]) || b[i] == '*') {
		i++
	}
	return string(b[start:i]), i
}

func readLiteralString(b []byte, start int) (string, int) {
	var sb strings.Builder
	depth := 0
	i := start
	for i < len(b) {
		c := b[i]
		switch c {
		case '\\':
			if i+1 < len(b) {
				switch b[i+1] {
				case 'n':
					sb.WriteByte('\n')
				case 'r':
					sb.WriteByte('\r')
				case 't':
					sb.WriteByte('\t')
				case '(', ')', '\\':
					sb.WriteByte(b[i+1])
				}
				i += 2
				continue
			}
			i++
		case '(':
			if depth > 0 {
				sb.WriteByte(c)
			}
			depth++
			i++
		case ')':
			depth--
			if depth == 0 {
				return sb.String(), i + 1
			}
			sb.WriteByte(c)
			i++
		default:
			sb.WriteByte(c)
			i++
		}
	}
	return sb.String(), i
}

func readHexString(b []byte, start int) (string, int) {
	var sb strings.Builder
	i := start + 1
	var hi byte
	var haveHi bool
	for i < len(b) && b[i] != '>' {
		c := b[i]
		var v byte
		switch {
		case c >= '0' && c <= '9':
			v = c - '0'
		case c >= 'a' && c <= 'f':
			v = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			v = c - 'A' + 10
		default:
			i++
			continue
		}
		if haveHi {
			sb.WriteByte(hi<<4 | v)
			haveHi = false
		} else {
			hi = v
			haveHi = true
		}
		i++
	}
	if haveHi {
		sb.WriteByte(hi << 4)
	}
	if i < len(b) {
		i++ // consume '>'
	}
	return sb.String(), i
}
