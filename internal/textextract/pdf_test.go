package textextract

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ebolowa/contract-insight/constants"
	"github.com/ebolowa/contract-insight/internal/common"
	"github.com/ebolowa/contract-insight/internal/entity"
)

// buildPDF assembles a classic uncompressed PDF, one page per text, with a
// hand-computed xref table. Texts must not contain parentheses.
func buildPDF(t *testing.T, pageTexts ...string) []byte {
	t.Helper()
	n := len(pageTexts)
	fontObj := 3 + 2*n

	kids := make([]string, n)
	for i := range pageTexts {
		kids[i] = fmt.Sprintf("%d 0 R", 3+2*i)
	}
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), n),
	}
	for i, text := range pageTexts {
		stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] "+
				"/Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>", fontObj, 4+2*i),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
		)
	}
	objects = append(objects, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects)+1)
	for i, obj := range objects {
		offsets[i+1] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= len(objects); i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func pdfDoc(t *testing.T, pageTexts ...string) entity.Document {
	t.Helper()
	data := buildPDF(t, pageTexts...)
	return entity.Document{Bytes: data, Filename: "contract.pdf", Ext: "pdf", Size: len(data)}
}

func TestExtractPDF(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	res, err := e.Extract(context.Background(), pdfDoc(t,
		"The employment agreement sets a monthly salary of 450 000 FCFA."))
	require.NoError(t, err)
	require.Equal(t, constants.PDF, res.Format)
	require.Equal(t, 1, res.Pages)
	require.Contains(t, res.Text, "monthly salary of 450 000 FCFA")
}

func TestExtractPDFPageOrder(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	res, err := e.Extract(context.Background(), pdfDoc(t,
		"First page describes the position and duties.",
		"Second page regulates termination and notice."))
	require.NoError(t, err)
	require.Equal(t, 2, res.Pages)

	first := strings.Index(res.Text, "position and duties")
	second := strings.Index(res.Text, "termination and notice")
	require.GreaterOrEqual(t, first, 0)
	require.Greater(t, second, first, "pages are harvested in document order")
}

func TestExtractPDFMaxPages(t *testing.T) {
	e := NewExtractor(Config{MaxPages: 1}, nil)
	res, err := e.Extract(context.Background(), pdfDoc(t,
		"First page describes the position and duties.",
		"Second page regulates termination and notice."))
	require.NoError(t, err)
	require.Equal(t, 2, res.Pages, "page count reports the whole document")
	require.Contains(t, res.Text, "position and duties")
	require.NotContains(t, res.Text, "termination and notice")
}

func TestExtractPDFCorrupt(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	data := []byte("%PDF-1.4\nthis is not a well-formed document")
	_, err := e.Extract(context.Background(), entity.Document{
		Bytes: data, Filename: "contract.pdf", Ext: "pdf", Size: len(data),
	})
	require.ErrorIs(t, err, common.ErrCorruptDocument)
}

func TestDecodeContentText(t *testing.T) {
	content := []byte(`BT /F1 12 Tf 72 720 Td (Hello ) Tj (world.) Tj T* (Next line.) Tj ET`)
	got := decodeContentText(content)
	require.Contains(t, got, "Hello world.")
	require.Contains(t, got, "Next line.")
}
