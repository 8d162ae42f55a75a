package textextract

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ebolowa/contract-insight/constants"
	"github.com/ebolowa/contract-insight/internal/common"
	"github.com/ebolowa/contract-insight/internal/entity"
)

// buildDOCX assembles a minimal OOXML container with the given paragraphs.
func buildDOCX(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	var body bytes.Buffer
	body.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	body.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>`)
		body.WriteString(p)
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

func TestExtractDOCX(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	doc := entity.Document{
		Bytes:    buildDOCX(t, "EMPLOYMENT AGREEMENT", "The employee shall receive a monthly salary."),
		Filename: "contract.docx",
		Ext:      "docx",
	}
	doc.Size = len(doc.Bytes)

	res, err := e.Extract(context.Background(), doc)
	require.NoError(t, err)
	require.Equal(t, constants.DOCX, res.Format)
	require.Equal(t, "EMPLOYMENT AGREEMENT\nThe employee shall receive a monthly salary.", res.Text)
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	_, err := e.Extract(context.Background(), entity.Document{
		Bytes: []byte("plain"), Filename: "notes.txt", Ext: "txt", Size: 5,
	})
	require.ErrorIs(t, err, common.ErrUnsupportedFormat)
}

func TestExtractEmptyDocument(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	_, err := e.Extract(context.Background(), entity.Document{
		Filename: "contract.pdf", Ext: "pdf",
	})
	require.ErrorIs(t, err, common.ErrEmptyDocument)
}

func TestExtractCorruptDOCX(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	_, err := e.Extract(context.Background(), entity.Document{
		Bytes: []byte("this is not a zip archive"), Filename: "contract.docx", Ext: "docx", Size: 25,
	})
	require.ErrorIs(t, err, common.ErrCorruptDocument)
}

func TestExtractLegacyDocFailsAsCorrupt(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	// OLE magic bytes, not a zip: the boundary accepts .doc but the reader
	// rejects the container.
	ole := append([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, make([]byte, 64)...)
	_, err := e.Extract(context.Background(), entity.Document{
		Bytes: ole, Filename: "contract.doc", Ext: "doc", Size: len(ole),
	})
	require.ErrorIs(t, err, common.ErrCorruptDocument)
}

func TestExtractDOCXWithOnlyWhitespaceIsEmpty(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	data := buildDOCX(t, "   ", " ")
	_, err := e.Extract(context.Background(), entity.Document{
		Bytes: data, Filename: "blank.docx", Ext: "docx", Size: len(data),
	})
	require.ErrorIs(t, err, common.ErrEmptyDocument)
}
