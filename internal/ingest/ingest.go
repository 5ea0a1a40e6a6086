// Package ingest turns uploaded documents into cleaned plain text for the
// pipeline. Unreadable documents surface as errors here; the core never sees
// malformed text.
package ingest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/r-khatri/resumatch/internal/cleaner"
)

var clean = cleaner.New()

// ExtractText reads the document at path and returns normalized UTF-8 text.
// PDF and DOCX are parsed; anything else is treated as plain text.
func ExtractText(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractPDF(path)
	case ".docx":
		return extractDOCX(path)
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read document: %w", err)
		}
		return clean.Text(string(data)), nil
	}
}

func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract PDF text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", fmt.Errorf("failed to read PDF text: %w", err)
	}

	text := clean.Text(buf.String())
	if text == "" {
		return "", fmt.Errorf("PDF %s contains no extractable text", filepath.Base(path))
	}
	return text, nil
}

// extractDOCX walks word/document.xml inside the package, collecting text
// runs and emitting a line break per paragraph.
func extractDOCX(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer zr.Close()

	var doc io.ReadCloser
	for _, file := range zr.File {
		if file.Name == "word/document.xml" {
			doc, err = file.Open()
			if err != nil {
				return "", fmt.Errorf("failed to open DOCX document body: %w", err)
			}
			break
		}
	}
	if doc == nil {
		return "", fmt.Errorf("DOCX %s has no document body", filepath.Base(path))
	}
	defer doc.Close()

	var b strings.Builder
	decoder := xml.NewDecoder(doc)
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse DOCX XML: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}

	text := clean.Text(b.String())
	if text == "" {
		return "", fmt.Errorf("DOCX %s contains no extractable text", filepath.Base(path))
	}
	return text, nil
}
