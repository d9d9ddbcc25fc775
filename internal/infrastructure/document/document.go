// Package document turns uploaded resumes into plain text.
package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

var ErrUnsupportedFileType = errors.New("unsupported file type")

const (
	ExtPDF  = ".pdf"
	ExtDoc  = ".doc"
	ExtDocx = ".docx"
)

// Extractor dispatches on the file extension to the PDF or Word reader.
type Extractor struct {
	maxBytes int64
}

func NewExtractor(maxBytes int64) *Extractor {
	return &Extractor{maxBytes: maxBytes}
}

func (e *Extractor) Supports(filename string) bool {
	switch ext(filename) {
	case ExtPDF, ExtDoc, ExtDocx:
		return true
	}
	return false
}

func (e *Extractor) Extract(ctx context.Context, filename string, r io.Reader) (text string, err error) {
	if !e.Supports(filename) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, filepath.Ext(filename))
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := e.readAll(r)
	if err != nil {
		return "", err
	}

	defer func() {
		if rec := recover(); rec != nil {
			text, err = "", fmt.Errorf("parse %s: %v", filename, rec)
		}
	}()

	if ext(filename) == ExtPDF {
		return PDFText(bytes.NewReader(data), int64(len(data)))
	}
	return DocxText(bytes.NewReader(data), int64(len(data)))
}

func (e *Extractor) readAll(r io.Reader) ([]byte, error) {
	if e.maxBytes > 0 {
		r = io.LimitReader(r, e.maxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if e.maxBytes > 0 && int64(len(data)) > e.maxBytes {
		return nil, fmt.Errorf("upload exceeds %d bytes", e.maxBytes)
	}
	return data, nil
}

func ext(filename string) string {
	return strings.ToLower(filepath.Ext(strings.TrimSpace(filename)))
}
