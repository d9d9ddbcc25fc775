package usecase

import (
	"context"
	"io"
	"strings"
)

// Upload is a resume file received from a client.
type Upload struct {
	Filename string
	Content  io.Reader
}

func (u *Upload) present() bool {
	return u != nil && strings.TrimSpace(u.Filename) != ""
}

// TextExtractor converts an uploaded document into plain text.
type TextExtractor interface {
	Supports(filename string) bool
	Extract(ctx context.Context, filename string, r io.Reader) (string, error)
}
