package usecase

import "errors"

var (
	ErrUnsupportedFileType  = errors.New("unsupported file type")
	ErrMissingRequiredInput = errors.New("missing required input")
	ErrExtractionFailure    = errors.New("extraction failure")
)
