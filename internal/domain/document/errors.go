package document

import "errors"

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrFileURLRequired  = errors.New("file URL is required")
)
