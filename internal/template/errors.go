package template

import "errors"

// Sentinel errors for template operations.
var (
	// ErrTemplateNotFound indicates the requested template or set does not exist.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrPathTraversal indicates a template path escapes the project root.
	ErrPathTraversal = errors.New("template: path traversal detected")

	// ErrMissingTemplateKey indicates a template referenced an undefined key.
	ErrMissingTemplateKey = errors.New("template: missing template key")

	// ErrUnexpandedToken indicates rendered output still contains a placeholder.
	ErrUnexpandedToken = errors.New("template: unexpanded token in output")
)
