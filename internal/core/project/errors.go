// Package project implements the React Native project setup pipeline:
// running the generator, applying the recommended configuration, and
// optionally restructuring the app with the Blitz template.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrProjectNameRequired indicates no project name was supplied or entered.
	ErrProjectNameRequired = errors.New("project name is required")

	// ErrInvalidProjectName indicates a name that cannot be used as a directory.
	ErrInvalidProjectName = errors.New("invalid project name")

	// ErrGeneratorLayout indicates the generator output is missing an expected file.
	ErrGeneratorLayout = errors.New("unexpected generator output layout")
)
