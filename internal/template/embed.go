package template

import (
	"embed"
	"io/fs"
)

//go:embed all:files
var embeddedFiles embed.FS

// File sets shipped inside the binary. Each set is deployed relative to the
// project root.
const (
	SetLint   = "lint"
	SetVSCode = "vscode"
	SetBlitz  = "blitz"

	// NextStepsTemplate is rendered for the post-setup summary.
	NextStepsTemplate = "summary/next-steps.md.tmpl"
)

// EmbeddedTemplates returns the embedded payload rooted at files/.
func EmbeddedTemplates() (fs.FS, error) {
	return fs.Sub(embeddedFiles, "files")
}
