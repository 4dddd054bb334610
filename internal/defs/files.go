// Package defs holds file names and permissions shared by the scaffolding steps.
package defs

// Files read or written in the generated React Native project.
const (
	// PackageJSON is the project manifest produced by the generator.
	PackageJSON = "package.json"

	// ESLintRC is the lint configuration module.
	ESLintRC = ".eslintrc.js"

	// PrettierRC is the formatter configuration module.
	PrettierRC = ".prettierrc.js"

	// VSCodeDir holds editor settings.
	VSCodeDir = ".vscode"

	// VSCodeSettings is the editor settings file inside VSCodeDir.
	VSCodeSettings = "settings.json"

	// AppTSX is the root component written by the generator.
	AppTSX = "App.tsx"

	// IndexJS is the application entry point.
	IndexJS = "index.js"
)

// Directories created by the template restructure.
const (
	SrcDir    = "src"
	StylesDir = "styles"
)

// Permissions for created files and directories.
const (
	DirPerm  = 0o755
	FilePerm = 0o644
)
