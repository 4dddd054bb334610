// Package wizard asks the interactive setup questions and turns the
// answers into typed values. Prompts run one at a time through huh, or are
// answered from defaults when no terminal is attached.
package wizard

import (
	"errors"

	"github.com/earlbalai/rn-blitz/internal/pkgmgr"
)

// Question IDs.
const (
	IDProjectName    = "project_name"
	IDPackageManager = "package_manager"
	IDLinting        = "use_recommended_linting"
	IDVSCode         = "setup_vscode_settings"
	IDBlitzTemplate  = "use_blitz_template"
)

// Result holds the answers collected by Run. Only the fields of questions
// that were asked are set.
type Result struct {
	ProjectName           string
	PackageManager        pkgmgr.PackageManager
	UseRecommendedLinting bool
	SetupVSCodeSettings   bool
	UseBlitzTemplate      bool
}

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
	// QuestionTypeConfirm is a yes/no question.
	QuestionTypeConfirm
)

// Question defines a single wizard question.
type Question struct {
	ID          string             // Unique identifier
	Type        QuestionType       // Select, Input or Confirm
	Title       string             // Question title
	Description string             // Additional description
	Options     []Option           // Options for select questions
	Default     string             // Default value; "true"/"false" for confirms
	Validate    func(string) error // Optional check run before the answer is stored
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
	// ErrInvalidAnswer is returned when an answer fails validation.
	ErrInvalidAnswer = errors.New("invalid answer")
	// ErrUnknownQuestion is returned for an answer to an unrecognized ID.
	ErrUnknownQuestion = errors.New("unknown question")
)
