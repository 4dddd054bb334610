package wizard

import (
	"github.com/earlbalai/rn-blitz/internal/core/project"
	"github.com/earlbalai/rn-blitz/internal/pkgmgr"
)

// ProjectNameQuestion asks for the project name. An empty answer is
// accepted and aborts the run later; anything else must be usable as a
// directory name.
func ProjectNameQuestion() Question {
	return Question{
		ID:    IDProjectName,
		Type:  QuestionTypeInput,
		Title: "Enter project name:",
		Validate: func(v string) error {
			if v == "" {
				return nil
			}
			return project.ValidateName(v)
		},
	}
}

// PackageManagerQuestion asks which package manager drives the project.
// Options keep their fixed order; def is preselected.
func PackageManagerQuestion(def pkgmgr.PackageManager) Question {
	if def == "" {
		def = pkgmgr.Default
	}
	var opts []Option
	for _, pm := range pkgmgr.All() {
		opts = append(opts, Option{Label: pm.String(), Value: pm.String()})
	}
	return Question{
		ID:      IDPackageManager,
		Type:    QuestionTypeSelect,
		Title:   "Choose your preferred package manager:",
		Options: opts,
		Default: def.String(),
	}
}

// SetupQuestions asks for the recommended linting and VSCode settings.
func SetupQuestions() []Question {
	return []Question{
		{
			ID:          IDLinting,
			Type:        QuestionTypeConfirm,
			Title:       "Do you want to use recommended linting settings?",
			Description: "Writes .eslintrc.js and .prettierrc.js.",
			Default:     "false",
		},
		{
			ID:          IDVSCode,
			Type:        QuestionTypeConfirm,
			Title:       "Do you want to set up VSCode settings?",
			Description: "Formats on save with the ESLint extension.",
			Default:     "false",
		},
	}
}

// TemplateQuestion asks whether to apply the Blitz template.
func TemplateQuestion() Question {
	return Question{
		ID:      IDBlitzTemplate,
		Type:    QuestionTypeConfirm,
		Title:   "Do you want to use the React Native Blitz template? This will set up the project with recommended folder structure and unistyles package.",
		Default: "false",
	}
}
