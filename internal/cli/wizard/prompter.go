package wizard

import (
	"context"

	"github.com/earlbalai/rn-blitz/internal/core/project"
	"github.com/earlbalai/rn-blitz/internal/pkgmgr"
)

// Presets are answers supplied up front, usually from flags. A nil field
// means the question is asked.
type Presets struct {
	Lint     *bool
	VSCode   *bool
	Template *bool
}

// Prompter adapts an Asker to the setup pipeline, skipping questions that
// have a preset answer.
type Prompter struct {
	asker   Asker
	presets Presets
}

// Compile-time interface compliance check.
var _ project.Prompter = (*Prompter)(nil)

// NewPrompter creates a Prompter.
func NewPrompter(asker Asker, presets Presets) *Prompter {
	return &Prompter{asker: asker, presets: presets}
}

// ProjectName asks for the project name.
func (p *Prompter) ProjectName(ctx context.Context) (string, error) {
	res, err := Run(ctx, p.asker, []Question{ProjectNameQuestion()})
	if err != nil {
		return "", err
	}
	return res.ProjectName, nil
}

// PackageManager asks for the package manager, preselecting def.
func (p *Prompter) PackageManager(ctx context.Context, def pkgmgr.PackageManager) (pkgmgr.PackageManager, error) {
	res, err := Run(ctx, p.asker, []Question{PackageManagerQuestion(def)})
	if err != nil {
		return "", err
	}
	return res.PackageManager, nil
}

// SetupChoices asks the linting and VSCode questions not covered by presets.
func (p *Prompter) SetupChoices(ctx context.Context) (project.SetupChoices, error) {
	res := &Result{}
	var pending []Question
	for _, q := range SetupQuestions() {
		switch {
		case q.ID == IDLinting && p.presets.Lint != nil:
			res.UseRecommendedLinting = *p.presets.Lint
		case q.ID == IDVSCode && p.presets.VSCode != nil:
			res.SetupVSCodeSettings = *p.presets.VSCode
		default:
			pending = append(pending, q)
		}
	}

	if len(pending) > 0 {
		if err := RunInto(ctx, p.asker, pending, res); err != nil {
			return project.SetupChoices{}, err
		}
	}
	return project.SetupChoices{
		UseRecommendedLinting: res.UseRecommendedLinting,
		SetupVSCodeSettings:   res.SetupVSCodeSettings,
	}, nil
}

// UseTemplate asks whether to apply the Blitz template.
func (p *Prompter) UseTemplate(ctx context.Context) (bool, error) {
	if p.presets.Template != nil {
		return *p.presets.Template, nil
	}
	res, err := Run(ctx, p.asker, []Question{TemplateQuestion()})
	if err != nil {
		return false, err
	}
	return res.UseBlitzTemplate, nil
}
