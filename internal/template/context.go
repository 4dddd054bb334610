package template

import "github.com/earlbalai/rn-blitz/internal/pkgmgr"

// NextStepsContext provides data for the post-setup summary.
type NextStepsContext struct {
	ProjectName string

	StartCommand   string
	AndroidCommand string
	IOSCommand     string
	LintFixCommand string

	// UsedTemplate is true when the Blitz template was applied.
	UsedTemplate bool
}

// ContextOption configures a NextStepsContext.
type ContextOption func(*NextStepsContext)

// NewNextStepsContext builds the summary context for a project created with
// pm, then applies opts.
func NewNextStepsContext(projectName string, pm pkgmgr.PackageManager, opts ...ContextOption) *NextStepsContext {
	ctx := &NextStepsContext{
		ProjectName:    projectName,
		StartCommand:   pm.RunScript("start"),
		AndroidCommand: pm.RunScript("android"),
		IOSCommand:     pm.RunScript("ios"),
		LintFixCommand: pm.RunScript("lint:fix"),
	}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// WithTemplate records whether the Blitz template was applied.
func WithTemplate(used bool) ContextOption {
	return func(c *NextStepsContext) {
		c.UsedTemplate = used
	}
}
