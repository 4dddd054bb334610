package wizard

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/text/unicode/norm"

	"github.com/earlbalai/rn-blitz/internal/pkgmgr"
)

// Asker answers a single question.
type Asker interface {
	Ask(ctx context.Context, q Question) (string, error)
}

// Run asks each question in order and stores the answers in a new Result.
func Run(ctx context.Context, asker Asker, questions []Question) (*Result, error) {
	result := &Result{}
	if err := RunInto(ctx, asker, questions, result); err != nil {
		return nil, err
	}
	return result, nil
}

// RunInto is Run with a caller-supplied result. Fields of result that no
// question covers are left as they are.
func RunInto(ctx context.Context, asker Asker, questions []Question, result *Result) error {
	if len(questions) == 0 {
		return ErrNoQuestions
	}

	for i := range questions {
		q := &questions[i]
		answer, err := asker.Ask(ctx, *q)
		if err != nil {
			return err
		}
		if err := saveAnswer(q, answer, result); err != nil {
			return err
		}
	}
	return nil
}

// saveAnswer validates value and stores it in result.
func saveAnswer(q *Question, value string, result *Result) error {
	if q.Type == QuestionTypeInput {
		value = normalizeInput(value)
	}
	if q.Validate != nil {
		if err := q.Validate(value); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidAnswer, q.ID, err)
		}
	}

	switch q.ID {
	case IDProjectName:
		result.ProjectName = value
	case IDPackageManager:
		pm, err := pkgmgr.Parse(value)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAnswer, err)
		}
		result.PackageManager = pm
	case IDLinting, IDVSCode, IDBlitzTemplate:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %q is not a boolean", ErrInvalidAnswer, q.ID, value)
		}
		switch q.ID {
		case IDLinting:
			result.UseRecommendedLinting = b
		case IDVSCode:
			result.SetupVSCodeSettings = b
		default:
			result.UseBlitzTemplate = b
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, q.ID)
	}
	return nil
}

// normalizeInput trims free text and converts it to NFC so names typed on
// different platforms compare equal.
func normalizeInput(v string) string {
	return norm.NFC.String(strings.TrimSpace(v))
}

// HuhAsker presents each question as its own huh form.
type HuhAsker struct {
	theme *huh.Theme
}

// Compile-time interface compliance check.
var _ Asker = (*HuhAsker)(nil)

// NewHuhAsker creates an interactive asker. With noColor the base huh
// theme is used instead of the Blitz palette.
func NewHuhAsker(noColor bool) *HuhAsker {
	theme := newBlitzWizardTheme()
	if noColor {
		theme = huh.ThemeBase()
	}
	return &HuhAsker{theme: theme}
}

// Ask runs a single-field form for q. Each question runs as its own form so
// the select viewport never scrolls.
func (a *HuhAsker) Ask(ctx context.Context, q Question) (string, error) {
	var field huh.Field
	var read func() string

	switch q.Type {
	case QuestionTypeSelect:
		f, get := buildSelectField(&q)
		field, read = f, get
	case QuestionTypeInput:
		f, get := buildInputField(&q)
		field, read = f, get
	case QuestionTypeConfirm:
		f, get := buildConfirmField(&q)
		field, read = f, get
	default:
		return "", fmt.Errorf("%w: unsupported type for %s", ErrUnknownQuestion, q.ID)
	}

	form := huh.NewForm(huh.NewGroup(field)).WithTheme(a.theme)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("wizard error: %w", err)
	}
	return read(), nil
}

func buildSelectField(q *Question) (*huh.Select[string], func() string) {
	selected := q.Default

	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		opts[i] = huh.NewOption(opt.Label, opt.Value)
	}

	sel := huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(&selected)
	return sel, func() string { return selected }
}

func buildInputField(q *Question) (*huh.Input, func() string) {
	value := q.Default

	inp := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(&value)
	if q.Default != "" {
		inp = inp.Placeholder(q.Default)
	}
	if q.Validate != nil {
		validate := q.Validate
		inp = inp.Validate(func(v string) error {
			return validate(normalizeInput(v))
		})
	}
	return inp, func() string { return value }
}

func buildConfirmField(q *Question) (*huh.Confirm, func() string) {
	value, _ := strconv.ParseBool(q.Default)

	c := huh.NewConfirm().
		Title(q.Title).
		Description(q.Description).
		Affirmative("Yes").
		Negative("No").
		Value(&value)
	return c, func() string { return strconv.FormatBool(value) }
}
