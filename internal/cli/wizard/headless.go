package wizard

import "context"

// HeadlessAsker answers every question with its default. It is used when
// stdin is not a terminal or --non-interactive is set.
type HeadlessAsker struct{}

// Compile-time interface compliance check.
var _ Asker = HeadlessAsker{}

// Ask returns q.Default, or "false" for a confirm without one.
func (HeadlessAsker) Ask(ctx context.Context, q Question) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", ErrCancelled
	}
	if q.Default == "" && q.Type == QuestionTypeConfirm {
		return "false", nil
	}
	return q.Default, nil
}
