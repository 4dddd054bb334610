package shell

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFatalRunner_SuccessDoesNotExit(t *testing.T) {
	var codes []int
	r := NewFatalRunner(&scriptedRunner{}, nil, WithExitFunc(func(c int) { codes = append(codes, c) }))

	require.NoError(t, r.Run(context.Background(), Command{Name: "npm", Args: []string{"install"}}))
	assert.Empty(t, codes)
}

func TestFatalRunner_FailureExitsWithStatusOne(t *testing.T) {
	var codes []int
	var errOut bytes.Buffer
	inner := &scriptedRunner{fail: map[string]error{
		"npx": &ExitError{Command: Command{Name: "npx"}, Code: 7},
	}}
	r := NewFatalRunner(inner, nil,
		WithExitFunc(func(c int) { codes = append(codes, c) }),
		WithErrorOutput(&errOut),
	)

	err := r.Run(context.Background(), Command{Name: "npx", Args: []string{"react-native@latest", "init", "App"}})

	assert.Equal(t, []int{1}, codes)
	assert.ErrorIs(t, err, ErrCommandFailed)
	var exitErr *ExitError
	assert.True(t, errors.As(err, &exitErr))
	assert.Contains(t, errOut.String(), "Error executing command")
	assert.Contains(t, errOut.String(), "npx react-native@latest init App")
}

func TestFatalRunner_StopsChain(t *testing.T) {
	var codes []int
	inner := &scriptedRunner{fail: map[string]error{"npm": errors.New("network down")}}
	r := NewFatalRunner(inner, nil,
		WithExitFunc(func(c int) { codes = append(codes, c) }),
		WithErrorOutput(&bytes.Buffer{}),
	)

	err := RunAll(context.Background(), r, Command{Name: "npm"}, Command{Name: "npx"})

	require.Error(t, err)
	assert.Equal(t, []int{1}, codes)
	assert.Equal(t, []string{"npm"}, inner.ran)
}
