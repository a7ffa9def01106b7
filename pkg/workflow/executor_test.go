//go:build !integration

package workflow

import (
	"context"
	"errors"
	"strings"
)

// fakeExecutor returns canned gh output keyed by the space-joined args.
type fakeExecutor struct {
	outputs     map[string]string
	errs        map[string]error
	calls       [][]string
	interactive [][]string
}

func newFakeExecutor() *fakeExecutor {
	return &fakeExecutor{outputs: map[string]string{}, errs: map[string]error{}}
}

func (f *fakeExecutor) Exec(_ context.Context, args ...string) ([]byte, error) {
	f.calls = append(f.calls, args)
	key := strings.Join(args, " ")
	if err, ok := f.errs[key]; ok {
		return nil, err
	}
	if out, ok := f.outputs[key]; ok {
		return []byte(out), nil
	}
	return nil, errors.New("unexpected gh invocation: " + key)
}

func (f *fakeExecutor) ExecInteractive(_ context.Context, args ...string) error {
	f.interactive = append(f.interactive, args)
	if err, ok := f.errs[strings.Join(args, " ")]; ok {
		return err
	}
	return nil
}
