package adapters

import (
	"context"
	"strings"
	"sync"
)

type fakeRunner struct {
	mu      sync.Mutex
	calls   [][]string
	outputs map[string][]byte
	errs    map[string]error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	call := append([]string{name}, args...)
	f.calls = append(f.calls, call)
	key := strings.Join(call, " ")
	return f.outputs[key], f.errs[key]
}

type fakeClient struct {
	mu       sync.Mutex
	calls    map[string]int
	payloads map[string][]byte
	err      error
}

func (f *fakeClient) Info(_ context.Context, name string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[name]++
	if f.err != nil {
		return nil, f.err
	}
	return f.payloads[name], nil
}
