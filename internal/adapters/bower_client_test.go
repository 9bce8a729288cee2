package adapters

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkgset-sync/internal/types"
)

func TestBowerClientAdapter_Info(t *testing.T) {
	runner := &fakeRunner{outputs: map[string][]byte{
		"bower info purescript-prelude --json": []byte(`{"latest":{"version":"6.0.1"}}`),
	}}
	client := NewBowerClientAdapter(runner, "", "purescript-")
	payload, err := client.Info(t.Context(), "prelude")
	require.NoError(t, err)
	assert.JSONEq(t, `{"latest":{"version":"6.0.1"}}`, string(payload))
	assert.Equal(t, [][]string{{"bower", "info", "purescript-prelude", "--json"}}, runner.calls)
}

func TestBowerClientAdapter_NotFound(t *testing.T) {
	runner := &fakeRunner{errs: map[string]error{
		"bower info purescript-nope --json": types.WithKind(types.ErrorKindUpstreamCall, errors.New(`bower ENOTFOUND Package purescript-nope not found`)),
	}}
	client := NewBowerClientAdapter(runner, "bower", "purescript-")
	_, err := client.Info(t.Context(), "nope")
	require.Error(t, err)
	assert.Equal(t, types.ErrorKindNotFound, types.KindOf(err))
	assert.Contains(t, err.Error(), "purescript-nope")
}

func TestBowerClientAdapter_CommandFailure(t *testing.T) {
	runner := &fakeRunner{errs: map[string]error{
		"bower info purescript-prelude --json": types.WithKind(types.ErrorKindUpstreamCall, errors.New("ECONNREFUSED")),
	}}
	client := NewBowerClientAdapter(runner, "bower", "purescript-")
	_, err := client.Info(t.Context(), "prelude")
	require.Error(t, err)
	assert.Equal(t, types.ErrorKindUpstreamCall, types.KindOf(err))
}
