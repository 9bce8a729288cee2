package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkgset-sync/internal/types"
)

func TestResolveGroup(t *testing.T) {
	group, err := ResolveGroup("https://example.com/purescript/purescript-prelude")
	require.NoError(t, err)
	if diff := cmp.Diff("purescript", group); diff != "" {
		t.Fatalf("unexpected group (-want +got):\n%s", diff)
	}
}

func TestResolveGroupRejectsOtherShapes(t *testing.T) {
	tests := []string{
		"",
		"https://example.com/purescript",
		"https://example.com/purescript/purescript-prelude/tree",
		"github.com/purescript/purescript-prelude",
		"https://example.com//purescript-prelude",
	}
	for _, url := range tests {
		t.Run(url, func(t *testing.T) {
			_, err := ResolveGroup(url)
			require.Error(t, err)
			assert.Equal(t, types.ErrorKindPathDecomposition, types.KindOf(err))
			assert.Contains(t, err.Error(), "could not match group name in url")
		})
	}
}
