package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const formattedGroup = `let mkPackage = ./../mkPackage.dhall

in  { effect =
        mkPackage
        [ "prelude" ]
        "https://github.com/purescript/purescript-effect.git"
        "v2.0.0"
    , foobar =
        mkPackage
        [ "effect", "prelude" ]
        "https://github.com/purescript/purescript-foobar.git"
        "v1.0.0"
    , foo =
        mkPackage
        [] : List Text
        "https://github.com/purescript/purescript-foo.git"
        "v0.3.0"
    }
`

func TestScanEntriesFormattedFile(t *testing.T) {
	entries := ScanEntries(formattedGroup)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name)
	}
	if diff := cmp.Diff([]string{"effect", "foobar", "foo"}, names); diff != "" {
		t.Fatalf("unexpected entries (-want +got):\n%s", diff)
	}
	assert.Equal(t, "v2.0.0", entries[0].Version)
	assert.Equal(t, "[ \"prelude\" ]", entries[0].Dependencies)
	assert.Equal(t, "https://github.com/purescript/purescript-foo.git", entries[2].Repo)
}

func TestScanEntriesWordBoundary(t *testing.T) {
	content := "let mkPackage = ./../mkPackage.dhall in {foobar = mkPackage\n[]\n\"https://github.com/o/purescript-foobar.git\"\n\"v1.0.0\",foo = mkPackage\n[]\n\"https://github.com/o/purescript-foo.git\"\n\"v2.0.0\",bar-foo = mkPackage\n[]\n\"https://github.com/o/purescript-bar-foo.git\"\n\"v3.0.0\"}"
	matches := FindEntries(content, "foo")
	require.Len(t, matches, 1)
	assert.Equal(t, "v2.0.0", matches[0].Version)
	assert.Equal(t, "foo = mkPackage\n[]\n\"https://github.com/o/purescript-foo.git\"\n\"v2.0.0\"", content[matches[0].Start:matches[0].End])
}

func TestScanEntriesIgnoresStringsAndComments(t *testing.T) {
	content := `-- prelude = mkPackage [] "x" "y"
{- effect = mkPackage [] "x" "y" {- nested -} -}
let mkPackage = ./../mkPackage.dhall in {console = mkPackage
[
  "prelude"
]
"https://github.com/purescript/purescript-console.git"
"v6.0.0", note = "prelude = mkPackage [] \"a\" \"b\""}`
	entries := ScanEntries(content)
	require.Len(t, entries, 1)
	assert.Equal(t, "console", entries[0].Name)
	assert.Equal(t, "[\n  \"prelude\"\n]", entries[0].Dependencies)
}

func TestScanEntriesBacktickLabel(t *testing.T) {
	content := "{ `assert` = mkPackage [] \"https://github.com/o/purescript-assert.git\" \"v1.0.0\" }"
	matches := FindEntries(content, "assert")
	require.Len(t, matches, 1)
	assert.Equal(t, "`assert` = mkPackage [] \"https://github.com/o/purescript-assert.git\" \"v1.0.0\"", content[matches[0].Start:matches[0].End])
}

func TestDuplicateEntries(t *testing.T) {
	entry := "dup = mkPackage [] \"https://github.com/o/purescript-dup.git\" \"v1.0.0\""
	content := "{" + entry + "," + entry + ",other = mkPackage [] \"u\" \"v1\"," + entry + "}"
	assert.Equal(t, []string{"dup"}, DuplicateEntries(content))
	assert.Nil(t, DuplicateEntries("{"+entry+"}"))
}

func TestRecordClose(t *testing.T) {
	content := "{ a = mkPackage [] \"}\" \"v1\" } -- trailing }\n"
	idx, ok := recordClose(content)
	require.True(t, ok)
	assert.Equal(t, len("{ a = mkPackage [] \"}\" \"v1\" "), idx)

	_, ok = recordClose("let x = 1 in x")
	assert.False(t, ok)
}
