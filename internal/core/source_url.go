package core

import "strings"

// NormalizeSourceURL turns the git-flavored repository URLs the registry
// reports into plain https URLs without a .git suffix:
//
//	git://github.com/o/r.git         -> https://github.com/o/r
//	git@github.com:o/r.git           -> https://github.com/o/r
//	git+https://github.com/o/r       -> https://github.com/o/r
//	git+ssh://git@github.com/o/r.git -> https://github.com/o/r
//
// Only the scheme and the scp-style host separator are rewritten; the path
// is left alone.
func NormalizeSourceURL(raw string) string {
	url := strings.TrimSpace(raw)
	url = strings.TrimPrefix(url, "git+")
	switch {
	case strings.HasPrefix(url, "ssh://git@"):
		url = "https://" + strings.TrimPrefix(url, "ssh://git@")
	case strings.HasPrefix(url, "git@"):
		// host:owner/repo
		url = "https://" + strings.Replace(strings.TrimPrefix(url, "git@"), ":", "/", 1)
	case strings.HasPrefix(url, "git:"):
		url = "https:" + strings.TrimPrefix(url, "git:")
	}
	url = strings.TrimRight(url, "/")
	return strings.TrimSuffix(url, ".git")
}
