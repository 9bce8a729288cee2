package core

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	debversion "github.com/knqyf263/go-deb-version"

	"pkgset-sync/internal/types"
)

// NormalizeVersion strips the leading "v" that the registry reports
// inconsistently.
func NormalizeVersion(value string) string {
	return strings.TrimLeft(strings.TrimSpace(value), "vV")
}

// ValidateVersion rejects versions that do not start with a digit or
// otherwise fail to parse.
func ValidateVersion(value string) error {
	normalized := NormalizeVersion(value)
	if normalized == "" {
		return types.WithKind(types.ErrorKindMalformed, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("upstream version is empty"))
	}
	if _, err := debversion.NewVersion(normalized); err != nil {
		return types.WithKind(types.ErrorKindMalformed, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("upstream version is not parseable").
			WithCause(err))
	}
	return nil
}

// CompareVersions compares two versions with or without the "v" prefix.
// The boolean is false when either side does not parse.
func CompareVersions(left string, right string) (int, bool) {
	lv, err := debversion.NewVersion(NormalizeVersion(left))
	if err != nil {
		return 0, false
	}
	rv, err := debversion.NewVersion(NormalizeVersion(right))
	if err != nil {
		return 0, false
	}
	return lv.Compare(rv), true
}
