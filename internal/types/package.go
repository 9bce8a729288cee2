package types

import (
	"path/filepath"
	"strings"
)

type PackageParameters struct {
	Name         string `yaml:"name"`
	Dependencies string `yaml:"dependencies"`
	SourceURL    string `yaml:"source_url"`
	Version      string `yaml:"version"`
}

type PackageExpression string

// ValidPackageName reports whether value can be used as a record label, as
// an upstream lookup key and as a cache file name.
func ValidPackageName(value string) bool {
	if strings.TrimSpace(value) == "" || value == "." || strings.Contains(value, "..") {
		return false
	}
	if filepath.Base(value) != value {
		return false
	}
	return !strings.ContainsAny(value, " \t\r\n\"`{}[],=/\\")
}
