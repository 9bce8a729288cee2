package core

import (
	"fmt"
	"sort"
	"strings"

	"pkgset-sync/internal/types"
)

// BuildExpression renders the canonical mkPackage expression for params.
// Identical parameters always produce identical bytes.
func BuildExpression(params types.PackageParameters) types.PackageExpression {
	return types.PackageExpression(fmt.Sprintf(
		"%s = mkPackage\n%s\n\"%s.git\"\n\"v%s\"",
		params.Name,
		params.Dependencies,
		params.SourceURL,
		NormalizeVersion(params.Version),
	))
}

// RenderDependencies renders dependency names as a sorted list literal, one
// quoted name per line.
func RenderDependencies(names []string) string {
	if len(names) == 0 {
		return "[]"
	}
	ordered := append([]string(nil), names...)
	sort.Strings(ordered)
	var builder strings.Builder
	builder.WriteString("[\n")
	for i, name := range ordered {
		builder.WriteString("  \"")
		builder.WriteString(name)
		builder.WriteString("\"")
		if i < len(ordered)-1 {
			builder.WriteString(",")
		}
		builder.WriteString("\n")
	}
	builder.WriteString("]")
	return builder.String()
}
