package collector

import (
	"strings"

	"github.com/temirov/docgen/internal/utils"
)

const (
	// matchAllPattern excludes every directory it is tested against.
	matchAllPattern = "**"
	// basenamePatternPrefix marks patterns that match a directory name at any depth.
	basenamePatternPrefix = "**/"
	// currentDirectoryPrefix is stripped from relative paths before literal comparison.
	currentDirectoryPrefix = "./"
)

// ShouldExclude reports whether a directory should be skipped, evaluating the
// exclusion patterns in list order against the directory's path relative to
// the walk root. The first matching pattern wins. Three pattern forms are
// recognized: "**" matches every directory, "**/<name>" matches any directory
// whose final path component equals <name>, and any other pattern matches a
// directory whose relative path equals the pattern literally. All comparisons
// are case-sensitive with no glob expansion.
func ShouldExclude(relativeDirectoryPath string, exclusionPatterns []string) bool {
	normalizedPath := normalizeRelativePath(relativeDirectoryPath)
	finalPathComponent := lastPathComponent(normalizedPath)

	for _, patternValue := range exclusionPatterns {
		if patternValue == matchAllPattern {
			return true
		}
		if strings.HasPrefix(patternValue, basenamePatternPrefix) {
			excludedName := strings.TrimPrefix(patternValue, basenamePatternPrefix)
			if finalPathComponent == excludedName {
				return true
			}
			continue
		}
		if normalizedPath == normalizeRelativePath(patternValue) {
			return true
		}
	}

	return false
}

// normalizeRelativePath converts a path to forward-slash form and strips a
// leading "." component.
func normalizeRelativePath(pathValue string) string {
	normalizedPath := strings.ReplaceAll(pathValue, "\\", "/")
	normalizedPath = strings.TrimPrefix(normalizedPath, currentDirectoryPrefix)
	return normalizedPath
}

// lastPathComponent returns the final segment of a forward-slash path.
func lastPathComponent(pathValue string) string {
	pathSegments := strings.Split(pathValue, "/")
	if len(pathSegments) == 0 {
		return utils.EmptyString
	}
	return pathSegments[len(pathSegments)-1]
}
