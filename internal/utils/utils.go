// Package utils contains general helper functions used across the docgen tool.
package utils

import (
	"path/filepath"
	"strings"
)

const pathSegmentSeparator = "/"

// DeduplicatePatterns removes duplicate patterns from a slice while preserving order.
// The first occurrence of each unique pattern is kept.
func DeduplicatePatterns(patterns []string) []string {
	encounteredPatterns := make(map[string]struct{})
	result := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if _, exists := encounteredPatterns[pattern]; !exists {
			encounteredPatterns[pattern] = struct{}{}
			result = append(result, pattern)
		}
	}
	return result
}

// RelativePathOrSelf strips the root prefix from fullPath and returns the
// remainder in forward-slash form. The path comes back unmodified when root is
// not one of its ancestors; "." is returned when both resolve to the same
// directory. The prefix test is purely lexical so that paths outside the root
// degrade to themselves instead of gaining ".." components.
func RelativePathOrSelf(fullPath string, root string) string {
	if root == EmptyString {
		return fullPath
	}
	cleanPath := filepath.Clean(fullPath)
	cleanRoot := filepath.Clean(root)
	if cleanPath == cleanRoot {
		return "."
	}
	rootPrefix := cleanRoot + string(filepath.Separator)
	if strings.HasPrefix(cleanPath, rootPrefix) {
		return filepath.ToSlash(strings.TrimPrefix(cleanPath, rootPrefix))
	}
	return fullPath
}

// SplitPathComponents breaks a path into its ordered components, accepting
// either native or forward-slash separators and dropping empty segments.
func SplitPathComponents(pathValue string) []string {
	normalizedPath := filepath.ToSlash(pathValue)
	rawSegments := strings.Split(normalizedPath, pathSegmentSeparator)
	components := make([]string, 0, len(rawSegments))
	for _, segment := range rawSegments {
		if segment == EmptyString || segment == "." {
			continue
		}
		components = append(components, segment)
	}
	return components
}
