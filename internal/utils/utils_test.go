package utils_test

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/temirov/docgen/internal/utils"
)

// TestDeduplicatePatterns verifies order-preserving duplicate removal.
func TestDeduplicatePatterns(testingHandle *testing.T) {
	input := []string{"vendor", "**/node_modules", "vendor", "dist", "**/node_modules"}
	expected := []string{"vendor", "**/node_modules", "dist"}

	actual := utils.DeduplicatePatterns(input)
	if !reflect.DeepEqual(actual, expected) {
		testingHandle.Fatalf("DeduplicatePatterns(%v) = %v, want %v", input, actual, expected)
	}
}

// TestRelativePathOrSelf verifies prefix stripping and its degradation rules.
func TestRelativePathOrSelf(testingHandle *testing.T) {
	rootPath := filepath.Join(string(filepath.Separator), "srv", "project")

	testCases := []struct {
		name     string
		fullPath string
		rootPath string
		expected string
	}{
		{"child path", filepath.Join(rootPath, "src", "main.go"), rootPath, "src/main.go"},
		{"path equals root", rootPath, rootPath, "."},
		{"path outside root", filepath.Join(string(filepath.Separator), "elsewhere", "x.txt"), rootPath, filepath.Join(string(filepath.Separator), "elsewhere", "x.txt")},
		{"sibling with shared name prefix", rootPath + "x", rootPath, rootPath + "x"},
		{"empty root", filepath.Join("some", "path"), "", filepath.Join("some", "path")},
	}

	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(subtestHandle *testing.T) {
			actual := utils.RelativePathOrSelf(testCase.fullPath, testCase.rootPath)
			if actual != testCase.expected {
				subtestHandle.Fatalf("RelativePathOrSelf(%q, %q) = %q, want %q",
					testCase.fullPath, testCase.rootPath, actual, testCase.expected)
			}
		})
	}
}

// TestSplitPathComponents verifies component splitting across separator styles.
func TestSplitPathComponents(testingHandle *testing.T) {
	testCases := []struct {
		name      string
		pathValue string
		expected  []string
	}{
		{"forward slashes", "a/b/c.txt", []string{"a", "b", "c.txt"}},
		{"leading dot component", "./a/b.txt", []string{"a", "b.txt"}},
		{"single component", "file.txt", []string{"file.txt"}},
		{"empty segments dropped", "a//b/", []string{"a", "b"}},
	}

	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(subtestHandle *testing.T) {
			actual := utils.SplitPathComponents(testCase.pathValue)
			if !reflect.DeepEqual(actual, testCase.expected) {
				subtestHandle.Fatalf("SplitPathComponents(%q) = %v, want %v", testCase.pathValue, actual, testCase.expected)
			}
		})
	}
}
