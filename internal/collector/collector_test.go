package collector_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/temirov/docgen/internal/collector"
	"github.com/temirov/docgen/internal/types"
)

// writeTestFile creates a file with the specified content, failing the test on error.
func writeTestFile(testingHandle *testing.T, filePath string, content []byte) {
	testingHandle.Helper()
	if makeDirectoryError := os.MkdirAll(filepath.Dir(filePath), 0o755); makeDirectoryError != nil {
		testingHandle.Fatalf("failed to create directory for %s: %v", filePath, makeDirectoryError)
	}
	if writeError := os.WriteFile(filePath, content, 0o644); writeError != nil {
		testingHandle.Fatalf("failed to write %s: %v", filePath, writeError)
	}
}

// entriesByRelativePath indexes collected entries by their path relative to root.
func entriesByRelativePath(testingHandle *testing.T, entries []types.FileEntry, rootDirectory string) map[string]string {
	testingHandle.Helper()
	indexed := make(map[string]string, len(entries))
	for _, entry := range entries {
		relativePath, relativeError := filepath.Rel(rootDirectory, entry.Path)
		if relativeError != nil {
			testingHandle.Fatalf("failed to relativize %s: %v", entry.Path, relativeError)
		}
		indexed[filepath.ToSlash(relativePath)] = entry.Content
	}
	return indexed
}

// TestCollectExplicitFiles verifies that declared files are read and that missing declarations are silently skipped.
func TestCollectExplicitFiles(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "present.txt"), []byte("present content"))

	entries, collectError := collector.Collect(rootDirectory, []string{"present.txt", "missing.txt"}, nil, nil)
	if collectError != nil {
		testingHandle.Fatalf("Collect failed: %v", collectError)
	}
	if len(entries) != 1 {
		testingHandle.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Content != "present content" {
		testingHandle.Fatalf("unexpected content: %q", entries[0].Content)
	}
}

// TestCollectDirectoryRecursion verifies that declared directories are walked depth-first and produce the full file set.
func TestCollectDirectoryRecursion(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "src", "main.go"), []byte("package main"))
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "src", "nested", "helper.go"), []byte("package nested"))
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "unrelated.txt"), []byte("not declared"))

	entries, collectError := collector.Collect(rootDirectory, nil, []string{"src"}, nil)
	if collectError != nil {
		testingHandle.Fatalf("Collect failed: %v", collectError)
	}

	collected := entriesByRelativePath(testingHandle, entries, rootDirectory)
	expected := map[string]string{
		"src/main.go":          "package main",
		"src/nested/helper.go": "package nested",
	}
	if len(collected) != len(expected) {
		testingHandle.Fatalf("expected %d entries, got %v", len(expected), collected)
	}
	for relativePath, expectedContent := range expected {
		if collected[relativePath] != expectedContent {
			testingHandle.Fatalf("unexpected content for %s: %q", relativePath, collected[relativePath])
		}
	}
}

// TestCollectExcludeBasenameAnywhere verifies that a basename pattern skips matching directories at every depth.
func TestCollectExcludeBasenameAnywhere(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "proj", "node_modules", "x.js"), []byte("top"))
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "proj", "src", "node_modules", "y.js"), []byte("nested"))
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "proj", "src", "app.js"), []byte("kept"))

	entries, collectError := collector.Collect(rootDirectory, nil, []string{"proj"}, []string{"**/node_modules"})
	if collectError != nil {
		testingHandle.Fatalf("Collect failed: %v", collectError)
	}

	collected := entriesByRelativePath(testingHandle, entries, rootDirectory)
	if len(collected) != 1 {
		testingHandle.Fatalf("expected only the kept file, got %v", collected)
	}
	if _, kept := collected["proj/src/app.js"]; !kept {
		testingHandle.Fatalf("expected proj/src/app.js to be collected, got %v", collected)
	}
}

// TestCollectExcludeRelativePathExact verifies that a literal path pattern matches only the exact relative path.
func TestCollectExcludeRelativePathExact(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "tree", "a", "b", "excluded.txt"), []byte("excluded"))
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "tree", "x", "a", "b", "kept.txt"), []byte("kept"))

	entries, collectError := collector.Collect(rootDirectory, nil, []string{"tree"}, []string{"a/b"})
	if collectError != nil {
		testingHandle.Fatalf("Collect failed: %v", collectError)
	}

	collected := entriesByRelativePath(testingHandle, entries, rootDirectory)
	if _, excluded := collected["tree/a/b/excluded.txt"]; excluded {
		testingHandle.Fatalf("expected tree/a/b to be excluded, got %v", collected)
	}
	if _, kept := collected["tree/x/a/b/kept.txt"]; !kept {
		testingHandle.Fatalf("expected tree/x/a/b/kept.txt to be collected, got %v", collected)
	}
}

// TestCollectExclusionIsSubtreeAbsolute verifies that nothing beneath an excluded directory is collected.
func TestCollectExclusionIsSubtreeAbsolute(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "walk", "skip", "deeper", "inner.txt"), []byte("hidden"))
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "walk", "keep.txt"), []byte("visible"))

	entries, collectError := collector.Collect(rootDirectory, nil, []string{"walk"}, []string{"**/skip"})
	if collectError != nil {
		testingHandle.Fatalf("Collect failed: %v", collectError)
	}

	collected := entriesByRelativePath(testingHandle, entries, rootDirectory)
	if len(collected) != 1 {
		testingHandle.Fatalf("expected 1 entry, got %v", collected)
	}
	if _, kept := collected["walk/keep.txt"]; !kept {
		testingHandle.Fatalf("expected walk/keep.txt to survive, got %v", collected)
	}
}

// TestCollectExcludeMatchAll verifies that "**" empties every declared directory while explicit files are unaffected.
func TestCollectExcludeMatchAll(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "docs", "guide.md"), []byte("guide"))
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "explicit.txt"), []byte("explicit"))

	entries, collectError := collector.Collect(rootDirectory, []string{"explicit.txt"}, []string{"docs"}, []string{"**"})
	if collectError != nil {
		testingHandle.Fatalf("Collect failed: %v", collectError)
	}

	if len(entries) != 1 {
		testingHandle.Fatalf("expected only the explicit file, got %d entries", len(entries))
	}
	if filepath.Base(entries[0].Path) != "explicit.txt" {
		testingHandle.Fatalf("unexpected entry: %v", entries[0])
	}
}

// TestCollectInvalidTextFailsCollection verifies that a file with undecodable
// content aborts the whole collection with no partial result.
func TestCollectInvalidTextFailsCollection(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "data", "good.txt"), []byte("fine"))
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "data", "raw.bin"), []byte{0xff, 0xfe, 0x00, 0x80})

	entries, collectError := collector.Collect(rootDirectory, nil, []string{"data"}, nil)
	if collectError == nil {
		testingHandle.Fatalf("expected collection to fail, got %d entries", len(entries))
	}
	if !errors.Is(collectError, collector.ErrNotText) {
		testingHandle.Fatalf("expected ErrNotText, got %v", collectError)
	}
	if entries != nil {
		testingHandle.Fatalf("expected no partial results, got %v", entries)
	}
}

// TestCollectOrderIndependentAsSet verifies that declaration order does not change the collected set.
func TestCollectOrderIndependentAsSet(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "one", "a.txt"), []byte("a"))
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "two", "b.txt"), []byte("b"))

	forwardEntries, forwardError := collector.Collect(rootDirectory, nil, []string{"one", "two"}, nil)
	if forwardError != nil {
		testingHandle.Fatalf("Collect failed: %v", forwardError)
	}
	reverseEntries, reverseError := collector.Collect(rootDirectory, nil, []string{"two", "one"}, nil)
	if reverseError != nil {
		testingHandle.Fatalf("Collect failed: %v", reverseError)
	}

	forwardSet := entriesByRelativePath(testingHandle, forwardEntries, rootDirectory)
	reverseSet := entriesByRelativePath(testingHandle, reverseEntries, rootDirectory)
	if len(forwardSet) != len(reverseSet) {
		testingHandle.Fatalf("set sizes differ: %v vs %v", forwardSet, reverseSet)
	}
	for relativePath, content := range forwardSet {
		if reverseSet[relativePath] != content {
			testingHandle.Fatalf("sets differ at %s", relativePath)
		}
	}
}
