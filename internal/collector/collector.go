// Package collector walks project trees and gathers the file contents that go
// into a generated document.
package collector

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/temirov/docgen/internal/types"
	"github.com/temirov/docgen/internal/utils"
)

// ErrNotText marks a collected file whose bytes are not valid UTF-8 text.
var ErrNotText = errors.New("content is not valid UTF-8 text")

const (
	// errorReadFileFormat reports a failure to read a file that exists.
	errorReadFileFormat = "reading file %s: %w"
	// errorReadDirectoryFormat reports a failure to list a directory.
	errorReadDirectoryFormat = "reading directory %s: %w"
	// errorDecodeFileFormat reports a file whose content is not decodable text.
	errorDecodeFileFormat = "decoding file %s: %w"

	// walkRootRelativePath is the relative path of a walk's starting directory.
	walkRootRelativePath = "."
)

// Collect resolves the explicit file and directory paths against rootPath and
// returns every collected file with its full text content. Explicit entries
// that do not exist on disk are silently skipped. Declared directories are
// walked depth-first; a subdirectory matching any exclusion pattern is skipped
// together with its entire subtree. Any read or decode failure aborts the
// whole collection with no partial results. Entry order follows the walk and
// is not guaranteed sorted.
func Collect(rootPath string, explicitFiles []string, explicitDirectories []string, exclusionPatterns []string) ([]types.FileEntry, error) {
	var entries []types.FileEntry

	for _, relativeFilePath := range explicitFiles {
		fullFilePath := filepath.Join(rootPath, relativeFilePath)
		fileInformation, statError := os.Stat(fullFilePath)
		if statError != nil || !fileInformation.Mode().IsRegular() {
			continue
		}
		fileContent, readError := readTextFile(fullFilePath)
		if readError != nil {
			return nil, readError
		}
		entries = append(entries, types.FileEntry{Path: fullFilePath, Content: fileContent})
	}

	for _, relativeDirectoryPath := range explicitDirectories {
		fullDirectoryPath := filepath.Join(rootPath, relativeDirectoryPath)
		directoryInformation, statError := os.Stat(fullDirectoryPath)
		if statError != nil || !directoryInformation.IsDir() {
			continue
		}
		if ShouldExclude(walkRootRelativePath, exclusionPatterns) {
			continue
		}
		collectedEntries, walkError := collectDirectory(fullDirectoryPath, fullDirectoryPath, exclusionPatterns, entries)
		if walkError != nil {
			return nil, walkError
		}
		entries = collectedEntries
	}

	return entries, nil
}

// collectDirectory recursively appends every regular file beneath
// currentDirectoryPath to entries. Subdirectories are tested against the
// exclusion patterns before descent, using their path relative to
// walkRootPath.
func collectDirectory(currentDirectoryPath string, walkRootPath string, exclusionPatterns []string, entries []types.FileEntry) ([]types.FileEntry, error) {
	directoryEntries, readDirectoryError := os.ReadDir(currentDirectoryPath)
	if readDirectoryError != nil {
		return nil, fmt.Errorf(errorReadDirectoryFormat, currentDirectoryPath, readDirectoryError)
	}

	for _, directoryEntry := range directoryEntries {
		entryPath := filepath.Join(currentDirectoryPath, directoryEntry.Name())

		if directoryEntry.IsDir() {
			relativeDirectoryPath := utils.RelativePathOrSelf(entryPath, walkRootPath)
			if ShouldExclude(relativeDirectoryPath, exclusionPatterns) {
				continue
			}
			nestedEntries, nestedError := collectDirectory(entryPath, walkRootPath, exclusionPatterns, entries)
			if nestedError != nil {
				return nil, nestedError
			}
			entries = nestedEntries
			continue
		}

		if !directoryEntry.Type().IsRegular() {
			continue
		}
		fileContent, readFileError := readTextFile(entryPath)
		if readFileError != nil {
			return nil, readFileError
		}
		entries = append(entries, types.FileEntry{Path: entryPath, Content: fileContent})
	}

	return entries, nil
}

// readTextFile reads a file in full and returns its content as decoded text.
func readTextFile(filePath string) (string, error) {
	contentBytes, readError := os.ReadFile(filePath)
	if readError != nil {
		return utils.EmptyString, fmt.Errorf(errorReadFileFormat, filePath, readError)
	}
	if !utf8.Valid(contentBytes) {
		return utils.EmptyString, fmt.Errorf(errorDecodeFileFormat, filePath, ErrNotText)
	}
	return string(contentBytes), nil
}
