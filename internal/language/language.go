// Package language maps file extensions to the display language names used in
// fenced code blocks.
package language

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DefaultLanguageName labels files whose extension has no mapping.
const DefaultLanguageName = "Text"

// languagesConfigurationKey is the top-level key of the languages file.
const languagesConfigurationKey = "languages"

// Table resolves display language names from file extensions.
type Table struct {
	languagesByExtension map[string]string
}

// NewTable builds a lookup table from an extension-to-language mapping.
// Extension keys are lowercased; the mapping is copied.
func NewTable(languagesByExtension map[string]string) *Table {
	normalized := make(map[string]string, len(languagesByExtension))
	for extension, languageName := range languagesByExtension {
		normalized[strings.ToLower(extension)] = languageName
	}
	return &Table{languagesByExtension: normalized}
}

// Default returns the built-in extension table covering common languages.
func Default() *Table {
	return NewTable(map[string]string{
		"c":     "C",
		"cpp":   "C++",
		"cs":    "C#",
		"css":   "CSS",
		"go":    "Go",
		"h":     "C",
		"html":  "HTML",
		"java":  "Java",
		"js":    "JavaScript",
		"json":  "JSON",
		"kt":    "Kotlin",
		"md":    "Markdown",
		"php":   "PHP",
		"py":    "Python",
		"rb":    "Ruby",
		"rs":    "Rust",
		"sh":    "Shell",
		"sql":   "SQL",
		"swift": "Swift",
		"toml":  "TOML",
		"ts":    "TypeScript",
		"txt":   "Text",
		"xml":   "XML",
		"yaml":  "YAML",
		"yml":   "YAML",
	})
}

// Load reads a languages file and overlays its mappings on the built-in
// defaults. A missing or empty path yields the defaults; a present but
// unreadable or malformed file is an error.
func Load(languagesFilePath string) (*Table, error) {
	if languagesFilePath == "" {
		return Default(), nil
	}
	if _, statError := os.Stat(languagesFilePath); statError != nil {
		if os.IsNotExist(statError) {
			return Default(), nil
		}
		return nil, fmt.Errorf("stat languages file %s: %w", languagesFilePath, statError)
	}

	reader := viper.New()
	reader.SetConfigFile(languagesFilePath)
	if readError := reader.ReadInConfig(); readError != nil {
		return nil, fmt.Errorf("read languages file %s: %w", languagesFilePath, readError)
	}

	table := Default()
	for extension, languageName := range reader.GetStringMapString(languagesConfigurationKey) {
		table.languagesByExtension[strings.ToLower(extension)] = languageName
	}
	return table, nil
}

// Lookup returns the display language name for a file path, falling back to
// DefaultLanguageName for unmapped or missing extensions.
func (table *Table) Lookup(filePath string) string {
	extension := strings.TrimPrefix(filepath.Ext(filePath), ".")
	if extension == "" {
		return DefaultLanguageName
	}
	languageName, exists := table.languagesByExtension[strings.ToLower(extension)]
	if !exists {
		return DefaultLanguageName
	}
	return languageName
}
