// Package output assembles the Markdown document for a documented project.
package output

import (
	"fmt"
	"strings"

	"github.com/temirov/docgen/internal/language"
	"github.com/temirov/docgen/internal/tree"
	"github.com/temirov/docgen/internal/types"
	"github.com/temirov/docgen/internal/utils"
)

const (
	documentTitleFormat = "# Project Documentation for %s\n\n"
	filesSectionHeader  = "## Project Files\n\n"
	fileSectionFormat   = "### File: `%s`\n\n```%s\n%s\n```\n\n"
	treeSectionHeader   = "\n## Project File Tree\n\n"
	codeFenceLine       = "```\n"
)

// GenerateMarkdown renders the complete documentation document for a project:
// a section per collected file with its content in a language-tagged fenced
// block, followed by the project file tree inside a plain fence. File sections
// appear in collector order; file paths display relative to projectRootPath
// when it is one of their ancestors.
func GenerateMarkdown(projectName string, entries []types.FileEntry, languageTable *language.Table, projectRootPath string) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, documentTitleFormat, projectName)
	builder.WriteString(filesSectionHeader)

	for _, entry := range entries {
		displayPath := utils.RelativePathOrSelf(entry.Path, projectRootPath)
		languageName := languageTable.Lookup(entry.Path)
		fmt.Fprintf(&builder, fileSectionFormat, displayPath, languageName, entry.Content)
	}

	builder.WriteString(treeSectionHeader)
	builder.WriteString(codeFenceLine)
	builder.WriteString(projectName)
	builder.WriteString("\n")
	builder.WriteString(tree.Render(projectName, entries, projectRootPath))
	builder.WriteString(codeFenceLine)

	return builder.String()
}
