// Package tree builds a materialized directory tree from a flat list of
// collected file paths and renders it with box-drawing connectors.
package tree

import (
	"sort"
	"strings"

	"github.com/temirov/docgen/internal/types"
	"github.com/temirov/docgen/internal/utils"
)

const (
	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "
)

// DirectoryNode is one directory in the materialized project tree. Each node
// exclusively owns its immediate file names and child directories; children
// render sorted by name, files before subdirectories.
type DirectoryNode struct {
	Name           string
	Files          []string
	Subdirectories map[string]*DirectoryNode
}

func newDirectoryNode(name string) *DirectoryNode {
	return &DirectoryNode{
		Name:           name,
		Subdirectories: map[string]*DirectoryNode{},
	}
}

// Build constructs the directory tree for the provided entries. Every entry
// path is relativized against projectRootPath; an entry outside the root is
// split as-is. Directories dedupe by their full path from the root. A relative
// path appearing twice yields two file leaves; the renderer does not collapse
// duplicates.
func Build(entries []types.FileEntry, projectRootPath string) *DirectoryNode {
	rootNode := newDirectoryNode(utils.EmptyString)
	for _, entry := range entries {
		relativePath := utils.RelativePathOrSelf(entry.Path, projectRootPath)
		pathComponents := utils.SplitPathComponents(relativePath)
		currentNode := rootNode
		for componentIndex, pathComponent := range pathComponents {
			if componentIndex == len(pathComponents)-1 {
				currentNode.Files = append(currentNode.Files, pathComponent)
				continue
			}
			childNode, exists := currentNode.Subdirectories[pathComponent]
			if !exists {
				childNode = newDirectoryNode(pathComponent)
				currentNode.Subdirectories[pathComponent] = childNode
			}
			currentNode = childNode
		}
	}
	return rootNode
}

// Render produces the newline-terminated tree text block for the entries. The
// root itself is never printed; the caller emits the project name line before
// the block. The returned text is deterministic for a given entry set
// regardless of input order.
func Render(projectName string, entries []types.FileEntry, projectRootPath string) string {
	rootNode := Build(entries, projectRootPath)
	rootNode.Name = projectName
	var builder strings.Builder
	renderNode(&builder, rootNode, utils.EmptyString, true, true)
	return builder.String()
}

// renderNode writes one directory and its subtree. The connector of every
// line is chosen by last-sibling status computed against the combined
// files-then-subdirectories ordering, so exactly one last connector appears
// per level. Children indent by four spaces under a last sibling and by a
// vertical rule otherwise.
func renderNode(builder *strings.Builder, node *DirectoryNode, indent string, isLast bool, isRoot bool) {
	if !isRoot {
		builder.WriteString(indent)
		builder.WriteString(connectorFor(isLast))
		builder.WriteString(node.Name)
		builder.WriteString("\n")
	}

	childIndent := indent + treeLastPadding
	if !isLast {
		childIndent = indent + treeBranchPadding
	}

	sortedFiles := append([]string(nil), node.Files...)
	sort.Strings(sortedFiles)
	subdirectoryNames := sortedSubdirectoryNames(node)
	totalChildren := len(sortedFiles) + len(subdirectoryNames)

	for fileIndex, fileName := range sortedFiles {
		isLastChild := fileIndex == totalChildren-1
		builder.WriteString(childIndent)
		builder.WriteString(connectorFor(isLastChild))
		builder.WriteString(fileName)
		builder.WriteString("\n")
	}

	for subdirectoryIndex, subdirectoryName := range subdirectoryNames {
		isLastChild := len(sortedFiles)+subdirectoryIndex == totalChildren-1
		renderNode(builder, node.Subdirectories[subdirectoryName], childIndent, isLastChild, false)
	}
}

func sortedSubdirectoryNames(node *DirectoryNode) []string {
	subdirectoryNames := make([]string, 0, len(node.Subdirectories))
	for subdirectoryName := range node.Subdirectories {
		subdirectoryNames = append(subdirectoryNames, subdirectoryName)
	}
	sort.Strings(subdirectoryNames)
	return subdirectoryNames
}

func connectorFor(isLast bool) string {
	if isLast {
		return treeLastConnector
	}
	return treeBranchConnector
}
