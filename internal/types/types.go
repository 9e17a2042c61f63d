// Package types defines the cross-package data structures used by the docgen tool.
package types

// FileEntry pairs a collected file path with its full textual content.
// The path is exactly as the collector resolved it; the tree renderer consumes
// only the path and the Markdown assembler only the content.
type FileEntry struct {
	Path    string
	Content string
}

// ProjectConfiguration describes one project to document, as declared in a
// project configuration file.
type ProjectConfiguration struct {
	ProjectName string   `mapstructure:"project_name"`
	ProjectPath string   `mapstructure:"project_path"`
	OutputFile  string   `mapstructure:"output_file"`
	Files       []string `mapstructure:"files"`
	Directories []string `mapstructure:"directories"`
	Exclude     []string `mapstructure:"exclude"`
}
