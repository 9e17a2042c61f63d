// Package config loads application and per-project configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/temirov/docgen/internal/types"
	"github.com/temirov/docgen/internal/utils"
)

const (
	// errorReadProjectFormat reports a project configuration file that cannot be read.
	errorReadProjectFormat = "read project configuration from %s: %w"
	// errorDecodeProjectFormat reports a project configuration file that cannot be decoded.
	errorDecodeProjectFormat = "decode project configuration from %s: %w"
	// errorListProjectsFormat reports a projects directory that cannot be listed.
	errorListProjectsFormat = "list project configurations in %s: %w"
	// errorMissingFieldFormat reports a required project configuration field that is empty.
	errorMissingFieldFormat = "project configuration %s: missing %s"

	projectNameFieldName = "project_name"
	projectPathFieldName = "project_path"
	outputFileFieldName  = "output_file"
)

var projectConfigurationExtensions = map[string]struct{}{
	".yml":  {},
	".yaml": {},
}

// LoadProjectConfiguration reads and validates one project configuration file.
func LoadProjectConfiguration(configFilePath string) (types.ProjectConfiguration, error) {
	reader := viper.New()
	reader.SetConfigFile(configFilePath)
	if readError := reader.ReadInConfig(); readError != nil {
		return types.ProjectConfiguration{}, fmt.Errorf(errorReadProjectFormat, configFilePath, readError)
	}

	var project types.ProjectConfiguration
	if decodeError := reader.Unmarshal(&project); decodeError != nil {
		return types.ProjectConfiguration{}, fmt.Errorf(errorDecodeProjectFormat, configFilePath, decodeError)
	}

	if project.ProjectName == utils.EmptyString {
		return types.ProjectConfiguration{}, fmt.Errorf(errorMissingFieldFormat, configFilePath, projectNameFieldName)
	}
	if project.ProjectPath == utils.EmptyString {
		return types.ProjectConfiguration{}, fmt.Errorf(errorMissingFieldFormat, configFilePath, projectPathFieldName)
	}
	if project.OutputFile == utils.EmptyString {
		return types.ProjectConfiguration{}, fmt.Errorf(errorMissingFieldFormat, configFilePath, outputFileFieldName)
	}

	project.Exclude = utils.DeduplicatePatterns(project.Exclude)
	return project, nil
}

// ListProjectConfigurationFiles returns the full paths of every YAML project
// configuration inside projectsDirectoryPath, in name order.
func ListProjectConfigurationFiles(projectsDirectoryPath string) ([]string, error) {
	directoryEntries, readDirectoryError := os.ReadDir(projectsDirectoryPath)
	if readDirectoryError != nil {
		return nil, fmt.Errorf(errorListProjectsFormat, projectsDirectoryPath, readDirectoryError)
	}

	var configurationPaths []string
	for _, directoryEntry := range directoryEntries {
		if directoryEntry.IsDir() {
			continue
		}
		entryExtension := strings.ToLower(filepath.Ext(directoryEntry.Name()))
		if _, recognized := projectConfigurationExtensions[entryExtension]; !recognized {
			continue
		}
		configurationPaths = append(configurationPaths, filepath.Join(projectsDirectoryPath, directoryEntry.Name()))
	}
	return configurationPaths, nil
}
