package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/temirov/docgen/internal/utils"
)

// InitTarget identifies where configuration should be initialized.
type InitTarget string

const (
	// InitTargetLocal writes configuration into the working directory.
	InitTargetLocal InitTarget = "local"
	// InitTargetGlobal writes configuration into the global configuration directory.
	InitTargetGlobal InitTarget = "global"

	// sampleProjectFileName is the name of the sample project configuration
	// written alongside a local application configuration.
	sampleProjectFileName = "sample.yml"

	defaultConfigurationTemplate = `projects_dir: projects
languages_file: languages.yml
output_dir: output
log_dir: logs
tokens:
  enabled: false
  model: gpt-4o
clipboard: false
`

	sampleProjectTemplate = `project_name: Sample Project
project_path: .
output_file: sample_project.md
files:
  - README.md
directories:
  - src
exclude:
  - "**/node_modules"
  - "**/.git"
`
)

// InitOptions controls how configuration initialization behaves.
type InitOptions struct {
	Target           InitTarget
	Force            bool
	WorkingDirectory string
}

// InitializeConfiguration writes the default application configuration to the
// requested target. A local target additionally creates the projects directory
// with a sample project configuration. Existing files are only replaced when
// Force is set.
func InitializeConfiguration(options InitOptions) (string, error) {
	target := options.Target
	if target == utils.EmptyString {
		target = InitTargetLocal
	}

	var destinationPath string
	switch target {
	case InitTargetLocal:
		workingDirectory := options.WorkingDirectory
		if workingDirectory == utils.EmptyString {
			current, err := os.Getwd()
			if err != nil {
				return utils.EmptyString, fmt.Errorf("determine working directory for configuration: %w", err)
			}
			workingDirectory = current
		}
		destinationPath = filepath.Join(workingDirectory, utils.ConfigFileName)
		if err := writeConfigurationFile(destinationPath, defaultConfigurationTemplate, options.Force); err != nil {
			return utils.EmptyString, err
		}
		projectsDirectory := filepath.Join(workingDirectory, "projects")
		if err := os.MkdirAll(projectsDirectory, 0o755); err != nil {
			return utils.EmptyString, fmt.Errorf("create projects directory %s: %w", projectsDirectory, err)
		}
		sampleProjectPath := filepath.Join(projectsDirectory, sampleProjectFileName)
		if err := writeConfigurationFile(sampleProjectPath, sampleProjectTemplate, options.Force); err != nil {
			return utils.EmptyString, err
		}
	case InitTargetGlobal:
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			return utils.EmptyString, fmt.Errorf("resolve home directory for configuration: %w", err)
		}
		configurationDirectory := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName)
		if err := os.MkdirAll(configurationDirectory, 0o755); err != nil {
			return utils.EmptyString, fmt.Errorf("create configuration directory %s: %w", configurationDirectory, err)
		}
		destinationPath = filepath.Join(configurationDirectory, utils.ConfigFileName)
		if err := writeConfigurationFile(destinationPath, defaultConfigurationTemplate, options.Force); err != nil {
			return utils.EmptyString, err
		}
	default:
		return utils.EmptyString, fmt.Errorf("unsupported init target %q", target)
	}

	return destinationPath, nil
}

func writeConfigurationFile(destinationPath string, content string, force bool) error {
	if _, err := os.Stat(destinationPath); err == nil {
		if !force {
			return fmt.Errorf("configuration file already exists at %s", destinationPath)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("inspect configuration path %s: %w", destinationPath, err)
	}

	if err := os.WriteFile(destinationPath, []byte(content), 0o600); err != nil {
		return fmt.Errorf("write configuration to %s: %w", destinationPath, err)
	}
	return nil
}
