// Package cli provides the command line interface.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/docgen/internal/collector"
	"github.com/temirov/docgen/internal/config"
	"github.com/temirov/docgen/internal/language"
	"github.com/temirov/docgen/internal/output"
	"github.com/temirov/docgen/internal/services/clipboard"
	"github.com/temirov/docgen/internal/tokenizer"
	"github.com/temirov/docgen/internal/utils"
)

const (
	configFlagName    = "config"
	projectsFlagName  = "projects"
	languagesFlagName = "languages"
	outputFlagName    = "output"
	logsFlagName      = "logs"
	tokensFlagName    = "tokens"
	modelFlagName     = "model"
	clipboardFlagName = "clipboard"
	versionFlagName   = "version"
	forceFlagName     = "force"
	globalFlagName    = "global"

	versionTemplate      = "docgen version: %s\n"
	rootUse              = "docgen"
	rootShortDescription = "docgen generates Markdown documentation bundles"
	rootLongDescription  = `docgen reads project configurations, collects each project's declared files
and directories, and writes one Markdown document per project containing every
file's contents plus a tree of the project layout.`
	rootUsageExample = `  # Generate documentation for every project configuration
  docgen

  # Use a custom projects directory and copy the result to the clipboard
  docgen --projects ./configs --clipboard`

	initUse              = "init"
	initShortDescription = "write starter configuration"
	initLongDescription  = `Write a starter application configuration together with a sample project
configuration. Use --global to target the home directory and --force to
replace existing files.`

	configFlagDescription    = "application configuration file"
	projectsFlagDescription  = "directory containing project configuration files"
	languagesFlagDescription = "languages file mapping extensions to display names"
	outputFlagDescription    = "directory for generated documents"
	logsFlagDescription      = "directory for log files"
	tokensFlagDescription    = "log the token count of each generated document"
	modelFlagDescription     = "tokenizer model used for token counting"
	clipboardFlagDescription = "copy the generated document to the clipboard"
	versionFlagDescription   = "display application version"
	forceFlagDescription     = "overwrite existing configuration files"
	globalFlagDescription    = "initialize configuration in the home directory"

	defaultProjectsDirectory = "projects"
	defaultLanguagesFile     = "languages.yml"
	defaultOutputDirectory   = "output"
	defaultLogDirectory      = "logs"
	defaultTokenizerModel    = "gpt-4o"

	startMessage             = "Starting to generate project documentation"
	completeMessage          = "Project documentation generation complete"
	languagesLoadedMessage   = "Loaded language definitions"
	projectProcessingMessage = "Processing project configuration"
	projectGeneratedMessage  = "Generated documentation"
	projectFailedMessage     = "Skipping project after failure"
	tokenCountMessage        = "Token count for generated document"
	clipboardCopiedMessage   = "Copied generated document to clipboard"
	noProjectsMessage        = "No project configurations found"

	// errorAllProjectsFailed signals that no configured project produced a document.
	errorAllProjectsFailed = "all project configurations failed"
	// errorCreateOutputFormat reports a failure to create the output directory.
	errorCreateOutputFormat = "create output directory %s: %w"
	// errorWriteOutputFormat reports a failure to write a generated document.
	errorWriteOutputFormat = "write generated document %s: %w"
)

// generateSettings holds the effective tool-wide settings after merging
// configuration files and command line flags.
type generateSettings struct {
	projectsDirectory string
	languagesFile     string
	outputDirectory   string
	logDirectory      string
	tokensEnabled     bool
	tokenizerModel    string
	copyToClipboard   bool
}

// Execute runs the docgen application.
func Execute() error {
	rootCommand := createRootCommand()
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand() *cobra.Command {
	var showVersion bool

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				return nil
			}
			return runGenerate(command)
		},
	}

	rootCommand.PersistentFlags().String(configFlagName, utils.EmptyString, configFlagDescription)
	rootCommand.PersistentFlags().String(projectsFlagName, utils.EmptyString, projectsFlagDescription)
	rootCommand.PersistentFlags().String(languagesFlagName, utils.EmptyString, languagesFlagDescription)
	rootCommand.PersistentFlags().String(outputFlagName, utils.EmptyString, outputFlagDescription)
	rootCommand.PersistentFlags().String(logsFlagName, utils.EmptyString, logsFlagDescription)
	rootCommand.PersistentFlags().Bool(tokensFlagName, false, tokensFlagDescription)
	rootCommand.PersistentFlags().String(modelFlagName, utils.EmptyString, modelFlagDescription)
	rootCommand.PersistentFlags().Bool(clipboardFlagName, false, clipboardFlagDescription)
	rootCommand.Flags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)

	rootCommand.AddCommand(createInitCommand())

	return rootCommand
}

// createInitCommand builds the init subcommand.
func createInitCommand() *cobra.Command {
	var useGlobalTarget bool
	var forceOverwrite bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Long:  initLongDescription,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if useGlobalTarget {
				target = config.InitTargetGlobal
			}
			destinationPath, initializeError := config.InitializeConfiguration(config.InitOptions{
				Target: target,
				Force:  forceOverwrite,
			})
			if initializeError != nil {
				return initializeError
			}
			fmt.Printf("Configuration written to %s\n", destinationPath)
			return nil
		},
	}

	initCommand.Flags().BoolVar(&useGlobalTarget, globalFlagName, false, globalFlagDescription)
	initCommand.Flags().BoolVar(&forceOverwrite, forceFlagName, false, forceFlagDescription)

	return initCommand
}

// runGenerate processes every project configuration in the projects
// directory, one project to completion before the next. A failing project is
// logged and skipped; the run fails only when every project failed.
func runGenerate(command *cobra.Command) error {
	settings, settingsError := resolveGenerateSettings(command)
	if settingsError != nil {
		return settingsError
	}

	loggerInstance, loggerError := utils.NewApplicationLogger(settings.logDirectory)
	if loggerError != nil {
		return loggerError
	}
	defer func() {
		_ = loggerInstance.Sync()
	}()

	loggerInstance.Info(startMessage)

	languageTable, languagesError := language.Load(settings.languagesFile)
	if languagesError != nil {
		return languagesError
	}
	loggerInstance.Info(languagesLoadedMessage, zap.String("languages_file", settings.languagesFile))

	var tokenCounter tokenizer.Counter
	if settings.tokensEnabled {
		counter, _, counterError := tokenizer.NewCounter(tokenizer.Config{Model: settings.tokenizerModel})
		if counterError != nil {
			return counterError
		}
		tokenCounter = counter
	}

	projectConfigurationPaths, listError := config.ListProjectConfigurationFiles(settings.projectsDirectory)
	if listError != nil {
		return listError
	}
	if len(projectConfigurationPaths) == 0 {
		loggerInstance.Warn(noProjectsMessage, zap.String("projects_dir", settings.projectsDirectory))
		return nil
	}

	var copier clipboard.Copier
	if settings.copyToClipboard {
		copier = clipboard.NewService()
	}

	failureCount := 0
	for _, projectConfigurationPath := range projectConfigurationPaths {
		loggerInstance.Info(projectProcessingMessage, zap.String("configuration", projectConfigurationPath))
		if processError := processProject(loggerInstance, settings, languageTable, tokenCounter, copier, projectConfigurationPath); processError != nil {
			loggerInstance.Error(projectFailedMessage,
				zap.String("configuration", projectConfigurationPath),
				zap.Error(processError))
			failureCount++
		}
	}

	loggerInstance.Info(completeMessage)

	if failureCount == len(projectConfigurationPaths) {
		return errors.New(errorAllProjectsFailed)
	}
	return nil
}

// processProject generates and writes the documentation document for a single
// project configuration.
func processProject(loggerInstance *zap.Logger, settings generateSettings, languageTable *language.Table, tokenCounter tokenizer.Counter, copier clipboard.Copier, projectConfigurationPath string) error {
	project, loadError := config.LoadProjectConfiguration(projectConfigurationPath)
	if loadError != nil {
		return loadError
	}

	entries, collectError := collector.Collect(project.ProjectPath, project.Files, project.Directories, project.Exclude)
	if collectError != nil {
		return collectError
	}

	markdownContent := output.GenerateMarkdown(project.ProjectName, entries, languageTable, project.ProjectPath)

	if makeDirectoryError := os.MkdirAll(settings.outputDirectory, 0o755); makeDirectoryError != nil {
		return fmt.Errorf(errorCreateOutputFormat, settings.outputDirectory, makeDirectoryError)
	}
	outputPath := filepath.Join(settings.outputDirectory, project.OutputFile)
	if writeError := os.WriteFile(outputPath, []byte(markdownContent), 0o644); writeError != nil {
		return fmt.Errorf(errorWriteOutputFormat, outputPath, writeError)
	}

	loggerInstance.Info(projectGeneratedMessage,
		zap.String("project", project.ProjectName),
		zap.String("output", outputPath),
		zap.Int("files", len(entries)))

	if tokenCounter != nil {
		tokenCount, countError := tokenCounter.CountString(markdownContent)
		if countError != nil {
			loggerInstance.Warn("Token counting failed", zap.String("project", project.ProjectName), zap.Error(countError))
		} else {
			loggerInstance.Info(tokenCountMessage,
				zap.String("project", project.ProjectName),
				zap.Int("tokens", tokenCount),
				zap.String("model", tokenCounter.Name()))
		}
	}

	if copier != nil {
		if copyError := copier.Copy(markdownContent); copyError != nil {
			loggerInstance.Warn("Clipboard copy failed", zap.String("project", project.ProjectName), zap.Error(copyError))
		} else {
			loggerInstance.Info(clipboardCopiedMessage, zap.String("project", project.ProjectName))
		}
	}

	return nil
}

// resolveGenerateSettings merges configuration files and command line flags
// into the effective settings, flags winning over files.
func resolveGenerateSettings(command *cobra.Command) (generateSettings, error) {
	explicitConfigPath, _ := command.Flags().GetString(configFlagName)
	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
		ExplicitFilePath: explicitConfigPath,
	})
	if configurationError != nil {
		return generateSettings{}, configurationError
	}

	settings := generateSettings{
		projectsDirectory: defaultProjectsDirectory,
		languagesFile:     defaultLanguagesFile,
		outputDirectory:   defaultOutputDirectory,
		logDirectory:      defaultLogDirectory,
		tokenizerModel:    defaultTokenizerModel,
	}

	if applicationConfiguration.ProjectsDirectory != utils.EmptyString {
		settings.projectsDirectory = applicationConfiguration.ProjectsDirectory
	}
	if applicationConfiguration.LanguagesFile != utils.EmptyString {
		settings.languagesFile = applicationConfiguration.LanguagesFile
	}
	if applicationConfiguration.OutputDirectory != utils.EmptyString {
		settings.outputDirectory = applicationConfiguration.OutputDirectory
	}
	if applicationConfiguration.LogDirectory != utils.EmptyString {
		settings.logDirectory = applicationConfiguration.LogDirectory
	}
	if applicationConfiguration.Tokens.Enabled != nil {
		settings.tokensEnabled = *applicationConfiguration.Tokens.Enabled
	}
	if applicationConfiguration.Tokens.Model != utils.EmptyString {
		settings.tokenizerModel = applicationConfiguration.Tokens.Model
	}
	if applicationConfiguration.Clipboard != nil {
		settings.copyToClipboard = *applicationConfiguration.Clipboard
	}

	if command.Flags().Changed(projectsFlagName) {
		settings.projectsDirectory, _ = command.Flags().GetString(projectsFlagName)
	}
	if command.Flags().Changed(languagesFlagName) {
		settings.languagesFile, _ = command.Flags().GetString(languagesFlagName)
	}
	if command.Flags().Changed(outputFlagName) {
		settings.outputDirectory, _ = command.Flags().GetString(outputFlagName)
	}
	if command.Flags().Changed(logsFlagName) {
		settings.logDirectory, _ = command.Flags().GetString(logsFlagName)
	}
	if command.Flags().Changed(tokensFlagName) {
		settings.tokensEnabled, _ = command.Flags().GetBool(tokensFlagName)
	}
	if command.Flags().Changed(modelFlagName) {
		settings.tokenizerModel, _ = command.Flags().GetString(modelFlagName)
	}
	if command.Flags().Changed(clipboardFlagName) {
		settings.copyToClipboard, _ = command.Flags().GetBool(clipboardFlagName)
	}

	return settings, nil
}
