package main

import (
	"fmt"

	"github.com/temirov/docgen/internal/cli"
	"github.com/temirov/docgen/internal/utils"
)

// main is the entry point for the docgen command.
func main() {
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger(utils.EmptyString)
	if loggerInitializationError != nil {
		panic(fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerInitializationError))
	}
	defer func() {
		_ = loggerInstance.Sync()
	}()
	if applicationExecutionError := cli.Execute(); applicationExecutionError != nil {
		loggerInstance.Fatal(utils.ApplicationExecutionFailedMessage + ": " + applicationExecutionError.Error())
	}
}
