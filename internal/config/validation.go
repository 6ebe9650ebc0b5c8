package config

import (
	"os"
	"regexp"

	"github.com/mmonari/syntaxdemo/internal/config/rules"
	"github.com/mmonari/syntaxdemo/internal/logger"
)

// ValidationError is an alias for rules.ValidationError
type ValidationError = rules.ValidationError

// Variable expression pattern: ${VARIABLE_NAME}
var varExprPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

var logValidation = logger.New("config:validation")

// expandVariables replaces ${VAR} with the environment value. The first
// undefined variable is reported as an error.
func expandVariables(value, path string) (string, error) {
	var undefinedVars []string

	result := varExprPattern.ReplaceAllStringFunc(value, func(match string) string {
		varName := match[2 : len(match)-1]
		if envValue, exists := os.LookupEnv(varName); exists {
			logValidation.Printf("Expanded variable: %s at %s", varName, path)
			return envValue
		}
		undefinedVars = append(undefinedVars, varName)
		return match
	})

	if len(undefinedVars) > 0 {
		logValidation.Printf("Variable expansion failed: undefined variables=%v", undefinedVars)
		return "", rules.UndefinedVariable(undefinedVars[0], path)
	}
	return result, nil
}

// Validate checks the settings that have no sensible empty value. An empty
// greeting name is valid.
func (c *Config) Validate() error {
	if c.Server.Name == "" {
		return rules.MissingRequired("name", "server.name", "Set server.name or remove it to use the default")
	}
	if c.Server.Version == "" {
		return rules.MissingRequired("version", "server.version", "Set server.version or remove it to use the default")
	}
	if c.Log.Dir != "" {
		if c.Log.File == "" {
			return rules.MissingRequired("file", "log.file", "Set log.file when log.dir is configured")
		}
		if err := rules.FileName(c.Log.File, "log.file"); err != nil {
			return err
		}
	}
	return nil
}
