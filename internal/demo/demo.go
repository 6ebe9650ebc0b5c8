// Package demo runs the greeting and calculator walkthrough printed by the
// default command.
package demo

import (
	"fmt"
	"io"

	"github.com/mmonari/syntaxdemo/internal/calculator"
	"github.com/mmonari/syntaxdemo/internal/config"
	"github.com/mmonari/syntaxdemo/internal/greeter"
	"github.com/mmonari/syntaxdemo/internal/logger"
)

var logDemo = logger.New("demo:demo")

// Options selects the greeting name and the operands of each calculation.
type Options struct {
	Name     string
	Add      config.Operands
	Multiply config.Operands
}

// DefaultOptions returns the options of the built-in walkthrough.
func DefaultOptions() Options {
	return OptionsFromConfig(config.DefaultConfig())
}

// OptionsFromConfig extracts the walkthrough options from cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Name:     cfg.Greeting.Name,
		Add:      cfg.Demo.Add,
		Multiply: cfg.Demo.Multiply,
	}
}

// Run writes three lines to w: the greeting, the sum and the product. A single
// calculator serves both operations.
func Run(w io.Writer, opts Options) error {
	logDemo.Printf("Running demo: name=%q", opts.Name)

	if _, err := fmt.Fprintln(w, greeter.Greet(opts.Name)); err != nil {
		return fmt.Errorf("failed to write greeting: %w", err)
	}

	calc := calculator.New()

	sum := calc.Add(opts.Add.X, opts.Add.Y)
	if _, err := fmt.Fprintf(w, "%s + %s = %s\n",
		calculator.FormatNumber(opts.Add.X), calculator.FormatNumber(opts.Add.Y), calculator.FormatNumber(sum)); err != nil {
		return fmt.Errorf("failed to write sum: %w", err)
	}

	product := calc.Multiply(opts.Multiply.X, opts.Multiply.Y)
	if _, err := fmt.Fprintf(w, "%s * %s = %s\n",
		calculator.FormatNumber(opts.Multiply.X), calculator.FormatNumber(opts.Multiply.Y), calculator.FormatNumber(product)); err != nil {
		return fmt.Errorf("failed to write product: %w", err)
	}

	logger.LogInfo("demo", "Demo finished: sum=%s product=%s", calculator.FormatNumber(sum), calculator.FormatNumber(product))
	return nil
}
