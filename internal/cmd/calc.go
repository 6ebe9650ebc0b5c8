package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mmonari/syntaxdemo/internal/calculator"
	"github.com/mmonari/syntaxdemo/internal/greeter"
	"github.com/mmonari/syntaxdemo/internal/logger"
)

var logCalc = logger.New("cmd:calc")

func newGreetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "greet [name]",
		Short: "Print the greeting for a name",
		Long: `Print "Hello, <name>!". Without an argument the configured greeting
name is used (World by default). An empty argument is greeted as is.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := opts.cfg.Greeting.Name
			if len(args) == 1 {
				name = args[0]
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), greeter.Greet(name))
			return err
		},
	}
}

// binaryOp is a calculator operation printed as "<x> <symbol> <y> = <result>".
type binaryOp struct {
	name   string
	symbol string
	apply  func(c *calculator.Calculator, x, y float64) float64
}

var (
	addOp = binaryOp{
		name:   "add",
		symbol: "+",
		apply:  (*calculator.Calculator).Add,
	}
	multiplyOp = binaryOp{
		name:   "multiply",
		symbol: "*",
		apply:  (*calculator.Calculator).Multiply,
	}
)

func newAddCmd() *cobra.Command {
	return newBinaryOpCmd(addOp, "Add two numbers")
}

func newMultiplyCmd() *cobra.Command {
	return newBinaryOpCmd(multiplyOp, "Multiply two numbers")
}

func newBinaryOpCmd(op binaryOp, short string) *cobra.Command {
	return &cobra.Command{
		Use:   op.name + " <x> <y>",
		Short: short,
		Long: short + `. Operands may be integers or decimals.
Put -- before the operands when the first one is negative:

  syntaxdemo ` + op.name + ` -- -2 5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := parseOperands(args)
			if err != nil {
				return err
			}

			result := op.apply(calculator.New(), x, y)
			logCalc.Printf("%s: x=%v, y=%v, result=%v", op.name, x, y, result)
			logger.LogInfo("calc", "%s %s %s = %s", calculator.FormatNumber(x), op.symbol, calculator.FormatNumber(y), calculator.FormatNumber(result))

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s = %s\n",
				calculator.FormatNumber(x), op.symbol, calculator.FormatNumber(y), calculator.FormatNumber(result))
			return err
		},
	}
}

func parseOperands(args []string) (float64, float64, error) {
	var values [2]float64
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid operand %q: must be a number", arg)
		}
		values[i] = v
	}
	return values[0], values[1], nil
}
