package server

import (
	"context"
	"fmt"
	"math"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mmonari/syntaxdemo/internal/calculator"
	"github.com/mmonari/syntaxdemo/internal/greeter"
	"github.com/mmonari/syntaxdemo/internal/logger"
)

var logTools = logger.New("server:tools")

// GreetInput is the argument of the greet tool. A missing name falls back to
// the configured greeting name; an empty one is greeted as is.
type GreetInput struct {
	Name *string `json:"name,omitempty" jsonschema:"Name to greet (default: the configured greeting name)"`
}

// GreetOutput is the structured result of the greet tool.
type GreetOutput struct {
	Greeting string `json:"greeting"`
}

// OperandsInput is the argument of the add and multiply tools.
type OperandsInput struct {
	X float64 `json:"x" jsonschema:"First operand"`
	Y float64 `json:"y" jsonschema:"Second operand"`
}

// ResultInput is the (empty) argument of the result tool.
type ResultInput struct{}

// ResultOutput is the structured result of the calculator tools.
type ResultOutput struct {
	Result float64 `json:"result"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "greet",
		Description: "Return the greeting \"Hello, <name>!\" for a name.",
	}, s.handleGreet)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "add",
		Description: "Add x and y. The sum becomes the calculator's result.",
	}, s.handleAdd)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "multiply",
		Description: "Multiply x by y. The product becomes the calculator's result.",
	}, s.handleMultiply)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "result",
		Description: "Return the calculator's result: the output of the last add or multiply call, or 0.",
	}, s.handleResult)
}

func textResult(text string) *sdk.CallToolResult {
	return &sdk.CallToolResult{
		Content: []sdk.Content{
			&sdk.TextContent{Text: text},
		},
	}
}

func (s *Server) handleGreet(ctx context.Context, req *sdk.CallToolRequest, input GreetInput) (*sdk.CallToolResult, GreetOutput, error) {
	name := s.cfg.Greeting.Name
	if input.Name != nil {
		name = *input.Name
	}
	logTools.Printf("greet: name=%q", name)

	greeting := greeter.Greet(name)
	return textResult(greeting), GreetOutput{Greeting: greeting}, nil
}

func (s *Server) handleAdd(ctx context.Context, req *sdk.CallToolRequest, input OperandsInput) (*sdk.CallToolResult, ResultOutput, error) {
	logTools.Printf("add: x=%v, y=%v", input.X, input.Y)
	return calcResult("add", s.calc.Add(input.X, input.Y))
}

func (s *Server) handleMultiply(ctx context.Context, req *sdk.CallToolRequest, input OperandsInput) (*sdk.CallToolResult, ResultOutput, error) {
	logTools.Printf("multiply: x=%v, y=%v", input.X, input.Y)
	return calcResult("multiply", s.calc.Multiply(input.X, input.Y))
}

func (s *Server) handleResult(ctx context.Context, req *sdk.CallToolRequest, input ResultInput) (*sdk.CallToolResult, ResultOutput, error) {
	return calcResult("result", s.calc.Result())
}

// calcResult renders v as text and structured output. JSON has no encoding
// for Inf or NaN, so those are reported as tool errors.
func calcResult(op string, v float64) (*sdk.CallToolResult, ResultOutput, error) {
	text := calculator.FormatNumber(v)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		logger.LogWarn("server", "%s produced non-finite result %s", op, text)
		return nil, ResultOutput{}, fmt.Errorf("%s: result %s cannot be represented in JSON", op, text)
	}
	logger.LogInfo("server", "%s -> %s", op, text)
	return textResult(text), ResultOutput{Result: v}, nil
}
