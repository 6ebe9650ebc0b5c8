// Package calculator holds a single running result that each operation
// overwrites.
package calculator

import (
	"strconv"
	"sync"

	"github.com/mmonari/syntaxdemo/internal/logger"
)

var logCalc = logger.New("calculator:calculator")

// Calculator keeps the value produced by the most recent operation. The zero
// value is ready to use and reports a result of 0.
type Calculator struct {
	mu     sync.Mutex
	result float64
}

// New returns a calculator whose result is 0.
func New() *Calculator {
	return &Calculator{}
}

// Add stores x + y as the result and returns it.
func (c *Calculator) Add(x, y float64) float64 {
	return c.store("add", x+y)
}

// Multiply stores x * y as the result and returns it.
func (c *Calculator) Multiply(x, y float64) float64 {
	return c.store("multiply", x*y)
}

// Result returns the value of the last operation, or 0 if none has run.
func (c *Calculator) Result() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

func (c *Calculator) store(op string, v float64) float64 {
	c.mu.Lock()
	c.result = v
	c.mu.Unlock()

	logCalc.Printf("%s -> %s", op, FormatNumber(v))
	return v
}

// FormatNumber renders v with the fewest digits that round-trip, so whole
// numbers print without a fractional part.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
