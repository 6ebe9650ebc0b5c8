// Package greeter builds greeting strings.
package greeter

import "github.com/mmonari/syntaxdemo/internal/logger"

var logGreeter = logger.New("greeter:greeter")

// Greet returns "Hello, <name>!". Any name is accepted, including the empty string.
func Greet(name string) string {
	logGreeter.Printf("Greeting name=%q", name)
	return "Hello, " + name + "!"
}
