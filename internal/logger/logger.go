// Package logger provides the namespaced debug loggers and the optional file
// logger used across syntaxdemo.
//
// Debug loggers are created per file with New("pkg:file") and stay silent
// unless the DEBUG environment variable selects their namespace:
//
//	DEBUG=*                     every namespace
//	DEBUG=calculator:*          one package
//	DEBUG=*,-greeter:*          everything except the greeter
//
// Output goes to stderr so it never mixes with the program's stdout. When the
// file logger is initialized, enabled debug loggers are mirrored into it.
package logger

import (
	"fmt"
	"hash/fnv"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"
)

const colorReset = "\033[0m"

var colorPalette = []string{
	"\033[38;5;33m",
	"\033[38;5;35m",
	"\033[38;5;37m",
	"\033[38;5;129m",
	"\033[38;5;166m",
	"\033[38;5;172m",
	"\033[38;5;196m",
	"\033[38;5;202m",
}

var (
	// DEBUG_COLORS=0 turns colours off even on a terminal.
	debugColors = os.Getenv("DEBUG_COLORS") != "0"
	isTTY       = term.IsTerminal(int(os.Stderr.Fd()))
)

// Logger is a namespaced debug logger.
type Logger struct {
	namespace string
	enabled   bool
	color     string

	mu      sync.Mutex
	lastLog time.Time
}

// New creates a logger for namespace. Whether it is enabled is decided once,
// from DEBUG at construction time.
func New(namespace string) *Logger {
	return &Logger{
		namespace: namespace,
		enabled:   computeEnabled(namespace),
		color:     selectColor(namespace),
		lastLog:   time.Now(),
	}
}

// Enabled reports whether the logger writes anything.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Printf logs a formatted message.
func (l *Logger) Printf(format string, args ...any) {
	if !l.enabled {
		return
	}
	l.write(fmt.Sprintf(format, args...))
}

// Print logs its operands concatenated the way fmt.Sprint does.
func (l *Logger) Print(args ...any) {
	if !l.enabled {
		return
	}
	l.write(fmt.Sprint(args...))
}

func (l *Logger) write(message string) {
	l.mu.Lock()
	now := time.Now()
	diff := now.Sub(l.lastLog)
	l.lastLog = now
	l.mu.Unlock()

	if l.color != "" {
		fmt.Fprintf(os.Stderr, "%s%s%s %s %s+%s%s\n", l.color, l.namespace, colorReset, message, l.color, formatDiff(diff), colorReset)
	} else {
		fmt.Fprintf(os.Stderr, "%s %s +%s\n", l.namespace, message, formatDiff(diff))
	}

	LogDebug(l.namespace, "%s", message)
}

func formatDiff(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%.1fm", d.Minutes())
	}
}

// selectColor picks a stable palette entry for namespace, or "" when colours are off.
func selectColor(namespace string) string {
	if !debugColors || !isTTY {
		return ""
	}
	h := fnv.New32a()
	h.Write([]byte(namespace))
	return colorPalette[h.Sum32()%uint32(len(colorPalette))]
}

// computeEnabled evaluates DEBUG against namespace. Exclusions (-pattern) win
// over any inclusion.
func computeEnabled(namespace string) bool {
	debugEnv := os.Getenv("DEBUG")
	if debugEnv == "" {
		return false
	}

	enabled := false
	for _, pattern := range strings.Split(debugEnv, ",") {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if strings.HasPrefix(pattern, "-") {
			if matchPattern(namespace, pattern[1:]) {
				return false
			}
			continue
		}
		if matchPattern(namespace, pattern) {
			enabled = true
		}
	}
	return enabled
}

// matchPattern reports whether namespace matches pattern, where each * matches
// any run of characters.
func matchPattern(namespace, pattern string) bool {
	if pattern == "*" {
		return true
	}
	if !strings.Contains(pattern, "*") {
		return namespace == pattern
	}

	parts := strings.Split(pattern, "*")
	if !strings.HasPrefix(namespace, parts[0]) {
		return false
	}
	rest := namespace[len(parts[0]):]
	for _, part := range parts[1 : len(parts)-1] {
		idx := strings.Index(rest, part)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(part):]
	}
	return strings.HasSuffix(rest, parts[len(parts)-1])
}
