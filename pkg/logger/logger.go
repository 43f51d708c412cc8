// Package logger provides namespace-scoped debug logging controlled by the
// DEBUG environment variable, following the npm debug package conventions:
//
//	DEBUG=*                enables every logger
//	DEBUG=linter:*         enables a namespace subtree
//	DEBUG=ns1,ns2          enables specific namespaces
//	DEBUG=linter:*,-linter:compliance  enables a subtree minus one namespace
//
// Each enabled namespace gets a stable color (when stderr is a terminal and
// DEBUG_COLORS is not "0") and every line carries the time elapsed since the
// namespace last logged.
package logger

import (
	"fmt"
	"hash/fnv"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/cartforge/cartlint/pkg/tty"
)

// Logger is a debug logger bound to one namespace.
type Logger struct {
	namespace string
	enabled   bool
	color     string
	mu        sync.Mutex
	lastLog   time.Time
}

var (
	debugEnv    = os.Getenv("DEBUG")
	debugColors = os.Getenv("DEBUG_COLORS") != "0"
	stderrIsTTY = tty.IsStderrTerminal()

	// 256-color codes readable on both light and dark backgrounds.
	colorPalette = []string{
		"\033[38;5;33m",  // blue
		"\033[38;5;35m",  // green
		"\033[38;5;166m", // orange
		"\033[38;5;125m", // purple
		"\033[38;5;37m",  // cyan
		"\033[38;5;161m", // magenta
		"\033[38;5;136m", // yellow
		"\033[38;5;124m", // red
	}

	colorReset = "\033[0m"
)

// New creates a Logger for the given namespace. Whether the logger is
// enabled is decided once, at construction, from the DEBUG environment.
func New(namespace string) *Logger {
	return &Logger{
		namespace: namespace,
		enabled:   computeEnabled(namespace, debugEnv),
		color:     selectColor(namespace),
		lastLog:   time.Now(),
	}
}

// Enabled reports whether this logger writes anything.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Printf logs a formatted line if the logger is enabled.
func (l *Logger) Printf(format string, args ...any) {
	if !l.enabled {
		return
	}
	l.emit(fmt.Sprintf(format, args...))
}

// Print logs a line if the logger is enabled.
func (l *Logger) Print(args ...any) {
	if !l.enabled {
		return
	}
	l.emit(fmt.Sprint(args...))
}

func (l *Logger) emit(message string) {
	l.mu.Lock()
	now := time.Now()
	diff := now.Sub(l.lastLog)
	l.lastLog = now
	l.mu.Unlock()

	if l.color != "" {
		fmt.Fprintf(os.Stderr, "%s%s%s %s +%s\n", l.color, l.namespace, colorReset, message, formatDuration(diff))
	} else {
		fmt.Fprintf(os.Stderr, "%s %s +%s\n", l.namespace, message, formatDuration(diff))
	}
}

// formatDuration renders a duration the way the debug npm package does:
// largest sensible unit, short suffix.
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Hour:
		return fmt.Sprintf("%.0fh", d.Hours())
	case d >= time.Minute:
		return fmt.Sprintf("%.0fm", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.1fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
}

// selectColor assigns a stable palette color to a namespace via FNV-1a.
func selectColor(namespace string) string {
	if !debugColors || !stderrIsTTY {
		return ""
	}
	h := fnv.New32a()
	if _, err := h.Write([]byte(namespace)); err != nil {
		return ""
	}
	return colorPalette[h.Sum32()%uint32(len(colorPalette))]
}

// computeEnabled evaluates the DEBUG pattern list for a namespace.
// Exclusion patterns (leading -) take precedence over matches.
func computeEnabled(namespace, patterns string) bool {
	enabled := false
	for _, pattern := range strings.Split(patterns, ",") {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if exclude, ok := strings.CutPrefix(pattern, "-"); ok {
			if matchPattern(namespace, exclude) {
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

// matchPattern checks a namespace against one pattern, supporting a single
// * wildcard at the start, end, or middle.
func matchPattern(namespace, pattern string) bool {
	if pattern == "*" || pattern == namespace {
		return true
	}
	if !strings.Contains(pattern, "*") {
		return false
	}
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(namespace, prefix)
	}
	if suffix, ok := strings.CutPrefix(pattern, "*"); ok {
		return strings.HasSuffix(namespace, suffix)
	}
	parts := strings.SplitN(pattern, "*", 2)
	return strings.HasPrefix(namespace, parts[0]) && strings.HasSuffix(namespace, parts[1])
}
