package core

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// TraceNode describes one stack frame captured when an error was raised.
type TraceNode struct {
	// File is the absolute path of the source file.
	File string `json:"file"`
	// Line is the line number inside File.
	Line int `json:"line"`
	// Function is the short name of the enclosing function.
	Function string `json:"function"`
	// Text is the source line, empty when the file is not readable.
	Text string `json:"text,omitempty"`
}

// String formats the node like a traceback line.
func (n TraceNode) String() string {
	return fmt.Sprintf("%s:%d in %s", n.File, n.Line, n.Function)
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// CaptureTrace returns the current call stack ordered from the outermost frame
// down to the caller of CaptureTrace. skip drops that many additional frames
// at the inner end.
func CaptureTrace(skip int) []TraceNode {
	return captureTrace(skip + 1)
}

func captureTrace(skip int) []TraceNode {
	st, ok := errors.New("").(stackTracer)
	if !ok {
		return nil
	}

	frames := st.StackTrace()
	skip++ // captureTrace itself
	if skip >= len(frames) {
		return nil
	}
	frames = frames[skip:]

	nodes := make([]TraceNode, 0, len(frames))
	for i := len(frames) - 1; i >= 0; i-- {
		text, err := frames[i].MarshalText()
		if err != nil {
			continue
		}
		function, file, line := parseFrame(string(text))
		if function == "unknown" || strings.HasPrefix(function, "runtime.") {
			continue
		}
		nodes = append(nodes, TraceNode{
			File:     file,
			Line:     line,
			Function: shortFuncName(function),
			Text:     sourceLine(file, line),
		})
	}
	return nodes
}

// parseFrame splits the text form of a frame, "pkg.Func /path/file.go:42".
func parseFrame(s string) (function, file string, line int) {
	function, location, found := strings.Cut(s, " ")
	if !found {
		return s, "", 0
	}
	idx := strings.LastIndexByte(location, ':')
	if idx < 0 {
		return function, location, 0
	}
	line, _ = strconv.Atoi(location[idx+1:])
	return function, location[:idx], line
}

// shortFuncName strips the package path, "a/b/pkg.(*T).M" becomes "(*T).M".
func shortFuncName(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func sourceLine(file string, line int) string {
	if file == "" || line <= 0 {
		return ""
	}
	f, err := os.Open(file)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for n := 1; scanner.Scan(); n++ {
		if n == line {
			return strings.TrimSpace(scanner.Text())
		}
	}
	return ""
}

// FormatTrace renders a trace one frame per line, source text indented below.
func FormatTrace(trace []TraceNode) string {
	var sb strings.Builder
	for _, n := range trace {
		sb.WriteString(n.String())
		sb.WriteByte('\n')
		if n.Text != "" {
			sb.WriteString("    ")
			sb.WriteString(n.Text)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
