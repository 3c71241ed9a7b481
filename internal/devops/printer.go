package devops

import (
	"fmt"
	"io"
	"strings"
)

func LogError(w io.Writer, msg string, a ...any) {
	fmt.Fprintf(w, "##vso[task.logissue type=error]%s\n", escape(fmt.Sprintf(msg, a...)))
}

func LogWarning(w io.Writer, msg string, a ...any) {
	fmt.Fprintf(w, "##vso[task.logissue type=warning]%s\n", escape(fmt.Sprintf(msg, a...)))
}

// LogErrorAt reports an error attached to a source location. An empty file
// produces a plain error.
func LogErrorAt(w io.Writer, file string, line int, msg string, a ...any) {
	if file == "" {
		LogError(w, msg, a...)
		return
	}

	fmt.Fprintf(w, "##vso[task.logissue type=error;sourcepath=%s;linenumber=%d]%s\n",
		file, line, escape(fmt.Sprintf(msg, a...)))
}

// Logging commands end at the first line break.
func escape(msg string) string {
	return strings.NewReplacer("\r", "%0D", "\n", "%0A").Replace(msg)
}
