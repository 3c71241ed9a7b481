package reporter

import (
	"regexp"
	"strings"

	"github.com/alessio/shellescape"

	"utest/pkg/utest/core"
)

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// RerunCommand returns a shell command running only the given tests again.
func RerunCommand(program string, outcomes []core.Outcome) string {
	if len(outcomes) == 0 {
		return ""
	}

	ids := make([]string, 0, len(outcomes))
	for _, out := range outcomes {
		ids = append(ids, regexp.QuoteMeta(out.Name()))
	}

	var cmd commandBuilder
	cmd.add(program, "run", "--run", "^("+strings.Join(ids, "|")+")$")
	return cmd.String()
}
