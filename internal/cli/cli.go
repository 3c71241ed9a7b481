package cli

import (
	"os"

	"utest/internal/cli/list"
	"utest/internal/cli/run"

	"github.com/alecthomas/kong"
	log "github.com/sirupsen/logrus"
)

// Configuration files read when present, before the one given with --config.
var defaultConfigPaths = []string{".utest.yaml", "~/.utest.yaml"}

type GlobalOpts struct {
	Verbosity   log.Level       `short:"v" help:"Set log level" default:"info" env:"UTEST_VERBOSITY"`
	AzureDevops bool            `short:"a" help:"Enable Azure DevOps integration" env:"TF_BUILD"`
	Config      kong.ConfigFlag `help:"Read flag defaults from this YAML file" placeholder:"FILE"`
}

type cli struct {
	Global GlobalOpts   `embed:""`
	List   list.ListCmd `cmd:"" help:"List registered tests and categories"`
	Run    run.RunCmd   `cmd:"" help:"Run registered tests" default:"withargs"`
}

func parserOptions(name string) []kong.Option {
	return []kong.Option{
		kong.Name(name),
		kong.Description("Runs the tests registered in this binary."),
		kong.UsageOnError(),
		kong.Configuration(YAML, defaultConfigPaths...),
	}
}

// ParseCommandLine parses os.Args. Without a command the binary runs every
// registered test.
func ParseCommandLine(name string) (*kong.Context, GlobalOpts) {
	c := cli{}
	parser := kong.Must(&c, parserOptions(name)...)

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	return ctx, c.Global
}
