// Command annotext inspects and transforms annotated message text.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/iw2rmb/annotext/internal/config"
	"github.com/iw2rmb/annotext/internal/logging"
)

// CLI defines the command-line interface for annotext.
type CLI struct {
	Config    string `name:"config" short:"c" help:"YAML config file" type:"path"`
	LogLevel  string `name:"log-level" help:"Override log level (debug, info, warn, error)"`
	LogFormat string `name:"log-format" help:"Override log format (text, json)"`

	Segments  SegmentsCmd  `cmd:"" help:"Split text into plain and annotated segments"`
	Sanitize  SanitizeCmd  `cmd:"" help:"Fit ranges into the text bounds"`
	Merge     MergeCmd     `cmd:"" help:"Sort and merge overlapping or touching ranges"`
	Adjust    AdjustCmd    `cmd:"" help:"Translate ranges across a text edit"`
	Query     QueryCmd     `cmd:"" help:"Find the range at a position"`
	Scan      ScanCmd      `cmd:"" help:"Find @handle mentions in the text"`
	Direction DirectionCmd `cmd:"" help:"Detect the writing direction of the text"`
	Version   VersionCmd   `cmd:"" help:"Print version information"`
}

// Env is bound into every command's Run.
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Config config.Config
	Log    *slog.Logger
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var cli CLI
	exitCode := -1
	parser, err := kong.New(&cli,
		kong.Name("annotext"),
		kong.Description("Annotated text ranges: mentions, links and highlights"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exitCode = code }),
	)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if exitCode == 0 {
		// --help was printed by kong.
		return nil
	}
	if err != nil {
		return err
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	if cli.LogLevel != "" {
		cfg.Log.Level = cli.LogLevel
	}
	if cli.LogFormat != "" {
		cfg.Log.Format = cli.LogFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := logging.ParseLevel(cfg.Log.Level)
	format, _ := logging.ParseFormat(cfg.Log.Format)

	env := &Env{
		Stdin:  stdin,
		Stdout: stdout,
		Config: cfg,
		Log:    logging.New(stderr, level, format).With("cmd", ctx.Command()),
	}
	return ctx.Run(env)
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "annotext:", err)
		os.Exit(1)
	}
}
