package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/danmuck/ccndtag/internal/config"
	"github.com/danmuck/ccndtag/internal/logging"
	"github.com/danmuck/ccndtag/internal/protocol/dtag"
)

const usage = `usage: dtagctl [flags] <command> [args]

commands:
  name <code>...   print the element name for each DTAG code (decimal or 0x hex)
  code <name>...   print the DTAG code for each element name (case-sensitive)
  list             print the dictionary in table order
  check            rebuild the dictionary and verify it against the standard one
  init-config      write a configuration template

flags:
`

// errMiss makes the exit status 1 after all arguments were printed.
var errMiss = errors.New("one or more lookups missed")

type options struct {
	configPath string
	format     string
	logLevel   string
	output     string
	force      bool
}

func main() {
	logging.ConfigureRuntime()
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := pflag.NewFlagSet("dtagctl", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&opts.configPath, "config", "c", "", "path to a dtagctl TOML config")
	fs.StringVarP(&opts.format, "format", "f", "", "list output format: text|toml")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level override")
	fs.StringVarP(&opts.output, "output", "o", "dtagctl.toml", "init-config output path")
	fs.BoolVar(&opts.force, "force", false, "init-config overwrites an existing file")
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return 2
	}

	cfg, err := resolveConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "dtagctl: %v\n", err)
		return 2
	}
	logCfg := logging.Resolve(logging.ProfileRuntime)
	logCfg.Out = stderr
	if lvl, ok := logging.ParseLevel(cfg.LogLevel); ok {
		logCfg.Level = lvl
		logging.SetLevel(lvl)
	}
	logger := logging.New(logCfg)

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	logger.Debug().Str("command", cmd).Int("args", len(rest)).Msg("dtagctl")

	switch cmd {
	case "name":
		err = runName(dtag.Standard(), rest, stdout)
	case "code":
		err = runCode(dtag.Standard(), rest, stdout)
	case "list":
		err = runList(dtag.Standard(), cfg.Format, stdout)
	case "check":
		err = runCheck(stdout)
	case "init-config":
		err = config.WriteTemplate(opts.output, opts.force)
		if err == nil {
			fmt.Fprintf(stdout, "wrote %s\n", opts.output)
		}
	default:
		fmt.Fprintf(stderr, "dtagctl: unknown command %q\n", cmd)
		fs.Usage()
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errMiss):
		logger.Warn().Str("command", cmd).Msg("lookup miss")
		return 1
	default:
		fmt.Fprintf(stderr, "dtagctl: %v\n", err)
		return 1
	}
}

func resolveConfig(opts options) (config.ToolConfig, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.LoadToolConfig(opts.configPath)
		if err != nil {
			return config.ToolConfig{}, err
		}
		cfg = loaded
	}
	if opts.format != "" {
		cfg.Format = opts.format
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if err := config.ValidateToolConfig(cfg); err != nil {
		return config.ToolConfig{}, err
	}
	return cfg, nil
}

func parseCode(raw string) (dtag.DTag, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(raw), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid code %q", raw)
	}
	return dtag.DTag(v), nil
}

func runName(d dtag.Lookup, args []string, w io.Writer) error {
	if len(args) == 0 {
		return errors.New("name: at least one code required")
	}
	missed := false
	for _, raw := range args {
		code, err := parseCode(raw)
		if err != nil {
			return err
		}
		name, ok := d.NameFor(code)
		if !ok {
			missed = true
			name = "<not found>"
		}
		fmt.Fprintf(w, "%d %s\n", uint32(code), name)
	}
	if missed {
		return errMiss
	}
	return nil
}

func runCode(d dtag.Lookup, args []string, w io.Writer) error {
	if len(args) == 0 {
		return errors.New("code: at least one name required")
	}
	missed := false
	for _, name := range args {
		code, ok := d.CodeFor(name)
		if !ok {
			missed = true
			fmt.Fprintf(w, "%s <not found>\n", name)
			continue
		}
		fmt.Fprintf(w, "%s %d\n", name, uint32(code))
	}
	if missed {
		return errMiss
	}
	return nil
}

type listEntry struct {
	Code uint32 `toml:"code"`
	Name string `toml:"name"`
}

type listDoc struct {
	Entry []listEntry `toml:"entry"`
}

func runList(d *dtag.Dict, format string, w io.Writer) error {
	entries := d.Entries()
	switch format {
	case config.FormatTOML:
		doc := listDoc{Entry: make([]listEntry, 0, len(entries))}
		for _, e := range entries {
			doc.Entry = append(doc.Entry, listEntry{Code: uint32(e.Code), Name: e.Name})
		}
		return toml.NewEncoder(w).Encode(doc)
	default:
		for _, e := range entries {
			fmt.Fprintf(w, "%10d  %s\n", uint32(e.Code), e.Name)
		}
		return nil
	}
}

func runCheck(w io.Writer) error {
	rebuilt, err := dtag.Build(dtag.StandardEntries())
	if err != nil {
		return err
	}
	std := dtag.Standard()
	if rebuilt.Len() != std.Len() {
		return fmt.Errorf("check: size mismatch rebuilt=%d standard=%d", rebuilt.Len(), std.Len())
	}
	for _, e := range rebuilt.Entries() {
		name, ok := std.NameFor(e.Code)
		if !ok || name != e.Name {
			return fmt.Errorf("check: code %d disagrees (%q vs %q)", uint32(e.Code), e.Name, name)
		}
		code, ok := std.CodeFor(e.Name)
		if !ok || code != e.Code {
			return fmt.Errorf("check: name %q disagrees (%d vs %d)", e.Name, uint32(e.Code), uint32(code))
		}
	}
	fmt.Fprintf(w, "ok %d entries\n", std.Len())
	return nil
}
