package main

import (
	"os"

	cmdutils "github.com/bittube/tube-params/cmd/utils"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	checkSubCmd   = "check"
	showSubCmd    = "show"
	publishSubCmd = "publish"
	aliasSubCmd   = "alias"
)

type configFlags struct {
	Debug bool `long:"debug" description:"Enable debug logging"`
}

type checkConfig struct {
	Args struct {
		Files []string `positional-arg-name:"file" required:"1"`
	} `positional-args:"yes"`
}

type showConfig struct {
	Format string `long:"format" short:"f" description:"Output format" choice:"json" choice:"ini" choice:"js" default:"json"`
	cmdutils.SourceOptions
	cmdutils.RedisOptions
}

type publishConfig struct {
	cmdutils.SourceOptions
	cmdutils.RedisOptions
}

type aliasConfig struct {
	DNS  string `long:"dns" description:"DNS server, host:port (default: first resolv.conf nameserver)"`
	Args struct {
		Name string `positional-arg-name:"name" required:"yes"`
	} `positional-args:"yes"`
	cmdutils.SourceOptions
}

func parseCommandLine() (subCommand string, debug bool, config any) {
	cfg := &configFlags{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)

	checkConf := &checkConfig{}
	parser.AddCommand(checkSubCmd, "Validates parameter files",
		"Loads every given .json or .ini parameter file and validates it, exiting non-zero on the first failure", checkConf)

	showConf := &showConfig{}
	parser.AddCommand(showSubCmd, "Prints a parameter set",
		"Prints the shipped parameters, a parameter file or the set published in Redis as JSON, INI or config.js", showConf)

	publishConf := &publishConfig{}
	parser.AddCommand(publishSubCmd, "Publishes a parameter set to Redis",
		"Validates the shipped parameters or a parameter file and stores it in Redis for other processes", publishConf)

	aliasConf := &aliasConfig{}
	parser.AddCommand(aliasSubCmd, "Resolves an OpenAlias name",
		"Queries DNS for OpenAlias records tagged with the configured openAliasPrefix", aliasConf)

	_, err := parser.Parse()
	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
		return "", false, nil
	}

	switch parser.Command.Active.Name {
	case checkSubCmd:
		config = checkConf
	case showSubCmd:
		config = showConf
	case publishSubCmd:
		config = publishConf
	case aliasSubCmd:
		config = aliasConf
	}
	return parser.Command.Active.Name, cfg.Debug, config
}
