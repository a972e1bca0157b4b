// Command paramsctl checks, prints and publishes TUBE network parameter sets.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bittube/tube-params/consensus/utils"
	"github.com/pkg/errors"
)

func main() {
	subCmd, debug, config := parseCommandLine()
	utils.SetDebug(debug)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var err error
	switch subCmd {
	case checkSubCmd:
		err = check(config.(*checkConfig), os.Stdout)
	case showSubCmd:
		err = show(ctx, config.(*showConfig), os.Stdout)
	case publishSubCmd:
		err = publish(ctx, config.(*publishConfig))
	case aliasSubCmd:
		err = alias(ctx, config.(*aliasConfig), os.Stdout)
	default:
		err = errors.Errorf("Unknown sub-command '%s'", subCmd)
	}

	if err != nil {
		utils.Errorf("Params", "%s", err)
		stop()
		os.Exit(1)
	}
}
