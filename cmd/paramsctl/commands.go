package main

import (
	"context"
	"fmt"
	"io"

	cmdutils "github.com/bittube/tube-params/cmd/utils"
	"github.com/bittube/tube-params/consensus/params"
	"github.com/bittube/tube-params/distrib"
	"github.com/bittube/tube-params/openalias"
	"github.com/bittube/tube-params/views"
	"github.com/pkg/errors"
)

func check(conf *checkConfig, out io.Writer) error {
	for _, file := range conf.Args.Files {
		r, err := params.LoadFile(file)
		if err != nil {
			return err
		}
		s := r.Get()
		fmt.Fprintf(out, "%s: ok (%s %s, explorer %s)\n", file, s.CoinSymbol, s.NetworkType, s.ExplorerURL())
	}
	return nil
}

func show(ctx context.Context, conf *showConfig, out io.Writer) error {
	r, source, err := cmdutils.LoadEither(ctx, conf.SourceOptions, conf.RedisOptions)
	if err != nil {
		return err
	}

	var buf []byte
	switch conf.Format {
	case "ini":
		buf, err = params.ToINI(r.Get())
	case "js":
		buf = []byte(views.ConfigJS(&views.ConfigContext{Params: r.Get(), Source: source}))
	default:
		buf, err = params.ToJSONIndent(r.Get())
		buf = append(buf, '\n')
	}
	if err != nil {
		return err
	}
	_, err = out.Write(buf)
	return err
}

func publish(ctx context.Context, conf *publishConfig) error {
	if !conf.RedisOptions.Enabled() {
		return errors.New("--redis is required")
	}
	r, err := conf.SourceOptions.Load()
	if err != nil {
		return err
	}

	client, err := conf.RedisOptions.Client(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	return distrib.NewPublisher(client, conf.Key).Publish(ctx, r.Get())
}

func alias(ctx context.Context, conf *aliasConfig, out io.Writer) error {
	r, err := conf.SourceOptions.Load()
	if err != nil {
		return err
	}

	server := conf.DNS
	if server == "" {
		server = openalias.SystemServer("1.1.1.1:53")
	}
	records, err := openalias.Resolver{Server: server, Prefix: r.Get().OpenAliasPrefix}.Lookup(ctx, conf.Args.Name)
	if err != nil {
		return err
	}
	for _, record := range records {
		fmt.Fprintf(out, "%s\t%s\t%s\n", record.Address, record.Name, record.Description)
	}
	return nil
}
