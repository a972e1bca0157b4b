package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	cmdutils "github.com/bittube/tube-params/cmd/utils"
	"github.com/bittube/tube-params/consensus/params"
	"github.com/bittube/tube-params/consensus/tube"
)

var testdata = filepath.Join("..", "..", "consensus", "params", "testdata")

func TestCheck(t *testing.T) {
	var out bytes.Buffer
	conf := &checkConfig{}
	conf.Args.Files = []string{filepath.Join(testdata, "config.json"), filepath.Join(testdata, "config.ini")}
	if err := check(conf, &out); err != nil {
		t.Fatal(err)
	}
	if strings.Count(out.String(), ": ok") != 2 {
		t.Fatalf("unexpected output %s", out.String())
	}

	conf.Args.Files = []string{filepath.Join(testdata, "missing.json")}
	if err := check(conf, &out); err == nil {
		t.Fatal("expected a missing file to fail")
	}
}

func TestShow(t *testing.T) {
	ctx := context.Background()

	var out bytes.Buffer
	if err := show(ctx, &showConfig{Format: "json"}, &out); err != nil {
		t.Fatal(err)
	}
	s, err := params.FromJSON(out.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if !s.Equals(params.TubeParams) {
		t.Fatal("json output differs from shipped parameters")
	}

	out.Reset()
	conf := &showConfig{Format: "ini", SourceOptions: cmdutils.SourceOptions{Network: "stagenet"}}
	if err = show(ctx, conf, &out); err != nil {
		t.Fatal(err)
	}
	if s, err = params.FromINI(out.Bytes()); err != nil {
		t.Fatal(err)
	}
	if s.NetworkType != tube.NetworkStagenet {
		t.Fatalf("expected stagenet, got %s", s.NetworkType)
	}

	out.Reset()
	conf = &showConfig{Format: "js", SourceOptions: cmdutils.SourceOptions{Config: filepath.Join(testdata, "config.ini")}}
	if err = show(ctx, conf, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "nettype: 2,") || !strings.Contains(out.String(), "config.ini") {
		t.Fatalf("unexpected config.js:\n%s", out.String())
	}
}

func TestPublishRequiresRedis(t *testing.T) {
	if err := publish(context.Background(), &publishConfig{}); err == nil {
		t.Fatal("expected publish without --redis to fail")
	}
}

func TestShowConflictingSources(t *testing.T) {
	conf := &showConfig{
		Format:        "json",
		SourceOptions: cmdutils.SourceOptions{Config: filepath.Join(testdata, "config.json")},
		RedisOptions:  cmdutils.RedisOptions{Redis: "127.0.0.1:6379", Key: "tube:params"},
	}
	var out bytes.Buffer
	if err := show(context.Background(), conf, &out); !errors.Is(err, cmdutils.ErrConflictingSources) {
		t.Fatalf("expected ErrConflictingSources, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("nothing should be printed, got %s", out.String())
	}
}
