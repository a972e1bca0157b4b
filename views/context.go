// Package views renders the browser config.js shared by the HTTP service and
// the operator CLI.
package views

//go:generate go run github.com/valyala/quicktemplate/qtc@v1.7.0 -dir=.

import (
	"strconv"
	"strings"

	"github.com/bittube/tube-params/consensus/params"
	"github.com/bittube/tube-params/consensus/tube"
)

// ConfigContext carries what config.js needs besides the parameter set.
type ConfigContext struct {
	Params params.Set
	// Source describes where the set was loaded from, shown as a comment.
	Source string
}

// comment keeps s from closing the surrounding block comment.
func comment(s string) string {
	return strings.ReplaceAll(s, "*/", "* /")
}

func hexPrefix(v uint64) string {
	return "0x" + strconv.FormatUint(v, 16)
}

// networkSuffix names per-network keys the way the wallet does: no suffix for
// mainnet, Testnet / Stagenet otherwise.
func networkSuffix(n tube.NetworkType) string {
	switch n {
	case tube.NetworkTestnet:
		return "Testnet"
	case tube.NetworkStagenet:
		return "Stagenet"
	}
	return ""
}
