package params

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bittube/tube-params/consensus/utils"
	"github.com/pkg/errors"
)

var ErrUnknownFormat = errors.New("unknown parameter file format")

// Decode picks the literal format from a file name extension: .json, or
// .ini / .conf.
func Decode(name string, data []byte) (Set, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FromJSON(data)
	case ".ini", ".conf":
		return FromINI(data)
	}
	return Set{}, errors.Wrapf(ErrUnknownFormat, "%q", name)
}

// LoadFile reads, decodes and validates a parameter file into a Registry.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading parameters")
	}

	s, err := Decode(path, data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}

	r, err := NewRegistry(s)
	if err != nil {
		return nil, err
	}
	utils.Logf("Params", "loaded %s: %s %s, explorer %s", path, s.CoinSymbol, s.NetworkType, s.ExplorerURL())
	return r, nil
}
