package params

import (
	"bytes"
	"strconv"

	"github.com/bittube/tube-params/consensus/tube"
	"github.com/bittube/tube-params/consensus/tube/address"
	"github.com/bittube/tube-params/consensus/types"
	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
)

// iniLayout lists every section and its keys. All of them are required.
var iniLayout = []struct {
	section string
	keys    []string
}{
	{"api", []string{"url"}},
	{"explorer", []string{"mainnet", "testnet", "stagenet"}},
	{"network", []string{"type"}},
	{"coin", []string{"symbol", "name", "uri_prefix", "openalias_prefix", "unit_places"}},
	{"confirmations", []string{"tx", "coinbase"}},
	{"prefixes.mainnet", []string{"address", "integrated", "subaddress"}},
	{"prefixes.testnet", []string{"address", "integrated", "subaddress"}},
	{"prefixes.stagenet", []string{"address", "integrated", "subaddress"}},
	{"fees", []string{"fee_per_kb", "dust_threshold", "charge_ratio", "charge_address", "default_mixin"}},
	{"ui", []string{"idle_timeout", "idle_warning_duration"}},
	{"chain", []string{"max_block_number", "avg_block_time"}},
	{"debug", []string{"enabled"}},
}

type iniReader struct {
	file *ini.File
	err  error
}

func (r *iniReader) key(section, key string) *ini.Key {
	if r.err != nil {
		return nil
	}
	sec, err := r.file.GetSection(section)
	if err != nil || !sec.HasKey(key) {
		r.err = missing(section + "." + key)
		return nil
	}
	return sec.Key(key)
}

func (r *iniReader) fail(section, key string, err error) {
	r.err = fieldError(section+"."+key, errors.Wrap(ErrInvalidField, err.Error()))
}

func (r *iniReader) getString(section, key string) string {
	if k := r.key(section, key); k != nil {
		return k.String()
	}
	return ""
}

// getUint accepts decimal, 0x hexadecimal and 0o octal forms.
func (r *iniReader) getUint(section, key string, bitSize int) uint64 {
	k := r.key(section, key)
	if k == nil {
		return 0
	}
	v, err := strconv.ParseUint(k.String(), 0, bitSize)
	if err != nil {
		r.fail(section, key, err)
		return 0
	}
	return v
}

func (r *iniReader) getFloat(section, key string) float64 {
	k := r.key(section, key)
	if k == nil {
		return 0
	}
	v, err := k.Float64()
	if err != nil {
		r.fail(section, key, err)
	}
	return v
}

func (r *iniReader) getBool(section, key string) bool {
	k := r.key(section, key)
	if k == nil {
		return false
	}
	v, err := k.Bool()
	if err != nil {
		r.fail(section, key, err)
	}
	return v
}

func (r *iniReader) getAmount(section, key string) types.Amount {
	k := r.key(section, key)
	if k == nil {
		return types.ZeroAmount
	}
	v, err := types.AmountFromString(k.String())
	if err != nil {
		r.fail(section, key, err)
	}
	return v
}

func (r *iniReader) getNetwork(section, key string) tube.NetworkType {
	k := r.key(section, key)
	if k == nil {
		return tube.NetworkMainnet
	}
	v, err := tube.ParseNetworkType(k.String())
	if err != nil {
		r.fail(section, key, err)
	}
	return v
}

func (r *iniReader) prefixes(n tube.NetworkType) address.Prefixes {
	section := "prefixes." + n.String()
	return address.Prefixes{
		Address:    r.getUint(section, "address", 64),
		Integrated: r.getUint(section, "integrated", 64),
		Subaddress: r.getUint(section, "subaddress", 64),
	}
}

// unknown reports the first section or key not part of iniLayout.
func (r *iniReader) unknown() error {
	known := make(map[string]map[string]struct{}, len(iniLayout))
	for _, s := range iniLayout {
		keys := make(map[string]struct{}, len(s.keys))
		for _, k := range s.keys {
			keys[k] = struct{}{}
		}
		known[s.section] = keys
	}

	for _, sec := range r.file.Sections() {
		keys, ok := known[sec.Name()]
		if !ok {
			if sec.Name() == ini.DefaultSection && len(sec.Keys()) == 0 {
				continue
			}
			return fieldError(sec.Name(), errors.Wrap(ErrUnknownField, "unexpected section"))
		}
		for _, k := range sec.Keys() {
			if _, ok := keys[k.Name()]; !ok {
				return fieldError(sec.Name()+"."+k.Name(), errors.Wrap(ErrUnknownField, "unexpected key"))
			}
		}
	}
	return nil
}

// FromINI decodes the sectioned operator format. Errors name the offending
// field as section.key. The result is validated.
func FromINI(data []byte) (Set, error) {
	file, err := ini.Load(data)
	if err != nil {
		return Set{}, errors.Wrap(err, "decoding ini parameters")
	}

	r := &iniReader{file: file}
	if err = r.unknown(); err != nil {
		return Set{}, err
	}

	s := Set{
		APIURL: r.getString("api", "url"),
		ExplorerURLs: [tube.NetworkCount]string{
			tube.NetworkMainnet:  r.getString("explorer", "mainnet"),
			tube.NetworkTestnet:  r.getString("explorer", "testnet"),
			tube.NetworkStagenet: r.getString("explorer", "stagenet"),
		},
		NetworkType: r.getNetwork("network", "type"),

		CoinSymbol:      r.getString("coin", "symbol"),
		CoinName:        r.getString("coin", "name"),
		CoinURIPrefix:   r.getString("coin", "uri_prefix"),
		OpenAliasPrefix: r.getString("coin", "openalias_prefix"),
		CoinUnitPlaces:  uint8(r.getUint("coin", "unit_places", 8)),

		TxMinConfirms:         r.getUint("confirmations", "tx", 64),
		TxCoinbaseMinConfirms: r.getUint("confirmations", "coinbase", 64),

		Prefixes: [tube.NetworkCount]address.Prefixes{
			tube.NetworkMainnet:  r.prefixes(tube.NetworkMainnet),
			tube.NetworkTestnet:  r.prefixes(tube.NetworkTestnet),
			tube.NetworkStagenet: r.prefixes(tube.NetworkStagenet),
		},

		FeePerKB:        r.getAmount("fees", "fee_per_kb"),
		DustThreshold:   r.getAmount("fees", "dust_threshold"),
		TxChargeRatio:   r.getFloat("fees", "charge_ratio"),
		TxChargeAddress: r.getString("fees", "charge_address"),
		DefaultMixin:    r.getUint("fees", "default_mixin", 64),

		IdleTimeout:         r.getUint("ui", "idle_timeout", 64),
		IdleWarningDuration: r.getUint("ui", "idle_warning_duration", 64),

		MaxBlockNumber: r.getUint("chain", "max_block_number", 64),
		AvgBlockTime:   r.getUint("chain", "avg_block_time", 64),

		DebugMode: r.getBool("debug", "enabled"),
	}
	if r.err != nil {
		return Set{}, r.err
	}

	if err = s.Validate(); err != nil {
		return Set{}, err
	}
	return s, nil
}

// ToINI encodes s in the sectioned operator format, prefixes in hexadecimal.
func ToINI(s Set) ([]byte, error) {
	file := ini.Empty()

	values := map[string][]string{
		"api":           {s.APIURL},
		"explorer":      {s.ExplorerURLs[tube.NetworkMainnet], s.ExplorerURLs[tube.NetworkTestnet], s.ExplorerURLs[tube.NetworkStagenet]},
		"network":       {s.NetworkType.String()},
		"coin":          {s.CoinSymbol, s.CoinName, s.CoinURIPrefix, s.OpenAliasPrefix, strconv.FormatUint(uint64(s.CoinUnitPlaces), 10)},
		"confirmations": {strconv.FormatUint(s.TxMinConfirms, 10), strconv.FormatUint(s.TxCoinbaseMinConfirms, 10)},
		"fees": {
			s.FeePerKB.String(),
			s.DustThreshold.String(),
			strconv.FormatFloat(s.TxChargeRatio, 'f', -1, 64),
			s.TxChargeAddress,
			strconv.FormatUint(s.DefaultMixin, 10),
		},
		"ui":    {strconv.FormatUint(s.IdleTimeout, 10), strconv.FormatUint(s.IdleWarningDuration, 10)},
		"chain": {strconv.FormatUint(s.MaxBlockNumber, 10), strconv.FormatUint(s.AvgBlockTime, 10)},
		"debug": {strconv.FormatBool(s.DebugMode)},
	}
	for _, n := range tube.Networks {
		p := s.Prefixes[n]
		values["prefixes."+n.String()] = []string{
			"0x" + strconv.FormatUint(p.Address, 16),
			"0x" + strconv.FormatUint(p.Integrated, 16),
			"0x" + strconv.FormatUint(p.Subaddress, 16),
		}
	}

	for _, layout := range iniLayout {
		sec, err := file.NewSection(layout.section)
		if err != nil {
			return nil, err
		}
		for i, key := range layout.keys {
			if _, err = sec.NewKey(key, values[layout.section][i]); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if _, err := file.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
