package tube

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bittube/tube-params/consensus/utils"
)

// NetworkType numbering follows the wallet's nettype field.
type NetworkType int

const (
	NetworkMainnet NetworkType = iota
	NetworkTestnet
	NetworkStagenet

	NetworkCount = 3
)

var ErrUnknownNetwork = errors.New("unknown network type")

var Networks = [NetworkCount]NetworkType{NetworkMainnet, NetworkTestnet, NetworkStagenet}

func (n NetworkType) String() string {
	switch n {
	case NetworkMainnet:
		return "mainnet"
	case NetworkTestnet:
		return "testnet"
	case NetworkStagenet:
		return "stagenet"
	}
	return "invalid"
}

func (n NetworkType) Valid() bool {
	return n >= NetworkMainnet && n <= NetworkStagenet
}

// ParseNetworkType accepts a network name or its nettype number.
func ParseNetworkType(s string) (NetworkType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mainnet", "main", "0":
		return NetworkMainnet, nil
	case "testnet", "test", "1":
		return NetworkTestnet, nil
	case "stagenet", "stage", "2":
		return NetworkStagenet, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownNetwork, s)
}

func (n NetworkType) MarshalJSON() ([]byte, error) {
	if !n.Valid() {
		return nil, fmt.Errorf("%w %d", ErrUnknownNetwork, int(n))
	}
	return []byte(strconv.Itoa(int(n))), nil
}

func (n *NetworkType) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := utils.UnmarshalJSON(b, &s); err != nil {
			return err
		}
		v, err := ParseNetworkType(s)
		if err != nil {
			return err
		}
		*n = v
		return nil
	}

	v, err := strconv.Atoi(string(b))
	if err != nil {
		return fmt.Errorf("%w %s", ErrUnknownNetwork, b)
	}
	if !NetworkType(v).Valid() {
		return fmt.Errorf("%w %d", ErrUnknownNetwork, v)
	}
	*n = NetworkType(v)
	return nil
}

func (n NetworkType) MarshalText() ([]byte, error) {
	if !n.Valid() {
		return nil, fmt.Errorf("%w %d", ErrUnknownNetwork, int(n))
	}
	return []byte(n.String()), nil
}

func (n *NetworkType) UnmarshalText(b []byte) error {
	v, err := ParseNetworkType(string(b))
	if err != nil {
		return err
	}
	*n = v
	return nil
}
