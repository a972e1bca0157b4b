// Package openalias resolves human readable names such as donate.bit.tube to
// wallet addresses published in DNS TXT records.
package openalias

import (
	"context"
	"net"
	"strings"

	"github.com/bittube/tube-params/consensus/utils"
	"github.com/miekg/dns"
	"github.com/pkg/errors"
)

const recordTag = "oa1:"

var (
	ErrNotOpenAlias    = errors.New("not an OpenAlias record")
	ErrPrefixMismatch  = errors.New("OpenAlias record is for another coin")
	ErrMissingAddress  = errors.New("OpenAlias record has no recipient_address")
	ErrMalformedRecord = errors.New("malformed OpenAlias record")
	ErrNoRecords       = errors.New("no OpenAlias records found")
)

// Record is one decoded oa1 entry. Address is returned verbatim.
type Record struct {
	Prefix      string `json:"prefix"`
	Address     string `json:"recipient_address"`
	Name        string `json:"recipient_name,omitempty"`
	Description string `json:"tx_description,omitempty"`
	// Extra holds the remaining key=value pairs, e.g. tx_payment_id.
	Extra map[string]string `json:"extra,omitempty"`
}

// ParseRecord decodes a TXT record of the form
//
//	oa1:tube recipient_address=bxc...; recipient_name=Donations; tx_description=thanks;
//
// Only records tagged with prefix are accepted.
func ParseRecord(txt, prefix string) (Record, error) {
	txt = strings.TrimSpace(txt)
	if !strings.HasPrefix(txt, recordTag) {
		return Record{}, ErrNotOpenAlias
	}

	tag, body, _ := strings.Cut(txt[len(recordTag):], " ")
	if !strings.EqualFold(tag, prefix) {
		return Record{}, errors.Wrapf(ErrPrefixMismatch, "%q", tag)
	}

	r := Record{Prefix: strings.ToLower(tag)}
	for _, field := range strings.Split(body, ";") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return Record{}, errors.Wrapf(ErrMalformedRecord, "field %q", field)
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"`)

		switch key {
		case "recipient_address":
			r.Address = value
		case "recipient_name":
			r.Name = value
		case "tx_description":
			r.Description = value
		default:
			if r.Extra == nil {
				r.Extra = make(map[string]string)
			}
			r.Extra[key] = value
		}
	}

	if r.Address == "" {
		return Record{}, ErrMissingAddress
	}
	return r, nil
}

// Resolver queries Server (host:port) for TXT records and keeps the ones
// carrying Prefix, normally the registry's OpenAliasPrefix.
type Resolver struct {
	Server string
	Prefix string
	// Net is "udp" or "tcp", empty means udp.
	Net string
}

// Lookup resolves name. Dots in the user supplied alias are kept, so both
// "donate@bit.tube" and "donate.bit.tube" work.
func (r Resolver) Lookup(ctx context.Context, name string) ([]Record, error) {
	name = strings.Replace(strings.TrimSpace(name), "@", ".", 1)
	if name == "" {
		return nil, errors.New("empty OpenAlias name")
	}

	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(name), dns.TypeTXT)
	msg.RecursionDesired = true

	client := &dns.Client{Net: r.Net}
	resp, _, err := client.ExchangeContext(ctx, msg, r.Server)
	if err != nil {
		return nil, errors.Wrapf(err, "querying %s", r.Server)
	}
	if resp.Rcode != dns.RcodeSuccess {
		return nil, errors.Errorf("unsuccessful TXT request for %s, received: %s", name, dns.RcodeToString[resp.Rcode])
	}

	var records []Record
	for _, rr := range resp.Answer {
		txt, ok := rr.(*dns.TXT)
		if !ok {
			continue
		}
		// Long records arrive split into 255 byte strings.
		record, err := ParseRecord(strings.Join(txt.Txt, ""), r.Prefix)
		if err != nil {
			utils.Debugf("OpenAlias", "skipping TXT record of %s: %s", name, err)
			continue
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, errors.Wrapf(ErrNoRecords, "%s", name)
	}
	return records, nil
}

// SystemServer returns the first nameserver of the host resolver config, or
// def when it cannot be read.
func SystemServer(def string) string {
	conf, err := dns.ClientConfigFromFile("/etc/resolv.conf")
	if err != nil || len(conf.Servers) == 0 {
		return def
	}
	return net.JoinHostPort(conf.Servers[0], conf.Port)
}
