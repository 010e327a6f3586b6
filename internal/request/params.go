// Package request implements the Alpaca request parser (C3): splitting the
// transaction envelope parameters (ClientID, ClientTransactionID) from the
// action's own parameters, case-insensitively, regardless of whether they
// arrived via query string (GET) or form body (PUT).
package request

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Parsed holds the transaction envelope fields pulled out of a request and
// the remaining action parameters, re-keyed to lower-case.
type Parsed struct {
	ClientID            *uint32
	ClientTransactionID *uint32
	Action              url.Values
}

// Parse splits raw into the transaction envelope and action parameters.
// Keys are matched case-insensitively; action parameter keys are folded to
// lower-case so handlers can look them up by their canonical name. A
// malformed ClientID/ClientTransactionID is reported as an error — the
// adapter layer turns this into an HTTP 400, never an ASCOM error, per
// spec §4.3/§7.
func Parse(raw url.Values) (*Parsed, error) {
	p := &Parsed{Action: url.Values{}}
	for key, values := range raw {
		if len(values) == 0 {
			continue
		}
		switch strings.ToLower(key) {
		case "clientid":
			v, err := parseUint32(values[len(values)-1])
			if err != nil {
				return nil, fmt.Errorf("invalid ClientID: %w", err)
			}
			p.ClientID = &v
		case "clienttransactionid":
			v, err := parseUint32(values[len(values)-1])
			if err != nil {
				return nil, fmt.Errorf("invalid ClientTransactionID: %w", err)
			}
			p.ClientTransactionID = &v
		default:
			lower := strings.ToLower(key)
			for _, v := range values {
				p.Action.Add(lower, v)
			}
		}
	}
	return p, nil
}

func parseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// Get returns the first value for a (already lower-cased) action parameter.
func (p *Parsed) Get(name string) (string, bool) {
	v, ok := p.Action[strings.ToLower(name)]
	if !ok || len(v) == 0 {
		return "", false
	}
	return v[0], true
}

// Require returns the first value for a required parameter, or an error
// describing which parameter is missing.
func (p *Parsed) Require(name string) (string, error) {
	v, ok := p.Get(name)
	if !ok {
		return "", fmt.Errorf("missing required parameter %q", name)
	}
	return v, nil
}
