package schema

import (
	"strconv"
	"strings"

	"github.com/stellarbridge/alpacaserver/internal/ascomerr"
	"github.com/stellarbridge/alpacaserver/internal/request"
)

// requireFloat / requireInt / requireBool / requireString fetch a required
// action parameter and parse it, returning InvalidValue on anything
// missing or malformed per §4.5 step 6.
func requireFloat(p *request.Parsed, name string) (float64, *ascomerr.Error) {
	raw, err := p.Require(name)
	if err != nil {
		return 0, ascomerr.InvalidValuef("%s", err)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, ascomerr.InvalidValuef("%s must be a number: %s", name, raw)
	}
	return v, nil
}

func requireInt(p *request.Parsed, name string) (int, *ascomerr.Error) {
	raw, err := p.Require(name)
	if err != nil {
		return 0, ascomerr.InvalidValuef("%s", err)
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, ascomerr.InvalidValuef("%s must be an integer: %s", name, raw)
	}
	return v, nil
}

func requireBool(p *request.Parsed, name string) (bool, *ascomerr.Error) {
	raw, err := p.Require(name)
	if err != nil {
		return false, ascomerr.InvalidValuef("%s", err)
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, ascomerr.InvalidValuef("%s must be a boolean: %s", name, raw)
	}
	return v, nil
}

func requireString(p *request.Parsed, name string) (string, *ascomerr.Error) {
	raw, err := p.Require(name)
	if err != nil {
		return "", ascomerr.InvalidValuef("%s", err)
	}
	return raw, nil
}

func optionalBool(p *request.Parsed, name string, def bool) (bool, *ascomerr.Error) {
	raw, ok := p.Get(name)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, ascomerr.InvalidValuef("%s must be a boolean: %s", name, raw)
	}
	return v, nil
}

func optionalString(p *request.Parsed, name, def string) string {
	raw, ok := p.Get(name)
	if !ok {
		return def
	}
	return raw
}
