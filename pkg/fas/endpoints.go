package fas

import (
	"fmt"
	"strings"
)

// Param is one required positional argument of an endpoint.
type Param struct {
	Name  string
	Usage string
}

// Endpoint maps a CLI subcommand to a path template. Placeholders in
// the template are substituted positionally, one per Param.
type Endpoint struct {
	Name     string
	Short    string
	Template string
	Params   []Param
}

var (
	commodityCode = Param{Name: "commodity_code", Usage: "commodity code, e.g. 0440000 for corn"}
	countryCode   = Param{Name: "country_code", Usage: "country code, e.g. US"}
	marketYear    = Param{Name: "market_year", Usage: "market year, e.g. 2023"}
)

var endpoints = []Endpoint{
	{
		Name:     "attributes",
		Short:    "Get commodity attributes",
		Template: "/psd/commodityAttributes",
	},
	{
		Name:     "commodities",
		Short:    "Get a list of commodities",
		Template: "/psd/commodities",
	},
	{
		Name:     "countries",
		Short:    "Get a list of countries",
		Template: "/psd/countries",
	},
	{
		Name:     "regions",
		Short:    "Get a list of regions",
		Template: "/psd/regions",
	},
	{
		Name:     "units",
		Short:    "Get a list of units of measure",
		Template: "/psd/unitsOfMeasure",
	},
	{
		Name:     "world-data",
		Short:    "Get world PSD data for a commodity and market year",
		Template: "/psd/commodity/{commodity_code}/world/year/{market_year}",
		Params:   []Param{commodityCode, marketYear},
	},
	{
		Name:     "country-data",
		Short:    "Get country PSD data for a commodity and market year",
		Template: "/psd/commodity/{commodity_code}/country/{country_code}/year/{market_year}",
		Params:   []Param{commodityCode, countryCode, marketYear},
	},
	{
		Name:     "esr-commodities",
		Short:    "Get a list of ESR commodities",
		Template: "/esr/commodities",
	},
	{
		Name:     "esr-countries",
		Short:    "Get a list of ESR countries",
		Template: "/esr/countries",
	},
	{
		Name:     "esr-dates",
		Short:    "Get a list of ESR data release dates",
		Template: "/esr/datareleasedates",
	},
	{
		Name:     "esr-regions",
		Short:    "Get a list of ESR regions",
		Template: "/esr/regions",
	},
	{
		Name:     "esr-units",
		Short:    "Get a list of ESR units of measure",
		Template: "/esr/unitsOfMeasure",
	},
	{
		Name:     "esr-exports-all",
		Short:    "Get ESR exports data for a commodity across all countries",
		Template: "/esr/exports/commodityCode/{commodity_code}/allCountries/marketYear/{market_year}",
		Params:   []Param{commodityCode, marketYear},
	},
	{
		Name:     "esr-exports-country",
		Short:    "Get ESR exports data for a commodity and country",
		Template: "/esr/exports/commodityCode/{commodity_code}/countryCode/{country_code}/marketYear/{market_year}",
		Params:   []Param{commodityCode, countryCode, marketYear},
	},
}

// Endpoints returns the full descriptor table in registration order.
func Endpoints() []Endpoint {
	out := make([]Endpoint, len(endpoints))
	copy(out, endpoints)
	return out
}

// Path substitutes the template placeholders with args, in the order
// the Params are declared. Every placeholder must be filled.
func (e Endpoint) Path(args []string) (string, error) {
	if len(args) != len(e.Params) {
		return "", fmt.Errorf("%s expects %d argument(s), got %d", e.Name, len(e.Params), len(args))
	}

	path := e.Template
	for i, p := range e.Params {
		placeholder := "{" + p.Name + "}"
		if !strings.Contains(path, placeholder) {
			return "", fmt.Errorf("%s template has no placeholder for %s", e.Name, p.Name)
		}
		path = strings.ReplaceAll(path, placeholder, args[i])
	}

	if i := strings.IndexByte(path, '{'); i >= 0 {
		return "", fmt.Errorf("%s template placeholder left unsubstituted: %s", e.Name, path[i:])
	}
	return path, nil
}

// ArgsUsage renders the positional arguments for cobra's Use line,
// e.g. "<commodity_code> <market_year>".
func (e Endpoint) ArgsUsage() string {
	if len(e.Params) == 0 {
		return ""
	}
	parts := make([]string, len(e.Params))
	for i, p := range e.Params {
		parts[i] = "<" + p.Name + ">"
	}
	return " " + strings.Join(parts, " ")
}
