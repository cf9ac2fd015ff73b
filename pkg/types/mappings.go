package types

import "strings"

// NotAvailable is the sentinel written for values that cannot be normalized.
// Malformed input is coerced to this sentinel (or null), never rejected.
const NotAvailable = "N/A"

// Mappings holds the code-to-label lookup tables applied by the
// transformation engine. They are configuration data, not hard-coded
// branches, so deployments can extend them without a code change.
// Keys are matched after trimming and upper-casing the raw value.
type Mappings struct {
	MaritalStatus map[string]string `yaml:"marital_status" mapstructure:"marital_status"`
	Gender        map[string]string `yaml:"gender" mapstructure:"gender"`
	ProductLine   map[string]string `yaml:"product_line" mapstructure:"product_line"`
	Country       map[string]string `yaml:"country" mapstructure:"country"`
}

// DefaultMappings returns the standard lookup tables for the CRM and ERP
// source systems.
func DefaultMappings() Mappings {
	return Mappings{
		MaritalStatus: map[string]string{
			"S": "Single",
			"M": "Married",
		},
		Gender: map[string]string{
			"M":      "Male",
			"MALE":   "Male",
			"F":      "Female",
			"FEMALE": "Female",
		},
		ProductLine: map[string]string{
			"M": "Mountain",
			"R": "Road",
			"S": "Other Sales",
			"T": "Touring",
		},
		Country: map[string]string{
			"US":             "USA",
			"USA":            "USA",
			"UNITED STATES":  "USA",
			"DE":             "Germany",
			"GERMANY":        "Germany",
			"FRANCE":         "France",
			"CANADA":         "Canada",
			"UNITED KINGDOM": "UK",
			"AUSTRALIA":      "Australia",
		},
	}
}

// WithUpperKeys returns a copy of the mappings with every table key trimmed
// and upper-cased, the form Lookup matches against. Config loaders do not
// preserve key case (Viper lowercases map keys), so tables must be
// re-normalized after loading.
func (m Mappings) WithUpperKeys() Mappings {
	return Mappings{
		MaritalStatus: upperKeys(m.MaritalStatus),
		Gender:        upperKeys(m.Gender),
		ProductLine:   upperKeys(m.ProductLine),
		Country:       upperKeys(m.Country),
	}
}

func upperKeys(table map[string]string) map[string]string {
	if table == nil {
		return nil
	}
	out := make(map[string]string, len(table))
	for k, v := range table {
		out[strings.ToUpper(strings.TrimSpace(k))] = v
	}
	return out
}

// Lookup normalizes a raw code against a mapping table. The raw value is
// trimmed and upper-cased before matching; nil, empty, and unmatched values
// map to the NotAvailable sentinel. Table keys must be upper-case; tables
// from a config file go through Mappings.WithUpperKeys first.
func Lookup(table map[string]string, raw *string) string {
	if raw == nil {
		return NotAvailable
	}
	key := strings.ToUpper(strings.TrimSpace(*raw))
	if key == "" {
		return NotAvailable
	}
	if label, ok := table[key]; ok {
		return label
	}
	return NotAvailable
}
