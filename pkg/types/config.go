package types

// Source file keys recognized in the sources.files configuration map.
const (
	SourceCrmCustomers  = "crm_customers"
	SourceCrmProducts   = "crm_products"
	SourceCrmSales      = "crm_sales"
	SourceErpCustomers  = "erp_customers"
	SourceErpLocations  = "erp_locations"
	SourceErpCategories = "erp_categories"
)

// SourceFileKeys lists the recognized source file keys.
var SourceFileKeys = []string{
	SourceCrmCustomers,
	SourceCrmProducts,
	SourceCrmSales,
	SourceErpCustomers,
	SourceErpLocations,
	SourceErpCategories,
}

// knownSourceKeys is the set of keys Validate accepts in Sources.Files.
var knownSourceKeys = map[string]bool{
	SourceCrmCustomers:  true,
	SourceCrmProducts:   true,
	SourceCrmSales:      true,
	SourceErpCustomers:  true,
	SourceErpLocations:  true,
	SourceErpCategories: true,
}

// SourceConfig describes where the delimited source extracts live and how
// they are parsed. Every extract carries a header row that is skipped.
type SourceConfig struct {
	Dir       string            `yaml:"dir" mapstructure:"dir"`
	Delimiter string            `yaml:"delimiter" mapstructure:"delimiter"`
	Files     map[string]string `yaml:"files" mapstructure:"files"`
}

// DefaultSourceFiles maps each source key to its conventional file name.
func DefaultSourceFiles() map[string]string {
	return map[string]string{
		SourceCrmCustomers:  "crm_customers.csv",
		SourceCrmProducts:   "crm_products.csv",
		SourceCrmSales:      "crm_sales.csv",
		SourceErpCustomers:  "erp_customers.csv",
		SourceErpLocations:  "erp_locations.csv",
		SourceErpCategories: "erp_categories.csv",
	}
}

// Config holds the warehouse location, source layout, and mapping tables.
type Config struct {
	DataDir  string       `yaml:"data_dir" mapstructure:"data_dir"`
	Sources  SourceConfig `yaml:"sources" mapstructure:"sources"`
	Mappings Mappings     `yaml:"mappings" mapstructure:"mappings"`
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	if len(c.Sources.Delimiter) > 1 {
		return ErrDelimiterInvalid
	}
	for key := range c.Sources.Files {
		if !knownSourceKeys[key] {
			return ErrSourceFileUnknown
		}
	}
	return nil
}

// DelimiterRune returns the configured field delimiter, defaulting to comma.
func (c Config) DelimiterRune() rune {
	if c.Sources.Delimiter == "" {
		return ','
	}
	return rune(c.Sources.Delimiter[0])
}

// WithDefaults fills unset fields with their defaults: comma delimiter,
// conventional file names, and the standard mapping tables. Mapping table
// keys are upper-cased so tables loaded from a config file match regardless
// of the key case the loader produced.
func (c Config) WithDefaults() Config {
	if c.Sources.Files == nil {
		c.Sources.Files = DefaultSourceFiles()
	}
	def := DefaultMappings()
	if c.Mappings.MaritalStatus == nil {
		c.Mappings.MaritalStatus = def.MaritalStatus
	}
	if c.Mappings.Gender == nil {
		c.Mappings.Gender = def.Gender
	}
	if c.Mappings.ProductLine == nil {
		c.Mappings.ProductLine = def.ProductLine
	}
	if c.Mappings.Country == nil {
		c.Mappings.Country = def.Country
	}
	c.Mappings = c.Mappings.WithUpperKeys()
	return c
}
