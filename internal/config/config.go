package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Catalog    CatalogConfig   `yaml:"catalog"`
	Output     OutputConfig    `yaml:"output"`
	Site       SiteConfig      `yaml:"site"`
	Currencies CurrencyTable   `yaml:"currencies,omitempty"`
	Generator  GeneratorConfig `yaml:"generator,omitempty"`
}

// CatalogConfig points at the input artifacts of a build.
type CatalogConfig struct {
	Data     string `yaml:"data"`             // CSV product table
	Template string `yaml:"template"`         // page template with {{ product.* }} placeholders
	Schema   string `yaml:"schema,omitempty"` // schema.yml used by the validate command
}

// OutputConfig represents output configuration
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Extension string `yaml:"extension,omitempty"` // page/index file extension, default ".qmd"
	Clean     bool   `yaml:"clean"`               // Clean output directory before build
}

// SiteConfig holds catalog-wide generation behavior.
type SiteConfig struct {
	DefaultCategory string `yaml:"default_category,omitempty"`
	DefaultCurrency string `yaml:"default_currency,omitempty"`
}

// GeneratorConfig configures the synthetic catalog generator.
type GeneratorConfig struct {
	Rows   int    `yaml:"rows,omitempty"`
	Seed   uint64 `yaml:"seed,omitempty"`
	Output string `yaml:"output,omitempty"`
}

// Load loads configuration from the specified file
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(".env", ".env.local"); err != nil {
		// Don't fail if .env doesn't exist, just note it
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Note: .env file couldn't be loaded: %v\n", err)
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- path comes from the CLI flag
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.applyDefaults()
	return &config, nil
}

// Default returns a configuration with all defaults applied and no file read.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Catalog.Data == "" {
		c.Catalog.Data = "data/products.csv"
	}
	if c.Catalog.Template == "" {
		c.Catalog.Template = "shop/_templates/product_template.qmd"
	}
	if c.Catalog.Schema == "" {
		c.Catalog.Schema = "data/schema.yml"
	}
	if c.Output.Directory == "" {
		c.Output.Directory = "shop"
	}
	if c.Output.Extension == "" {
		c.Output.Extension = ".qmd"
	}
	if c.Site.DefaultCategory == "" {
		c.Site.DefaultCategory = "uncategorized"
	}
	if c.Site.DefaultCurrency == "" {
		c.Site.DefaultCurrency = "npr"
	}
	if len(c.Currencies) == 0 {
		c.Currencies = DefaultCurrencies()
	}
	if c.Generator.Rows == 0 {
		c.Generator.Rows = 100
	}
	if c.Generator.Output == "" {
		c.Generator.Output = c.Catalog.Data
	}
}

// Init creates a new configuration file with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	// #nosec G306 -- example config is not sensitive
	if err := os.WriteFile(configPath, []byte(exampleConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

const exampleConfig = `# catalogbuilder configuration
catalog:
  data: data/products.csv
  template: shop/_templates/product_template.qmd
  schema: data/schema.yml

output:
  directory: shop
  extension: .qmd
  clean: false

site:
  default_category: uncategorized
  default_currency: npr

# currencies:
#   usd: { symbol: "$", locale: en-US }
#   eur: { symbol: "€", locale: de-DE }

generator:
  rows: 100
  seed: 0 # 0 means non-deterministic
`
