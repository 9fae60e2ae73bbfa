package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/drugbank"
	ConfigFileName    = "drugbank.yml"
)

// ValidLogLevels is the list of accepted log_level values
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// DrugbankConfig holds all drugbankctl configuration settings
type DrugbankConfig struct {
	// XMLPath is the DrugBank dump read by default
	XMLPath string `yaml:"xml_path" json:"xml_path"`

	// OutputDir receives generated dumps, graphs and reports
	OutputDir string `yaml:"output_dir" json:"output_dir"`

	// DatabaseURL is the Postgres DSN used by load, db and server
	DatabaseURL string `yaml:"database_url" json:"-"`

	// APITokenSecret enables bearer token checks on the API when set
	APITokenSecret string `yaml:"api_token_secret" json:"-"`

	BindAddress string `yaml:"bind_address" json:"bind_address"`
	Port        int    `yaml:"port" json:"port"`

	// ReadTimeout is the server read timeout in seconds
	ReadTimeout int `yaml:"read_timeout" json:"read_timeout"`

	// WriteTimeout is the server write timeout in seconds
	WriteTimeout int `yaml:"write_timeout" json:"write_timeout"`

	// SimulationTotal is the record count of generated dumps
	SimulationTotal int `yaml:"simulation_total" json:"simulation_total"`

	SimulationSeed int64 `yaml:"simulation_seed" json:"simulation_seed"`

	LogLevel string `yaml:"log_level" json:"log_level"`

	// RelatedDepth is the default drug-to-drug hop count of related lookups
	RelatedDepth int `yaml:"related_depth" json:"related_depth"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *DrugbankConfig
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *DrugbankConfig {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// LoadDotEnv loads variables from .env style files into the process
// environment without overriding variables already set. Missing files are
// ignored. With no paths it reads ./.env.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// newDefault returns a config with default values
func newDefault() *DrugbankConfig {
	return &DrugbankConfig{
		XMLPath:         "data/drugbank_partial.xml",
		OutputDir:       "data",
		BindAddress:     "0.0.0.0",
		Port:            8000,
		ReadTimeout:     15,
		WriteTimeout:    15,
		SimulationTotal: 20000,
		SimulationSeed:  0,
		LogLevel:        "info",
		RelatedDepth:    1,
		sources:         make(map[string]string),
	}
}

// Load loads configuration from file and environment variables
// Environment variables take precedence over file values
func Load() (*DrugbankConfig, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("DRUGBANK_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig DrugbankConfig
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"xml_path", "output_dir", "database_url", "api_token_secret",
		"bind_address", "port", "read_timeout", "write_timeout",
		"simulation_total", "simulation_seed", "log_level", "related_depth",
	}
}

func (c *DrugbankConfig) applyFileConfig(file *DrugbankConfig) {
	setString := func(name string, dst *string, v string) {
		if v != "" {
			*dst = v
			c.sources[name] = "file"
		}
	}
	setInt := func(name string, dst *int, v int) {
		if v != 0 {
			*dst = v
			c.sources[name] = "file"
		}
	}

	setString("xml_path", &c.XMLPath, file.XMLPath)
	setString("output_dir", &c.OutputDir, file.OutputDir)
	setString("database_url", &c.DatabaseURL, file.DatabaseURL)
	setString("api_token_secret", &c.APITokenSecret, file.APITokenSecret)
	setString("bind_address", &c.BindAddress, file.BindAddress)
	setString("log_level", &c.LogLevel, file.LogLevel)
	setInt("port", &c.Port, file.Port)
	setInt("read_timeout", &c.ReadTimeout, file.ReadTimeout)
	setInt("write_timeout", &c.WriteTimeout, file.WriteTimeout)
	setInt("simulation_total", &c.SimulationTotal, file.SimulationTotal)
	setInt("related_depth", &c.RelatedDepth, file.RelatedDepth)
	if file.SimulationSeed != 0 {
		c.SimulationSeed = file.SimulationSeed
		c.sources["simulation_seed"] = "file"
	}
}

func (c *DrugbankConfig) applyEnvConfig() {
	if val := os.Getenv("DRUGBANK_XML_PATH"); val != "" {
		c.XMLPath = val
		c.sources["xml_path"] = "environment"
	}
	if val := os.Getenv("DRUGBANK_OUTPUT_DIR"); val != "" {
		c.OutputDir = val
		c.sources["output_dir"] = "environment"
	}
	if val := os.Getenv("DATABASE_URL"); val != "" {
		c.DatabaseURL = val
		c.sources["database_url"] = "environment"
	}
	if val := os.Getenv("DRUGBANK_API_TOKEN_SECRET"); val != "" {
		c.APITokenSecret = val
		c.sources["api_token_secret"] = "environment"
	}
	if val := os.Getenv("BIND_ADDRESS"); val != "" {
		c.BindAddress = val
		c.sources["bind_address"] = "environment"
	}
	if val := os.Getenv("PORT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.Port = i
			c.sources["port"] = "environment"
		}
	}
	if val := os.Getenv("DRUGBANK_READ_TIMEOUT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.ReadTimeout = i
			c.sources["read_timeout"] = "environment"
		}
	}
	if val := os.Getenv("DRUGBANK_WRITE_TIMEOUT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.WriteTimeout = i
			c.sources["write_timeout"] = "environment"
		}
	}
	if val := os.Getenv("DRUGBANK_SIMULATION_TOTAL"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.SimulationTotal = i
			c.sources["simulation_total"] = "environment"
		}
	}
	if val := os.Getenv("DRUGBANK_SIMULATION_SEED"); val != "" {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			c.SimulationSeed = i
			c.sources["simulation_seed"] = "environment"
		}
	}
	if val := os.Getenv("DRUGBANK_LOG_LEVEL"); val != "" {
		c.LogLevel = strings.ToLower(val)
		c.sources["log_level"] = "environment"
	}
	if val := os.Getenv("DRUGBANK_RELATED_DEPTH"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.RelatedDepth = i
			c.sources["related_depth"] = "environment"
		}
	}
}

// ConfigFilePath returns the path to the config file
func (c *DrugbankConfig) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *DrugbankConfig) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// Addr returns the server listen address
func (c *DrugbankConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.BindAddress, c.Port)
}

func (c *DrugbankConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(c.ReadTimeout) * time.Second
}

func (c *DrugbankConfig) WriteTimeoutDuration() time.Duration {
	return time.Duration(c.WriteTimeout) * time.Second
}

// Validate validates the configuration
func (c *DrugbankConfig) Validate() error {
	validLevel := false
	for _, l := range ValidLogLevels {
		if c.LogLevel == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid log_level: %s", c.LogLevel)
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.ReadTimeout < 0 || c.WriteTimeout < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}
	if c.SimulationTotal < 0 {
		return fmt.Errorf("invalid simulation_total: %d", c.SimulationTotal)
	}
	if c.RelatedDepth < 1 {
		return fmt.Errorf("invalid related_depth: %d", c.RelatedDepth)
	}
	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *DrugbankConfig) Attributes() []Attribute {
	return []Attribute{
		{Name: "xml_path", Value: c.XMLPath, Source: c.Source("xml_path")},
		{Name: "output_dir", Value: c.OutputDir, Source: c.Source("output_dir")},
		{Name: "database_url", Value: redact(c.DatabaseURL), Source: c.Source("database_url")},
		{Name: "api_token_secret", Value: redact(c.APITokenSecret), Source: c.Source("api_token_secret")},
		{Name: "bind_address", Value: c.BindAddress, Source: c.Source("bind_address")},
		{Name: "port", Value: strconv.Itoa(c.Port), Source: c.Source("port")},
		{Name: "read_timeout", Value: strconv.Itoa(c.ReadTimeout), Source: c.Source("read_timeout")},
		{Name: "write_timeout", Value: strconv.Itoa(c.WriteTimeout), Source: c.Source("write_timeout")},
		{Name: "simulation_total", Value: strconv.Itoa(c.SimulationTotal), Source: c.Source("simulation_total")},
		{Name: "simulation_seed", Value: strconv.FormatInt(c.SimulationSeed, 10), Source: c.Source("simulation_seed")},
		{Name: "log_level", Value: c.LogLevel, Source: c.Source("log_level")},
		{Name: "related_depth", Value: strconv.Itoa(c.RelatedDepth), Source: c.Source("related_depth")},
	}
}

// FormatText returns a text representation of the configuration
func (c *DrugbankConfig) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-24s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-24s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-24s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *DrugbankConfig) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func redact(s string) string {
	if s == "" {
		return ""
	}
	return "(set)"
}
