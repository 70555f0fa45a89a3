package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/avhrem/novelbind/internal/sanitize"
)

type Config struct {
	Output      string `yaml:"output"`
	Format      string `yaml:"format"`
	GroupSize   int    `yaml:"group_size"`
	StartNumber int    `yaml:"start_number"`
	Debug       bool   `yaml:"debug"`

	ThrottleMS        int `yaml:"throttle_ms"`
	TimeoutSec        int `yaml:"timeout_sec"`
	ConnectTimeoutSec int `yaml:"connect_timeout_sec"`

	DefaultURL   string `yaml:"default_url"`
	DefaultRange string `yaml:"default_range"`
	DefaultList  string `yaml:"default_list"`

	Cookie     string `yaml:"cookie"`
	CookieFile string `yaml:"cookie_file"`
	UserAgent  string `yaml:"user_agent"`

	SkipBroken bool `yaml:"skip_broken"`

	// Heuristic tables. Empty means the built-in defaults for the
	// supported site family; mirrors with unusual markup extend these
	// without code changes.
	ContentSelectors []string        `yaml:"content_selectors"`
	LinkSelectors    []string        `yaml:"link_selectors"`
	ArchivePath      string          `yaml:"archive_path"`
	StripRules       []sanitize.Rule `yaml:"strip_rules"`
}

type Options struct {
	IgnoreConfig bool
	Debug        bool
	Output       string
	Format       string
	GroupSize    int
	StartNumber  int
	ThrottleMS   int
	DefaultURL   string
	DefaultRange string
	DefaultList  string
	Cookie       string
	CookieFile   string
	UserAgent    string
	SkipBroken   bool
}

func DefaultConfig() *Config {
	return &Config{
		Output:            ".",
		Format:            "html",
		GroupSize:         100,
		StartNumber:       1,
		Debug:             false,
		ThrottleMS:        1000,
		TimeoutSec:        30,
		ConnectTimeoutSec: 10,
	}
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func loadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

func LoadMerged(opts Options) (*Config, string, error) {
	if opts.IgnoreConfig {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(ignored config)", nil
	}

	activePath, err := ActiveConfigPath()
	if err == ErrNoConfig || activePath == "" {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(default config in memory)\nRun `novelbind config init` to create an actual config\n", nil
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err := loadYAML(activePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", activePath, err)
	}

	mergeConfig(cfg, opts)
	normalizeDefaults(cfg)

	return cfg, activePath, nil
}

func mergeConfig(c *Config, o Options) {
	if o.Output != "" {
		c.Output = o.Output
	}
	if o.Format != "" {
		c.Format = o.Format
	}
	if o.GroupSize != 0 {
		c.GroupSize = o.GroupSize
	}
	if o.StartNumber != 0 {
		c.StartNumber = o.StartNumber
	}
	if o.ThrottleMS != 0 {
		c.ThrottleMS = o.ThrottleMS
	}
	if o.Debug {
		c.Debug = true
	}
	if o.DefaultURL != "" {
		c.DefaultURL = o.DefaultURL
	}
	if o.DefaultRange != "" {
		c.DefaultRange = o.DefaultRange
	}
	if o.DefaultList != "" {
		c.DefaultList = o.DefaultList
	}
	if o.Cookie != "" {
		c.Cookie = o.Cookie
	}
	if o.CookieFile != "" {
		c.CookieFile = o.CookieFile
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
	if o.SkipBroken {
		c.SkipBroken = true
	}
}

func normalizeDefaults(c *Config) {
	if c.Output == "" {
		c.Output = "."
	}
	if c.Format == "" {
		c.Format = "html"
	}
	if c.GroupSize == 0 {
		c.GroupSize = 100
	}
	if c.StartNumber == 0 {
		c.StartNumber = 1
	}
	if c.ThrottleMS == 0 {
		c.ThrottleMS = 1000
	}
	if c.TimeoutSec == 0 {
		c.TimeoutSec = 30
	}
	if c.ConnectTimeoutSec == 0 {
		c.ConnectTimeoutSec = 10
	}
}

func (c *Config) Print() {
	if c.Output != "" {
		fmt.Printf(" -output: %s\n", c.Output)
	}
	fmt.Printf(" -format: %s\n", c.Format)
	fmt.Printf(" -group_size: %d\n", c.GroupSize)
	fmt.Printf(" -start_number: %d\n", c.StartNumber)
	fmt.Printf(" -throttle_ms: %d\n", c.ThrottleMS)
	fmt.Printf(" -timeout_sec: %d\n", c.TimeoutSec)
	if c.Debug {
		fmt.Printf(" -debug: %t\n", c.Debug)
	}
	if c.DefaultURL != "" {
		fmt.Printf(" -url: %s\n", c.DefaultURL)
	}
	if c.DefaultRange != "" {
		fmt.Printf(" -range: %s\n", c.DefaultRange)
	}
	if c.DefaultList != "" {
		fmt.Printf(" -list: %s\n", c.DefaultList)
	}
	if c.CookieFile != "" {
		fmt.Printf(" -cookie_file: %s\n", c.CookieFile)
	}
	if c.SkipBroken {
		fmt.Printf(" -skip_broken: %t\n", c.SkipBroken)
	}
	if len(c.ContentSelectors) > 0 {
		fmt.Printf(" -content_selectors: %s\n", strings.Join(c.ContentSelectors, ", "))
	}
	if len(c.LinkSelectors) > 0 {
		fmt.Printf(" -link_selectors: %s\n", strings.Join(c.LinkSelectors, ", "))
	}
	if c.ArchivePath != "" {
		fmt.Printf(" -archive_path: %s\n", c.ArchivePath)
	}
}
