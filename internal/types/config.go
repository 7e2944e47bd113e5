package types

// Config represents the titlezip configuration file (~/.config/titlezip/config.yml)
type Config struct {
	Pattern  string `yaml:"pattern"`            // Glob matched case-insensitively against file names
	Language string `yaml:"language,omitempty"` // BCP 47 tag used for title casing; empty means detect from env
	DryRun   bool   `yaml:"dry_run,omitempty"`
	Path     string `yaml:"-"` // Location the config was loaded from, if any
}

// Clone returns a copy of the configuration
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	res := *c
	return &res
}

// Merge overlays the non-zero fields of other onto a copy of c.
func (c *Config) Merge(other *Config) *Config {
	res := c.Clone()
	if res == nil {
		res = &Config{}
	}
	if other == nil {
		return res
	}
	if other.Pattern != "" {
		res.Pattern = other.Pattern
	}
	if other.Language != "" {
		res.Language = other.Language
	}
	if other.DryRun {
		res.DryRun = true
	}
	if other.Path != "" {
		res.Path = other.Path
	}
	return res
}
