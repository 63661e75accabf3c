// Package config loads the client configuration, layering an optional YAML
// file over built-in defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultPath is consulted when no explicit configuration path is given.
const DefaultPath = "/etc/dnflite/config.yaml"

// RepoConfig describes a single package repository. The gpg fields are
// carried for compatibility with standard repo definitions but signatures
// are never verified.
type RepoConfig struct {
	Name     string `yaml:"name"`
	BaseURL  string `yaml:"baseurl"`
	Enabled  bool   `yaml:"enabled"`
	GPGCheck bool   `yaml:"gpgcheck"`
	GPGKey   string `yaml:"gpgkey,omitempty"`
}

// UnmarshalYAML treats a repository as enabled unless the entry disables it
// explicitly.
func (r *RepoConfig) UnmarshalYAML(node *yaml.Node) error {
	type rawRepo RepoConfig
	raw := rawRepo{Enabled: true}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*r = RepoConfig(raw)
	return nil
}

// Config holds the global client configuration.
type Config struct {
	CacheDir    string       `yaml:"cache_dir"`
	DatabaseDir string       `yaml:"database_dir"`
	InstallRoot string       `yaml:"install_root"`
	ReleaseVer  string       `yaml:"releasever"`
	BaseArch    string       `yaml:"basearch"`
	Repos       []RepoConfig `yaml:"repos"`
}

// Default returns the built-in configuration. Every call builds a fresh
// value, so callers may mutate the result freely.
func Default() *Config {
	fedoraKey := "file:///etc/pki/rpm-gpg/RPM-GPG-KEY-fedora-$releasever-$basearch"

	return &Config{
		CacheDir:    "/var/cache/dnflite",
		DatabaseDir: "/var/lib/dnflite",
		InstallRoot: "/",
		ReleaseVer:  "39",
		BaseArch:    "x86_64",
		Repos: []RepoConfig{
			{
				Name:     "fedora",
				BaseURL:  "https://download.fedoraproject.org/pub/fedora/linux/releases/$releasever/Everything/$basearch/os/",
				Enabled:  true,
				GPGCheck: true,
				GPGKey:   fedoraKey,
			},
			{
				Name:     "updates",
				BaseURL:  "https://download.fedoraproject.org/pub/fedora/linux/updates/$releasever/Everything/$basearch/",
				Enabled:  true,
				GPGCheck: true,
				GPGKey:   fedoraKey,
			},
			{
				Name:     "fedora-modular",
				BaseURL:  "https://download.fedoraproject.org/pub/fedora/linux/releases/$releasever/Modular/$basearch/os/",
				Enabled:  true,
				GPGCheck: true,
				GPGKey:   fedoraKey,
			},
		},
	}
}

// Load reads the configuration file at path over the defaults. An empty path
// means DefaultPath; a missing file yields the defaults unchanged. A repos
// list in the file replaces the default repository list wholesale.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logrus.Debugf("no configuration file at %s, using defaults", path)
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	for i, repo := range cfg.Repos {
		if repo.Name == "" || repo.BaseURL == "" {
			return nil, fmt.Errorf("%s: repo entry %d needs both name and baseurl", path, i)
		}
	}

	logrus.Debugf("loaded configuration from %s (%d repos)", path, len(cfg.Repos))
	return cfg, nil
}

// ExpandURL substitutes the $releasever and $basearch variables in a
// repository URL.
func (c *Config) ExpandURL(u string) string {
	u = strings.ReplaceAll(u, "$releasever", c.ReleaseVer)
	return strings.ReplaceAll(u, "$basearch", c.BaseArch)
}
