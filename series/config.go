// Copyright 2023 Seriate Authors.

package series

import (
	"os/user"
	"path"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
)

const DefaultConfigFile = "~/.seriate/config"
const DefaultConfigProfile = "default"

// Config holds CLI output settings, loaded from a profile stanza of an
// ini config file.
type Config struct {
	Format  string `json:"format"`
	MaxRows int    `json:"max_rows"`
}

// Expand the given file path if it start with a ~/
func expandUser(fname string) (string, error) {
	if strings.HasPrefix(fname, "~/") {
		usr, err := user.Current()
		if err != nil {
			return "", err
		}
		return path.Join(usr.HomeDir, fname[2:]), nil
	}
	return fname, nil
}

// Load the named stanza from the source.
// Source can be either filename or config string
func loadStanza(source interface{}, profile string) (*ini.Section, error) {
	info, err := ini.Load(source)
	if err != nil {
		return nil, errors.Wrapf(err, "error loading config")
	}
	if !info.HasSection(profile) {
		return nil, errors.Errorf("config profile '%s' not found", profile)
	}
	return info.Section(profile), nil
}

func parseConfigStanza(stanza *ini.Section, cfg *Config) error {
	if v := stanza.Key("format").String(); v != "" {
		cfg.Format = v
	}
	if v := stanza.Key("max_rows").String(); v != "" {
		n, err := stanza.Key("max_rows").Int()
		if err != nil {
			return errors.Wrapf(err, "config key max_rows '%s'", v)
		}
		cfg.MaxRows = n
	}
	return nil
}

// Load settings from the default profile of the default config file.
func LoadConfig(cfg *Config) error {
	return LoadConfigFile(DefaultConfigFile, DefaultConfigProfile, cfg)
}

// Load settings from the given profile in the default config file.
func LoadConfigProfile(profile string, cfg *Config) error {
	return LoadConfigFile(DefaultConfigFile, profile, cfg)
}

// Load settings from the given profile of the provided config source.
func LoadConfigString(source, profile string, cfg *Config) error {
	stanza, err := loadStanza([]byte(source), profile)
	if err != nil {
		return err
	}
	return parseConfigStanza(stanza, cfg)
}

// Load settings from the given profile of the named config file.
func LoadConfigFile(fname, profile string, cfg *Config) error {
	fname, err := expandUser(fname)
	if err != nil {
		return err
	}
	stanza, err := loadStanza(fname, profile)
	if err != nil {
		return err
	}
	return parseConfigStanza(stanza, cfg)
}
