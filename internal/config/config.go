// Package config manages the ~/.skilldock/ configuration file and the path
// conventions for the skills source tree, the shared staging area, and the
// cached catalog checkout. Values are resolved through viper so that every
// key can be overridden by a SKILLDOCK_* environment variable.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	fileName  = "config"
	fileType  = "yaml"
	envPrefix = "SKILLDOCK"

	// homeDirName is the dot-directory under the user's home.
	homeDirName = ".skilldock"

	// StagingDirName is the shared staging area that holds the intermediate
	// symlinks every model target points at.
	StagingDirName = "staging"

	// CatalogRepoDirName is the cached checkout of the remote skills repo.
	CatalogRepoDirName = "catalog-repo"

	// SkillsDirName is the subtree holding one directory per skill, both in
	// source trees and in model targets.
	SkillsDirName = "skills"
)

// Dir returns the path to the skilldock config directory (~/.skilldock/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", homeDirName)
	}
	return filepath.Join(home, homeDirName)
}

// FilePath returns the full path to the config file (~/.skilldock/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// StagingDir returns the shared staging area path. Overridable via the
// staging_dir key or SKILLDOCK_STAGING_DIR.
func StagingDir() string {
	if v := viper.GetString("staging_dir"); v != "" {
		return v
	}
	return filepath.Join(Dir(), StagingDirName)
}

// CatalogRepoDir returns the path of the cached catalog checkout.
func CatalogRepoDir() string {
	if v := viper.GetString("catalog_dir"); v != "" {
		return v
	}
	return filepath.Join(Dir(), CatalogRepoDirName)
}

// SkillsRoot returns the local skills source root (the directory containing
// a skills/ subtree). Empty when no local source is configured.
func SkillsRoot() string {
	return viper.GetString("skills_root")
}

// CatalogRepoURL returns the remote skills repository URL.
func CatalogRepoURL() string {
	return viper.GetString("catalog_repo")
}

// AlwaysInclude returns the baseline skill set pulled into every resolution
// pass regardless of what was requested.
func AlwaysInclude() []string {
	return viper.GetStringSlice("always_include")
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return errors.Wrapf(err, "creating config directory %s", Dir())
	}
	return nil
}

// Load initializes viper to read from the config file and environment.
// A missing config file is not an error.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return errors.Wrapf(err, "creating config file %s", configFile)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return errors.Wrap(err, "writing config file")
	}
	return nil
}
