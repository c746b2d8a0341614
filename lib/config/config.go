// Copyright 2026 The Seqcanvas Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the seqcanvas
// service.
//
// Configuration is loaded from a single YAML file specified by:
//   - SEQCANVAS_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There are no fallbacks or automatic discovery. The file holds only
// non-secret settings; credentials come from environment variables
// (see Secrets) and never appear in the file. This keeps the file safe
// to commit to deployment repositories while remaining the single
// auditable source of non-secret settings.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the service configuration.
type Config struct {
	// Listen is the TCP address for webhook ingestion, e.g.
	// "127.0.0.1:8730".
	Listen string `yaml:"listen"`

	// Benchling configures the notebook host API.
	Benchling BenchlingConfig `yaml:"benchling"`

	// Seqera configures the run registry API.
	Seqera SeqeraConfig `yaml:"seqera"`

	// NotebookSync configures where runs are persisted in the host
	// notebook. Optional: when either field is empty, the
	// add-to-notebook action reports a configuration error to the
	// user instead of failing silently.
	NotebookSync NotebookSyncConfig `yaml:"notebook_sync"`
}

// BenchlingConfig locates the notebook host tenant and app identity.
type BenchlingConfig struct {
	// APIURL is the tenant API root, e.g.
	// "https://example.benchling.com/api/v2".
	APIURL string `yaml:"api_url"`

	// AppID is the app definition id issued by the host when the app
	// was registered. Required for session creation.
	AppID string `yaml:"app_id"`

	// ClientID is the app's API client id. The matching secret comes
	// from the BENCHLING_CLIENT_SECRET environment variable.
	ClientID string `yaml:"client_id"`
}

// SeqeraConfig locates the run registry and the workspace scope for
// run queries.
type SeqeraConfig struct {
	// APIURL is the registry API root, e.g. "https://api.cloud.seqera.io".
	APIURL string `yaml:"api_url"`

	// Organization and Workspace name the registry workspace that
	// scopes run listing and report downloads. The pair is resolved
	// to numeric ids at request time via the registry's membership
	// endpoints.
	Organization string `yaml:"organization"`
	Workspace    string `yaml:"workspace"`
}

// NotebookSyncConfig names the target schema and folder for records
// created by the add-to-notebook action.
type NotebookSyncConfig struct {
	SchemaID string `yaml:"schema_id"`
	FolderID string `yaml:"folder_id"`
}

// Secrets holds credentials read from the environment at startup.
type Secrets struct {
	// SeqeraToken is the registry bearer token
	// (SEQERA_ACCESS_TOKEN).
	SeqeraToken string

	// BenchlingClientSecret authenticates the app's API client
	// (BENCHLING_CLIENT_SECRET).
	BenchlingClientSecret string

	// WebhookSecret is the shared HMAC secret for inbound webhook
	// verification (SEQCANVAS_WEBHOOK_SECRET). Optional: when empty,
	// signature verification is disabled.
	WebhookSecret string
}

// Load loads configuration from the SEQCANVAS_CONFIG environment
// variable. There are no fallback paths — if the variable is not set,
// this fails.
func Load() (*Config, error) {
	configPath := os.Getenv("SEQCANVAS_CONFIG")
	if configPath == "" {
		return nil, fmt.Errorf("SEQCANVAS_CONFIG environment variable not set; " +
			"set it to the path of your seqcanvas.yaml config file, or use --config flag")
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path. Environment
// variables do not override file values — the file is the single
// source of truth for non-secret settings.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := &Config{Listen: "127.0.0.1:8730"}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadSecrets reads credentials from the environment.
func LoadSecrets() Secrets {
	return Secrets{
		SeqeraToken:           os.Getenv("SEQERA_ACCESS_TOKEN"),
		BenchlingClientSecret: os.Getenv("BENCHLING_CLIENT_SECRET"),
		WebhookSecret:         os.Getenv("SEQCANVAS_WEBHOOK_SECRET"),
	}
}

// Validate checks the configuration for errors. All problems are
// reported together so an operator can fix a fresh deployment in one
// pass.
func (c *Config) Validate() error {
	var errs []error

	if c.Listen == "" {
		errs = append(errs, fmt.Errorf("listen is required"))
	}
	if c.Benchling.APIURL == "" {
		errs = append(errs, fmt.Errorf("benchling.api_url is required"))
	}
	if c.Benchling.AppID == "" {
		errs = append(errs, fmt.Errorf("benchling.app_id is required"))
	}
	if c.Benchling.ClientID == "" {
		errs = append(errs, fmt.Errorf("benchling.client_id is required"))
	}
	if c.Seqera.APIURL == "" {
		errs = append(errs, fmt.Errorf("seqera.api_url is required"))
	}
	if c.Seqera.Organization == "" {
		errs = append(errs, fmt.Errorf("seqera.organization is required"))
	}
	if c.Seqera.Workspace == "" {
		errs = append(errs, fmt.Errorf("seqera.workspace is required"))
	}

	// notebook_sync is deliberately not validated here: an
	// installation without sync configured still serves search and
	// detail views, and the sync handler reports the missing setting
	// to the user on demand.

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
