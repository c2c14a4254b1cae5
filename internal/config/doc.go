// Package config provides configuration structures and utilities for
// ebreached. It defines the options for breach lookups (API host, key
// sources, request pacing) and for result output, along with the YAML
// configuration file format and its search paths.
package config
