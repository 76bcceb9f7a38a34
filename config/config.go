// Package config provides the conversion options threaded through a
// conversion call.
//
// Options is an explicit, immutable value scoped to a single call. The
// engine keeps no mutable process-wide configuration: two conversions
// running concurrently with different options never observe each other.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360/sbolconvert/errors"
)

// DefaultVersion is the version string backported onto SBOL2 objects
// whose SBOL3 counterpart records none. Whether a versionless object
// should backport as "1" or as no version at all is ambiguous in
// observed converter behavior; "1" is the default and callers may
// override it, including to the empty string for "no version".
const DefaultVersion = "1"

// Options configures a single conversion call.
type Options struct {
	// Namespaces is the ordered list of candidate namespace prefixes
	// consulted when converting SBOL2 objects, which carry no namespace
	// of their own. The first prefix that literally prefixes an object's
	// identity wins; an explicit bookkeeping namespace recorded by a
	// prior conversion always takes priority over this list.
	Namespaces []string `yaml:"namespaces"`

	// DefaultVersion is backported onto SBOL2 objects with no recorded
	// version. Empty means objects stay versionless.
	DefaultVersion string `yaml:"default_version"`

	// Logger receives structured conversion telemetry. Nil falls back to
	// slog.Default().
	Logger *slog.Logger `yaml:"-"`
}

// Default returns the options used when the caller has no preferences.
func Default() Options {
	return Options{DefaultVersion: DefaultVersion}
}

// LoadFile reads options from a YAML file, applies defaults for absent
// fields, and validates the result.
func LoadFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, errors.Wrap(err, "config", "LoadFile", "file read")
	}

	// Distinguish "absent" from "explicitly empty" for the version field.
	raw := struct {
		Namespaces     []string `yaml:"namespaces"`
		DefaultVersion *string  `yaml:"default_version"`
	}{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Options{}, errors.Wrap(err, "config", "LoadFile", "yaml parse")
	}

	opts := Default()
	opts.Namespaces = raw.Namespaces
	if raw.DefaultVersion != nil {
		opts.DefaultVersion = *raw.DefaultVersion
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Validate ensures the options are usable: every candidate namespace must
// be a non-empty absolute URI prefix.
func (o Options) Validate() error {
	for i, ns := range o.Namespaces {
		if ns == "" {
			return errors.NewStructural("", fmt.Sprintf("candidate namespace %d is empty", i))
		}
		if !strings.Contains(ns, "://") {
			return errors.NewStructural(ns, "candidate namespace is not an absolute URI prefix")
		}
	}
	return nil
}

// LoggerOrDefault returns the configured logger, or slog.Default().
func (o Options) LoggerOrDefault() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
