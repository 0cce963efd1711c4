// Package wrapper generates the small executable entry points that invoke
// an external tool with a fixed set of arguments and environment. Wrappers
// delegate transparently: arguments are forwarded verbatim and exec makes
// the wrapper's exit status equal the wrapped tool's.
package wrapper

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/aidot/pkg/config"
	"github.com/arthur-debert/aidot/pkg/errors"
	"github.com/arthur-debert/aidot/pkg/paths"
)

// Script is one generated wrapper, ready for projection
type Script struct {
	// Name is the executable name under the bin destination
	Name string

	// Content is the full script body
	Content []byte
}

// Generate renders the wrapper script for one wrapper declaration.
// Environment exports are emitted in sorted key order so repeated
// activations produce byte-identical scripts.
func Generate(cfg config.WrapperConfig) (Script, error) {
	if cfg.Name == "" {
		return Script{}, errors.New(errors.ErrInvalidInput, "wrapper requires a name")
	}
	if cfg.Tool == "" {
		return Script{}, errors.Newf(errors.ErrInvalidInput, "wrapper %q requires a tool", cfg.Name)
	}

	var b strings.Builder
	b.WriteString("#!/bin/sh\n")
	b.WriteString("# Generated by aidot. Do not edit.\n")

	keys := make([]string, 0, len(cfg.Env))
	for k := range cfg.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "export %s=%s\n", k, shQuote(paths.ExpandHome(cfg.Env[k])))
	}

	b.WriteString("exec " + shQuote(cfg.Tool))
	for _, arg := range cfg.Args {
		b.WriteString(" " + shQuote(paths.ExpandHome(arg)))
	}
	// "$@" forwards the caller's arguments unchanged; exec means the
	// wrapped tool's exit code is the wrapper's exit code and a missing
	// tool is reported by the shell, not by us.
	b.WriteString(` "$@"` + "\n")

	return Script{Name: cfg.Name, Content: []byte(b.String())}, nil
}

// GenerateAll renders every declared wrapper
func GenerateAll(cfgs []config.WrapperConfig) ([]Script, error) {
	scripts := make([]Script, 0, len(cfgs))
	for _, cfg := range cfgs {
		script, err := Generate(cfg)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, script)
	}
	return scripts, nil
}

// shQuote single-quotes a string for POSIX sh, escaping embedded quotes
func shQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
