// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/saferwall/palsave"
	"github.com/saferwall/palsave/defaults"
	"github.com/saferwall/palsave/log"
	"github.com/saferwall/palsave/registry"
	"github.com/spf13/cobra"
)

// usageError marks a bad invocation (missing file, conflicting flags,
// output already exists without --force): exit code 1 (spec §6).
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// formatError marks a malformed .sav or JSON document: exit code 2
// (spec §6).
type formatError struct{ err error }

func (e *formatError) Error() string { return e.err.Error() }
func (e *formatError) Unwrap() error { return e.err }

func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	switch err.(type) {
	case *usageError:
		return 1
	case *formatError:
		return 2
	default:
		return 1
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := setupLogger()
	if err != nil {
		return &usageError{fmt.Errorf("opening debug log: %w", err)}
	}
	if closeLog != nil {
		defer closeLog()
	}

	input := args[0]
	toJSON, err := resolveDirection(input)
	if err != nil {
		return &usageError{err}
	}

	output := flagOutput
	if output == "" {
		output = defaultOutputPath(input, toJSON)
	}
	if flagRaw {
		output = rawOutputPath(output)
	}
	if !flagForce {
		if _, err := os.Stat(output); err == nil {
			return &usageError{fmt.Errorf("%s already exists, use --force to overwrite", output)}
		}
	}

	opts := palsave.DefaultOptions()
	opts.Logger = logger
	opts.AllowNaN = !flagNanToNull
	opts.CustomProperties, err = customPropertiesFromFlag(flagCustomProperties)
	if err != nil {
		return &usageError{err}
	}
	if flagCodec != "" {
		switch flagCodec {
		case "zlib":
			opts.Codec = palsave.CodecZlibDoublePass
		case "dict":
			opts.Codec = palsave.CodecDict
		default:
			return &usageError{fmt.Errorf("unknown --codec %q, want zlib or dict", flagCodec)}
		}
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return &usageError{err}
	}

	if flagRaw {
		return runRawDump(data, output)
	}
	if toJSON {
		return convertSavToJSON(data, output, opts)
	}
	return convertJSONToSav(data, output, opts)
}

func rawOutputPath(output string) string {
	if strings.HasSuffix(output, ".bin") {
		return output
	}
	return strings.TrimSuffix(output, filepath.Ext(output)) + ".bin"
}

func runRawDump(data []byte, output string) error {
	gvas, err := palsave.DecodeSav(data)
	if err != nil {
		return &formatError{err}
	}
	if err := os.WriteFile(output, gvas, 0o644); err != nil {
		return &usageError{err}
	}
	fmt.Println(output)
	return nil
}

func convertSavToJSON(data []byte, output string, opts palsave.Options) error {
	g, err := palsave.DecodeGraph(data, opts)
	if err != nil {
		return &formatError{err}
	}
	doc := palsave.Lower(g, opts)

	var out []byte
	if flagMinify {
		out, err = json.Marshal(doc)
	} else {
		out, err = json.MarshalIndent(doc, "", "\t")
	}
	if err != nil {
		return &formatError{err}
	}
	if err := os.WriteFile(output, out, 0o644); err != nil {
		return &usageError{err}
	}
	fmt.Println(output)
	return nil
}

func convertJSONToSav(data []byte, output string, opts palsave.Options) error {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return &formatError{err}
	}
	g, err := palsave.Lift(doc)
	if err != nil {
		return &formatError{err}
	}
	out, err := palsave.EncodeGraph(g, opts)
	if err != nil {
		return &formatError{err}
	}
	if err := os.WriteFile(output, out, 0o644); err != nil {
		return &usageError{err}
	}
	fmt.Println(output)
	return nil
}

// resolveDirection decides sav->json vs json->sav: an explicit
// --to-json/--from-json wins, otherwise the input's suffix is sniffed
// (spec §6 "auto-detects direction by suffix unless overridden").
func resolveDirection(input string) (toJSON bool, err error) {
	if flagToJSON && flagFromJSON {
		return false, fmt.Errorf("--to-json and --from-json are mutually exclusive")
	}
	if flagToJSON {
		return true, nil
	}
	if flagFromJSON {
		return false, nil
	}
	switch strings.ToLower(filepath.Ext(input)) {
	case ".json":
		return false, nil
	default:
		return true, nil
	}
}

func defaultOutputPath(input string, toJSON bool) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	if toJSON {
		return base + ".json"
	}
	return base + ".sav"
}

func setupLogger() (log.Logger, func() error, error) {
	if flagDebugLog != "" {
		return log.WithFileSink(flagDebugLog)
	}
	level := "info"
	if flagDebug {
		level = "debug"
	}
	return log.New(os.Stderr, level), nil, nil
}

// customPropertiesFromFlag builds the Options.CustomProperties table
// from the --custom-properties allow-list: "all" (the default) enables
// every stock handler, otherwise only the named ones.
func customPropertiesFromFlag(allowList string) (palsave.CustomProperties, error) {
	named := defaults.NamedCustomPropertyRules()
	if allowList == "all" {
		rules := make([]registry.CustomPropertyRule, len(named))
		for i, n := range named {
			rules[i] = n.Rule
		}
		return registry.NewCustomPropertyTable(rules), nil
	}

	wanted := map[string]bool{}
	for _, name := range strings.Split(allowList, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			wanted[name] = true
		}
	}

	var rules []registry.CustomPropertyRule
	for _, n := range named {
		if wanted[n.Name] {
			rules = append(rules, n.Rule)
			delete(wanted, n.Name)
		}
	}
	if len(wanted) > 0 {
		unknown := make([]string, 0, len(wanted))
		for name := range wanted {
			unknown = append(unknown, name)
		}
		return nil, fmt.Errorf("unknown custom-property handler(s): %s", strings.Join(unknown, ", "))
	}
	return registry.NewCustomPropertyTable(rules), nil
}
