// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagToJSON           bool
	flagFromJSON         bool
	flagOutput           string
	flagForce            bool
	flagCodec            string
	flagMinify           bool
	flagNanToNull        bool
	flagCustomProperties string
	flagRaw              bool
	flagDebug            bool
	flagDebugLog         string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "palconv",
		Short: "Converts Palworld .sav save files to and from JSON",
		Long:  "A bidirectional Palworld .sav/JSON converter, brought to you by Saferwall (c) 2018 MIT",
		Run: func(cmd *cobra.Command, args []string) {
		},
	}

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Long:  "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("You are using version 0.1.0")
		},
	}

	var convertCmd = &cobra.Command{
		Use:   "convert <file>",
		Short: "Converts a single .sav or .json file",
		Long:  "Converts a .sav save file to JSON, or a JSON document back to a .sav save file",
		Args:  cobra.ExactArgs(1),
		RunE:  runConvert,
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().BoolVar(&flagToJSON, "to-json", false, "force .sav to JSON direction")
	convertCmd.Flags().BoolVar(&flagFromJSON, "from-json", false, "force JSON to .sav direction")
	convertCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output file path (default: input path with the other extension)")
	convertCmd.Flags().BoolVarP(&flagForce, "force", "f", false, "overwrite the output file if it already exists")
	convertCmd.Flags().StringVar(&flagCodec, "codec", "", "override the save container codec (zlib|dict), only used going from-json")
	convertCmd.Flags().BoolVar(&flagMinify, "minify", false, "write compact JSON instead of indented")
	convertCmd.Flags().BoolVar(&flagNanToNull, "nan-to-null", false, "replace non-finite floats with null instead of the NaN/Infinity sentinel strings")
	convertCmd.Flags().StringVar(&flagCustomProperties, "custom-properties", "all", "comma-separated custom-property handler names to enable, or \"all\"")
	convertCmd.Flags().BoolVar(&flagRaw, "raw", false, "dump the decompressed GVAS payload to the output path with a .bin extension instead of parsing properties")

	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug-level logging to stderr")
	rootCmd.PersistentFlags().StringVar(&flagDebugLog, "debug-log", "", "also write debug-level logs to this file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}
