// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/google/sbom-compliance/pkg/checkers"
	"github.com/google/sbom-compliance/pkg/checkers/base"
	"github.com/google/sbom-compliance/pkg/checkers/fsct"
	"github.com/google/sbom-compliance/pkg/checkers/ntia"
	"github.com/google/sbom-compliance/pkg/detect"
	"github.com/google/sbom-compliance/pkg/parser"
	"github.com/google/sbom-compliance/pkg/report"
)

const version = "1.0.0"

const (
	outputPrint = "print"
	outputJSON  = "json"
	outputHTML  = "html"
)

var (
	flagSBOMSpec       string
	flagComply         string
	flagSkipValidation bool
	flagOutput         string
	flagOutputFile     string
	flagVerbose        bool
	flagVersion        bool

	// Pre-1.0 flag names, kept as deprecated aliases.
	flagLegacyFile       string
	flagLegacyConform    string
	flagLegacyOutputPath string
)

// exitError carries the process exit code through cobra's error return.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

var rootCmd = &cobra.Command{
	Use:   "sbomcheck [sbom-file]",
	Short: "Check an SBOM against a compliance standard",
	Long: "sbomcheck parses an SPDX SBOM and reports whether it satisfies the\n" +
		"minimum elements of a compliance standard (NTIA minimum elements or\n" +
		"FSCT v3 minimum expected elements).",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		applyEnvOverrides(cmd)
		level := slog.LevelInfo
		if flagVerbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
	RunE: run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&flagSBOMSpec, "sbom-spec", "s", parser.SpecSPDX2,
		"SBOM specification of the input file (spdx2 or spdx3)")
	flags.StringVarP(&flagComply, "comply", "c", ntia.Compliance,
		fmt.Sprintf("compliance standard to check against (%s or %s)",
			ntia.Compliance, fsct.Compliance))
	flags.BoolVar(&flagSkipValidation, "skip-validation", false,
		"skip structural validation of the parsed document")
	flags.StringVarP(&flagOutput, "output", "r", outputPrint,
		"output format (print, json or html)")
	flags.StringVarP(&flagOutputFile, "output-file", "o", "",
		"write the output to this file instead of stdout")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false,
		"include per-component details in the output")
	flags.BoolVarP(&flagVersion, "version", "V", false,
		"print the version and exit")

	flags.StringVar(&flagLegacyFile, "file", "", "SBOM file to check")
	flags.StringVar(&flagLegacyConform, "conform", "", "compliance standard")
	flags.StringVar(&flagLegacyOutputPath, "output_path", "", "output file path")
	_ = flags.MarkDeprecated("file", "pass the SBOM file as a positional argument")
	_ = flags.MarkDeprecated("conform", "use --comply")
	_ = flags.MarkDeprecated("output_path", "use --output-file")
}

// applyEnvOverrides lets SBOMCHECK_* environment variables stand in for
// flags the user did not pass on the command line.
func applyEnvOverrides(cmd *cobra.Command) {
	viper.SetEnvPrefix("SBOMCHECK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		if flag.Changed {
			return
		}
		if value := viper.GetString(flag.Name); value != "" {
			_ = cmd.Flags().Set(flag.Name, value)
		}
	})
}

func run(cmd *cobra.Command, args []string) error {
	if flagVersion {
		fmt.Fprintf(cmd.OutOrStdout(), "sbomcheck %s\n", version)
		return nil
	}

	file, err := sbomFile(args)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		_ = cmd.Usage()
		return &exitError{code: 2}
	}

	switch flagOutput {
	case outputPrint, outputJSON, outputHTML:
	default:
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: unknown output format %q\n", flagOutput)
		return &exitError{code: 2}
	}

	compliance := flagComply
	if flagLegacyConform != "" && !cmd.Flags().Changed("comply") {
		compliance = flagLegacyConform
	}
	outputFile := flagOutputFile
	if flagLegacyOutputPath != "" && !cmd.Flags().Changed("output-file") {
		outputFile = flagLegacyOutputPath
	}

	sbomSpec, err := resolveSpec(cmd, file)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		return &exitError{code: 1}
	}

	checker, err := checkers.New(file, !flagSkipValidation, compliance, sbomSpec)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		return &exitError{code: 2}
	}

	out := cmd.OutOrStdout()
	if outputFile != "" {
		outFile, err := os.Create(outputFile)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
			return &exitError{code: 1}
		}
		defer outFile.Close()
		out = outFile
	}

	if err := renderOutput(out, checker); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		return &exitError{code: 1}
	}

	if !checker.CheckCompliance() {
		return &exitError{code: 1}
	}
	return nil
}

func sbomFile(args []string) (string, error) {
	switch {
	case len(args) == 1 && flagLegacyFile != "":
		return "", fmt.Errorf("both a positional SBOM file and --file were given")
	case len(args) == 1:
		return args[0], nil
	case flagLegacyFile != "":
		return flagLegacyFile, nil
	default:
		return "", fmt.Errorf("no SBOM file given")
	}
}

// resolveSpec maps the detected SPDX version onto a parser spec when the
// user did not pick one explicitly.
func resolveSpec(cmd *cobra.Command, file string) (string, error) {
	if cmd.Flags().Changed("sbom-spec") {
		return flagSBOMSpec, nil
	}
	major, minor, ok := detect.SPDXVersion(file)
	if !ok {
		return "", fmt.Errorf("unable to detect the SPDX version of %s", file)
	}
	slog.Debug("detected SPDX version", "major", major, "minor", minor)
	switch major {
	case 2:
		return parser.SpecSPDX2, nil
	case 3:
		return parser.SpecSPDX3, nil
	default:
		return "", fmt.Errorf("SPDX version %d.%d is not supported", major, minor)
	}
}

func renderOutput(w io.Writer, checker base.Checker) error {
	switch flagOutput {
	case outputPrint:
		checker.PrintTableOutput(w, flagVerbose)
	case outputJSON:
		rendered, err := report.RenderJSON(checker.OutputJSON())
		if err != nil {
			return err
		}
		fmt.Fprintln(w, rendered)
	case outputHTML:
		fmt.Fprint(w, checker.OutputHTML(flagVerbose))
	default:
		return fmt.Errorf("unknown output format %q", flagOutput)
	}
	return nil
}
