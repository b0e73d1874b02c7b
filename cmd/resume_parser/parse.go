package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/victorsfleite/resume-parser/internal/config"
	"github.com/victorsfleite/resume-parser/internal/ingestion"
	"github.com/victorsfleite/resume-parser/internal/observability"
	"github.com/victorsfleite/resume-parser/internal/parsing"
	"github.com/victorsfleite/resume-parser/internal/schemas"
	"github.com/victorsfleite/resume-parser/internal/tokens"
	"github.com/victorsfleite/resume-parser/internal/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] FILE...",
	Short: "Parse one or more profile PDF exports",
	Long:  "Parse profile PDF exports into structured JSON artifacts. With --sections only the named sections are extracted; everything else stays unset.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

var (
	sectionNames []string
	outDir       string
	configPath   string
	verbose      bool
)

func init() {
	parseCmd.Flags().StringSliceVarP(&sectionNames, "sections", "s", nil, "Comma-separated subset of sections to parse (default: all)")
	parseCmd.Flags().StringVarP(&outDir, "out", "o", ".", "Output directory for profile JSON artifacts")
	parseCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to JSON config file")
	parseCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print a human-readable summary of each parsed profile")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	flags := config.Config{Sections: sectionNames, Out: outDir, Verbose: verbose}
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		flags = flags.MergeWithDefaults(*fileCfg)
	}
	if err := flags.Validate(); err != nil {
		return err
	}

	requested, err := resolveSections(flags.Sections)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(flags.Out, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var g errgroup.Group
	for _, path := range args {
		path := path
		g.Go(func() error {
			return parseFile(path, flags.Out, requested, flags.Verbose)
		})
	}
	return g.Wait()
}

func parseFile(path, outDir string, requested []tokens.Section, verbose bool) error {
	log.Debug().Str("file", path).Msg("extracting tokens")
	toks, raw, err := ingestion.ExtractTokens(path)
	if err != nil {
		return err
	}

	profile, err := parsing.Parse(toks, raw, requested)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	artifact, err := writeArtifact(path, outDir, profile)
	if err != nil {
		return err
	}
	log.Info().Str("file", path).Str("artifact", artifact).Msg("profile parsed")

	if verbose {
		observability.NewPrinter(os.Stdout).PrintProfile(profile)
	}
	return nil
}

// writeArtifact marshals the profile, validates it against the artifact
// schema when the schema file is resolvable, and writes it next to the other
// outputs as <stem>.profile.json.
func writeArtifact(path, outDir string, profile *types.Profile) (string, error) {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal profile: %w", err)
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.ProfileSchema); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, data); err != nil {
			return "", fmt.Errorf("artifact failed schema validation: %w", err)
		}
	} else {
		log.Debug().Msg("profile schema not found; skipping artifact validation")
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	artifact := filepath.Join(outDir, stem+".profile.json")
	if err := os.WriteFile(artifact, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write artifact: %w", err)
	}
	return artifact, nil
}

func resolveSections(names []string) ([]tokens.Section, error) {
	if len(names) == 0 {
		return nil, nil
	}
	sections := make([]tokens.Section, 0, len(names))
	for _, name := range names {
		section, ok := tokens.ParseSection(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown section %q (known: %s)", name, knownSections())
		}
		sections = append(sections, section)
	}
	return sections, nil
}

func knownSections() string {
	all := tokens.Sections()
	names := make([]string, 0, len(all))
	for _, s := range all {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
