// Command utokenize reads lines of text and writes their tokenized surface
// form and/or chart annotation.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/utoken-go/utoken/internal/cliconfig"
	"github.com/utoken-go/utoken/internal/cliui"
)

var (
	version = "dev"
)

func main() {
	var flags runFlags

	root := &cobra.Command{
		Use:     "utokenize",
		Short:   "Tokenize text into words, punctuation, and other token types",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokenize(flags)
		},
	}

	root.Flags().StringVarP(&flags.Input, "input", "i", "", "input file (default stdin)")
	root.Flags().StringVarP(&flags.Output, "output", "o", "", "surface output file (default stdout)")
	root.Flags().StringVarP(&flags.Annotation, "annotation", "a", "", "annotation output file")
	root.Flags().StringVar(&flags.AnnotationFormat, "annotation_format", "", "annotation format: json or double-colon")
	root.Flags().StringVarP(&flags.DataDir, "data_dir", "d", "", "resource data directory")
	root.Flags().StringVar(&flags.Lcode, "lc", "", "language code (e.g. eng, spa, deu)")
	root.Flags().BoolVarP(&flags.FirstTokenIsLineID, "first_token_is_line_id", "f", false, "treat each line's first field as an opaque line ID")
	root.Flags().BoolVar(&flags.Simple, "simple", false, "suppress @ markup in surface output")
	root.Flags().BoolVarP(&flags.Chart, "chart", "c", false, "also compute chart annotation")
	root.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "verbose logging")
	root.Flags().IntVar(&flags.Workers, "workers", 4, "number of concurrent workers (unused: input lines are tokenized one at a time)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cliui.FormatError(cliui.ErrorOptions{Message: err.Error()}))
		os.Exit(1)
	}
}

type runFlags struct {
	Input              string
	Output             string
	Annotation         string
	AnnotationFormat   string
	DataDir            string
	Lcode              string
	FirstTokenIsLineID bool
	Simple             bool
	Chart              bool
	Verbose            bool
	Workers            int
}

func newLogger(verbose bool) *zap.SugaredLogger {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "console"
	}
	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	return logger.Sugar()
}

func resolveDataDir(flagVal string, cfg *cliconfig.Config) string {
	if flagVal != "" {
		return flagVal
	}
	return cfg.DataDir
}

func resolveLcode(flagVal string, cfg *cliconfig.Config) string {
	if flagVal != "" {
		return flagVal
	}
	return cfg.DefaultLanguage
}

func resolveAnnotationFormat(flagVal string, cfg *cliconfig.Config) string {
	if flagVal != "" {
		return flagVal
	}
	return cfg.AnnotationFormat
}
