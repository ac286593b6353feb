// Command detokenize reassembles tokenized, markup-annotated text back
// into plain lines.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/utoken-go/utoken/internal/cliconfig"
	"github.com/utoken-go/utoken/internal/cliui"
	"github.com/utoken-go/utoken/pkg/utoken"
)

var version = "dev"

type detokFlags struct {
	Input   string
	Output  string
	DataDir string
	Lcode   string
	Verbose bool
}

func main() {
	var flags detokFlags

	root := &cobra.Command{
		Use:     "detokenize",
		Short:   "Reassemble tokenized text back into plain lines",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetokenize(flags)
		},
	}

	root.Flags().StringVarP(&flags.Input, "input", "i", "", "input file (default stdin)")
	root.Flags().StringVarP(&flags.Output, "output", "o", "", "output file (default stdout)")
	root.Flags().StringVarP(&flags.DataDir, "data_dir", "d", "", "resource data directory")
	root.Flags().StringVar(&flags.Lcode, "lc", "", "language code (e.g. eng, spa, deu)")
	root.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "verbose logging")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cliui.FormatError(cliui.ErrorOptions{Message: err.Error()}))
		os.Exit(1)
	}
}

func runDetokenize(flags detokFlags) error {
	cfg, err := cliconfig.Load()
	if err != nil {
		return err
	}

	dataDir := flags.DataDir
	if dataDir == "" {
		dataDir = cfg.DataDir
	}
	lcode := flags.Lcode
	if lcode == "" {
		lcode = cfg.DefaultLanguage
	}

	det, err := utoken.NewDetokenizer(lcode, dataDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, cliui.FormatError(cliui.ErrorOptions{Message: err.Error()}))
		return err
	}

	in, closeIn, err := openInput(flags.Input)
	if err != nil {
		return err
	}
	defer closeIn()

	out, closeOut, err := openOutput(flags.Output)
	if err != nil {
		return err
	}
	defer closeOut()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lineNo := 0
	for scanner.Scan() {
		line := scanner.Text()
		result, derr := det.DetokenizeString(line)
		if derr != nil {
			fmt.Fprintln(os.Stderr, cliui.FormatError(cliui.ErrorOptions{
				Level:   cliui.LevelWarning,
				Message: fmt.Sprintf("line %d: %v, emitting verbatim", lineNo, derr),
			}))
			fmt.Fprintln(out, line)
			lineNo++
			continue
		}
		fmt.Fprintln(out, result)
		lineNo++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("detokenize: reading input: %w", err)
	}
	return nil
}

func openInput(path string) (io.Reader, func() error, error) {
	if path == "" {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("detokenize: opening input %q: %w", path, err)
	}
	return f, f.Close, nil
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("detokenize: creating output %q: %w", path, err)
	}
	return f, f.Close, nil
}
