package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"

	"github.com/utoken-go/utoken/internal/cliconfig"
	"github.com/utoken-go/utoken/internal/cliui"
	"github.com/utoken-go/utoken/internal/emitter"
	"github.com/utoken-go/utoken/pkg/utoken"
)

// knownLanguageCodes is offered by the interactive picker when stdin is a
// terminal and --lc was not supplied. It is not an exhaustive list of every
// lcode a data directory might define, just the common ones worth a menu
// entry; anything else is still reachable with --lc.
var knownLanguageCodes = []string{
	"eng", "spa", "deu", "fra", "por", "ita", "nld", "rus", "jpn", "cmn", "ara", "hin",
}

func runTokenize(flags runFlags) error {
	cfg, err := cliconfig.Load()
	if err != nil {
		return err
	}

	dataDir := resolveDataDir(flags.DataDir, cfg)
	lcode := flags.Lcode
	if lcode == "" {
		lcode = pickLanguageInteractively(cfg.DefaultLanguage)
	}

	annotationFormat := resolveAnnotationFormat(flags.AnnotationFormat, cfg)
	if flags.Annotation != "" && annotationFormat != string(emitter.FormatJSON) && annotationFormat != string(emitter.FormatDoubleColon) {
		return fmt.Errorf("utokenize: --annotation_format must be %q or %q, got %q", emitter.FormatJSON, emitter.FormatDoubleColon, annotationFormat)
	}

	log := newLogger(flags.Verbose)
	defer log.Sync()

	tok, err := utoken.NewTokenizer(lcode, dataDir, utoken.Options{
		FirstTokenIsLineID: flags.FirstTokenIsLineID,
		Simple:             flags.Simple,
		AnnotationFormat:   emitter.Format(annotationFormat),
		Verbose:            flags.Verbose,
	})
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

	var annW io.Writer
	var closeAnn func() error
	switch {
	case flags.Annotation != "":
		annW, closeAnn, err = openOutputWriter(flags.Annotation)
		if err != nil {
			return err
		}
		defer closeAnn()
	case flags.Chart:
		// -c with no -a path prints the chart annotation to stdout,
		// interleaved with the surface line.
		annW = out
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lineNo := 0
	for scanner.Scan() {
		line := scanner.Text()
		c, terr := tok.TokenizeWithChart(line)
		if terr != nil {
			fmt.Fprintln(os.Stderr, cliui.FormatError(cliui.ErrorOptions{
				Level:   cliui.LevelWarning,
				Message: fmt.Sprintf("line %d: %v, emitting verbatim", lineNo, terr),
			}))
			fmt.Fprintln(out, line)
			lineNo++
			continue
		}

		fmt.Fprintln(out, emitter.Surface(c, flags.Simple))

		if annW != nil {
			var b strings.Builder
			if werr := emitter.WriteAnnotation(&b, c, lineNo, line, emitter.Format(annotationFormat)); werr != nil {
				return werr
			}
			fmt.Fprint(annW, b.String())
		}
		lineNo++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("utokenize: reading input: %w", err)
	}
	return nil
}

func pickLanguageInteractively(defaultLcode string) string {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return defaultLcode
	}
	options := append([]string{}, knownLanguageCodes...)
	selected := defaultLcode
	prompt := &survey.Select{
		Message: "Select a language code:",
		Options: options,
		Default: defaultLcode,
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return defaultLcode
	}
	return selected
}

func openInput(path string) (io.Reader, func() error, error) {
	if path == "" {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("utokenize: opening input %q: %w", path, err)
	}
	return f, f.Close, nil
}

func openOutput(path string) (io.Writer, func() error, error) {
	return openOutputWriter(path)
}

func openOutputWriter(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("utokenize: creating output %q: %w", path, err)
	}
	return f, f.Close, nil
}
