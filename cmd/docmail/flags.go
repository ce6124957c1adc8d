package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config string
	quiet  bool
}

// markerFlags holds section marker overrides.
type markerFlags struct {
	subject string
	body    string
}

// composeFlags holds all flags for the compose command.
type composeFlags struct {
	common  commonFlags
	markers markerFlags
	output  string
}

// transcodeFlags holds flags for the markdown and render commands.
type transcodeFlags struct {
	common commonFlags
	output string
}

// recipientsFlags holds flags for the recipients command.
type recipientsFlags struct {
	common     commonFlags
	column     string
	skipHeader bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
}

// addMarkerFlags adds section marker flags to a FlagSet.
func addMarkerFlags(fs *flag.FlagSet, f *markerFlags) {
	fs.StringVar(&f.subject, "subject-marker", "", "word inside the ===...=== subject marker (default: SUBJECT)")
	fs.StringVar(&f.body, "body-marker", "", "word inside the ===...=== body marker (default: BODY)")
}

// parseComposeFlags parses compose command flags and returns positional args.
func parseComposeFlags(args []string) (*composeFlags, []string, error) {
	fs := flag.NewFlagSet("compose", flag.ContinueOnError)
	f := &composeFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory for template files (empty = stdout)")
	addCommonFlags(fs, &f.common)
	addMarkerFlags(fs, &f.markers)

	fs.Usage = func() { printComposeUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseTranscodeFlags parses flags for the markdown, render and preview
// commands, which share the same surface.
func parseTranscodeFlags(name string, args []string) (*transcodeFlags, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	f := &transcodeFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file (empty = stdout)")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printTranscodeUsage(os.Stderr, name) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseRecipientsFlags parses recipients command flags and returns positional args.
func parseRecipientsFlags(args []string) (*recipientsFlags, []string, error) {
	fs := flag.NewFlagSet("recipients", flag.ContinueOnError)
	f := &recipientsFlags{}

	fs.StringVar(&f.column, "column", "", "spreadsheet column letter holding addresses (default: A)")
	fs.BoolVar(&f.skipHeader, "skip-header", false, "skip the first row")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printRecipientsUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
