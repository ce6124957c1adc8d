package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	docmail "github.com/mwellner/go-docmail"
	"github.com/mwellner/go-docmail/htmlsource"
	"github.com/mwellner/go-docmail/internal/docref"
	"github.com/mwellner/go-docmail/internal/fileutil"
	"github.com/mwellner/go-docmail/internal/hints"
	"github.com/mwellner/go-docmail/internal/pipeline"
)

// runCompose splits an HTML document export into a mail template.
func runCompose(args []string, env *Environment) error {
	flags, positional, err := parseComposeFlags(args)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		return ErrNoInput
	}
	input := positional[0]

	if err := applyConfig(flags.common.config, env); err != nil {
		return err
	}

	if fileutil.IsURL(input) {
		if id, idErr := docref.ExtractDocumentID(input); idErr == nil {
			return fmt.Errorf("%w: document %s%s", ErrRemoteInput, id, hints.ForRemoteDocument())
		}
		return fmt.Errorf("%w: %s%s", ErrRemoteInput, input, hints.ForRemoteDocument())
	}

	var doc docmail.Document
	if input == "-" {
		doc, err = htmlsource.Parse(env.Stdin)
	} else {
		doc, err = htmlsource.Open(input)
	}
	if err != nil {
		return err
	}

	subjectWord := flags.markers.subject
	if subjectWord == "" {
		subjectWord = env.Config.Markers.Subject
	}
	bodyWord := flags.markers.body
	if bodyWord == "" {
		bodyWord = env.Config.Markers.Body
	}

	composer := docmail.NewComposer(docmail.WithSectionMarkers(subjectWord, bodyWord))
	tmpl, warnings := composer.Compose(doc)

	if len(warnings) > 0 && !flags.common.quiet {
		for _, w := range warnings {
			fmt.Fprintln(env.Stderr, "warning: "+w)
		}
		fmt.Fprintln(env.Stderr, strings.TrimPrefix(
			hints.ForMissingSections(resolveMarker(subjectWord, pipeline.DefaultSubjectMarker),
				resolveMarker(bodyWord, pipeline.DefaultBodyMarker)), "\n"))
	}

	outDir := flags.output
	if outDir == "" {
		outDir = env.Config.Output.DefaultDir
	}
	if outDir == "" {
		fmt.Fprintf(env.Stdout, "Subject: %s\n\n%s\n", tmpl.Subject, tmpl.BodyText)
		return nil
	}

	return writeTemplate(tmpl, input, outDir, flags.common.quiet, env)
}

// resolveMarker returns the fallback word when the override is empty.
func resolveMarker(word, fallback string) string {
	if word == "" {
		return fallback
	}
	return word
}

// writeTemplate writes the three template files into the output directory,
// named after the input file.
func writeTemplate(tmpl docmail.Template, input, outDir string, quiet bool, env *Environment) error {
	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	stem := "template"
	if input != "-" {
		base := filepath.Base(input)
		stem = strings.TrimSuffix(base, filepath.Ext(base))
	}

	files := []struct {
		suffix  string
		content string
	}{
		{".subject.txt", tmpl.Subject},
		{".txt", tmpl.BodyText},
		{".html", tmpl.BodyHTML},
	}

	for _, f := range files {
		path := filepath.Join(outDir, stem+f.suffix)
		if err := os.WriteFile(path, []byte(f.content+"\n"), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		if !quiet {
			fmt.Fprintf(env.Stdout, "Wrote %s\n", path)
		}
	}
	return nil
}
