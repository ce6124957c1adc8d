package main

import (
	"fmt"
	"os"

	docmail "github.com/mwellner/go-docmail"
	"github.com/mwellner/go-docmail/internal/fileutil"
)

// runMarkdown converts mail-body HTML to editable Markdown.
func runMarkdown(args []string, env *Environment) error {
	return runTranscode("markdown", args, env, docmail.HTMLToMarkdown)
}

// runRender converts edited Markdown back to mail-body HTML.
func runRender(args []string, env *Environment) error {
	return runTranscode("render", args, env, docmail.MarkdownToHTML)
}

// runPreview renders Markdown as a plain-text preview.
func runPreview(args []string, env *Environment) error {
	return runTranscode("preview", args, env, func(markdown string) string {
		return docmail.RenderPreview(docmail.MarkdownToHTML(markdown))
	})
}

// runTranscode is the shared body of the single-input string-to-string
// commands: read input, convert, write to stdout or the output file.
func runTranscode(name string, args []string, env *Environment, convert func(string) string) error {
	flags, positional, err := parseTranscodeFlags(name, args)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		return ErrNoInput
	}

	if err := applyConfig(flags.common.config, env); err != nil {
		return err
	}

	in, err := fileutil.ReadInput(positional[0], env.Stdin)
	if err != nil {
		return err
	}

	out := convert(in)
	if flags.output == "" {
		fmt.Fprintln(env.Stdout, out)
		return nil
	}

	if err := os.WriteFile(flags.output, []byte(out+"\n"), 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Wrote %s\n", flags.output)
	}
	return nil
}
