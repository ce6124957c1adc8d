package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docmail <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  compose     Split an HTML document export into a mail template")
	fmt.Fprintln(w, "  markdown    Convert mail-body HTML to editable Markdown")
	fmt.Fprintln(w, "  render      Convert edited Markdown back to mail-body HTML")
	fmt.Fprintln(w, "  preview     Render Markdown as a plain-text preview")
	fmt.Fprintln(w, "  recipients  List addresses from a spreadsheet CSV export")
	fmt.Fprintln(w, "  init        Write a default config file")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'docmail help <command>' for details on a specific command.")
}

// printComposeUsage prints usage for the compose command.
func printComposeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docmail compose <input.html> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Split an HTML document export into subject and body sections.")
	fmt.Fprintln(w, "The document marks its sections with ===SUBJECT=== and ===BODY===")
	fmt.Fprintln(w, "lines; missing markers leave the affected field empty with a warning.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    HTML file (\"-\" = stdin)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <dir>         Write template files instead of stdout")
	fmt.Fprintln(w, "  -c, --config <name>        Config file name or path")
	fmt.Fprintln(w, "      --subject-marker <s>   Word inside the subject marker")
	fmt.Fprintln(w, "      --body-marker <s>      Word inside the body marker")
	fmt.Fprintln(w, "  -q, --quiet                Only show errors")
}

// printTranscodeUsage prints usage for the markdown, render and preview commands.
func printTranscodeUsage(w io.Writer, name string) {
	var what string
	switch name {
	case "markdown":
		what = "Convert mail-body HTML to editable Markdown."
	case "render":
		what = "Convert edited Markdown back to mail-body HTML."
	case "preview":
		what = "Render Markdown as a plain-text preview."
	}

	fmt.Fprintf(w, "Usage: docmail %s <input> [flags]\n", name)
	fmt.Fprintln(w)
	fmt.Fprintln(w, what)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Input file (\"-\" = stdin)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <file>   Output file (empty = stdout)")
	fmt.Fprintln(w, "  -q, --quiet           Only show errors")
}

// printRecipientsUsage prints usage for the recipients command.
func printRecipientsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docmail recipients <input.csv> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List recipient addresses from a spreadsheet CSV export,")
	fmt.Fprintln(w, "one per line.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    CSV file (\"-\" = stdin)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --column <letter>   Column holding addresses (default: A)")
	fmt.Fprintln(w, "      --skip-header       Skip the first row")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "compose":
		printComposeUsage(env.Stdout)
	case "markdown", "render", "preview":
		printTranscodeUsage(env.Stdout, args[0])
	case "recipients":
		printRecipientsUsage(env.Stdout)
	case "init":
		fmt.Fprintln(env.Stdout, "Usage: docmail init [path]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Write a default config file (default: go-docmail.yaml).")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: docmail version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: docmail help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
