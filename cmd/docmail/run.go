package main

import (
	"errors"
	"fmt"

	"github.com/mwellner/go-docmail/internal/config"
	"github.com/mwellner/go-docmail/internal/hints"
)

// run dispatches to the requested command. args excludes the program name.
func run(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ErrNoCommand
	}

	command, rest := args[0], args[1:]
	switch command {
	case "compose":
		return runCompose(rest, env)
	case "markdown":
		return runMarkdown(rest, env)
	case "render":
		return runRender(rest, env)
	case "preview":
		return runPreview(rest, env)
	case "recipients":
		return runRecipients(rest, env)
	case "init":
		return runInit(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "docmail version %s\n", Version)
		return nil
	case "help":
		runHelp(rest, env)
		return nil
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

// applyConfig loads the named config into the environment. An empty name
// keeps the defaults already present.
func applyConfig(name string, env *Environment) error {
	if name == "" {
		return nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return err
	}

	env.Config = cfg
	return nil
}

// runInit writes a default config file.
func runInit(args []string, env *Environment) error {
	path := "go-docmail.yaml"
	if len(args) > 0 {
		path = args[0]
	}

	if err := config.WriteDefault(path); err != nil {
		return err
	}
	fmt.Fprintf(env.Stdout, "Wrote %s\n", path)
	return nil
}
