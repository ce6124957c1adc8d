package main

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/mwellner/go-docmail/internal/docref"
	"github.com/mwellner/go-docmail/internal/fileutil"
	"github.com/mwellner/go-docmail/internal/hints"
)

// runRecipients lists addresses from one column of a CSV export.
func runRecipients(args []string, env *Environment) error {
	flags, positional, err := parseRecipientsFlags(args)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		return ErrNoInput
	}

	if err := applyConfig(flags.common.config, env); err != nil {
		return err
	}

	column := flags.column
	if column == "" {
		column = env.Config.Recipients.Column
	}
	if column == "" {
		column = "A"
	}

	index, err := docref.ColumnIndex(column)
	if err != nil {
		return fmt.Errorf("%w%s", err, hints.ForRecipientColumn(nil))
	}

	raw, err := fileutil.ReadInput(positional[0], env.Stdin)
	if err != nil {
		return err
	}

	reader := csv.NewReader(strings.NewReader(raw))
	reader.FieldsPerRecord = -1 // exports often have ragged rows
	records, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("parsing CSV: %w", err)
	}

	skipHeader := flags.skipHeader || env.Config.Recipients.SkipHeader
	if skipHeader && len(records) > 0 {
		records = records[1:]
	}

	var addresses []string
	for _, row := range records {
		if index >= len(row) {
			continue
		}
		if v := strings.TrimSpace(row[index]); v != "" {
			addresses = append(addresses, v)
		}
	}

	if len(addresses) == 0 && len(records) > 0 && !flags.common.quiet {
		available := make([]string, len(records[0]))
		for i := range records[0] {
			available[i] = docref.ColumnLetter(i)
		}
		fmt.Fprintf(env.Stderr, "warning: no addresses in column %s%s\n",
			strings.ToUpper(column), hints.ForRecipientColumn(available))
	}

	for _, a := range addresses {
		fmt.Fprintln(env.Stdout, a)
	}
	return nil
}
