package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Report describes the outcome of one dispatch.
type Report struct {
	Binary   string   `json:"binary"`
	Args     []string `json:"args"`
	Summary  string   `json:"summary"`
	DryRun   bool     `json:"dry_run"`
	Sent     bool     `json:"sent"`
	ExitCode *int     `json:"exit_code,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// Print displays the report.
func Print(w io.Writer, r Report, asJSON bool) error {
	if asJSON {
		return printJSON(w, r)
	}
	return printNatural(w, r)
}

func printJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func printNatural(w io.Writer, r Report) error {
	var err error
	switch {
	case r.DryRun:
		_, err = fmt.Fprintf(w, "dry run: %s\n", CommandLine(r.Binary, r.Args))
	case r.Sent:
		summary := r.Summary
		if summary == "" {
			summary = "(no summary)"
		}
		_, err = fmt.Fprintf(w, "sent: %s\n", summary)
	default:
		_, err = fmt.Fprintf(w, "failed: %s\n", r.Error)
	}
	return err
}

// CommandLine renders binary and args as a shell-quoted line for display.
func CommandLine(binary string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, binary)
	for _, a := range args {
		parts = append(parts, quote(a))
	}
	return strings.Join(parts, " ")
}

func quote(s string) string {
	if s == "" {
		return `""`
	}
	if strings.ContainsAny(s, " \t\n\"'\\$`|&;<>()*?[]{}#~") {
		return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`, "`", "\\`").Replace(s) + `"`
	}
	return s
}
