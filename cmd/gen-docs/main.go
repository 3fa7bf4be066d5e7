package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/stigoleg/keep-busy/internal/cli"
)

// This small tool writes shell completions and a roff man page generated
// from the keepbusy command tree.

const appDescription = "Simulate humanlike reading or coding activity so the session never goes idle."

func main() {
	root, err := cli.NewRootCmd("dev")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := writeCompletions(root, filepath.Join("docs", "completions")); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := writeMan(root, "man"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func writeCompletions(root *cobra.Command, base string) error {
	if err := os.MkdirAll(base, 0o755); err != nil {
		return err
	}
	name := root.Name()

	gens := []struct {
		file string
		gen  func(string) error
	}{
		{name + ".bash", func(p string) error { return root.GenBashCompletionFileV2(p, true) }},
		{"_" + name, root.GenZshCompletionFile},
		{name + ".fish", func(p string) error { return root.GenFishCompletionFile(p, true) }},
		{name + ".ps1", root.GenPowerShellCompletionFileWithDesc},
	}
	for _, g := range gens {
		if err := g.gen(filepath.Join(base, g.file)); err != nil {
			return fmt.Errorf("%s: %w", g.file, err)
		}
	}
	return nil
}

func writeMan(root *cobra.Command, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	name := root.Name()

	var b strings.Builder
	b.WriteString(".TH \"" + strings.ToUpper(name) + "\" \"1\" \"\" \"keep-busy\" \"User Commands\"\n")
	b.WriteString(".SH NAME\n" + name + " \\- " + appDescription + "\n")
	b.WriteString(".SH SYNOPSIS\n.B " + name + "\n[start|version] [OPTIONS]\n")
	b.WriteString(".SH DESCRIPTION\n" + roffEscape(root.Long) + "\n")

	b.WriteString(".SH COMMANDS\n")
	for _, c := range root.Commands() {
		if !c.IsAvailableCommand() {
			continue
		}
		b.WriteString(".TP\n\\fB" + c.Name() + "\\fR\n" + roffEscape(c.Short) + "\n")
	}

	b.WriteString(".SH OPTIONS\n")
	root.Flags().VisitAll(func(f *pflag.Flag) {
		b.WriteString(".TP\n\\fB" + flagNames(f) + "\\fR\n" + roffEscape(f.Usage))
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "0" {
			b.WriteString(" (default " + roffEscape(f.DefValue) + ")")
		}
		b.WriteString("\n")
	})

	b.WriteString(".SH ENVIRONMENT\n")
	b.WriteString("Every option can also be set as KEEPBUSY_<OPTION> (upper snake case), " +
		"from a .env file in the working directory, or in activity.config.json.\n")
	b.WriteString(".SH EXAMPLES\n")
	b.WriteString(".TP\n\\fB" + name + "\\fR\nPick an activity in the interactive interface.\n")
	b.WriteString(".TP\n\\fB" + name + " start \\-p reading \\-d 2h30m\\fR\nBrowse and scroll for 2 hours 30 minutes.\n")
	b.WriteString(".TP\n\\fB" + name + " start \\-p coding \\-\\-until 17:00 \\-b\\fR\nType in the background until 5 PM.\n")
	b.WriteString(".SH SEE ALSO\nProject homepage: https://github.com/stigoleg/keep-busy\n")
	return os.WriteFile(filepath.Join(dir, name+".1"), []byte(b.String()), 0o644)
}

func flagNames(f *pflag.Flag) string {
	names := "\\-\\-" + f.Name
	if f.Shorthand != "" {
		names = "\\-" + f.Shorthand + ", " + names
	}
	if f.Value.Type() != "bool" {
		names += " <" + f.Value.Type() + ">"
	}
	return names
}

func roffEscape(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	return strings.ReplaceAll(s, "-", "\\-")
}
