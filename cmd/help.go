package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// commandEntry formats one help line with aliases next to the name, so
// "delete, rm" lines up with the other commands in its group.
func commandEntry(c *cobra.Command) string {
	name := strings.Join(append([]string{c.Name()}, c.Aliases...), ", ")
	width := 0
	if p := c.Parent(); p != nil {
		for _, sib := range p.Commands() {
			n := len(sib.Name())
			for _, a := range sib.Aliases {
				n += len(a) + 2
			}
			width = max(width, n)
		}
	}
	return fmt.Sprintf("  %-*s  %s", width, name, c.Short)
}

const usageTemplate = `Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{range $group := .Groups}}

{{$group.Title}}{{range $cmds}}{{if and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help"))}}
{{commandEntry .}}{{end}}{{end}}{{end}}{{if not .AllChildCommandsHaveGroup}}

Commands:{{range $cmds}}{{if and (eq .GroupID "") (or .IsAvailableCommand (eq .Name "help"))}}
{{commandEntry .}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Run "{{.CommandPath}} [command] --help" for details on a command.{{end}}
`

func setupHelp(root *cobra.Command) {
	cobra.AddTemplateFunc("commandEntry", commandEntry)
	root.SetUsageTemplate(usageTemplate)
}
