package command

import (
	"fmt"
	"io"
)

// PrintHelp writes the help block of one command: its name, its help text and
// every parameter with its help, whether it is required, and its default.
func PrintHelp(w io.Writer, def Definition) {
	fmt.Fprintf(w, "  %s:\n", def.Name)
	fmt.Fprintf(w, "    %s\n", def.Help)
	fmt.Fprintln(w, "  Command Parameters:")

	for _, p := range def.Parameters {
		fmt.Fprintf(w, "    <%s>:\n", p.Name)

		required := "Optional"
		if p.Required {
			required = "Required!"
		}
		defaultValue := p.Default
		if defaultValue == "" {
			defaultValue = "<empty>"
		}

		fmt.Fprintf(w, "      %s\n", p.Help)
		fmt.Fprintf(w, "      %s, DefaultValue: %s\n", required, defaultValue)
	}

	fmt.Fprintln(w)
}
