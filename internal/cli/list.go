package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/callirhoe/pkg/theme"
)

// listKinds maps the list arguments to theme kinds and their defaults.
var listKinds = []struct {
	arg, kind, def string
}{
	{"styles", theme.KindStyle, theme.DefaultStyle},
	{"geometries", theme.KindGeometry, theme.DefaultGeometry},
	{"languages", theme.KindLanguage, theme.DefaultLanguage},
}

// listCommand creates the list command for showing theme variants.
func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "list [styles|geometries|languages]",
		Short:     "List available styles, geometries and languages",
		Long:      "List the built-in theme variants plus those found under " + listConfigHint() + ".",
		ValidArgs: []string{"styles", "geometries", "languages"},
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			themes := newThemes()
			for _, k := range listKinds {
				if len(args) == 1 && args[0] != k.arg {
					continue
				}
				printInfo("%s", StyleTitle.Render(k.arg))
				fmt.Println(formatVariants(themes.List(k.kind), k.def))
			}
			return nil
		},
	}
}

// formatVariants renders names on one indented line, marking the default.
func formatVariants(names []string, def string) string {
	parts := make([]string, len(names))
	for i, n := range names {
		if n == def {
			parts[i] = StyleHighlight.Render(n + " (default)")
		} else {
			parts[i] = StyleValue.Render(n)
		}
	}
	return "  " + strings.Join(parts, StyleDim.Render(", "))
}

func listConfigHint() string {
	if dir, err := configDir(); err == nil {
		return dir
	}
	return "$XDG_CONFIG_HOME/" + appName
}
