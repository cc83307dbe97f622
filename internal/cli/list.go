package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/texgen/internal/texture"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available textures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat := texture.Builtin()
			params := texture.DefaultParams()
			params.HueDimension = appConfig.Hue.Dimension

			table := NewTable([]string{"NAME", "FILE", "SIZE", "DESCRIPTION"})
			table.SetColumnMaxWidth(3, 40)
			for _, name := range cat.Names() {
				e, _ := cat.Get(name)
				w, h := e.Size(params)
				table.AddRow([]string{e.Name, e.File, fmt.Sprintf("%dx%d", w, h), e.Description})
			}

			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}
}
