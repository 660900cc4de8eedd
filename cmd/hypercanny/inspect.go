// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ndcanny/ndio"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "List the variables stored in a .npy or .npz file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a, err := ndio.Open(args[0])
			if err != nil {
				return err
			}
			defer a.Close()
			// Unreadable variables are reported after the table.
			vars, verr := a.Variables()
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Name", "Dtype", "Shape", "Dims", "Size"})
			table.SetAutoFormatHeaders(false)
			for _, v := range vars {
				table.Append([]string{
					v.Name,
					v.Dtype,
					v.Shape.String(),
					strings.Join(v.Dims, ","),
					humanize.Bytes(uint64(v.Bytes)),
				})
			}
			table.Render()
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%d variables\n", len(vars)); err != nil {
				return err
			}
			return verr
		},
	}
}
