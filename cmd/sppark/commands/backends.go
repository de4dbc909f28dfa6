// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ingonyama-zk/sppark/ntt"
)

func Backends() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "Lists the NTT backends compiled into this binary",
		RunE:  backendsFunc,
	}
}

func backendsFunc(c *cobra.Command, _ []string) error {
	out := c.OutOrStdout()
	for i, name := range ntt.AvailableBackends() {
		marker := " "
		if i == 0 {
			marker = "*"
		}
		if _, err := fmt.Fprintf(out, "%s %-6s %s\n", marker, name, ntt.BackendInfo(name)); err != nil {
			return err
		}
	}
	return nil
}
