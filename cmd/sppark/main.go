// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ingonyama-zk/sppark/cmd/sppark/commands"
)

func init() {
	cobra.EnablePrefixMatching = true
}

func main() {
	cmd := &cobra.Command{
		Use:   "sppark",
		Short: "Benchmarks BN254 NTTs and synthetic MSM inputs",
	}
	cmd.AddCommand(
		commands.NTT(),
		commands.Arith(),
		commands.Generate(),
		commands.Backends(),
	)
	ctx := context.Background()
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "command failed %v\n", err)
		os.Exit(1)
	}
}
