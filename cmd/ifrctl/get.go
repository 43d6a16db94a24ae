package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/ifrkit/pkg/ifr"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <dump> <name>",
		Short: "Show one setting in full, options included",
		Long: `The get command looks a setting up by its exact display name and
shows everything the dump declares about it. Names are labels, not
identifiers; when several settings share the name, use search instead.

Example:
  ifrctl get bios.txt "Above 4G Decoding"
  ifrctl get bios.txt "Boot Timeout" --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	catalog, err := openDump(args[0])
	if err != nil {
		return err
	}

	s, err := catalog.Find(args[1])
	if err != nil {
		if errors.Is(err, ifr.ErrAmbiguousName) {
			return fmt.Errorf("%w; use search to list all candidates", err)
		}
		return err
	}

	// Output as JSON if requested
	if jsonOut {
		return printJSON(settingToJSON(s))
	}

	// Text output
	printInfo("\n%s\n", s.Name)
	printInfo("  Type: %s\n", s.Type)
	printInfo("  VarStore: %s (id 0x%X)\n", s.VarStore, s.VarStoreID)
	printInfo("  Offset: 0x%X\n", s.VarOffset)
	printInfo("  Size: %d byte(s)\n", s.Size)
	if s.Type == ifr.Numeric {
		printInfo("  Range: [%d, %d]\n", s.Min, s.Max)
	}
	if s.HasValue {
		printInfo("  Default: %d\n", s.Value)
	}
	if len(s.Options) > 0 {
		printInfo("  Options:\n")
		for _, o := range s.Options {
			marker := ""
			if o.Default {
				marker = " (default)"
			}
			printInfo("    %d = %s%s\n", o.Code, o.Label, marker)
		}
	}

	return nil
}
