package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/ifrkit/pkg/ifr"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <dump>",
		Short: "Summarize a dump: settings, varstores, defects",
		Long: `The info command parses an IFRExtractor dump and reports how many
settings it describes, which NVRAM variables back them, and how many records
could not be recovered.

Example:
  ifrctl info bios.txt
  ifrctl info bios.txt --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

type dumpInfo struct {
	File      string   `json:"file"`
	Settings  int      `json:"settings"`
	OneOf     int      `json:"oneof"`
	Numeric   int      `json:"numeric"`
	Checkbox  int      `json:"checkbox"`
	VarStores []string `json:"varstores"`
	Defects   int      `json:"defects"`
}

func runInfo(args []string) error {
	dumpPath := args[0]

	catalog, defects, err := ifr.ParseFile(dumpPath, parseOptions())
	if err != nil {
		return err
	}

	info := dumpInfo{
		File:      dumpPath,
		Settings:  catalog.Len(),
		VarStores: catalog.VarStores(),
		Defects:   len(defects),
	}
	for _, s := range catalog.All() {
		switch s.Type {
		case ifr.OneOf:
			info.OneOf++
		case ifr.Numeric:
			info.Numeric++
		case ifr.Checkbox:
			info.Checkbox++
		}
	}

	// Output as JSON if requested
	if jsonOut {
		return printJSON(info)
	}

	// Text output
	printInfo("\nDump Information:\n")
	printInfo("  File: %s\n", dumpPath)
	if stat, err := os.Stat(dumpPath); err == nil {
		size := stat.Size()
		if size < 1024 {
			printInfo("  Size: %d bytes\n", size)
		} else if size < 1024*1024 {
			printInfo("  Size: %.1f KB\n", float64(size)/1024)
		} else {
			printInfo("  Size: %.1f MB\n", float64(size)/(1024*1024))
		}
	}
	printInfo("  Settings: %d (%d oneof, %d numeric, %d checkbox)\n",
		info.Settings, info.OneOf, info.Numeric, info.Checkbox)
	printInfo("  VarStores: %d\n", len(info.VarStores))
	for _, name := range info.VarStores {
		printInfo("    %s\n", name)
	}
	if info.Defects > 0 {
		printInfo("  Defective records: %d\n", info.Defects)
	}

	return nil
}
