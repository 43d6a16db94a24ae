package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/ifrkit/pkg/ifr"
)

func init() {
	rootCmd.AddCommand(newVerifyCmd())
}

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <script>",
		Short: "Re-parse an emitted script and report defective lines",
		Long: `The verify command re-parses a setup_var script and lists the writes
it would perform. A malformed line on the target machine means a wrong NVRAM
write, so run this before carrying a script over.

Example:
  ifrctl verify out.nsh
  ifrctl verify out.nsh --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(args)
		},
	}
	return cmd
}

type verifyResult struct {
	File     string        `json:"file"`
	Commands []ifr.Command `json:"commands"`
	Defects  []string      `json:"defects,omitempty"`
}

func runVerify(args []string) error {
	scriptPath := args[0]

	data, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}

	cmds, defects := ifr.VerifyScript(data)

	result := verifyResult{File: scriptPath, Commands: cmds}
	for _, d := range defects {
		result.Defects = append(result.Defects, d.Error())
	}

	// Output as JSON if requested
	if jsonOut {
		if err := printJSON(result); err != nil {
			return err
		}
	} else {
		printInfo("\n%s: %d write(s)\n", scriptPath, len(cmds))
		for _, c := range cmds {
			if c.Comment != "" {
				printInfo("  %s: write 0x%0*X at %s+0x%X (%s)\n",
					c.Tool, c.Size*2, c.Value, c.VarStore, c.Offset, c.Comment)
			} else {
				printInfo("  %s: write 0x%0*X at %s+0x%X\n",
					c.Tool, c.Size*2, c.Value, c.VarStore, c.Offset)
			}
		}
		for _, d := range defects {
			printError("line %d: %v\n", d.Line, d.Err)
		}
	}

	if len(defects) > 0 {
		return fmt.Errorf("%d defective line(s)", len(defects))
	}
	return nil
}
