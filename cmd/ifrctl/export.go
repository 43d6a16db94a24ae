package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joshuapare/ifrkit/pkg/ifr"
)

var (
	exportSets       []string
	exportBulks      []string
	exportCommand    string
	exportEncoding   string
	exportBOM        bool
	exportStdout     bool
	exportNoComments bool
)

func init() {
	cmd := newExportCmd()
	cmd.Flags().StringArrayVar(&exportSets, "set", nil, "Stage one edit, as \"Name=value\" (value: option label, decimal or 0x hex)")
	cmd.Flags().StringArrayVar(&exportBulks, "bulk", nil, "Stage edits for every name match, as \"pattern=value\"")
	cmd.Flags().StringVar(&exportCommand, "command", "", "Tool name emitted per line (default from config, setup_var.efi)")
	cmd.Flags().StringVar(&exportEncoding, "encoding", "", "Output encoding (utf8, utf16le; default from config)")
	cmd.Flags().BoolVar(&exportBOM, "with-bom", false, "Include byte-order mark")
	cmd.Flags().BoolVar(&exportStdout, "stdout", false, "Write to stdout instead of file")
	cmd.Flags().BoolVar(&exportNoComments, "no-comments", false, "Omit the name/label comment lines")
	rootCmd.AddCommand(cmd)
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <dump> [output.nsh]",
		Short: "Stage value changes and emit a setup_var script",
		Long: `The export command stages value changes against a parsed dump and
emits them as a setup_var.efi script. Staged values are validated against
each setting's width, bounds and options; nothing is ever clamped. Only
staged settings appear in the output.

Example:
  ifrctl export bios.txt out.nsh --set "Above 4G Decoding=Enabled"
  ifrctl export bios.txt out.nsh --set "Boot Timeout=30" --set "Fast Boot=1"
  ifrctl export bios.txt --stdout --bulk "serial port=Disabled"
  ifrctl export bios.txt out.nsh --set "Fast Boot=1" --encoding utf16le --with-bom`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args)
		},
	}
	return cmd
}

// splitAssignment cuts one "name=value" flag argument.
func splitAssignment(spec string) (string, string, error) {
	name, value, ok := strings.Cut(spec, "=")
	if !ok || name == "" || value == "" {
		return "", "", fmt.Errorf("malformed assignment %q (want \"name=value\")", spec)
	}
	return name, value, nil
}

// stageValue stages raw against one setting, resolving it as a number first
// and an option label second.
func stageValue(edits *ifr.EditSet, s *ifr.Setting, raw string) error {
	if v, err := strconv.ParseUint(raw, 0, 64); err == nil {
		return edits.Set(s, v)
	}
	return edits.SetLabel(s, raw)
}

func runExport(args []string) error {
	dumpPath := args[0]
	var outputPath string
	if len(args) > 1 {
		outputPath = args[1]
	}

	// Can't specify both output file and stdout
	if outputPath != "" && exportStdout {
		return fmt.Errorf("cannot specify both output file and --stdout")
	}

	// Need either output file or stdout
	if outputPath == "" && !exportStdout {
		return fmt.Errorf("must specify output file or use --stdout")
	}

	if len(exportSets) == 0 && len(exportBulks) == 0 {
		return fmt.Errorf("nothing staged; use --set or --bulk")
	}

	catalog, err := openDump(dumpPath)
	if err != nil {
		return err
	}
	edits := ifr.NewEditSet(catalog)

	// Explicit assignments are hard errors: a script that silently drops a
	// requested write is worse than no script.
	for _, spec := range exportSets {
		name, raw, err := splitAssignment(spec)
		if err != nil {
			return err
		}
		s, err := catalog.Find(name)
		if err != nil {
			return err
		}
		if err := stageValue(edits, s, raw); err != nil {
			return err
		}
		printVerbose("Staged %s = %s\n", name, raw)
	}

	// Bulk matches are independent; failures are reported and skipped.
	for _, spec := range exportBulks {
		pattern, raw, err := splitAssignment(spec)
		if err != nil {
			return err
		}
		applied, errs := catalog.BulkApply(ifr.NameContains(pattern), func(s *ifr.Setting) (uint64, error) {
			if v, err := strconv.ParseUint(raw, 0, 64); err == nil {
				return v, nil
			}
			if opt := s.OptionByLabel(raw); opt != nil {
				return opt.Code, nil
			}
			return 0, fmt.Errorf("no option labeled %q", raw)
		}, edits)
		for _, err := range errs {
			printError("bulk %q: %v\n", pattern, err)
		}
		printVerbose("Staged %d setting(s) for pattern %q\n", applied, pattern)
	}

	command := exportCommand
	if command == "" {
		command = viper.GetString("export.command")
	}
	encoding := exportEncoding
	if encoding == "" {
		encoding = viper.GetString("export.encoding")
	}

	out, err := ifr.ExportScript(edits, ifr.ExportOptions{
		Command:        command,
		OmitComments:   exportNoComments,
		OutputEncoding: normalizeEncoding(encoding),
		WithBOM:        exportBOM,
	})
	if err != nil {
		return err
	}

	if exportStdout {
		_, err := os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return fmt.Errorf("failed to write script: %w", err)
	}

	// Output as JSON if requested
	if jsonOut {
		return printJSON(map[string]interface{}{
			"dump":   dumpPath,
			"output": outputPath,
			"edits":  edits.Len(),
			"bytes":  len(out),
		})
	}

	printInfo("Wrote %d edit(s) to %s (%d bytes)\n", edits.Len(), outputPath, len(out))
	return nil
}
