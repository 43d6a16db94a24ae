package main

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/ifrkit/pkg/ifr"
)

var (
	searchRegex         bool
	searchCaseSensitive bool
	searchMaxResults    int
	searchVarStore      string
	searchType          string
)

func init() {
	cmd := newSearchCmd()
	cmd.Flags().BoolVar(&searchRegex, "regex", false, "Use regex pattern")
	cmd.Flags().BoolVar(&searchCaseSensitive, "case-sensitive", false, "Case-sensitive search")
	cmd.Flags().IntVar(&searchMaxResults, "max-results", 0, "Limit results (0 = unlimited)")
	cmd.Flags().StringVar(&searchVarStore, "varstore", "", "Search within one varstore")
	cmd.Flags().StringVar(&searchType, "type", "", "Match only settings of this type (oneof, numeric, checkbox)")
	rootCmd.AddCommand(cmd)
}

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <dump> <pattern>",
		Short: "Search settings by name",
		Long: `The search command finds settings whose name matches a pattern.
By default the pattern is a case-insensitive substring.

Example:
  ifrctl search bios.txt "above 4g"
  ifrctl search bios.txt "^CSM" --regex --case-sensitive
  ifrctl search bios.txt "boot" --varstore Setup --type oneof`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(args)
		},
	}
	return cmd
}

// searchPredicate compiles the pattern flags into one predicate.
func searchPredicate(pattern string) (ifr.Predicate, error) {
	var preds []ifr.Predicate

	if searchRegex {
		flags := ""
		if !searchCaseSensitive {
			flags = "(?i)"
		}
		re, err := regexp.Compile(flags + pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid regex pattern: %w", err)
		}
		preds = append(preds, ifr.NameMatches(re))
	} else if searchCaseSensitive {
		preds = append(preds, func(s *ifr.Setting) bool {
			return strings.Contains(s.Name, pattern)
		})
	} else {
		preds = append(preds, ifr.NameContains(pattern))
	}

	if searchVarStore != "" {
		preds = append(preds, ifr.InVarStore(searchVarStore))
	}
	typePred, err := settingTypeFilter(searchType)
	if err != nil {
		return nil, err
	}
	if typePred != nil {
		preds = append(preds, typePred)
	}
	return ifr.And(preds...), nil
}

func runSearch(args []string) error {
	dumpPath := args[0]
	pattern := args[1]

	printVerbose("Searching for pattern: %s\n", pattern)

	pred, err := searchPredicate(pattern)
	if err != nil {
		return err
	}

	catalog, err := openDump(dumpPath)
	if err != nil {
		return err
	}

	matches := catalog.Search(pred)
	truncated := false
	if searchMaxResults > 0 && len(matches) > searchMaxResults {
		matches = matches[:searchMaxResults]
		truncated = true
	}

	// Output as JSON if requested
	if jsonOut {
		out := make([]settingJSON, 0, len(matches))
		for _, s := range matches {
			out = append(out, settingToJSON(s))
		}
		return printJSON(out)
	}

	// Text output
	printInfo("\nSearching for \"%s\" in %s...\n\n", pattern, dumpPath)
	for _, s := range matches {
		printSettingLine(s)
	}
	if truncated {
		printInfo("  ... (limited to %d results)\n", searchMaxResults)
	}
	printInfo("\nTotal: %d setting(s)\n", len(matches))

	return nil
}
