package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/ifrkit/pkg/ifr"
)

var (
	settingsVarStore string
	settingsType     string
)

func init() {
	cmd := newSettingsCmd()
	cmd.Flags().StringVar(&settingsVarStore, "varstore", "", "List only settings in this varstore")
	cmd.Flags().StringVar(&settingsType, "type", "", "List only settings of this type (oneof, numeric, checkbox)")
	rootCmd.AddCommand(cmd)
}

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings <dump>",
		Short: "List every setting in a dump",
		Long: `The settings command lists every setting recovered from a dump, in
source order, with its backing varstore, offset and byte width.

Example:
  ifrctl settings bios.txt
  ifrctl settings bios.txt --varstore Setup
  ifrctl settings bios.txt --type numeric --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSettings(args)
		},
	}
	return cmd
}

// settingJSON is the wire shape shared by the settings, search and get commands.
type settingJSON struct {
	Name     string       `json:"name"`
	Type     string       `json:"type"`
	VarStore string       `json:"varstore"`
	Offset   uint32       `json:"offset"`
	Size     int          `json:"size"`
	Value    *uint64      `json:"value,omitempty"`
	Min      uint64       `json:"min,omitempty"`
	Max      uint64       `json:"max,omitempty"`
	Options  []optionJSON `json:"options,omitempty"`
}

type optionJSON struct {
	Label   string `json:"label"`
	Code    uint64 `json:"code"`
	Default bool   `json:"default,omitempty"`
}

func settingToJSON(s *ifr.Setting) settingJSON {
	out := settingJSON{
		Name:     s.Name,
		Type:     s.Type.String(),
		VarStore: s.VarStore,
		Offset:   s.VarOffset,
		Size:     s.Size,
		Min:      s.Min,
		Max:      s.Max,
	}
	if s.HasValue {
		v := s.Value
		out.Value = &v
	}
	for _, o := range s.Options {
		out.Options = append(out.Options, optionJSON{Label: o.Label, Code: o.Code, Default: o.Default})
	}
	return out
}

// settingTypeFilter maps the CLI spelling onto a predicate, or nil for "all".
func settingTypeFilter(name string) (ifr.Predicate, error) {
	switch name {
	case "":
		return nil, nil
	case "oneof":
		return ifr.OfType(ifr.OneOf), nil
	case "numeric":
		return ifr.OfType(ifr.Numeric), nil
	case "checkbox":
		return ifr.OfType(ifr.Checkbox), nil
	default:
		return nil, fmt.Errorf("unknown setting type %q (want oneof, numeric or checkbox)", name)
	}
}

func runSettings(args []string) error {
	catalog, err := openDump(args[0])
	if err != nil {
		return err
	}

	preds := []ifr.Predicate{func(*ifr.Setting) bool { return true }}
	if settingsVarStore != "" {
		preds = append(preds, ifr.InVarStore(settingsVarStore))
	}
	typePred, err := settingTypeFilter(settingsType)
	if err != nil {
		return err
	}
	if typePred != nil {
		preds = append(preds, typePred)
	}
	matches := catalog.Search(ifr.And(preds...))

	if jsonOut {
		out := make([]settingJSON, 0, len(matches))
		for _, s := range matches {
			out = append(out, settingToJSON(s))
		}
		return printJSON(out)
	}

	for _, s := range matches {
		printSettingLine(s)
	}
	printInfo("\nTotal: %d setting(s)\n", len(matches))
	return nil
}

// printSettingLine prints one setting in the compact one-line form.
func printSettingLine(s *ifr.Setting) {
	if s.HasValue {
		printInfo("%s @ %s+0x%X (%d byte, %s) = %d\n",
			s.Name, s.VarStore, s.VarOffset, s.Size, s.Type, s.Value)
	} else {
		printInfo("%s @ %s+0x%X (%d byte, %s)\n",
			s.Name, s.VarStore, s.VarOffset, s.Size, s.Type)
	}
}
