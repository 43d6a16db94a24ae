package ifr_test

import (
	"fmt"

	"github.com/joshuapare/ifrkit/pkg/ifr"
)

const dump = `Program version: 1.6.0, Extraction mode: UEFI
0x48A10: VarStore Guid: EC87D643-EBA4-4BB5-A1E5-3F3E36B20DA9, VarStoreId: 0x1, Size: 0x30C, Name: "Setup" { 24 1E }
0x48A30: OneOf Prompt: "Above 4G Decoding", Help: "", QuestionFlags: 0x0, QuestionId: 0xA1, VarStoreId: 0x1, VarOffset: 0x10, Flags: 0x10, Size: 8 { 05 91 }
0x48A50: OneOfOption Option: "Disabled" Value: 0 { 09 07 }
0x48A70: OneOfOption Option: "Enabled" Value: 1, Default { 09 07 }
`

func Example() {
	catalog, defects, err := ifr.ParseString(dump, ifr.ParseOptions{})
	if err != nil {
		panic(err)
	}
	fmt.Println("settings:", catalog.Len(), "defects:", len(defects))

	edits := ifr.NewEditSet(catalog)
	for _, s := range catalog.Search(ifr.NameContains("above 4g")) {
		if err := edits.SetLabel(s, "Enabled"); err != nil {
			panic(err)
		}
	}

	script, err := ifr.ExportScript(edits, ifr.ExportOptions{})
	if err != nil {
		panic(err)
	}
	fmt.Print(string(script))
	// Output:
	// settings: 1 defects: 0
	// # Above 4G Decoding: Enabled
	// setup_var.efi 0x10 0x01 -s 0x1 -n Setup
}
