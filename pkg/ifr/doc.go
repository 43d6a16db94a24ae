/*
Package ifr provides a high-level API for turning IFRExtractor UEFI dumps
into setup_var scripts.

# Quick Start

Parse a dump, stage one edit, export the script:

	catalog, defects, err := ifr.ParseFile("setup.txt", ifr.ParseOptions{})
	if err != nil {
	    log.Fatal(err)
	}
	for _, d := range defects {
	    log.Printf("skipped: %v", d)
	}

	setting, err := catalog.Find("Above 4G Decoding")
	if err != nil {
	    log.Fatal(err)
	}

	edits := ifr.NewEditSet(catalog)
	if err := edits.Set(setting, 1); err != nil {
	    log.Fatal(err)
	}

	out, err := ifr.ExportScript(edits, ifr.ExportOptions{})

# Partial Success

Real vendor dumps are not uniformly well-formed. Parsing never stops at the
first defective record: the catalog holds every setting that did parse and
the defect list names the ones that did not. Halting on the first defect
would make the package useless on real-world input; callers that want the
old-fashioned behavior can set ParseOptions.Strict.

# Safety

A staged value is validated when it is staged, not when it is exported:
values that don't fit the setting's byte width, violate its numeric bounds,
or name no listed option code are rejected with typed errors and never
clamped. Parsed settings are immutable — edits live in an EditSet and the
catalog can always be re-exported against its original values.

# Searching

The catalog is predicate-driven and has no opinion on pattern syntax:

	hits := catalog.Search(ifr.NameContains("4G"))
	hits = catalog.Search(ifr.NameMatches(regexp.MustCompile(`(?i)^pcie`)))
	hits = catalog.Search(ifr.And(ifr.InVarStore("Setup"), ifr.OfType(ifr.Checkbox)))

Bulk edits apply a transform over every match, independently — one failed
setting reports one error without blocking the rest:

	n, errs := catalog.BulkApply(ifr.NameContains("ASPM"), func(*ifr.Setting) (uint64, error) {
	    return 0, nil
	}, edits)

# Script Grammar

Output is pinned to the setup_var.efi 0.3 command syntax, one write per
pending edit, in catalog (source) order:

	# Above 4G Decoding: Enabled
	setup_var.efi 0x10 0x01 -s 0x1 -n Setup

Exports are deterministic and byte-identical for the same edit set.
*/
package ifr
