// Package types defines the core data model and error taxonomy for working
// with IFRExtractor UEFI dumps: settings recovered from the dump, staged
// edits, and the options that control parsing and script emission.
//
// Design goals:
//   - Parsed settings are immutable inputs; edits never overwrite them.
//   - Per-record defects are values, collected and reported, never a reason
//     to discard the rest of a document.
//   - Typed errors with stable categories (format/record/option/range/...).
//
// This package has no dependencies beyond the standard library.
package types
