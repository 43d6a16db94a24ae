package ifr

import "github.com/joshuapare/ifrkit/pkg/types"

// Re-export commonly used types from pkg/types so users only need to import pkg/ifr

// Core types.
type (
	Setting     = types.Setting
	Option      = types.Option
	Edit        = types.Edit
	SettingType = types.SettingType
	RecordError = types.RecordError
)

// Setting type constants.
const (
	OneOf    = types.OneOf
	Numeric  = types.Numeric
	Checkbox = types.Checkbox
)

// ParseOptions controls dump ingestion behavior.
type ParseOptions = types.ParseOptions

// ExportOptions controls script emission behavior.
type ExportOptions = types.ExportOptions

// Error types.
type (
	Error   = types.Error
	ErrKind = types.ErrKind
)

// Error kind constants.
const (
	ErrKindFormat   = types.ErrKindFormat
	ErrKindRecord   = types.ErrKindRecord
	ErrKindOption   = types.ErrKindOption
	ErrKindRange    = types.ErrKindRange
	ErrKindChoice   = types.ErrKindChoice
	ErrKindNotFound = types.ErrKindNotFound
	ErrKindState    = types.ErrKindState
)

// Common error sentinels.
var (
	ErrNotIFRDump       = types.ErrNotIFRDump
	ErrNotVerbose       = types.ErrNotVerbose
	ErrEmptyDocument    = types.ErrEmptyDocument
	ErrMalformedRecord  = types.ErrMalformedRecord
	ErrMalformedOption  = types.ErrMalformedOption
	ErrUnsupportedWidth = types.ErrUnsupportedWidth
	ErrValueOutOfRange  = types.ErrValueOutOfRange
	ErrInvalidOption    = types.ErrInvalidOption
	ErrNotFound         = types.ErrNotFound
	ErrAmbiguousName    = types.ErrAmbiguousName
)
