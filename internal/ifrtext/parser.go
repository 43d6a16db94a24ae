package ifrtext

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/joshuapare/ifrkit/pkg/types"
)

// Record field patterns, pinned against IFRExtractor-RS verbose output.
// The dump is not a clean grammar; these match the well-formed subset the
// upstream tool emits and anything else inside a prompt record is a
// reportable defect rather than a reason to stop.
var (
	varStorePattern = regexp.MustCompile(
		`VarStoreId: 0x([0-9A-Fa-f]+), Size: 0x([0-9A-Fa-f]+), Name: "(.*?)"`)
	oneOfPattern = regexp.MustCompile(
		`OneOf Prompt: "(.+?)", Help: "(.*?)", QuestionFlags: 0x([0-9A-Fa-f]+), QuestionId: 0x([0-9A-Fa-f]+), VarStoreId: 0x([0-9A-Fa-f]+), VarOffset: 0x([0-9A-Fa-f]+), Flags: 0x([0-9A-Fa-f]+), Size: ([0-9]+)`)
	oneOfOptionPattern = regexp.MustCompile(
		`OneOfOption Option: "(.*?)" Value: ([0-9]+)(, Default)?`)
	numericPattern = regexp.MustCompile(
		`Numeric Prompt: "(.+?)", Help: "(.*?)", QuestionFlags: 0x([0-9A-Fa-f]+), QuestionId: 0x([0-9A-Fa-f]+), VarStoreId: 0x([0-9A-Fa-f]+), VarOffset: 0x([0-9A-Fa-f]+), Flags: 0x([0-9A-Fa-f]+), Size: ([0-9]+), Min: 0x([0-9A-Fa-f]+), Max: 0x([0-9A-Fa-f]+), Step: 0x([0-9A-Fa-f]+)`)
	checkBoxPattern = regexp.MustCompile(
		`CheckBox Prompt: "(.+?)", Help: "(.*?)", QuestionFlags: 0x([0-9A-Fa-f]+), QuestionId: 0x([0-9A-Fa-f]+), VarStoreId: 0x([0-9A-Fa-f]+), VarOffset: 0x([0-9A-Fa-f]+), Flags: 0x([0-9A-Fa-f]+), Default: (Enabled|Disabled)`)
	defaultPattern = regexp.MustCompile(
		`Default DefaultId: 0x0 Value: ([0-9]+)`)
)

// settingKey is the identity of a setting within one document.
type settingKey struct {
	varstore string
	offset   uint32
}

type parser struct {
	varstores map[uint16]string
	settings  []*types.Setting
	index     map[settingKey]int
	errs      []*types.RecordError

	// current is the OneOf/Numeric that trailing option and default
	// records attach to. pendingDefault holds a default value seen before
	// the matching option line arrived.
	current        *types.Setting
	pendingDefault *uint64
}

// ParseBlocks converts tokenized record blocks into settings. Defective
// records are reported per block and never abort the document: a dump with
// some unparseable records still yields every setting that did parse, in
// source order.
func ParseBlocks(blocks []Block) ([]*types.Setting, []*types.RecordError) {
	p := &parser{
		varstores: make(map[uint16]string),
		settings:  make([]*types.Setting, 0, len(blocks)/4),
		index:     make(map[settingKey]int),
	}
	for _, b := range blocks {
		p.parseBlock(b)
	}
	return p.settings, p.errs
}

func (p *parser) parseBlock(b Block) {
	switch {
	case strings.Contains(b.Text, OneOfOptionMarker):
		p.parseOneOfOption(b)
	case strings.Contains(b.Text, OneOfMarker):
		p.parseOneOf(b)
	case strings.Contains(b.Text, NumericMarker):
		p.parseNumeric(b)
	case strings.Contains(b.Text, CheckBoxMarker):
		p.parseCheckBox(b)
	case strings.Contains(b.Text, DefaultMarker):
		p.parseDefault(b)
	case strings.Contains(b.Text, VarStoreMarker):
		p.parseVarStore(b)
		// Everything else (forms, strings, suppress-ifs, ...) is
		// structural noise, not a defect.
	}
}

func (p *parser) parseVarStore(b Block) {
	// "VarStoreId:" also appears inside other varstore opcodes
	// (VarStoreEfi, VarStoreNameValue) that don't back scriptable
	// settings; only the plain table entry shape is recorded.
	m := varStorePattern.FindStringSubmatch(b.Text)
	if m == nil {
		return
	}
	id, err := strconv.ParseUint(m[1], 16, 16)
	if err != nil {
		p.fail(b, types.ErrKindRecord, fmt.Errorf("%w: bad VarStoreId %q", types.ErrMalformedRecord, m[1]))
		return
	}
	p.varstores[uint16(id)] = m[3]
}

func (p *parser) parseOneOf(b Block) {
	p.current = nil
	p.pendingDefault = nil

	m := oneOfPattern.FindStringSubmatch(b.Text)
	if m == nil {
		p.fail(b, types.ErrKindRecord, types.ErrMalformedRecord)
		return
	}
	s, err := p.newSetting(types.OneOf, m[1], m[5], m[6], m[8])
	if err != nil {
		p.fail(b, types.ErrKindRecord, err)
		return
	}
	p.put(s)
	p.current = s
}

func (p *parser) parseNumeric(b Block) {
	p.current = nil
	p.pendingDefault = nil

	m := numericPattern.FindStringSubmatch(b.Text)
	if m == nil {
		p.fail(b, types.ErrKindRecord, types.ErrMalformedRecord)
		return
	}
	s, err := p.newSetting(types.Numeric, m[1], m[5], m[6], m[8])
	if err != nil {
		p.fail(b, types.ErrKindRecord, err)
		return
	}
	min, err := strconv.ParseUint(m[9], 16, 64)
	if err != nil {
		p.fail(b, types.ErrKindRecord, fmt.Errorf("%w: bad Min %q", types.ErrMalformedRecord, m[9]))
		return
	}
	max, err := strconv.ParseUint(m[10], 16, 64)
	if err != nil {
		p.fail(b, types.ErrKindRecord, fmt.Errorf("%w: bad Max %q", types.ErrMalformedRecord, m[10]))
		return
	}
	s.Min, s.Max = min, max
	p.put(s)
	p.current = s
}

func (p *parser) parseCheckBox(b Block) {
	p.current = nil
	p.pendingDefault = nil

	m := checkBoxPattern.FindStringSubmatch(b.Text)
	if m == nil {
		p.fail(b, types.ErrKindRecord, types.ErrMalformedRecord)
		return
	}
	store, id, off, err := p.resolveStore(m[5], m[6])
	if err != nil {
		p.fail(b, types.ErrKindRecord, err)
		return
	}

	var val uint64
	if m[8] == CheckBoxEnabled {
		val = 1
	}
	s := &types.Setting{
		Type:       types.Checkbox,
		Name:       strings.TrimSpace(m[1]),
		VarStore:   store,
		VarStoreID: id,
		VarOffset:  off,
		Size:       types.WidthByte,
		Value:      val,
		HasValue:   true,
		Options: []types.Option{
			{Label: CheckBoxDisabled, Code: 0, Default: val == 0},
			{Label: CheckBoxEnabled, Code: 1, Default: val == 1},
		},
	}
	p.put(s)
}

func (p *parser) parseOneOfOption(b Block) {
	m := oneOfOptionPattern.FindStringSubmatch(b.Text)
	if m == nil {
		p.fail(b, types.ErrKindOption, types.ErrMalformedOption)
		return
	}
	if p.current == nil || p.current.Type != types.OneOf {
		p.fail(b, types.ErrKindOption, fmt.Errorf("%w: option outside a OneOf record", types.ErrMalformedOption))
		return
	}
	code, err := strconv.ParseUint(m[2], 10, 64)
	if err != nil {
		p.fail(b, types.ErrKindOption, fmt.Errorf("%w: bad code %q", types.ErrMalformedOption, m[2]))
		return
	}

	opt := types.Option{Label: strings.TrimSpace(m[1]), Code: code, Default: m[3] != ""}
	if !opt.Default && p.pendingDefault != nil && *p.pendingDefault == code {
		opt.Default = true
	}
	if opt.Default {
		// First declared default wins; vendors occasionally flag several.
		if p.current.HasValue {
			opt.Default = false
		} else {
			p.current.Value = code
			p.current.HasValue = true
		}
	}
	p.current.Options = append(p.current.Options, opt)
}

func (p *parser) parseDefault(b Block) {
	// Only the standard default store (DefaultId 0x0) resolves the current
	// value; manufacturing/safe defaults are skipped, as is a default with
	// no preceding question.
	m := defaultPattern.FindStringSubmatch(b.Text)
	if m == nil || p.current == nil {
		return
	}
	v, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		p.fail(b, types.ErrKindRecord, fmt.Errorf("%w: bad default value %q", types.ErrMalformedRecord, m[1]))
		return
	}

	switch p.current.Type {
	case types.Numeric:
		p.current.Value = v
		p.current.HasValue = true
	case types.OneOf:
		if len(p.current.Options) == 0 {
			p.pendingDefault = &v
			return
		}
		if opt := p.current.Option(v); opt != nil && !p.current.HasValue {
			opt.Default = true
			p.current.Value = v
			p.current.HasValue = true
		}
	}
}

// newSetting builds the common OneOf/Numeric core from raw submatches.
func (p *parser) newSetting(t types.SettingType, name, storeHex, offsetHex, sizeBits string) (*types.Setting, error) {
	store, id, off, err := p.resolveStore(storeHex, offsetHex)
	if err != nil {
		return nil, err
	}
	bits, err := strconv.Atoi(sizeBits)
	if err != nil {
		return nil, fmt.Errorf("%w: bad Size %q", types.ErrMalformedRecord, sizeBits)
	}
	width, err := widthFromBits(bits)
	if err != nil {
		return nil, err
	}
	return &types.Setting{
		Type:       t,
		Name:       strings.TrimSpace(name),
		VarStore:   store,
		VarStoreID: id,
		VarOffset:  off,
		Size:       width,
	}, nil
}

// resolveStore maps a record's VarStoreId through the varstore table and
// parses its offset.
func (p *parser) resolveStore(storeHex, offsetHex string) (string, uint16, uint32, error) {
	id, err := strconv.ParseUint(storeHex, 16, 16)
	if err != nil {
		return "", 0, 0, fmt.Errorf("%w: bad VarStoreId %q", types.ErrMalformedRecord, storeHex)
	}
	store, ok := p.varstores[uint16(id)]
	if !ok {
		return "", 0, 0, fmt.Errorf("%w: references unknown VarStoreId 0x%X", types.ErrMalformedRecord, id)
	}
	off, err := strconv.ParseUint(offsetHex, 16, 32)
	if err != nil {
		return "", 0, 0, fmt.Errorf("%w: bad VarOffset %q", types.ErrMalformedRecord, offsetHex)
	}
	return store, uint16(id), uint32(off), nil
}

// widthFromBits converts the record's Size field (bits) to a byte width
// setup_var can write.
func widthFromBits(bits int) (int, error) {
	if bits <= 0 || bits%BitsPerByte != 0 {
		return 0, fmt.Errorf("%w: %d bits", types.ErrUnsupportedWidth, bits)
	}
	n := bits / BitsPerByte
	if !types.SupportedWidth(n) {
		return 0, fmt.Errorf("%w: %d bytes", types.ErrUnsupportedWidth, n)
	}
	return n, nil
}

// put registers a setting, replacing an earlier definition of the same
// (varstore, offset) in place so parse order stays stable.
func (p *parser) put(s *types.Setting) {
	k := settingKey{varstore: s.VarStore, offset: s.VarOffset}
	if i, ok := p.index[k]; ok {
		p.settings[i] = s
		return
	}
	p.index[k] = len(p.settings)
	p.settings = append(p.settings, s)
}

func (p *parser) fail(b Block, kind types.ErrKind, err error) {
	p.errs = append(p.errs, types.NewRecordError(b.Line, kind, b.Text, err))
}
