// Package marc reads and writes records in the ISO 2709 exchange format used by
// UNIMARC and MARC 21 files.
//
// Lookups never panic on missing data: every accessor reports absence
// explicitly so extraction rules can be written against optional fields.
package marc

import (
	"strings"
)

const (
	subfieldDelimiter = 0x1f
	fieldTerminator   = 0x1e
	recordTerminator  = 0x1d

	leaderLength         = 24
	directoryEntryLength = 12
)

// Subfield contains a one byte code and its value.
type Subfield struct {
	Code  byte
	Value string
}

// Field is either a control field (tag below 010, Data set) or a data field
// with two indicators and a list of subfields.
type Field struct {
	Tag        string
	Indicator1 byte
	Indicator2 byte
	Data       string
	Subfields  []Subfield
}

// Record is a single bibliographic or authority record. Fields keep the
// order of the record directory.
type Record struct {
	Leader string
	fields []*Field
}

// NewRecord creates an empty record with the given leader.
func NewRecord(leader string) *Record {
	return &Record{Leader: leader}
}

// IsControlTag reports whether tag designates a control field.
func IsControlTag(tag string) bool {
	return tag < "010"
}

// AddControlField appends a control field.
func (r *Record) AddControlField(tag, data string) *Record {
	r.fields = append(r.fields, &Field{Tag: tag, Data: data})
	return r
}

// AddDataField appends a data field. Subfields are given as code/value pairs,
// e.g. AddDataField("200", ' ', ' ', "a", "Candide", "f", "Voltaire").
func (r *Record) AddDataField(tag string, ind1, ind2 byte, pairs ...string) *Record {
	f := &Field{Tag: tag, Indicator1: ind1, Indicator2: ind2}
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i] == "" {
			continue
		}
		f.Subfields = append(f.Subfields, Subfield{Code: pairs[i][0], Value: pairs[i+1]})
	}
	r.fields = append(r.fields, f)
	return r
}

// AllFields returns every field in directory order.
func (r *Record) AllFields() []*Field {
	return r.fields
}

// Field returns the first field with the given tag.
func (r *Record) Field(tag string) (*Field, bool) {
	for _, f := range r.fields {
		if f.Tag == tag {
			return f, true
		}
	}
	return nil, false
}

// Fields returns the fields matching any of the tags, in record order.
func (r *Record) Fields(tags ...string) []*Field {
	var res []*Field
	for _, f := range r.fields {
		for _, t := range tags {
			if f.Tag == t {
				res = append(res, f)
				break
			}
		}
	}
	return res
}

// Subfield returns the first code subfield of the first field tagged tag.
// Like pymarc's record[tag][code], later repetitions of the field are not
// searched.
func (r *Record) Subfield(tag string, code byte) (string, bool) {
	f, ok := r.Field(tag)
	if !ok {
		return "", false
	}
	return f.Subfield(code)
}

// ControlValue returns the data of the first control field tagged tag.
func (r *Record) ControlValue(tag string) (string, bool) {
	f, ok := r.Field(tag)
	if !ok {
		return "", false
	}
	return f.Data, true
}

// Subfield returns the first subfield with the given code.
func (f *Field) Subfield(code byte) (string, bool) {
	if f == nil {
		return "", false
	}
	for _, sf := range f.Subfields {
		if sf.Code == code {
			return sf.Value, true
		}
	}
	return "", false
}

// SubfieldValues returns every value of the given code, in order.
func (f *Field) SubfieldValues(code byte) []string {
	if f == nil {
		return nil
	}
	var res []string
	for _, sf := range f.Subfields {
		if sf.Code == code {
			res = append(res, sf.Value)
		}
	}
	return res
}

// Text returns the control data, or the subfield values joined by a space.
func (f *Field) Text() string {
	if f == nil {
		return ""
	}
	if IsControlTag(f.Tag) {
		return f.Data
	}
	values := make([]string, 0, len(f.Subfields))
	for _, sf := range f.Subfields {
		values = append(values, sf.Value)
	}
	return strings.Join(values, " ")
}

// String renders the field the way catalogue tools print it: =200  1\$aTitle$fAuthor
func (f *Field) String() string {
	var b strings.Builder
	b.WriteString("=")
	b.WriteString(f.Tag)
	b.WriteString("  ")
	if IsControlTag(f.Tag) {
		b.WriteString(f.Data)
		return b.String()
	}
	b.WriteByte(indicator(f.Indicator1))
	b.WriteByte(indicator(f.Indicator2))
	for _, sf := range f.Subfields {
		b.WriteByte('$')
		b.WriteByte(sf.Code)
		b.WriteString(sf.Value)
	}
	return b.String()
}

func indicator(b byte) byte {
	if b == ' ' || b == 0 {
		return '\\'
	}
	return b
}
