package marc

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrMalformedRecord is returned when a record cannot be decoded. The
	// reader stays usable, the next call to Next moves past the bad record.
	ErrMalformedRecord = errors.New("malformed marc record")
)

const maxRecordSize = 1 << 20

// Reader enumerates the records of an ISO 2709 stream.
//
//	rd := marc.NewReader(f)
//	for rd.Next() {
//		rec, err := rd.Record()
//		...
//	}
//	err := rd.Err()
type Reader struct {
	scanner *bufio.Scanner
	current []byte
}

// NewReader creates a new Reader on r.
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxRecordSize)
	scanner.Split(splitRecords)
	return &Reader{scanner: scanner}
}

// Next advances to the next record. It returns false at the end of the
// stream or on a read error, see Err.
func (r *Reader) Next() bool {
	for r.scanner.Scan() {
		// records are sometimes separated by line breaks
		token := bytes.TrimLeft(r.scanner.Bytes(), "\r\n\t ")
		if len(token) == 0 {
			continue
		}
		r.current = token
		return true
	}
	r.current = nil
	return false
}

// Record decodes the current record.
func (r *Reader) Record() (*Record, error) {
	if r.current == nil {
		return nil, fmt.Errorf("%w: no current record", ErrMalformedRecord)
	}
	return Decode(r.current)
}

// Err returns the first read error encountered by the Reader.
func (r *Reader) Err() error {
	return r.scanner.Err()
}

func splitRecords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, recordTerminator); i >= 0 {
		return i + 1, data[0:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Decode parses one record, with or without its record terminator.
func Decode(data []byte) (*Record, error) {
	data = bytes.TrimSuffix(data, []byte{recordTerminator})
	if len(data) < leaderLength+1 {
		return nil, fmt.Errorf("%w: %d bytes is shorter than a leader", ErrMalformedRecord, len(data))
	}

	base, ok := number(data[12:17])
	if !ok {
		return nil, fmt.Errorf("%w: invalid base address %q", ErrMalformedRecord, data[12:17])
	}
	if base <= leaderLength || base > len(data) {
		return nil, fmt.Errorf("%w: base address %d out of range", ErrMalformedRecord, base)
	}

	rec := &Record{Leader: string(data[:leaderLength])}
	directory := bytes.TrimSuffix(data[leaderLength:base], []byte{fieldTerminator})
	if len(directory)%directoryEntryLength != 0 {
		return nil, fmt.Errorf("%w: directory length %d", ErrMalformedRecord, len(directory))
	}

	for o := 0; o < len(directory); o += directoryEntryLength {
		entry := directory[o : o+directoryEntryLength]
		tag := string(entry[0:3])
		length, ok := number(entry[3:7])
		if !ok {
			return nil, fmt.Errorf("%w: field %s length %q", ErrMalformedRecord, tag, entry[3:7])
		}
		offset, ok := number(entry[7:12])
		if !ok {
			return nil, fmt.Errorf("%w: field %s offset %q", ErrMalformedRecord, tag, entry[7:12])
		}
		start, end := base+offset, base+offset+length
		if length < 1 || end > len(data) {
			return nil, fmt.Errorf("%w: field %s overflows record", ErrMalformedRecord, tag)
		}
		rec.fields = append(rec.fields, decodeField(tag, data[start:end]))
	}

	return rec, nil
}

// number parses a fixed width leader or directory column. Only ASCII digits
// are accepted.
func number(b []byte) (int, bool) {
	if len(b) == 0 {
		return 0, false
	}
	n := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

func decodeField(tag string, raw []byte) *Field {
	raw = bytes.TrimSuffix(raw, []byte{fieldTerminator})
	fld := &Field{Tag: tag}
	if IsControlTag(tag) {
		fld.Data = string(raw)
		return fld
	}

	parts := bytes.Split(raw, []byte{subfieldDelimiter})
	fld.Indicator1, fld.Indicator2 = ' ', ' '
	if ind := parts[0]; len(ind) > 0 {
		fld.Indicator1 = ind[0]
		if len(ind) > 1 {
			fld.Indicator2 = ind[1]
		}
	}
	for _, sf := range parts[1:] {
		if len(sf) == 0 {
			continue
		}
		fld.Subfields = append(fld.Subfields, Subfield{Code: sf[0], Value: string(sf[1:])})
	}
	return fld
}
