package marc

import (
	"bytes"
	"fmt"
)

const defaultLeader = "     nam  22        450 "

// Encode serializes a record to ISO 2709, computing lengths, base address
// and directory. Leader positions 0-4, 10-16 and 20-23 are overwritten.
func Encode(r *Record) []byte {
	var directory, body bytes.Buffer
	for _, f := range r.fields {
		start := body.Len()
		if IsControlTag(f.Tag) {
			body.WriteString(f.Data)
		} else {
			body.WriteByte(orBlank(f.Indicator1))
			body.WriteByte(orBlank(f.Indicator2))
			for _, sf := range f.Subfields {
				body.WriteByte(subfieldDelimiter)
				body.WriteByte(sf.Code)
				body.WriteString(sf.Value)
			}
		}
		body.WriteByte(fieldTerminator)
		fmt.Fprintf(&directory, "%3.3s%04d%05d", f.Tag, body.Len()-start, start)
	}
	directory.WriteByte(fieldTerminator)

	base := leaderLength + directory.Len()
	total := base + body.Len() + 1

	leader := []byte(defaultLeader)
	copy(leader, r.Leader)
	copy(leader[0:5], fmt.Sprintf("%05d", total))
	copy(leader[10:17], fmt.Sprintf("22%05d", base))
	copy(leader[20:24], "4500")

	out := make([]byte, 0, total)
	out = append(out, leader...)
	out = append(out, directory.Bytes()...)
	out = append(out, body.Bytes()...)
	return append(out, recordTerminator)
}

func orBlank(b byte) byte {
	if b == 0 {
		return ' '
	}
	return b
}
