// File: notify/record.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Completion record wire codec. The side channel carries a sequence of
// independent fixed-size records, no framing beyond the record size.

package notify

import (
	"encoding/binary"

	"github.com/momentics/hioload-fs/api"
)

// RecordSize is the fixed length of one completion record.
const RecordSize = 4

// EncodeRecord produces the big-endian wire form of a completion signal.
// Only the low 32 bits of the request id survive the encoding.
func EncodeRecord(id api.RequestID) [RecordSize]byte {
	var rec [RecordSize]byte
	binary.BigEndian.PutUint32(rec[:], id.Wire())
	return rec
}

// DecodeRecord parses one completion record as read by a host.
func DecodeRecord(b []byte) (api.RequestID, error) {
	if len(b) < RecordSize {
		return 0, api.ErrInvalidArgument
	}
	return api.RequestID(binary.BigEndian.Uint32(b[:RecordSize])), nil
}
