package queue

import (
	"encoding/binary"
	"hash/crc32"
)

// Item record: version(1B) | message | crc32c(version|message)

const recordVersion = 0x01

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

func encodeRecord(message string) []byte {
	out := make([]byte, 0, 1+len(message)+4)
	out = append(out, recordVersion)
	out = append(out, message...)
	crc := crc32.Update(0, castagnoli, out)
	var cb [4]byte
	binary.BigEndian.PutUint32(cb[:], crc)
	return append(out, cb[:]...)
}

func decodeRecord(b []byte) (string, bool) {
	if len(b) < 5 {
		return "", false
	}
	body := b[:len(b)-4]
	expect := binary.BigEndian.Uint32(b[len(b)-4:])
	if crc32.Update(0, castagnoli, body) != expect {
		return "", false
	}
	if body[0] != recordVersion {
		return "", false
	}
	return string(body[1:]), true
}
