// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifoq

import (
	"encoding/binary"
	"math"
)

// Wire format: each frame is a 4-byte unsigned big-endian length N
// followed by exactly N payload bytes. No header, version or checksum.
const (
	// HeaderSize is the length prefix size in bytes.
	HeaderSize = 4
	// MaxPayload is the largest payload a frame can carry.
	MaxPayload = math.MaxUint32
)

// AppendFrame appends the frame for payload to dst and returns the
// extended slice. It panics if payload is longer than MaxPayload.
func AppendFrame(dst, payload []byte) []byte {
	if uint64(len(payload)) > MaxPayload {
		panic("fifoq: message too long")
	}
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(payload)))
	return append(dst, payload...)
}

// DecodeLength returns the payload length declared by a frame header.
// hdr must hold at least HeaderSize bytes.
func DecodeLength(hdr []byte) uint32 {
	return binary.BigEndian.Uint32(hdr)
}
