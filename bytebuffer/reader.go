// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bytebuffer

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/btcsuite/btcd/wire"

	"github.com/bitmark-inc/specialtx/fault"
)

// Reader - sequential cursor over a byte slice
//
// a failed read leaves the cursor where it was
type Reader struct {
	buffer []byte
	offset int
}

// NewReader - create a reader positioned at the start of buffer
func NewReader(buffer []byte) *Reader {
	return &Reader{
		buffer: buffer,
		offset: 0,
	}
}

// Offset - number of bytes consumed so far
func (r *Reader) Offset() int {
	return r.offset
}

// Remaining - number of bytes not yet consumed
func (r *Reader) Remaining() int {
	return len(r.buffer) - r.offset
}

// Finish - succeeds only if every byte has been consumed
func (r *Reader) Finish() error {
	if 0 != r.Remaining() {
		return fault.ErrTrailingBytes
	}
	return nil
}

// take the next n bytes without copying
func (r *Reader) next(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, fault.ErrOutOfBounds
	}
	b := r.buffer[r.offset : r.offset+n]
	r.offset += n
	return b, nil
}

// ReadUint8 - one byte
func (r *Reader) ReadUint8() (uint8, error) {
	b, err := r.next(1)
	if nil != err {
		return 0, err
	}
	return b[0], nil
}

// ReadUint16LE - two byte little endian
func (r *Reader) ReadUint16LE() (uint16, error) {
	b, err := r.next(2)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadUint16BE - two byte big endian, as used for network ports
func (r *Reader) ReadUint16BE() (uint16, error) {
	b, err := r.next(2)
	if nil != err {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// ReadInt16LE - two byte signed little endian
func (r *Reader) ReadInt16LE() (int16, error) {
	v, err := r.ReadUint16LE()
	return int16(v), err
}

// ReadUint32LE - four byte little endian
func (r *Reader) ReadUint32LE() (uint32, error) {
	b, err := r.next(4)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadUint64LE - eight byte little endian
func (r *Reader) ReadUint64LE() (uint64, error) {
	b, err := r.next(8)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadInt64LE - eight byte signed little endian
func (r *Reader) ReadInt64LE() (int64, error) {
	v, err := r.ReadUint64LE()
	return int64(v), err
}

// ReadFixedBytes - exactly n bytes, returned as a copy
func (r *Reader) ReadFixedBytes(n int) ([]byte, error) {
	b, err := r.next(n)
	if nil != err {
		return nil, err
	}
	result := make([]byte, n)
	copy(result, b)
	return result, nil
}

// ReadInto - fill dst completely, as used for fixed width arrays
func (r *Reader) ReadInto(dst []byte) error {
	b, err := r.next(len(dst))
	if nil != err {
		return err
	}
	copy(dst, b)
	return nil
}

// ReadCompactSize - a canonical CompactSize integer
func (r *Reader) ReadCompactSize() (uint64, error) {
	source := bytes.NewReader(r.buffer[r.offset:])
	value, err := wire.ReadVarInt(source, wire.ProtocolVersion)
	if nil != err {
		return 0, compactSizeError(err)
	}
	r.offset += int(source.Size()) - source.Len()
	return value, nil
}

// map wire errors onto the fault classes
func compactSizeError(err error) error {
	if _, ok := err.(*wire.MessageError); ok {
		return fault.ErrNonCanonicalCompactSize
	}
	if io.EOF == err || io.ErrUnexpectedEOF == err {
		return fault.ErrOutOfBounds
	}
	return err
}

// ReadVarBytes - CompactSize length followed by that many bytes
//
// a length that cannot fit in the remaining buffer is malformed
// rather than short: the prefix itself was fully present
func (r *Reader) ReadVarBytes() ([]byte, error) {
	start := r.offset
	length, err := r.ReadCompactSize()
	if nil != err {
		return nil, err
	}
	if length > uint64(r.Remaining()) {
		r.offset = start
		return nil, fault.ErrLengthExceedsBuffer
	}
	return r.ReadFixedBytes(int(length))
}
