// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bytebuffer

import (
	"encoding/binary"

	"github.com/btcsuite/btcd/wire"
)

// Writer - append only mirror of Reader
type Writer struct {
	buffer []byte
}

// NewWriter - create a writer with an initial capacity hint
func NewWriter(capacity int) *Writer {
	return &Writer{
		buffer: make([]byte, 0, capacity),
	}
}

// Bytes - the accumulated buffer
func (w *Writer) Bytes() []byte {
	return w.buffer
}

// Len - number of bytes written
func (w *Writer) Len() int {
	return len(w.buffer)
}

// Write - io.Writer for the wire encoders, never fails
func (w *Writer) Write(data []byte) (int, error) {
	w.buffer = append(w.buffer, data...)
	return len(data), nil
}

// WriteUint8 - one byte
func (w *Writer) WriteUint8(value uint8) {
	w.buffer = append(w.buffer, value)
}

// WriteUint16LE - two byte little endian
func (w *Writer) WriteUint16LE(value uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], value)
	w.buffer = append(w.buffer, b[:]...)
}

// WriteUint16BE - two byte big endian
func (w *Writer) WriteUint16BE(value uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], value)
	w.buffer = append(w.buffer, b[:]...)
}

// WriteInt16LE - two byte signed little endian
func (w *Writer) WriteInt16LE(value int16) {
	w.WriteUint16LE(uint16(value))
}

// WriteUint32LE - four byte little endian
func (w *Writer) WriteUint32LE(value uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], value)
	w.buffer = append(w.buffer, b[:]...)
}

// WriteUint64LE - eight byte little endian
func (w *Writer) WriteUint64LE(value uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], value)
	w.buffer = append(w.buffer, b[:]...)
}

// WriteInt64LE - eight byte signed little endian
func (w *Writer) WriteInt64LE(value int64) {
	w.WriteUint64LE(uint64(value))
}

// WriteFixedBytes - raw bytes with no length prefix
func (w *Writer) WriteFixedBytes(data []byte) {
	w.buffer = append(w.buffer, data...)
}

// WriteCompactSize - canonical CompactSize integer
func (w *Writer) WriteCompactSize(value uint64) {
	_ = wire.WriteVarInt(w, wire.ProtocolVersion, value)
}

// WriteVarBytes - CompactSize length followed by the bytes
func (w *Writer) WriteVarBytes(data []byte) {
	_ = wire.WriteVarBytes(w, wire.ProtocolVersion, data)
}
