// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/bitmark-inc/specialtx/fault"
	"github.com/bitmark-inc/specialtx/util"
)

// DigestLength - number of bytes in the digest
const DigestLength = chainhash.HashSize

// Digest - type for a digest
// stored as little endian byte array
// represented as big endian hex value for print
// represented as little endian hex text for JSON encoding
// to convert to bytes just use d[:]
type Digest [DigestLength]byte

// NewDigest - create a double SHA-256 digest from a byte slice
func NewDigest(record []byte) Digest {
	return Digest(chainhash.DoubleHashH(record))
}

// IsZero - true if every byte is zero
func (digest Digest) IsZero() bool {
	return digest == Digest{}
}

// internal function to return a reversed byte order copy of a digest
func reversed(d Digest) []byte {
	result := make([]byte, DigestLength)
	for i := 0; i < DigestLength; i += 1 {
		result[i] = d[DigestLength-1-i]
	}
	return result
}

// String - convert a binary digest to hex string for use by the fmt package (for %s)
//
// the stored version is in little endian, but the output string is big endian
func (digest Digest) String() string {
	return hex.EncodeToString(reversed(digest))
}

// GoString - convert a binary digest to big endian hex string for use by the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<SHA256d:" + hex.EncodeToString(reversed(digest)) + ">"
}

// Scan - convert a big endian hex representation to a digest for use by the format package scan routines
func (digest *Digest) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}

	var buffer Digest
	if err := util.DecodeFixedHex(buffer[:], token); nil != err {
		return err
	}
	for i, v := range buffer {
		digest[DigestLength-1-i] = v
	}
	return nil
}

// MarshalText - convert digest to little endian hex text
func (digest Digest) MarshalText() ([]byte, error) {
	return util.EncodeHex(digest[:]), nil
}

// UnmarshalText - convert little endian hex text into a digest
//
// exactly 64 hex characters are required
func (digest *Digest) UnmarshalText(s []byte) error {
	return util.DecodeFixedHex(digest[:], s)
}

// DigestFromBytes - convert and validate little endian binary byte slice to a digest
func DigestFromBytes(digest *Digest, buffer []byte) error {
	if DigestLength != len(buffer) {
		return fault.ErrHexLength
	}
	copy(digest[:], buffer)
	return nil
}
