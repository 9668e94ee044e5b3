// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/hex"

	"github.com/bitmark-inc/specialtx/fault"
)

// DecodeFixedHex - decode hex text into exactly len(dst) bytes
//
// dst is only modified on success
func DecodeFixedHex(dst []byte, text []byte) error {
	if len(text) != hex.EncodedLen(len(dst)) {
		return fault.ErrHexLength
	}
	buffer := make([]byte, len(dst))
	if _, err := hex.Decode(buffer, text); nil != err {
		return fault.ErrHexCharacter
	}
	copy(dst, buffer)
	return nil
}

// DecodeVariableHex - decode hex text of any even length
func DecodeVariableHex(text []byte) ([]byte, error) {
	if 1 == len(text)%2 {
		return nil, fault.ErrHexLength
	}
	buffer := make([]byte, hex.DecodedLen(len(text)))
	if _, err := hex.Decode(buffer, text); nil != err {
		return nil, fault.ErrHexCharacter
	}
	return buffer, nil
}

// EncodeHex - lowercase hex text of data
func EncodeHex(data []byte) []byte {
	buffer := make([]byte, hex.EncodedLen(len(data)))
	hex.Encode(buffer, data)
	return buffer
}
