// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"bytes"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/mr-tron/base58/base58"

	"github.com/bitmark-inc/specialtx/chain"
	"github.com/bitmark-inc/specialtx/fault"
)

// Version - the leading byte of an address
type Version byte

// address prefixes
const (
	Livenet       Version = 76  // X...
	LivenetScript Version = 16  // 7...
	Testnet       Version = 140 // y...
	TestnetScript Version = 19  // 8...
)

// miscellaneous constants
const (
	HashLength     = 20
	checksumLength = 4
	addressLength  = 1 + HashLength + checksumLength
)

// script opcodes of the two recognised payout forms
const (
	opDup         = 0x76
	opHash160     = 0xa9
	opData20      = 0x14
	opEqual       = 0x87
	opEqualVerify = 0x88
	opCheckSig    = 0xac
)

// versions for a chain: key hash then script hash
func versions(parameters chain.Parameters) (Version, Version) {
	if parameters.Testing {
		return Testnet, TestnetScript
	}
	return Livenet, LivenetScript
}

// FromKeyID - the pay to key hash address of a 20 byte key id
func FromKeyID(parameters chain.Parameters, keyID []byte) (string, error) {
	if HashLength != len(keyID) {
		return "", fault.ErrInvalidAddress
	}
	keyHash, _ := versions(parameters)
	return encode(keyHash, keyID), nil
}

// FromScript - the address a standard payout script pays to
//
// only pay to key hash and pay to script hash are recognised, any
// other script has no address
func FromScript(parameters chain.Parameters, script []byte) (string, bool) {
	keyHash, scriptHash := versions(parameters)

	switch {
	case 25 == len(script) &&
		opDup == script[0] && opHash160 == script[1] && opData20 == script[2] &&
		opEqualVerify == script[23] && opCheckSig == script[24]:
		return encode(keyHash, script[3:23]), true

	case 23 == len(script) &&
		opHash160 == script[0] && opData20 == script[1] && opEqual == script[22]:
		return encode(scriptHash, script[2:22]), true

	default:
		return "", false
	}
}

// Validate - check an address and return its version and hash
func Validate(address string) (Version, []byte, error) {
	addr, err := base58.Decode(address)
	if nil != err || addressLength != len(addr) {
		return 0, nil, fault.ErrInvalidAddress
	}

	checksumStart := addressLength - checksumLength
	checksum := chainhash.DoubleHashB(addr[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], addr[checksumStart:]) {
		return 0, nil, fault.ErrInvalidAddress
	}

	switch v := Version(addr[0]); v {
	case Livenet, LivenetScript, Testnet, TestnetScript:
		return v, addr[1:checksumStart], nil
	default:
		return 0, nil, fault.ErrInvalidAddress
	}
}

// version, hash and the first bytes of its double SHA-256
func encode(version Version, hash []byte) string {
	buffer := make([]byte, 0, addressLength)
	buffer = append(buffer, byte(version))
	buffer = append(buffer, hash...)
	checksum := chainhash.DoubleHashB(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}
