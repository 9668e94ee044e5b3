// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bls

import (
	"encoding/hex"

	"github.com/bitmark-inc/specialtx/merkle"
	"github.com/bitmark-inc/specialtx/util"
)

// byte sizes of the serialised forms
const (
	SignatureLength = 96
	PublicKeyLength = 48
)

// Signature - compressed G2 point
type Signature [SignatureLength]byte

// PublicKey - compressed G1 point
type PublicKey [PublicKeyLength]byte

// Verifier - checks a signature over a 32 byte message hash
//
// a nil return means the signature is good
type Verifier interface {
	Verify(publicKey PublicKey, hash merkle.Digest, signature Signature) error
}

// IsZero - true for an all zero signature
func (signature Signature) IsZero() bool {
	return signature == Signature{}
}

// String - hex form for the fmt package
func (signature Signature) String() string {
	return hex.EncodeToString(signature[:])
}

// MarshalText - 192 lowercase hex characters
func (signature Signature) MarshalText() ([]byte, error) {
	return util.EncodeHex(signature[:]), nil
}

// UnmarshalText - exactly 192 hex characters
func (signature *Signature) UnmarshalText(s []byte) error {
	return util.DecodeFixedHex(signature[:], s)
}

// IsZero - true for an all zero key
func (publicKey PublicKey) IsZero() bool {
	return publicKey == PublicKey{}
}

// String - hex form for the fmt package
func (publicKey PublicKey) String() string {
	return hex.EncodeToString(publicKey[:])
}

// MarshalText - 96 lowercase hex characters
func (publicKey PublicKey) MarshalText() ([]byte, error) {
	return util.EncodeHex(publicKey[:]), nil
}

// UnmarshalText - exactly 96 hex characters
func (publicKey *PublicKey) UnmarshalText(s []byte) error {
	return util.DecodeFixedHex(publicKey[:], s)
}
