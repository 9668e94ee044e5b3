// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payloadrecord

import (
	"github.com/btcsuite/btcd/wire"

	"github.com/bitmark-inc/specialtx/bls"
	"github.com/bitmark-inc/specialtx/bytebuffer"
	"github.com/bitmark-inc/specialtx/fault"
	"github.com/bitmark-inc/specialtx/merkle"
)

// BLSSigned - a payload signed by a masternode operator BLS key
type BLSSigned interface {
	Payload
	SignHash() merkle.Digest
	Signature() bls.Signature
}

// SignHash - digest of the packed payload without its signature
func (register *ProRegTx) SignHash() merkle.Digest {
	return merkle.NewDigest(register.unsigned().Bytes())
}

// SignHash - digest of the packed payload without its signature
func (update *ProUpServTx) SignHash() merkle.Digest {
	return merkle.NewDigest(update.unsigned().Bytes())
}

// SignHash - digest of the packed payload without its signature
func (update *ProUpRegTx) SignHash() merkle.Digest {
	return merkle.NewDigest(update.unsigned().Bytes())
}

// SignHash - digest of the packed payload without its signature
func (revoke *ProUpRevTx) SignHash() merkle.Digest {
	return merkle.NewDigest(revoke.unsigned().Bytes())
}

// Signature - the operator signature
func (update *ProUpServTx) Signature() bls.Signature { return update.PayloadSig }
func (revoke *ProUpRevTx) Signature() bls.Signature  { return revoke.PayloadSig }

// CheckSignature - structural validation followed by BLS verification
//
// the payload must be valid under the rules before the verifier is
// consulted; any verifier error is reported as a verification failure
func CheckSignature(p BLSSigned, rules *Rules, publicKey bls.PublicKey, verifier bls.Verifier) error {
	if isNil(p) {
		return fault.ErrNilPayload
	}
	if nil == verifier {
		return fault.ErrNilVerifier
	}
	if err := p.Validate(rules).Err(); nil != err {
		return err
	}
	if err := verifier.Verify(publicKey, p.SignHash(), p.Signature()); nil != err {
		return fault.ErrSignatureVerification
	}
	return nil
}

// prefix of the hard fork signal request id
const mnHfRequestIDPrefix = "mnhf"

// RequestID - the id the signing quorum used for this version bit
//
// double SHA-256 of the length prefixed string "mnhf" and the
// version bit as a little endian int64
func (signal *MnHfSignal) RequestID() merkle.Digest {
	size := wire.VarIntSerializeSize(uint64(len(mnHfRequestIDPrefix))) + len(mnHfRequestIDPrefix) + 8
	message := bytebuffer.NewWriter(size)
	message.WriteVarBytes([]byte(mnHfRequestIDPrefix))
	message.WriteInt64LE(int64(signal.Signal.VersionBit))
	return merkle.NewDigest(message.Bytes())
}
