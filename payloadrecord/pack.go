// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payloadrecord

import (
	"github.com/bitmark-inc/specialtx/bls"
	"github.com/bitmark-inc/specialtx/bytebuffer"
	"github.com/bitmark-inc/specialtx/fault"
	"github.com/bitmark-inc/specialtx/merkle"
)

// fixed part of an MnHfSignal: version, versionBit, quorumHash, sig
const mnHfSignalLength = 2 + 2 + merkle.DigestLength + bls.SignatureLength

// pack MnHfSignal
//
// Pack fields in order as struct above, nothing is length prefixed
func (signal *MnHfSignal) Pack() (Packed, error) {
	message := bytebuffer.NewWriter(mnHfSignalLength)
	message.WriteUint16LE(signal.Version)
	message.WriteUint16LE(signal.Signal.VersionBit)
	message.WriteFixedBytes(signal.Signal.QuorumHash[:])
	message.WriteFixedBytes(signal.Signal.Sig[:])
	return message.Bytes(), nil
}

// pack ProRegTx
//
// Pack fields in order as struct above with signature last; the
// platform fields are only present for an evo masternode from
// version 2
func (register *ProRegTx) Pack() (Packed, error) {
	message := register.unsigned()
	message.WriteVarBytes(register.PayloadSig)
	return message.Bytes(), nil
}

// everything before the signature
func (register *ProRegTx) unsigned() *bytebuffer.Writer {
	message := bytebuffer.NewWriter(256)
	message.WriteUint16LE(register.Version)
	message.WriteUint16LE(uint16(register.MNType))
	message.WriteUint16LE(register.Mode)
	message.WriteFixedBytes(register.CollateralHash[:])
	message.WriteUint32LE(register.CollateralIndex)
	appendService(message, register.Service)
	message.WriteFixedBytes(register.KeyIDOwner[:])
	message.WriteFixedBytes(register.PubKeyOperator[:])
	message.WriteFixedBytes(register.KeyIDVoting[:])
	message.WriteUint16LE(register.OperatorReward)
	message.WriteVarBytes(register.ScriptPayout)
	message.WriteFixedBytes(register.InputsHash[:])
	if hasPlatformFields(register.Version, register.MNType) {
		message.WriteFixedBytes(register.PlatformNodeID[:])
		message.WriteUint16LE(register.PlatformP2PPort)
		message.WriteUint16LE(register.PlatformHTTPPort)
	}
	return message
}

// pack ProUpServTx
//
// Pack fields in order as struct above with signature last; type is
// only present from version 2
func (update *ProUpServTx) Pack() (Packed, error) {
	message := update.unsigned()
	message.WriteFixedBytes(update.PayloadSig[:])
	return message.Bytes(), nil
}

func (update *ProUpServTx) unsigned() *bytebuffer.Writer {
	message := bytebuffer.NewWriter(256)
	message.WriteUint16LE(update.Version)
	if update.Version >= 2 {
		message.WriteUint16LE(uint16(update.MNType))
	}
	message.WriteFixedBytes(update.ProTxHash[:])
	appendService(message, update.Service)
	message.WriteVarBytes(update.ScriptOperatorPayout)
	message.WriteFixedBytes(update.InputsHash[:])
	if hasPlatformFields(update.Version, update.MNType) {
		message.WriteFixedBytes(update.PlatformNodeID[:])
		message.WriteUint16LE(update.PlatformP2PPort)
		message.WriteUint16LE(update.PlatformHTTPPort)
	}
	return message
}

// pack ProUpRegTx
//
// Pack fields in order as struct above with signature last
func (update *ProUpRegTx) Pack() (Packed, error) {
	message := update.unsigned()
	message.WriteVarBytes(update.PayloadSig)
	return message.Bytes(), nil
}

func (update *ProUpRegTx) unsigned() *bytebuffer.Writer {
	message := bytebuffer.NewWriter(192)
	message.WriteUint16LE(update.Version)
	message.WriteFixedBytes(update.ProTxHash[:])
	message.WriteUint16LE(update.Mode)
	message.WriteFixedBytes(update.PubKeyOperator[:])
	message.WriteFixedBytes(update.KeyIDVoting[:])
	message.WriteVarBytes(update.ScriptPayout)
	message.WriteFixedBytes(update.InputsHash[:])
	return message
}

// pack ProUpRevTx
//
// Pack fields in order as struct above with signature last
func (revoke *ProUpRevTx) Pack() (Packed, error) {
	message := revoke.unsigned()
	message.WriteFixedBytes(revoke.PayloadSig[:])
	return message.Bytes(), nil
}

func (revoke *ProUpRevTx) unsigned() *bytebuffer.Writer {
	message := bytebuffer.NewWriter(2 + 32 + 2 + 32 + bls.SignatureLength)
	message.WriteUint16LE(revoke.Version)
	message.WriteFixedBytes(revoke.ProTxHash[:])
	message.WriteUint16LE(revoke.Reason)
	message.WriteFixedBytes(revoke.InputsHash[:])
	return message
}

// pack Coinbase
//
// Pack fields in order as struct above, later versions append fields
func (coinbase *Coinbase) Pack() (Packed, error) {
	message := bytebuffer.NewWriter(256)
	message.WriteUint16LE(coinbase.Version)
	message.WriteUint32LE(coinbase.Height)
	message.WriteFixedBytes(coinbase.MerkleRootMNList[:])
	if coinbase.Version >= 2 {
		message.WriteFixedBytes(coinbase.MerkleRootQuorums[:])
	}
	if coinbase.Version >= 3 {
		message.WriteCompactSize(uint64(coinbase.BestCLHeightDiff))
		message.WriteFixedBytes(coinbase.BestCLSignature[:])
		message.WriteInt64LE(coinbase.CreditPoolBalance)
	}
	return message.Bytes(), nil
}

// pack QuorumCommitment
//
// the bit sets are written as CompactSize(bit count) followed by the
// bytes, so their data must match their declared sizes
func (commitment *QuorumCommitment) Pack() (Packed, error) {
	c := &commitment.Commitment
	if bitSetBytes(c.SignersSize) != len(c.Signers) || bitSetBytes(c.ValidMembersSize) != len(c.ValidMembers) {
		return nil, fault.ErrBitSetSize
	}

	message := bytebuffer.NewWriter(512)
	message.WriteUint16LE(commitment.Version)
	message.WriteUint32LE(commitment.Height)

	message.WriteUint16LE(c.Version)
	message.WriteUint8(c.LLMQType)
	message.WriteFixedBytes(c.QuorumHash[:])
	if isIndexedCommitment(c.Version) {
		message.WriteInt16LE(c.QuorumIndex)
	}
	message.WriteCompactSize(uint64(c.SignersSize))
	message.WriteFixedBytes(c.Signers)
	message.WriteCompactSize(uint64(c.ValidMembersSize))
	message.WriteFixedBytes(c.ValidMembers)
	message.WriteFixedBytes(c.QuorumPublicKey[:])
	message.WriteFixedBytes(c.QuorumVvecHash[:])
	message.WriteFixedBytes(c.QuorumSig[:])
	message.WriteFixedBytes(c.MembersSig[:])
	return message.Bytes(), nil
}

// pack AssetLock
//
// Pack version then CompactSize(count) and each output
func (lock *AssetLock) Pack() (Packed, error) {
	message := bytebuffer.NewWriter(64)
	message.WriteUint16LE(lock.Version)
	message.WriteCompactSize(uint64(len(lock.CreditOutputs)))
	for _, output := range lock.CreditOutputs {
		message.WriteInt64LE(output.Satoshis)
		message.WriteVarBytes(output.Script)
	}
	return message.Bytes(), nil
}

// pack AssetUnlock
//
// Pack fields in order as struct above
func (unlock *AssetUnlock) Pack() (Packed, error) {
	message := bytebuffer.NewWriter(2 + 8 + 4 + 4 + merkle.DigestLength + bls.SignatureLength)
	message.WriteUint16LE(unlock.Version)
	message.WriteUint64LE(unlock.Index)
	message.WriteUint32LE(unlock.Fee)
	message.WriteUint32LE(unlock.RequestedHeight)
	message.WriteFixedBytes(unlock.QuorumHash[:])
	message.WriteFixedBytes(unlock.QuorumSig[:])
	return message.Bytes(), nil
}

// MarshalBinary - same as Pack
func (signal *MnHfSignal) MarshalBinary() ([]byte, error)           { return signal.Pack() }
func (register *ProRegTx) MarshalBinary() ([]byte, error)           { return register.Pack() }
func (update *ProUpServTx) MarshalBinary() ([]byte, error)          { return update.Pack() }
func (update *ProUpRegTx) MarshalBinary() ([]byte, error)           { return update.Pack() }
func (revoke *ProUpRevTx) MarshalBinary() ([]byte, error)           { return revoke.Pack() }
func (coinbase *Coinbase) MarshalBinary() ([]byte, error)           { return coinbase.Pack() }
func (commitment *QuorumCommitment) MarshalBinary() ([]byte, error) { return commitment.Pack() }
func (lock *AssetLock) MarshalBinary() ([]byte, error)              { return lock.Pack() }
func (unlock *AssetUnlock) MarshalBinary() ([]byte, error)          { return unlock.Pack() }

// append a service address: IPv6 bytes then big endian port
func appendService(message *bytebuffer.Writer, service Service) {
	message.WriteFixedBytes(service.IP[:])
	message.WriteUint16BE(service.Port)
}

// evo masternodes carry platform fields from version 2
func hasPlatformFields(version uint16, mnType MasternodeType) bool {
	return version >= 2 && EvoMasternode == mnType
}

// commitment versions 2 and 4 carry a quorum index
func isIndexedCommitment(version uint16) bool {
	return 2 == version || 4 == version
}

// number of bytes needed to hold size bits
func bitSetBytes(size uint32) int {
	return int((uint64(size) + 7) / 8)
}
