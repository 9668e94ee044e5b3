// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payloadrecord

import (
	"math"

	"github.com/bitmark-inc/specialtx/bytebuffer"
	"github.com/bitmark-inc/specialtx/fault"
)

// Unpack - turn a byte slice into a payload of the given type
//
// the whole record must be consumed; must cast result to correct type
//
// e.g.
//   switch p := result.(type) {
//   case *payloadrecord.MnHfSignal:
func Unpack(tag TagType, record Packed) (Payload, error) {
	p, err := New(tag)
	if nil != err {
		return nil, err
	}
	if err := p.UnmarshalBinary(record); nil != err {
		return nil, err
	}
	return p, nil
}

// each UnmarshalBinary decodes into a local value and only assigns
// the receiver once the entire record has been accepted

// UnmarshalBinary - fixed layout, exactly mnHfSignalLength bytes
func (signal *MnHfSignal) UnmarshalBinary(record []byte) error {
	var r MnHfSignal
	var err error
	b := bytebuffer.NewReader(record)

	if r.Version, err = b.ReadUint16LE(); nil != err {
		return err
	}
	if r.Signal.VersionBit, err = b.ReadUint16LE(); nil != err {
		return err
	}
	if err = b.ReadInto(r.Signal.QuorumHash[:]); nil != err {
		return err
	}
	if err = b.ReadInto(r.Signal.Sig[:]); nil != err {
		return err
	}
	if err = b.Finish(); nil != err {
		return err
	}
	*signal = r
	return nil
}

// UnmarshalBinary - see Pack for the layout
func (register *ProRegTx) UnmarshalBinary(record []byte) error {
	var r ProRegTx
	var err error
	b := bytebuffer.NewReader(record)

	if r.Version, err = b.ReadUint16LE(); nil != err {
		return err
	}
	mnType, err := b.ReadUint16LE()
	if nil != err {
		return err
	}
	r.MNType = MasternodeType(mnType)
	if r.Mode, err = b.ReadUint16LE(); nil != err {
		return err
	}
	if err = b.ReadInto(r.CollateralHash[:]); nil != err {
		return err
	}
	if r.CollateralIndex, err = b.ReadUint32LE(); nil != err {
		return err
	}
	if r.Service, err = readService(b); nil != err {
		return err
	}
	if err = b.ReadInto(r.KeyIDOwner[:]); nil != err {
		return err
	}
	if err = b.ReadInto(r.PubKeyOperator[:]); nil != err {
		return err
	}
	if err = b.ReadInto(r.KeyIDVoting[:]); nil != err {
		return err
	}
	if r.OperatorReward, err = b.ReadUint16LE(); nil != err {
		return err
	}
	if r.ScriptPayout, err = readHexBytes(b); nil != err {
		return err
	}
	if err = b.ReadInto(r.InputsHash[:]); nil != err {
		return err
	}
	if hasPlatformFields(r.Version, r.MNType) {
		if err = b.ReadInto(r.PlatformNodeID[:]); nil != err {
			return err
		}
		if r.PlatformP2PPort, err = b.ReadUint16LE(); nil != err {
			return err
		}
		if r.PlatformHTTPPort, err = b.ReadUint16LE(); nil != err {
			return err
		}
	}

	// signature is remainder of record
	if r.PayloadSig, err = readHexBytes(b); nil != err {
		return err
	}
	if err = b.Finish(); nil != err {
		return err
	}
	*register = r
	return nil
}

// UnmarshalBinary - see Pack for the layout
func (update *ProUpServTx) UnmarshalBinary(record []byte) error {
	var r ProUpServTx
	var err error
	b := bytebuffer.NewReader(record)

	if r.Version, err = b.ReadUint16LE(); nil != err {
		return err
	}
	if r.Version >= 2 {
		mnType, err := b.ReadUint16LE()
		if nil != err {
			return err
		}
		r.MNType = MasternodeType(mnType)
	}
	if err = b.ReadInto(r.ProTxHash[:]); nil != err {
		return err
	}
	if r.Service, err = readService(b); nil != err {
		return err
	}
	if r.ScriptOperatorPayout, err = readHexBytes(b); nil != err {
		return err
	}
	if err = b.ReadInto(r.InputsHash[:]); nil != err {
		return err
	}
	if hasPlatformFields(r.Version, r.MNType) {
		if err = b.ReadInto(r.PlatformNodeID[:]); nil != err {
			return err
		}
		if r.PlatformP2PPort, err = b.ReadUint16LE(); nil != err {
			return err
		}
		if r.PlatformHTTPPort, err = b.ReadUint16LE(); nil != err {
			return err
		}
	}
	if err = b.ReadInto(r.PayloadSig[:]); nil != err {
		return err
	}
	if err = b.Finish(); nil != err {
		return err
	}
	*update = r
	return nil
}

// UnmarshalBinary - see Pack for the layout
func (update *ProUpRegTx) UnmarshalBinary(record []byte) error {
	var r ProUpRegTx
	var err error
	b := bytebuffer.NewReader(record)

	if r.Version, err = b.ReadUint16LE(); nil != err {
		return err
	}
	if err = b.ReadInto(r.ProTxHash[:]); nil != err {
		return err
	}
	if r.Mode, err = b.ReadUint16LE(); nil != err {
		return err
	}
	if err = b.ReadInto(r.PubKeyOperator[:]); nil != err {
		return err
	}
	if err = b.ReadInto(r.KeyIDVoting[:]); nil != err {
		return err
	}
	if r.ScriptPayout, err = readHexBytes(b); nil != err {
		return err
	}
	if err = b.ReadInto(r.InputsHash[:]); nil != err {
		return err
	}
	if r.PayloadSig, err = readHexBytes(b); nil != err {
		return err
	}
	if err = b.Finish(); nil != err {
		return err
	}
	*update = r
	return nil
}

// UnmarshalBinary - see Pack for the layout
func (revoke *ProUpRevTx) UnmarshalBinary(record []byte) error {
	var r ProUpRevTx
	var err error
	b := bytebuffer.NewReader(record)

	if r.Version, err = b.ReadUint16LE(); nil != err {
		return err
	}
	if err = b.ReadInto(r.ProTxHash[:]); nil != err {
		return err
	}
	if r.Reason, err = b.ReadUint16LE(); nil != err {
		return err
	}
	if err = b.ReadInto(r.InputsHash[:]); nil != err {
		return err
	}
	if err = b.ReadInto(r.PayloadSig[:]); nil != err {
		return err
	}
	if err = b.Finish(); nil != err {
		return err
	}
	*revoke = r
	return nil
}

// UnmarshalBinary - see Pack for the layout
func (coinbase *Coinbase) UnmarshalBinary(record []byte) error {
	var r Coinbase
	var err error
	b := bytebuffer.NewReader(record)

	if r.Version, err = b.ReadUint16LE(); nil != err {
		return err
	}
	if r.Height, err = b.ReadUint32LE(); nil != err {
		return err
	}
	if err = b.ReadInto(r.MerkleRootMNList[:]); nil != err {
		return err
	}
	if r.Version >= 2 {
		if err = b.ReadInto(r.MerkleRootQuorums[:]); nil != err {
			return err
		}
	}
	if r.Version >= 3 {
		if r.BestCLHeightDiff, err = readCompactUint32(b); nil != err {
			return err
		}
		if err = b.ReadInto(r.BestCLSignature[:]); nil != err {
			return err
		}
		if r.CreditPoolBalance, err = b.ReadInt64LE(); nil != err {
			return err
		}
	}
	if err = b.Finish(); nil != err {
		return err
	}
	*coinbase = r
	return nil
}

// UnmarshalBinary - see Pack for the layout
func (commitment *QuorumCommitment) UnmarshalBinary(record []byte) error {
	var r QuorumCommitment
	var err error
	b := bytebuffer.NewReader(record)

	if r.Version, err = b.ReadUint16LE(); nil != err {
		return err
	}
	if r.Height, err = b.ReadUint32LE(); nil != err {
		return err
	}

	c := &r.Commitment
	if c.Version, err = b.ReadUint16LE(); nil != err {
		return err
	}
	if c.LLMQType, err = b.ReadUint8(); nil != err {
		return err
	}
	if err = b.ReadInto(c.QuorumHash[:]); nil != err {
		return err
	}
	if isIndexedCommitment(c.Version) {
		if c.QuorumIndex, err = b.ReadInt16LE(); nil != err {
			return err
		}
	}
	if c.SignersSize, c.Signers, err = readBitSet(b); nil != err {
		return err
	}
	if c.ValidMembersSize, c.ValidMembers, err = readBitSet(b); nil != err {
		return err
	}
	if err = b.ReadInto(c.QuorumPublicKey[:]); nil != err {
		return err
	}
	if err = b.ReadInto(c.QuorumVvecHash[:]); nil != err {
		return err
	}
	if err = b.ReadInto(c.QuorumSig[:]); nil != err {
		return err
	}
	if err = b.ReadInto(c.MembersSig[:]); nil != err {
		return err
	}
	if err = b.Finish(); nil != err {
		return err
	}
	*commitment = r
	return nil
}

// smallest possible credit output: satoshis and an empty script
const minimumCreditOutputLength = 8 + 1

// UnmarshalBinary - see Pack for the layout
func (lock *AssetLock) UnmarshalBinary(record []byte) error {
	var r AssetLock
	var err error
	b := bytebuffer.NewReader(record)

	if r.Version, err = b.ReadUint16LE(); nil != err {
		return err
	}
	count, err := b.ReadCompactSize()
	if nil != err {
		return err
	}
	if count > uint64(b.Remaining()/minimumCreditOutputLength) {
		return fault.ErrLengthExceedsBuffer
	}
	if count > 0 {
		r.CreditOutputs = make([]CreditOutput, count)
	}
	for i := range r.CreditOutputs {
		output := &r.CreditOutputs[i]
		if output.Satoshis, err = b.ReadInt64LE(); nil != err {
			return err
		}
		if output.Script, err = readHexBytes(b); nil != err {
			return err
		}
	}
	if err = b.Finish(); nil != err {
		return err
	}
	*lock = r
	return nil
}

// UnmarshalBinary - see Pack for the layout
func (unlock *AssetUnlock) UnmarshalBinary(record []byte) error {
	var r AssetUnlock
	var err error
	b := bytebuffer.NewReader(record)

	if r.Version, err = b.ReadUint16LE(); nil != err {
		return err
	}
	if r.Index, err = b.ReadUint64LE(); nil != err {
		return err
	}
	if r.Fee, err = b.ReadUint32LE(); nil != err {
		return err
	}
	if r.RequestedHeight, err = b.ReadUint32LE(); nil != err {
		return err
	}
	if err = b.ReadInto(r.QuorumHash[:]); nil != err {
		return err
	}
	if err = b.ReadInto(r.QuorumSig[:]); nil != err {
		return err
	}
	if err = b.Finish(); nil != err {
		return err
	}
	*unlock = r
	return nil
}

// IPv6 bytes then big endian port
func readService(b *bytebuffer.Reader) (Service, error) {
	var service Service
	if err := b.ReadInto(service.IP[:]); nil != err {
		return service, err
	}
	port, err := b.ReadUint16BE()
	if nil != err {
		return service, err
	}
	service.Port = port
	return service, nil
}

// length prefixed bytes, empty becomes nil
func readHexBytes(b *bytebuffer.Reader) (HexBytes, error) {
	data, err := b.ReadVarBytes()
	if nil != err {
		return nil, err
	}
	return normalise(data), nil
}

// CompactSize that must fit in 32 bits
func readCompactUint32(b *bytebuffer.Reader) (uint32, error) {
	value, err := b.ReadCompactSize()
	if nil != err {
		return 0, err
	}
	if value > math.MaxUint32 {
		return 0, fault.ErrValueTooLarge
	}
	return uint32(value), nil
}

// CompactSize(bit count) followed by the bytes holding those bits
func readBitSet(b *bytebuffer.Reader) (uint32, HexBytes, error) {
	size, err := readCompactUint32(b)
	if nil != err {
		return 0, nil, err
	}
	n := bitSetBytes(size)
	if n > b.Remaining() {
		return 0, nil, fault.ErrLengthExceedsBuffer
	}
	data, err := b.ReadFixedBytes(n)
	if nil != err {
		return 0, nil, err
	}
	return size, normalise(data), nil
}
