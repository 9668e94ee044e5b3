// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payloadrecord

import (
	"encoding"
	"encoding/json"
	"reflect"
	"strconv"
	"strings"

	"github.com/bitmark-inc/specialtx/bls"
	"github.com/bitmark-inc/specialtx/fault"
	"github.com/bitmark-inc/specialtx/merkle"
	"github.com/bitmark-inc/specialtx/util"
)

// TagType - type code for special transactions
type TagType uint16

// enumerate the possible special transaction types
// this is the transaction's type field, not part of the payload
const (
	// null is a classic transaction - no payload
	NullTag = TagType(iota)

	ProRegTxTag         = TagType(iota) // provider registration
	ProUpServTxTag      = TagType(iota) // provider update service
	ProUpRegTxTag       = TagType(iota) // provider update registrar
	ProUpRevTxTag       = TagType(iota) // provider update revoke
	CoinbaseTag         = TagType(iota) // coinbase commitment
	QuorumCommitmentTag = TagType(iota) // final quorum commitment
	MnHfSignalTag       = TagType(iota) // masternode hard fork signal
	AssetLockTag        = TagType(iota) // lock coins for platform credit
	AssetUnlockTag      = TagType(iota) // withdraw platform credit

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// Payload - the sum of all special transaction payloads
//
// only the types in this package implement it; switch on the
// concrete type to handle each kind
type Payload interface {
	Type() TagType
	Pack() (Packed, error)
	Validate(rules *Rules) Violations
	Copy() Payload

	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
	json.Unmarshaler

	isPayload()
}

// byte sizes for various fields
const (
	KeyIDLength     = 20
	ipAddressLength = 16
)

// MasternodeType - regular or evo (platform hosting) masternode
type MasternodeType uint16

// masternode types
const (
	RegularMasternode = MasternodeType(0)
	EvoMasternode     = MasternodeType(1)
)

// MnHfSignal - the unpacked masternode hard fork signal payload
type MnHfSignal struct {
	Version uint16 `json:"version"`
	Signal  Signal `json:"signal"`
}

// Signal - the hard fork signal carried by MnHfSignal
type Signal struct {
	VersionBit uint16        `json:"versionBit"` // bit position being signalled
	QuorumHash merkle.Digest `json:"quorumHash"` // quorum that signed
	Sig        bls.Signature `json:"sig"`        // quorum threshold signature
}

// omitempty marks a key that may be left out of JSON input; fixed
// width arrays are never empty to encoding/json so those keys are still
// written on output

// ProRegTx - the unpacked provider registration payload
type ProRegTx struct {
	Version          uint16         `json:"version"`
	MNType           MasternodeType `json:"type"`
	Mode             uint16         `json:"mode"`
	CollateralHash   merkle.Digest  `json:"collateralHash"`
	CollateralIndex  uint32         `json:"collateralIndex"`
	Service          Service        `json:"service"`
	KeyIDOwner       KeyID          `json:"keyIDOwner"`
	PubKeyOperator   bls.PublicKey  `json:"pubKeyOperator"`
	KeyIDVoting      KeyID          `json:"keyIDVoting"`
	OperatorReward   uint16         `json:"operatorReward"` // hundredths of a percent
	ScriptPayout     HexBytes       `json:"scriptPayout"`
	InputsHash       merkle.Digest  `json:"inputsHash"`
	PlatformNodeID   KeyID          `json:"platformNodeID,omitempty"`   // evo only, always emitted
	PlatformP2PPort  uint16         `json:"platformP2PPort,omitempty"`  // evo only
	PlatformHTTPPort uint16         `json:"platformHTTPPort,omitempty"` // evo only
	PayloadSig       HexBytes       `json:"payloadSig"`                 // collateral key, not BLS
}

// ProUpServTx - the unpacked provider update service payload
type ProUpServTx struct {
	Version              uint16         `json:"version"`
	MNType               MasternodeType `json:"type,omitempty"` // version 2 onwards
	ProTxHash            merkle.Digest  `json:"proTxHash"`
	Service              Service        `json:"service"`
	ScriptOperatorPayout HexBytes       `json:"scriptOperatorPayout"`
	InputsHash           merkle.Digest  `json:"inputsHash"`
	PlatformNodeID       KeyID          `json:"platformNodeID,omitempty"`   // evo only, always emitted
	PlatformP2PPort      uint16         `json:"platformP2PPort,omitempty"`  // evo only
	PlatformHTTPPort     uint16         `json:"platformHTTPPort,omitempty"` // evo only
	PayloadSig           bls.Signature  `json:"payloadSig"`                 // operator key
}

// ProUpRegTx - the unpacked provider update registrar payload
type ProUpRegTx struct {
	Version        uint16        `json:"version"`
	ProTxHash      merkle.Digest `json:"proTxHash"`
	Mode           uint16        `json:"mode"`
	PubKeyOperator bls.PublicKey `json:"pubKeyOperator"`
	KeyIDVoting    KeyID         `json:"keyIDVoting"`
	ScriptPayout   HexBytes      `json:"scriptPayout"`
	InputsHash     merkle.Digest `json:"inputsHash"`
	PayloadSig     HexBytes      `json:"payloadSig"` // owner key, not BLS
}

// ProUpRevTx - the unpacked provider update revoke payload
type ProUpRevTx struct {
	Version    uint16        `json:"version"`
	ProTxHash  merkle.Digest `json:"proTxHash"`
	Reason     uint16        `json:"reason"`
	InputsHash merkle.Digest `json:"inputsHash"`
	PayloadSig bls.Signature `json:"payloadSig"` // operator key
}

// revocation reasons
const (
	ReasonNotSpecified         = 0
	ReasonTerminationOfService = 1
	ReasonCompromisedKeys      = 2
	ReasonChangeOfKeys         = 3
	maxRevocationReason        = ReasonChangeOfKeys
)

// Coinbase - the unpacked coinbase payload
type Coinbase struct {
	Version           uint16        `json:"version"`
	Height            uint32        `json:"height"`
	MerkleRootMNList  merkle.Digest `json:"merkleRootMNList"`
	MerkleRootQuorums merkle.Digest `json:"merkleRootQuorums,omitempty"` // version 2 onwards, always emitted
	BestCLHeightDiff  uint32        `json:"bestCLHeightDiff,omitempty"`  // version 3 onwards
	BestCLSignature   bls.Signature `json:"bestCLSignature,omitempty"`   // version 3 onwards, always emitted
	CreditPoolBalance int64         `json:"creditPoolBalance,omitempty"` // version 3 onwards
}

// QuorumCommitment - the unpacked final commitment payload
type QuorumCommitment struct {
	Version    uint16     `json:"version"`
	Height     uint32     `json:"height"`
	Commitment Commitment `json:"commitment"`
}

// Commitment - a final quorum commitment
//
// the two member bit sets hold one bit per quorum member, least
// significant bit first, padded to whole bytes with zero bits
type Commitment struct {
	Version          uint16        `json:"version"`
	LLMQType         uint8         `json:"llmqType"`
	QuorumHash       merkle.Digest `json:"quorumHash"`
	QuorumIndex      int16         `json:"quorumIndex,omitempty"` // indexed versions only
	SignersSize      uint32        `json:"signersSize"`
	Signers          HexBytes      `json:"signers"`
	ValidMembersSize uint32        `json:"validMembersSize"`
	ValidMembers     HexBytes      `json:"validMembers"`
	QuorumPublicKey  bls.PublicKey `json:"quorumPublicKey"`
	QuorumVvecHash   merkle.Digest `json:"quorumVvecHash"`
	QuorumSig        bls.Signature `json:"quorumSig"`
	MembersSig       bls.Signature `json:"membersSig"`
}

// AssetLock - the unpacked asset lock payload
type AssetLock struct {
	Version       uint16         `json:"version"`
	CreditOutputs []CreditOutput `json:"creditOutputs"`
}

// CreditOutput - one output credited on the platform side
type CreditOutput struct {
	Satoshis int64    `json:"satoshis"`
	Script   HexBytes `json:"script"`
}

// AssetUnlock - the unpacked asset unlock payload
type AssetUnlock struct {
	Version         uint16        `json:"version"`
	Index           uint64        `json:"index"`
	Fee             uint32        `json:"fee"`
	RequestedHeight uint32        `json:"requestedHeight"`
	QuorumHash      merkle.Digest `json:"quorumHash"`
	QuorumSig       bls.Signature `json:"quorumSig"`
}

// a nil interface or a nil pointer to one of the payloads
func isNil(p Payload) bool {
	return nil == p || reflect.ValueOf(p).IsNil()
}

// Type - the special transaction type of each payload
func (*MnHfSignal) Type() TagType       { return MnHfSignalTag }
func (*ProRegTx) Type() TagType         { return ProRegTxTag }
func (*ProUpServTx) Type() TagType      { return ProUpServTxTag }
func (*ProUpRegTx) Type() TagType       { return ProUpRegTxTag }
func (*ProUpRevTx) Type() TagType       { return ProUpRevTxTag }
func (*Coinbase) Type() TagType         { return CoinbaseTag }
func (*QuorumCommitment) Type() TagType { return QuorumCommitmentTag }
func (*AssetLock) Type() TagType        { return AssetLockTag }
func (*AssetUnlock) Type() TagType      { return AssetUnlockTag }

func (*MnHfSignal) isPayload()       {}
func (*ProRegTx) isPayload()         {}
func (*ProUpServTx) isPayload()      {}
func (*ProUpRegTx) isPayload()       {}
func (*ProUpRevTx) isPayload()       {}
func (*Coinbase) isPayload()         {}
func (*QuorumCommitment) isPayload() {}
func (*AssetLock) isPayload()        {}
func (*AssetUnlock) isPayload()      {}

// New - an empty payload of the given type
func New(tag TagType) (Payload, error) {
	switch tag {
	case ProRegTxTag:
		return &ProRegTx{}, nil
	case ProUpServTxTag:
		return &ProUpServTx{}, nil
	case ProUpRegTxTag:
		return &ProUpRegTx{}, nil
	case ProUpRevTxTag:
		return &ProUpRevTx{}, nil
	case CoinbaseTag:
		return &Coinbase{}, nil
	case QuorumCommitmentTag:
		return &QuorumCommitment{}, nil
	case MnHfSignalTag:
		return &MnHfSignal{}, nil
	case AssetLockTag:
		return &AssetLock{}, nil
	case AssetUnlockTag:
		return &AssetUnlock{}, nil
	default:
		return nil, fault.ErrUnknownPayloadType
	}
}

// RecordName - returns the name of a payload as a string
func RecordName(record interface{}) (string, bool) {
	switch record.(type) {
	case *ProRegTx, ProRegTx:
		return "ProRegTx", true

	case *ProUpServTx, ProUpServTx:
		return "ProUpServTx", true

	case *ProUpRegTx, ProUpRegTx:
		return "ProUpRegTx", true

	case *ProUpRevTx, ProUpRevTx:
		return "ProUpRevTx", true

	case *Coinbase, Coinbase:
		return "Coinbase", true

	case *QuorumCommitment, QuorumCommitment:
		return "QuorumCommitment", true

	case *MnHfSignal, MnHfSignal:
		return "MnHfSignal", true

	case *AssetLock, AssetLock:
		return "AssetLock", true

	case *AssetUnlock, AssetUnlock:
		return "AssetUnlock", true

	default:
		return "*unknown*", false
	}
}

// String - name of the payload type
func (tag TagType) String() string {
	p, err := New(tag)
	if nil != err {
		return "Tag(" + strconv.Itoa(int(tag)) + ")"
	}
	name, _ := RecordName(p)
	return name
}

// ParseTagType - accept either a payload name (case insensitive) or its number
func ParseTagType(s string) (TagType, error) {
	if n, err := strconv.ParseUint(s, 10, 16); nil == err {
		tag := TagType(n)
		if _, err := New(tag); nil != err {
			return NullTag, err
		}
		return tag, nil
	}
	for tag := NullTag + 1; tag < InvalidTag; tag += 1 {
		if strings.EqualFold(tag.String(), s) {
			return tag, nil
		}
	}
	return NullTag, fault.ErrUnknownPayloadType
}

// Hash - double SHA-256 of the packed record
func (record Packed) Hash() merkle.Digest {
	return merkle.NewDigest(record)
}

// MarshalText - convert a packed to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	return util.EncodeHex(record), nil
}

// UnmarshalText - convert a packed from its hex JSON form
func (record *Packed) UnmarshalText(s []byte) error {
	b, err := util.DecodeVariableHex(s)
	if nil != err {
		return err
	}
	*record = b
	return nil
}
