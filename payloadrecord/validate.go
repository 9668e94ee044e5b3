// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payloadrecord

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/specialtx/fault"
)

// Violation - one rule broken by a field
type Violation struct {
	Field string `json:"field"` // JSON name, dotted for nested fields
	Err   error  `json:"-"`
}

// Violations - all rules broken by a payload, empty when valid
type Violations []Violation

// maximum operator reward: 100.00%
const maxOperatorReward = 10000

// MarshalText - "field: reason"
func (v Violation) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// String - "field: reason"
func (v Violation) String() string {
	return v.Field + ": " + v.Err.Error()
}

// Valid - no rules were broken
func (vs Violations) Valid() bool {
	return 0 == len(vs)
}

// Has - true if some field broke a rule with the given error
func (vs Violations) Has(err error) bool {
	for _, v := range vs {
		if v.Err == err {
			return true
		}
	}
	return false
}

// Fields - names of all offending fields in order
func (vs Violations) Fields() []string {
	fields := make([]string, 0, len(vs))
	for _, v := range vs {
		fields = append(fields, v.Field)
	}
	return fields
}

// Error - all violations on one line
func (vs Violations) Error() string {
	s := make([]string, 0, len(vs))
	for _, v := range vs {
		s = append(s, v.String())
	}
	return strings.Join(s, "; ")
}

// Err - nil when valid, otherwise the violations as an error
func (vs Violations) Err() error {
	if vs.Valid() {
		return nil
	}
	return vs
}

func (vs *Violations) add(field string, err error) {
	*vs = append(*vs, Violation{Field: field, Err: err})
}

// IsValid - a payload with no violations under the rules
func IsValid(p Payload, rules *Rules) bool {
	if isNil(p) {
		return false
	}
	return p.Validate(rules).Valid()
}

// Validate - MnHfSignal rules
func (signal *MnHfSignal) Validate(rules *Rules) Violations {
	rules = rulesOrDefault(rules)
	var vs Violations
	if 1 != signal.Version {
		vs.add("version", fault.ErrUnsupportedVersion)
	}
	if signal.Signal.VersionBit >= rules.VersionBitsCount {
		vs.add("signal.versionBit", fault.ErrVersionBitOutOfRange)
	}
	return vs
}

// Validate - ProRegTx rules
func (register *ProRegTx) Validate(rules *Rules) Violations {
	var vs Violations
	if register.Version < 1 || register.Version > 2 {
		vs.add("version", fault.ErrUnsupportedVersion)
	}
	switch register.MNType {
	case RegularMasternode:
	case EvoMasternode:
		if register.Version < 2 {
			vs.add("type", fault.ErrEvoRequiresVersion2)
		}
	default:
		vs.add("type", fault.ErrInvalidMasternodeType)
	}
	if 0 != register.Mode {
		vs.add("mode", fault.ErrInvalidMode)
	}
	if register.OperatorReward > maxOperatorReward {
		vs.add("operatorReward", fault.ErrInvalidOperatorReward)
	}
	if 0 == len(register.ScriptPayout) {
		vs.add("scriptPayout", fault.ErrMissingScript)
	}
	if !hasPlatformFields(register.Version, register.MNType) {
		checkPlatformAbsent(&vs, register.PlatformNodeID, register.PlatformP2PPort, register.PlatformHTTPPort)
	}
	if 0 == len(register.PayloadSig) {
		vs.add("payloadSig", fault.ErrMissingPayloadSignature)
	}
	return vs
}

// Validate - ProUpServTx rules
func (update *ProUpServTx) Validate(rules *Rules) Violations {
	var vs Violations
	if update.Version < 1 || update.Version > 2 {
		vs.add("version", fault.ErrUnsupportedVersion)
	}
	switch update.MNType {
	case RegularMasternode:
	case EvoMasternode:
		if update.Version < 2 {
			vs.add("type", fault.ErrEvoRequiresVersion2)
		}
	default:
		vs.add("type", fault.ErrInvalidMasternodeType)
	}
	if !hasPlatformFields(update.Version, update.MNType) {
		checkPlatformAbsent(&vs, update.PlatformNodeID, update.PlatformP2PPort, update.PlatformHTTPPort)
	}
	return vs
}

// Validate - ProUpRegTx rules
func (update *ProUpRegTx) Validate(rules *Rules) Violations {
	var vs Violations
	if update.Version < 1 || update.Version > 2 {
		vs.add("version", fault.ErrUnsupportedVersion)
	}
	if 0 != update.Mode {
		vs.add("mode", fault.ErrInvalidMode)
	}
	if 0 == len(update.ScriptPayout) {
		vs.add("scriptPayout", fault.ErrMissingScript)
	}
	return vs
}

// Validate - ProUpRevTx rules
func (revoke *ProUpRevTx) Validate(rules *Rules) Violations {
	var vs Violations
	if revoke.Version < 1 || revoke.Version > 2 {
		vs.add("version", fault.ErrUnsupportedVersion)
	}
	if revoke.Reason > maxRevocationReason {
		vs.add("reason", fault.ErrInvalidRevocationReason)
	}
	return vs
}

// Validate - Coinbase rules
func (coinbase *Coinbase) Validate(rules *Rules) Violations {
	var vs Violations
	if coinbase.Version < 1 || coinbase.Version > 3 {
		vs.add("version", fault.ErrUnsupportedVersion)
	}
	if coinbase.Version < 2 && !coinbase.MerkleRootQuorums.IsZero() {
		vs.add("merkleRootQuorums", fault.ErrFieldNotPermitted)
	}
	if coinbase.Version < 3 {
		if 0 != coinbase.BestCLHeightDiff {
			vs.add("bestCLHeightDiff", fault.ErrFieldNotPermitted)
		}
		if !coinbase.BestCLSignature.IsZero() {
			vs.add("bestCLSignature", fault.ErrFieldNotPermitted)
		}
		if 0 != coinbase.CreditPoolBalance {
			vs.add("creditPoolBalance", fault.ErrFieldNotPermitted)
		}
	}
	return vs
}

// Validate - QuorumCommitment rules
func (commitment *QuorumCommitment) Validate(rules *Rules) Violations {
	var vs Violations
	if commitment.Version < 1 || commitment.Version > 2 {
		vs.add("version", fault.ErrUnsupportedVersion)
	}
	c := &commitment.Commitment
	if c.Version < 1 || c.Version > 4 {
		vs.add("commitment.version", fault.ErrUnsupportedVersion)
	}
	if !isIndexedCommitment(c.Version) && 0 != c.QuorumIndex {
		vs.add("commitment.quorumIndex", fault.ErrQuorumIndexNotPermitted)
	}
	checkBitSet(&vs, "commitment.signers", c.SignersSize, c.Signers)
	checkBitSet(&vs, "commitment.validMembers", c.ValidMembersSize, c.ValidMembers)
	if c.SignersSize != c.ValidMembersSize {
		vs.add("commitment.validMembersSize", fault.ErrBitSetSizeMismatch)
	}
	return vs
}

// Validate - AssetLock rules
func (lock *AssetLock) Validate(rules *Rules) Violations {
	var vs Violations
	if 1 != lock.Version {
		vs.add("version", fault.ErrUnsupportedVersion)
	}
	if 0 == len(lock.CreditOutputs) {
		vs.add("creditOutputs", fault.ErrCreditOutputsEmpty)
	}
	for i, output := range lock.CreditOutputs {
		prefix := "creditOutputs[" + strconv.Itoa(i) + "]."
		if output.Satoshis <= 0 {
			vs.add(prefix+"satoshis", fault.ErrInvalidAmount)
		}
		if 0 == len(output.Script) {
			vs.add(prefix+"script", fault.ErrMissingScript)
		}
	}
	return vs
}

// Validate - AssetUnlock rules
func (unlock *AssetUnlock) Validate(rules *Rules) Violations {
	var vs Violations
	if 1 != unlock.Version {
		vs.add("version", fault.ErrUnsupportedVersion)
	}
	if 0 == unlock.RequestedHeight {
		vs.add("requestedHeight", fault.ErrInvalidHeight)
	}
	return vs
}

// platform fields must be zero unless the payload is an evo version 2
func checkPlatformAbsent(vs *Violations, nodeID KeyID, p2pPort uint16, httpPort uint16) {
	if !nodeID.IsZero() {
		vs.add("platformNodeID", fault.ErrFieldNotPermitted)
	}
	if 0 != p2pPort {
		vs.add("platformP2PPort", fault.ErrFieldNotPermitted)
	}
	if 0 != httpPort {
		vs.add("platformHTTPPort", fault.ErrFieldNotPermitted)
	}
}

// data must be exactly the bytes for size bits with the unused
// high bits of the final byte clear
func checkBitSet(vs *Violations, field string, size uint32, data HexBytes) {
	if bitSetBytes(size) != len(data) {
		vs.add(field, fault.ErrBitSetSize)
		return
	}
	if 0 == size%8 {
		return
	}
	last := data[len(data)-1]
	if 0 != last>>(size%8) {
		vs.add(field, fault.ErrBitSetPadding)
	}
}
