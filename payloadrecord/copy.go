// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payloadrecord

// Copy - independent deep copy
func (signal *MnHfSignal) Copy() Payload {
	c := *signal
	return &c
}

// Copy - independent deep copy
func (register *ProRegTx) Copy() Payload {
	c := *register
	c.ScriptPayout = register.ScriptPayout.clone()
	c.PayloadSig = register.PayloadSig.clone()
	return &c
}

// Copy - independent deep copy
func (update *ProUpServTx) Copy() Payload {
	c := *update
	c.ScriptOperatorPayout = update.ScriptOperatorPayout.clone()
	return &c
}

// Copy - independent deep copy
func (update *ProUpRegTx) Copy() Payload {
	c := *update
	c.ScriptPayout = update.ScriptPayout.clone()
	c.PayloadSig = update.PayloadSig.clone()
	return &c
}

// Copy - independent deep copy
func (revoke *ProUpRevTx) Copy() Payload {
	c := *revoke
	return &c
}

// Copy - independent deep copy
func (coinbase *Coinbase) Copy() Payload {
	c := *coinbase
	return &c
}

// Copy - independent deep copy
func (commitment *QuorumCommitment) Copy() Payload {
	c := *commitment
	c.Commitment.Signers = commitment.Commitment.Signers.clone()
	c.Commitment.ValidMembers = commitment.Commitment.ValidMembers.clone()
	return &c
}

// Copy - independent deep copy
func (lock *AssetLock) Copy() Payload {
	c := *lock
	if nil != lock.CreditOutputs {
		c.CreditOutputs = make([]CreditOutput, len(lock.CreditOutputs))
		for i, output := range lock.CreditOutputs {
			c.CreditOutputs[i] = CreditOutput{
				Satoshis: output.Satoshis,
				Script:   output.Script.clone(),
			}
		}
	}
	return &c
}

// Copy - independent deep copy
func (unlock *AssetUnlock) Copy() Payload {
	c := *unlock
	return &c
}
