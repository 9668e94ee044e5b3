// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/specialtx/address"
	"github.com/bitmark-inc/specialtx/chain"
	"github.com/bitmark-inc/specialtx/merkle"
	"github.com/bitmark-inc/specialtx/payloadrecord"
)

// result of decoding a packed payload
type decoded struct {
	Type       string                   `json:"type"`
	Tag        payloadrecord.TagType    `json:"tag"`
	Hash       merkle.Digest            `json:"hash"`
	SignHash   *merkle.Digest           `json:"signHash,omitempty"`
	RequestID  *merkle.Digest           `json:"requestId,omitempty"`
	Addresses  map[string]string        `json:"addresses,omitempty"`
	Payload    payloadrecord.Payload    `json:"payload,omitempty"`
	Valid      bool                     `json:"valid"`
	Violations payloadrecord.Violations `json:"violations,omitempty"`
}

// the type from --type
func getTag(c *cli.Context) (payloadrecord.TagType, error) {
	s := c.String("type")
	if "" == s {
		return payloadrecord.NullTag, ErrMissingType
	}
	return payloadrecord.ParseTagType(s)
}

// input from a flag, the first argument or stdin when that is "-"
func getInput(c *cli.Context, m *metadata, flag string) (string, error) {
	s := c.String(flag)
	if "" == s {
		s = c.Args().First()
	}
	if "-" == s {
		b, err := ioutil.ReadAll(m.r)
		if nil != err {
			return "", err
		}
		s = string(b)
	}
	s = strings.TrimSpace(s)
	if "" == s {
		return "", ErrMissingInput
	}
	return s, nil
}

// unpack hex text and collect everything known about the payload
func decodeHex(m *metadata, tag payloadrecord.TagType, s string) (*decoded, error) {
	var packed payloadrecord.Packed
	if err := packed.UnmarshalText([]byte(s)); nil != err {
		return nil, err
	}

	p, err := payloadrecord.Unpack(tag, packed)
	if nil != err {
		m.log.Warnf("unpack %s error: %s", tag, err)
		return nil, err
	}

	result := describe(p, m.parameters, m.rules)
	result.Hash = packed.Hash()
	return result, nil
}

func describe(p payloadrecord.Payload, parameters chain.Parameters, rules *payloadrecord.Rules) *decoded {
	name, _ := payloadrecord.RecordName(p)
	violations := p.Validate(rules)

	result := &decoded{
		Type:       name,
		Tag:        p.Type(),
		Payload:    p,
		Valid:      violations.Valid(),
		Violations: violations,
		Addresses:  addresses(p, parameters),
	}

	switch tx := p.(type) {
	case *payloadrecord.MnHfSignal:
		id := tx.RequestID()
		result.RequestID = &id
	case interface{ SignHash() merkle.Digest }:
		hash := tx.SignHash()
		result.SignHash = &hash
	}
	return result
}

// chain addresses of the key ids and standard scripts, keyed by field
func addresses(p payloadrecord.Payload, parameters chain.Parameters) map[string]string {
	result := make(map[string]string)

	keyID := func(field string, id payloadrecord.KeyID) {
		if a, err := address.FromKeyID(parameters, id[:]); nil == err {
			result[field] = a
		}
	}
	script := func(field string, s []byte) {
		if a, ok := address.FromScript(parameters, s); ok {
			result[field] = a
		}
	}

	switch tx := p.(type) {
	case *payloadrecord.ProRegTx:
		keyID("keyIDOwner", tx.KeyIDOwner)
		keyID("keyIDVoting", tx.KeyIDVoting)
		script("scriptPayout", tx.ScriptPayout)
	case *payloadrecord.ProUpServTx:
		script("scriptOperatorPayout", tx.ScriptOperatorPayout)
	case *payloadrecord.ProUpRegTx:
		keyID("keyIDVoting", tx.KeyIDVoting)
		script("scriptPayout", tx.ScriptPayout)
	case *payloadrecord.AssetLock:
		for i, output := range tx.CreditOutputs {
			script(fmt.Sprintf("creditOutputs[%d].script", i), output.Script)
		}
	}

	if 0 == len(result) {
		return nil
	}
	return result
}
