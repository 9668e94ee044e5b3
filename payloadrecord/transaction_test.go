// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payloadrecord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/specialtx/chain"
	"github.com/bitmark-inc/specialtx/fault"
	"github.com/bitmark-inc/specialtx/payloadrecord"
)

func TestTagNames(t *testing.T) {
	items := []struct {
		tag  payloadrecord.TagType
		name string
	}{
		{payloadrecord.ProRegTxTag, "ProRegTx"},
		{payloadrecord.ProUpServTxTag, "ProUpServTx"},
		{payloadrecord.ProUpRegTxTag, "ProUpRegTx"},
		{payloadrecord.ProUpRevTxTag, "ProUpRevTx"},
		{payloadrecord.CoinbaseTag, "Coinbase"},
		{payloadrecord.QuorumCommitmentTag, "QuorumCommitment"},
		{payloadrecord.MnHfSignalTag, "MnHfSignal"},
		{payloadrecord.AssetLockTag, "AssetLock"},
		{payloadrecord.AssetUnlockTag, "AssetUnlock"},
	}

	for i, item := range items {
		assert.Equal(t, payloadrecord.TagType(i+1), item.tag, "tag value")
		assert.Equal(t, item.name, item.tag.String(), "tag name")

		p, err := payloadrecord.New(item.tag)
		assert.Nil(t, err, "new: %s", item.name)
		assert.Equal(t, item.tag, p.Type(), "payload type")

		name, ok := payloadrecord.RecordName(p)
		assert.True(t, ok, "record name: %s", item.name)
		assert.Equal(t, item.name, name, "record name")

		tag, err := payloadrecord.ParseTagType(item.name)
		assert.Nil(t, err, "parse: %s", item.name)
		assert.Equal(t, item.tag, tag, "parse name")
	}

	assert.Equal(t, "Tag(0)", payloadrecord.NullTag.String(), "null tag")
	assert.Equal(t, "Tag(10)", payloadrecord.InvalidTag.String(), "invalid tag")

	_, ok := payloadrecord.RecordName(42)
	assert.False(t, ok, "record name of a number")
}

func TestParseTagType(t *testing.T) {
	items := []struct {
		s   string
		tag payloadrecord.TagType
		err error
	}{
		{"7", payloadrecord.MnHfSignalTag, nil},
		{"mnhfsignal", payloadrecord.MnHfSignalTag, nil},
		{"ASSETLOCK", payloadrecord.AssetLockTag, nil},
		{"0", payloadrecord.NullTag, fault.ErrUnknownPayloadType},
		{"10", payloadrecord.NullTag, fault.ErrUnknownPayloadType},
		{"transfer", payloadrecord.NullTag, fault.ErrUnknownPayloadType},
		{"", payloadrecord.NullTag, fault.ErrUnknownPayloadType},
	}

	for i, item := range items {
		tag, err := payloadrecord.ParseTagType(item.s)
		assert.Equal(t, item.err, err, "%d: %q error", i, item.s)
		assert.Equal(t, item.tag, tag, "%d: %q tag", i, item.s)
	}
}

func TestPackedText(t *testing.T) {
	packed := payloadrecord.Packed{0x01, 0x00, 0xab}
	text, err := packed.MarshalText()
	assert.Nil(t, err, "marshal")
	assert.Equal(t, "0100ab", string(text), "hex text")

	var recovered payloadrecord.Packed
	assert.Nil(t, recovered.UnmarshalText([]byte("0100AB")), "unmarshal")
	assert.Equal(t, packed, recovered, "recovered")

	assert.Equal(t, fault.ErrHexLength, recovered.UnmarshalText([]byte("010")), "odd length")
	assert.Equal(t, fault.ErrHexCharacter, recovered.UnmarshalText([]byte("0x")), "bad character")
}

func TestRules(t *testing.T) {
	assert.Equal(t, uint16(chain.DefaultVersionBitsCount), payloadrecord.DefaultRules().VersionBitsCount, "default")

	parameters, err := chain.Lookup(chain.Testnet)
	assert.Nil(t, err, "lookup")
	rules, err := payloadrecord.NewRules(parameters)
	assert.Nil(t, err, "new rules")
	assert.Equal(t, parameters.VersionBitsCount, rules.VersionBitsCount, "from chain")

	parameters.VersionBitsCount = 0
	_, err = payloadrecord.NewRules(parameters)
	assert.Equal(t, fault.ErrInvalidVersionBitsCount, err, "zero bits")

	parameters.VersionBitsCount = 65
	_, err = payloadrecord.NewRules(parameters)
	assert.Equal(t, fault.ErrInvalidVersionBitsCount, err, "too many bits")
}

func TestService(t *testing.T) {
	items := []struct {
		text     string
		expected string
		err      error
	}{
		{"1.2.3.4:9999", "1.2.3.4:9999", nil},
		{"[2001:db8::1]:19999", "[2001:db8::1]:19999", nil},
		{"[::ffff:10.0.0.1]:1", "10.0.0.1:1", nil},
		{"1.2.3.4", "", fault.ErrInvalidService},
		{"example.com:80", "", fault.ErrInvalidIPAddress},
		{"1.2.3.4:65536", "", fault.ErrInvalidPort},
		{"1.2.3.4:-1", "", fault.ErrInvalidPort},
	}

	for i, item := range items {
		s, err := payloadrecord.NewService(item.text)
		assert.Equal(t, item.err, err, "%d: %q error", i, item.text)
		if nil == item.err {
			assert.Equal(t, item.expected, s.String(), "%d: %q string", i, item.text)
		}
	}
}

func TestFieldText(t *testing.T) {
	var k payloadrecord.KeyID
	assert.Equal(t, fault.ErrHexLength, k.UnmarshalText([]byte("00")), "short key id")
	assert.True(t, k.IsZero(), "unchanged")
	assert.Nil(t, k.UnmarshalText([]byte("0102030405060708090a0b0c0d0e0f1011121314")), "key id")
	assert.Equal(t, byte(0x14), k[19], "key id last byte")

	var b payloadrecord.HexBytes
	assert.Nil(t, b.UnmarshalText([]byte("")), "empty")
	assert.Nil(t, b, "empty is nil")
	assert.Nil(t, b.UnmarshalText([]byte("6a")), "one byte")
	assert.Equal(t, payloadrecord.HexBytes{0x6a}, b, "one byte")
}
