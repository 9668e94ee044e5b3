// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payloadrecord_test

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/specialtx/fault"
	"github.com/bitmark-inc/specialtx/merkle"
	"github.com/bitmark-inc/specialtx/payloadrecord"
	"github.com/bitmark-inc/specialtx/util"
)

// version 1, versionBit 5, all zero quorum hash and signature
func zeroSignalPacked() []byte {
	return append([]byte{0x01, 0x00, 0x05, 0x00}, make([]byte, 32+96)...)
}

// test the packing/unpacking of a hard fork signal
//
// ensures that pack->unpack returns the same original value
func TestPackMnHfSignal(t *testing.T) {

	r := payloadrecord.MnHfSignal{
		Version: 1,
		Signal: payloadrecord.Signal{
			VersionBit: 5,
		},
	}

	expected := zeroSignalPacked()

	expectedHash := merkle.Digest{
		0xe3, 0xe8, 0x14, 0xce, 0x59, 0xac, 0x3a, 0xc6,
		0x5f, 0xd7, 0xda, 0xd6, 0x7c, 0x54, 0xa6, 0x32,
		0x88, 0xa1, 0x17, 0x18, 0x1e, 0x18, 0xf8, 0x2f,
		0x27, 0xe9, 0x1b, 0x1b, 0x55, 0x42, 0x3b, 0xe8,
	}

	// test the packer
	packed, err := r.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	if !bytes.Equal(packed, expected) {
		t.Errorf("pack record: %x  expected: %x", packed, expected)
		t.Errorf("*** GENERATED Packed:\n%s", util.FormatBytes("expected", packed))
		t.Fatal("fatal error")
	}

	if hash := packed.Hash(); hash != expectedHash {
		t.Errorf("pack hash: %#v  expected: %#v", hash, expectedHash)
		t.Errorf("*** GENERATED hash:\n%s", util.FormatBytes("expectedHash", hash[:]))
	}

	// test the unpacker
	unpacked, err := payloadrecord.Unpack(payloadrecord.MnHfSignalTag, packed)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}

	signal, ok := unpacked.(*payloadrecord.MnHfSignal)
	if !ok {
		t.Fatalf("did not unpack to MnHfSignal")
	}

	// check that structure is preserved through Pack/Unpack
	if !reflect.DeepEqual(r, *signal) {
		t.Errorf("different, original: %v  recovered: %v", r, *signal)
	}

	// re-encoding yields the identical bytes
	repacked, err := signal.Pack()
	if nil != err {
		t.Fatalf("repack error: %s", err)
	}
	if !bytes.Equal(repacked, expected) {
		t.Errorf("repack record: %x  expected: %x", repacked, expected)
	}
}

func TestMnHfSignalJSON(t *testing.T) {
	r := payloadrecord.MnHfSignal{
		Version: 1,
		Signal: payloadrecord.Signal{
			VersionBit: 5,
		},
	}

	expected := `{"version":1,"signal":{"versionBit":5,"quorumHash":"` +
		strings.Repeat("0", 64) + `","sig":"` + strings.Repeat("0", 192) + `"}}`

	b, err := payloadrecord.ToJSON(&r)
	assert.Nil(t, err, "to JSON")
	assert.Equal(t, expected, string(b), "JSON form")

	p, err := payloadrecord.FromJSON(payloadrecord.MnHfSignalTag, b)
	assert.Nil(t, err, "from JSON")
	assert.Equal(t, &r, p, "JSON round trip")
}

func TestMnHfSignalFromBuffer(t *testing.T) {
	data := zeroSignalPacked()

	var signal payloadrecord.MnHfSignal
	err := signal.UnmarshalBinary(data[:len(data)-1])
	assert.True(t, fault.IsErrOutOfBounds(err), "one byte short: %v", err)
	assert.Equal(t, payloadrecord.MnHfSignal{}, signal, "receiver modified on error")

	err = signal.UnmarshalBinary(append(data, 0x00))
	assert.Equal(t, fault.ErrTrailingBytes, err, "one extra byte")
	assert.True(t, fault.IsErrMalformed(err), "extra byte class")

	err = signal.UnmarshalBinary(nil)
	assert.True(t, fault.IsErrOutOfBounds(err), "empty buffer: %v", err)

	err = signal.UnmarshalBinary(data)
	assert.Nil(t, err, "exact buffer")
	assert.Equal(t, uint16(1), signal.Version, "version")
	assert.Equal(t, uint16(5), signal.Signal.VersionBit, "version bit")
}

func TestMnHfSignalQuorumHashLength(t *testing.T) {
	sig := strings.Repeat("ab", 96)

	items := []struct {
		quorumHash string
		err        error
	}{
		{strings.Repeat("1", 63), fault.ErrHexLength},
		{strings.Repeat("1", 65), fault.ErrHexLength},
		{strings.Repeat("z", 64), fault.ErrHexCharacter},
		{strings.Repeat("1", 62) + "g1", fault.ErrHexCharacter},
		{strings.Repeat("1", 64), nil},
		{strings.Repeat("A", 64), nil},
	}

	for i, item := range items {
		document := `{"version":1,"signal":{"versionBit":3,"quorumHash":"` + item.quorumHash + `","sig":"` + sig + `"}}`
		_, err := payloadrecord.FromJSON(payloadrecord.MnHfSignalTag, document)
		assert.Equal(t, item.err, err, "%d: quorum hash: %q", i, item.quorumHash)
		if nil != item.err {
			assert.True(t, fault.IsErrMalformed(err), "%d: error class", i)
		}
	}
}

func TestMnHfSignalJSONShape(t *testing.T) {
	zero64 := strings.Repeat("0", 64)
	zero192 := strings.Repeat("0", 192)

	items := []struct {
		document string
		err      error
	}{
		{`{"version":1,"signal":{"versionBit":3,"quorumHash":"` + zero64 + `"}}`, fault.ErrJSONFieldMissing},
		{`{"signal":{"versionBit":3,"quorumHash":"` + zero64 + `","sig":"` + zero192 + `"}}`, fault.ErrJSONFieldMissing},
		{`{"version":1,"signal":null}`, fault.ErrJSONFieldMissing},
		{`{"version":1,"extra":2,"signal":{"versionBit":3,"quorumHash":"` + zero64 + `","sig":"` + zero192 + `"}}`, fault.ErrJSONShape},
		{`{"version":"1","signal":{"versionBit":3,"quorumHash":"` + zero64 + `","sig":"` + zero192 + `"}}`, fault.ErrJSONShape},
		{`{"version":65536,"signal":{"versionBit":3,"quorumHash":"` + zero64 + `","sig":"` + zero192 + `"}}`, fault.ErrJSONShape},
		{`{"version":1,"signal":{"versionBit":3,"quorumHash":1,"sig":"` + zero192 + `"}}`, fault.ErrJSONShape},
		{`{"version":1,"signal":{"versionBit":3,"quorumHash":"` + zero64 + `","sig":"` + zero192 + `"}} {}`, fault.ErrJSONShape},
		{`[1,2]`, fault.ErrJSONShape},
		{`{"version":1`, fault.ErrJSONShape},
		{`{"version":1,"VERSION":7,"signal":{"versionBit":3,"quorumHash":"` + zero64 + `","sig":"` + zero192 + `"}}`, fault.ErrJSONShape},
		{`{"version":1,"signal":{"versionBit":3,"VersionBit":27,"quorumHash":"` + zero64 + `","sig":"` + zero192 + `"}}`, fault.ErrJSONShape},
		{`{"Version":1,"signal":{"versionBit":3,"quorumHash":"` + zero64 + `","sig":"` + zero192 + `"}}`, fault.ErrJSONFieldMissing},
	}

	for i, item := range items {
		_, err := payloadrecord.FromJSON(payloadrecord.MnHfSignalTag, item.document)
		assert.Equal(t, item.err, err, "%d: document: %s", i, item.document)
		assert.True(t, fault.IsErrMalformed(err), "%d: error class", i)
	}
}

func TestMnHfSignalFromParsedObject(t *testing.T) {
	quorumHash := "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"
	sig := strings.Repeat("a0a1a2a3a4a5a6a7a8a9aaabacadaeaf", 6)

	var object map[string]interface{}
	err := json.Unmarshal([]byte(`{"version":1,"signal":{"versionBit":10,"quorumHash":"`+quorumHash+`","sig":"`+sig+`"}}`), &object)
	if nil != err {
		t.Fatalf("json error: %s", err)
	}

	p, err := payloadrecord.FromJSON(payloadrecord.MnHfSignalTag, object)
	assert.Nil(t, err, "from parsed object")

	signal, ok := p.(*payloadrecord.MnHfSignal)
	if !ok {
		t.Fatalf("did not convert to MnHfSignal")
	}
	assert.Equal(t, uint16(10), signal.Signal.VersionBit, "version bit")
	assert.Equal(t, byte(0x1f), signal.Signal.QuorumHash[31], "quorum hash stored order")
	assert.Equal(t, byte(0xaf), signal.Signal.Sig[95], "signature")

	packed, err := signal.Pack()
	assert.Nil(t, err, "pack")

	expectedHash := "48dbf1a01fe6ff698ec677115050de5f3fc688692fef2fb448d4d93d20292905"
	text, _ := packed.Hash().MarshalText()
	assert.Equal(t, expectedHash, string(text), "packed hash")

	// payload of the same type is copied, other documents are rejected
	same, err := payloadrecord.FromJSON(payloadrecord.MnHfSignalTag, signal)
	assert.Nil(t, err, "from payload")
	assert.Equal(t, signal, same, "copied payload")
	assert.False(t, signal == same, "copy must be a new value")

	_, err = payloadrecord.FromJSON(payloadrecord.AssetUnlockTag, signal)
	assert.Equal(t, fault.ErrWrongPayloadType, err, "wrong type")

	_, err = payloadrecord.FromJSON(payloadrecord.MnHfSignalTag, 42)
	assert.Equal(t, fault.ErrUnsupportedJSONDocument, err, "number document")

	_, err = payloadrecord.FromJSON(payloadrecord.InvalidTag, "{}")
	assert.Equal(t, fault.ErrUnknownPayloadType, err, "unknown tag")
}

func TestMnHfSignalValidate(t *testing.T) {
	wideRules := &payloadrecord.Rules{VersionBitsCount: 64}

	items := []struct {
		version    uint16
		versionBit uint16
		rules      *payloadrecord.Rules
		violations []string
	}{
		{1, 0, nil, nil},
		{1, 28, nil, nil},
		{1, 29, nil, []string{"signal.versionBit"}},
		{1, 29, wideRules, nil},
		{1, 63, wideRules, nil},
		{1, 64, wideRules, []string{"signal.versionBit"}},
		{0, 1, nil, []string{"version"}},
		{2, 99, nil, []string{"version", "signal.versionBit"}},
	}

	for i, item := range items {
		r := payloadrecord.MnHfSignal{
			Version: item.version,
			Signal: payloadrecord.Signal{
				VersionBit: item.versionBit,
			},
		}
		vs := r.Validate(item.rules)
		if nil == item.violations {
			assert.True(t, vs.Valid(), "%d: unexpected violations: %s", i, vs.Error())
			assert.Nil(t, vs.Err(), "%d: error", i)
			assert.True(t, payloadrecord.IsValid(&r, item.rules), "%d: is valid", i)
			continue
		}
		assert.Equal(t, item.violations, vs.Fields(), "%d: violations", i)
		assert.False(t, payloadrecord.IsValid(&r, item.rules), "%d: is valid", i)
	}

	r := payloadrecord.MnHfSignal{Version: 1, Signal: payloadrecord.Signal{VersionBit: 40}}
	vs := r.Validate(nil)
	assert.True(t, vs.Has(fault.ErrVersionBitOutOfRange), "out of range violation")
	assert.True(t, fault.IsErrInvalid(vs[0].Err), "violation class")
	assert.Equal(t, "signal.versionBit: version bit outside signalling range", vs.Error(), "message")

	assert.False(t, payloadrecord.IsValid(nil, nil), "nil payload")
}

func TestIsValidTypedNil(t *testing.T) {
	payloads := []payloadrecord.Payload{
		(*payloadrecord.MnHfSignal)(nil),
		(*payloadrecord.ProRegTx)(nil),
		(*payloadrecord.ProUpServTx)(nil),
		(*payloadrecord.ProUpRegTx)(nil),
		(*payloadrecord.ProUpRevTx)(nil),
		(*payloadrecord.Coinbase)(nil),
		(*payloadrecord.QuorumCommitment)(nil),
		(*payloadrecord.AssetLock)(nil),
		(*payloadrecord.AssetUnlock)(nil),
	}
	for i, p := range payloads {
		assert.False(t, payloadrecord.IsValid(p, nil), "%d: typed nil %T", i, p)
		_, err := payloadrecord.ToJSON(p)
		assert.Equal(t, fault.ErrNilPayload, err, "%d: to JSON %T", i, p)
	}
}

func TestMnHfSignalRequestID(t *testing.T) {
	items := []struct {
		versionBit uint16
		requestID  string
	}{
		{0, "94dd9664898958d267ba04a15b3423d5fb6be7d53a160d35c509a8747837874f"},
		{10, "e3754be3253f8b4e5db7a117c53aa998007a9d152cfc37698beaf681307c0e7c"},
		{28, "9106a935fafa893203d8635fda87a83a2bc980835e5c0dd20d17d3d772e8eea0"},
	}

	for i, item := range items {
		r := payloadrecord.MnHfSignal{
			Version: 1,
			Signal: payloadrecord.Signal{
				VersionBit: item.versionBit,
			},
		}
		text, err := r.RequestID().MarshalText()
		assert.Nil(t, err, "%d: marshal", i)
		assert.Equal(t, item.requestID, string(text), "%d: request id", i)
	}
}

func TestMnHfSignalCopy(t *testing.T) {
	r := &payloadrecord.MnHfSignal{
		Version: 1,
		Signal: payloadrecord.Signal{
			VersionBit: 7,
		},
	}
	r.Signal.QuorumHash[0] = 0x11

	c := r.Copy().(*payloadrecord.MnHfSignal)
	assert.Equal(t, r, c, "copy equal")

	c.Signal.VersionBit = 8
	c.Signal.QuorumHash[0] = 0x22
	c.Signal.Sig[95] = 0x33

	assert.Equal(t, uint16(7), r.Signal.VersionBit, "original version bit changed")
	assert.Equal(t, byte(0x11), r.Signal.QuorumHash[0], "original quorum hash changed")
	assert.Equal(t, byte(0x00), r.Signal.Sig[95], "original signature changed")
}
