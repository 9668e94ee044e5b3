// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payloadrecord_test

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/bitmark-inc/specialtx/bls"
	"github.com/bitmark-inc/specialtx/fault"
	"github.com/bitmark-inc/specialtx/merkle"
	"github.com/bitmark-inc/specialtx/payloadrecord"
	"github.com/bitmark-inc/specialtx/util"
)

// pay to public key hash script
var testScript = join([]byte{0x76, 0xa9, 0x14}, repeat(0x55, 20), []byte{0x88, 0xac})

func repeat(b byte, n int) []byte {
	return bytes.Repeat([]byte{b}, n)
}

func join(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

func digest(b byte) merkle.Digest {
	var d merkle.Digest
	copy(d[:], repeat(b, len(d)))
	return d
}

func signature(b byte) bls.Signature {
	var s bls.Signature
	copy(s[:], repeat(b, len(s)))
	return s
}

func publicKey(b byte) bls.PublicKey {
	var k bls.PublicKey
	copy(k[:], repeat(b, len(k)))
	return k
}

func keyID(b byte) payloadrecord.KeyID {
	var k payloadrecord.KeyID
	copy(k[:], repeat(b, len(k)))
	return k
}

func service(t *testing.T, s string) payloadrecord.Service {
	sv, err := payloadrecord.NewService(s)
	if nil != err {
		t.Fatalf("service: %q  error: %s", s, err)
	}
	return sv
}

func hexDigest(d merkle.Digest) string {
	text, _ := d.MarshalText()
	return string(text)
}

// pack, compare, unpack, compare again and run the same through JSON
//
// returns the packed record for further checks
func checkRecord(t *testing.T, title string, r payloadrecord.Payload, expected []byte, expectedHash string) payloadrecord.Packed {
	t.Helper()

	packed, err := r.Pack()
	if nil != err {
		t.Fatalf("%s: pack error: %s", title, err)
	}

	if !bytes.Equal(packed, expected) {
		t.Errorf("%s: pack record: %x  expected: %x", title, packed, expected)
		t.Errorf("*** GENERATED Packed:\n%s", util.FormatBytes("expected", packed))
		t.Fatal("fatal error")
	}

	if hash := hexDigest(packed.Hash()); hash != expectedHash {
		t.Errorf("%s: packed hash: %s  expected: %s", title, hash, expectedHash)
	}

	unpacked, err := payloadrecord.Unpack(r.Type(), packed)
	if nil != err {
		t.Fatalf("%s: unpack error: %s", title, err)
	}

	if !reflect.DeepEqual(r, unpacked) {
		t.Errorf("%s: different, original: %v  recovered: %v", title, r, unpacked)
	}

	b, err := payloadrecord.ToJSON(r)
	if nil != err {
		t.Fatalf("%s: json error: %s", title, err)
	}
	t.Logf("%s: JSON: %s", title, b)

	fromJSON, err := payloadrecord.FromJSON(r.Type(), b)
	if nil != err {
		t.Fatalf("%s: from JSON error: %s", title, err)
	}
	if !reflect.DeepEqual(r, fromJSON) {
		t.Errorf("%s: JSON different, original: %v  recovered: %v", title, r, fromJSON)
	}

	checkPackedData(t, title, r.Type(), packed)
	return packed
}

// every truncation must fail and so must any extra byte
func checkPackedData(t *testing.T, title string, tag payloadrecord.TagType, packed payloadrecord.Packed) {
	t.Helper()

	for i := 0; i < len(packed); i += 1 {
		p, err := payloadrecord.Unpack(tag, packed[:i])
		if nil == err {
			t.Errorf("%s: unexpected success unpacking %d of %d bytes: %v", title, i, len(packed), p)
			continue
		}
		if !fault.IsErrOutOfBounds(err) && !fault.IsErrMalformed(err) {
			t.Errorf("%s: truncated at %d: unexpected error: %s", title, i, err)
		}
	}

	extra := append(append(payloadrecord.Packed{}, packed...), 0x00)
	if _, err := payloadrecord.Unpack(tag, extra); fault.ErrTrailingBytes != err {
		t.Errorf("%s: extra byte error: %v  expected: %s", title, err, fault.ErrTrailingBytes)
	}
}
