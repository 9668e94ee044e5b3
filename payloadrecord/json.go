// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payloadrecord

import (
	"bytes"
	"encoding"
	"encoding/json"
	"io"
	"reflect"
	"strings"

	"github.com/bitmark-inc/specialtx/fault"
)

// FromJSON - build a payload of the given type from a JSON document
//
// the document may be raw JSON ([]byte, string or json.RawMessage),
// an already parsed object (map[string]interface{}) or a payload of
// the same type, which is copied
func FromJSON(tag TagType, document interface{}) (Payload, error) {
	p, err := New(tag)
	if nil != err {
		return nil, err
	}

	var data []byte
	switch d := document.(type) {
	case []byte:
		data = d
	case string:
		data = []byte(d)
	case json.RawMessage:
		data = d
	case map[string]interface{}:
		data, err = json.Marshal(d)
		if nil != err {
			return nil, fault.ErrJSONShape
		}
	case Payload:
		if isNil(d) {
			return nil, fault.ErrNilPayload
		}
		if d.Type() != tag {
			return nil, fault.ErrWrongPayloadType
		}
		return d.Copy(), nil
	default:
		return nil, fault.ErrUnsupportedJSONDocument
	}

	if err := p.UnmarshalJSON(data); nil != err {
		return nil, err
	}
	return p, nil
}

// ToJSON - the JSON form of a payload
func ToJSON(p Payload) ([]byte, error) {
	if isNil(p) {
		return nil, fault.ErrNilPayload
	}
	return json.Marshal(p)
}

// each UnmarshalJSON decodes into a method-less copy of its own type
// so that decodeJSON does not recurse

// UnmarshalJSON - strict JSON decode
func (signal *MnHfSignal) UnmarshalJSON(data []byte) error {
	type plain MnHfSignal
	var r plain
	if err := decodeJSON(data, &r); nil != err {
		return err
	}
	*signal = MnHfSignal(r)
	return nil
}

// UnmarshalJSON - strict JSON decode
func (register *ProRegTx) UnmarshalJSON(data []byte) error {
	type plain ProRegTx
	var r plain
	if err := decodeJSON(data, &r); nil != err {
		return err
	}
	*register = ProRegTx(r)
	return nil
}

// UnmarshalJSON - strict JSON decode
func (update *ProUpServTx) UnmarshalJSON(data []byte) error {
	type plain ProUpServTx
	var r plain
	if err := decodeJSON(data, &r); nil != err {
		return err
	}
	*update = ProUpServTx(r)
	return nil
}

// UnmarshalJSON - strict JSON decode
func (update *ProUpRegTx) UnmarshalJSON(data []byte) error {
	type plain ProUpRegTx
	var r plain
	if err := decodeJSON(data, &r); nil != err {
		return err
	}
	*update = ProUpRegTx(r)
	return nil
}

// UnmarshalJSON - strict JSON decode
func (revoke *ProUpRevTx) UnmarshalJSON(data []byte) error {
	type plain ProUpRevTx
	var r plain
	if err := decodeJSON(data, &r); nil != err {
		return err
	}
	*revoke = ProUpRevTx(r)
	return nil
}

// UnmarshalJSON - strict JSON decode
func (coinbase *Coinbase) UnmarshalJSON(data []byte) error {
	type plain Coinbase
	var r plain
	if err := decodeJSON(data, &r); nil != err {
		return err
	}
	*coinbase = Coinbase(r)
	return nil
}

// UnmarshalJSON - strict JSON decode
func (commitment *QuorumCommitment) UnmarshalJSON(data []byte) error {
	type plain QuorumCommitment
	var r plain
	if err := decodeJSON(data, &r); nil != err {
		return err
	}
	*commitment = QuorumCommitment(r)
	return nil
}

// UnmarshalJSON - strict JSON decode
func (lock *AssetLock) UnmarshalJSON(data []byte) error {
	type plain AssetLock
	var r plain
	if err := decodeJSON(data, &r); nil != err {
		return err
	}
	if 0 == len(r.CreditOutputs) {
		r.CreditOutputs = nil
	}
	*lock = AssetLock(r)
	return nil
}

// UnmarshalJSON - strict JSON decode
func (unlock *AssetUnlock) UnmarshalJSON(data []byte) error {
	type plain AssetUnlock
	var r plain
	if err := decodeJSON(data, &r); nil != err {
		return err
	}
	*unlock = AssetUnlock(r)
	return nil
}

// decode a single JSON object into v rejecting unknown keys, missing
// required keys and anything after the object
//
// malformed field values keep their own error, everything else is a
// shape error
func decodeJSON(data []byte, v interface{}) error {
	t := reflect.TypeOf(v)
	if reflect.Ptr != t.Kind() || reflect.Struct != t.Elem().Kind() {
		return fault.ErrInvalidStructPointer
	}
	if err := checkRequired(data, t.Elem()); nil != err {
		return err
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); nil != err {
		if fault.IsErrMalformed(err) {
			return err
		}
		return fault.ErrJSONShape
	}
	if _, err := decoder.Token(); io.EOF != err {
		return fault.ErrJSONShape
	}
	return nil
}

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

// anything with a text form is a single JSON string
func isLeaf(t reflect.Type) bool {
	return reflect.PtrTo(t).Implements(textUnmarshalerType)
}

// every struct field is required unless tagged omitempty; a null
// value counts as missing
//
// keys must match the field names exactly, the decoder alone would
// accept any case variant
func checkRequired(data []byte, t reflect.Type) error {
	if isLeaf(t) {
		return nil
	}

	switch t.Kind() {
	case reflect.Struct:
		var object map[string]json.RawMessage
		if err := json.Unmarshal(data, &object); nil != err || nil == object {
			return fault.ErrJSONShape
		}
		known := make(map[string]struct{}, t.NumField())
		for i := 0; i < t.NumField(); i += 1 {
			field := t.Field(i)
			name, optional, ok := jsonFieldName(field)
			if !ok {
				continue
			}
			known[name] = struct{}{}
			value, present := object[name]
			if !present || "null" == string(value) {
				if optional {
					continue
				}
				return fault.ErrJSONFieldMissing
			}
			if err := checkRequired(value, field.Type); nil != err {
				return err
			}
		}
		for name := range object {
			if _, ok := known[name]; !ok {
				return fault.ErrJSONShape
			}
		}

	case reflect.Slice:
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); nil != err {
			return fault.ErrJSONShape
		}
		for _, item := range items {
			if err := checkRequired(item, t.Elem()); nil != err {
				return err
			}
		}
	}
	return nil
}

// name of an exported field in JSON and whether it may be left out
func jsonFieldName(field reflect.StructField) (string, bool, bool) {
	if "" != field.PkgPath {
		return "", false, false
	}
	tag := field.Tag.Get("json")
	if "-" == tag {
		return "", false, false
	}
	parts := strings.Split(tag, ",")
	name := parts[0]
	if "" == name {
		name = field.Name
	}
	optional := false
	for _, option := range parts[1:] {
		if "omitempty" == option {
			optional = true
		}
	}
	return name, optional, true
}
