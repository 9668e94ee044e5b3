// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payloadrecord

import (
	"net"
	"strconv"

	"github.com/bitmark-inc/specialtx/fault"
	"github.com/bitmark-inc/specialtx/util"
)

// KeyID - 20 byte hash160 of a public key
type KeyID [KeyIDLength]byte

// IsZero - true if every byte is zero
func (keyID KeyID) IsZero() bool {
	return keyID == KeyID{}
}

// MarshalText - 40 lowercase hex characters
func (keyID KeyID) MarshalText() ([]byte, error) {
	return util.EncodeHex(keyID[:]), nil
}

// UnmarshalText - exactly 40 hex characters
func (keyID *KeyID) UnmarshalText(s []byte) error {
	return util.DecodeFixedHex(keyID[:], s)
}

// HexBytes - variable length bytes (scripts, non-BLS signatures, bit sets)
//
// an empty value is always nil so that decoded and constructed
// records compare equal
type HexBytes []byte

// MarshalText - lowercase hex, empty string for no bytes
func (b HexBytes) MarshalText() ([]byte, error) {
	return util.EncodeHex(b), nil
}

// UnmarshalText - any even number of hex characters
func (b *HexBytes) UnmarshalText(s []byte) error {
	d, err := util.DecodeVariableHex(s)
	if nil != err {
		return err
	}
	*b = normalise(d)
	return nil
}

// deep copy keeping the nil-for-empty rule
func (b HexBytes) clone() HexBytes {
	if 0 == len(b) {
		return nil
	}
	return append(HexBytes(nil), b...)
}

func normalise(b []byte) HexBytes {
	if 0 == len(b) {
		return nil
	}
	return HexBytes(b)
}

// Service - masternode network address
//
// packed as a 16 byte IPv6 (or IPv4-mapped) address followed by a
// big endian port; text form is "host:port"
type Service struct {
	IP   [ipAddressLength]byte
	Port uint16
}

// NewService - parse "host:port" where host is a literal IPv4 or IPv6 address
func NewService(s string) (Service, error) {
	var service Service
	err := service.UnmarshalText([]byte(s))
	return service, err
}

// String - host:port form
func (service Service) String() string {
	ip := net.IP(service.IP[:])
	return net.JoinHostPort(ip.String(), strconv.Itoa(int(service.Port)))
}

// MarshalText - host:port form
func (service Service) MarshalText() ([]byte, error) {
	return []byte(service.String()), nil
}

// UnmarshalText - host:port form
func (service *Service) UnmarshalText(s []byte) error {
	host, port, err := net.SplitHostPort(string(s))
	if nil != err {
		return fault.ErrInvalidService
	}
	ip := net.ParseIP(host)
	if nil == ip {
		return fault.ErrInvalidIPAddress
	}
	p, err := strconv.ParseUint(port, 10, 16)
	if nil != err {
		return fault.ErrInvalidPort
	}
	copy(service.IP[:], ip.To16())
	service.Port = uint16(p)
	return nil
}
