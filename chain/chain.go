// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"strings"

	"github.com/bitmark-inc/specialtx/fault"
)

// names of all chains
const (
	Mainnet = "mainnet"
	Testnet = "testnet"
	Devnet  = "devnet"
	Regtest = "regtest"
)

// DefaultVersionBitsCount - number of block version bits usable for signalling
const DefaultVersionBitsCount = 29

// Parameters - per chain values that affect payload validation
type Parameters struct {
	Name             string
	Testing          bool
	VersionBitsCount uint16 // versionBit must be below this
}

// read only after initialisation
var parameters = map[string]Parameters{
	Mainnet: {Name: Mainnet, Testing: false, VersionBitsCount: DefaultVersionBitsCount},
	Testnet: {Name: Testnet, Testing: true, VersionBitsCount: DefaultVersionBitsCount},
	Devnet:  {Name: Devnet, Testing: true, VersionBitsCount: DefaultVersionBitsCount},
	Regtest: {Name: Regtest, Testing: true, VersionBitsCount: DefaultVersionBitsCount},
}

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Mainnet, Testnet, Devnet, Regtest:
		return true
	default:
		return false
	}
}

// Lookup - parameters for a chain, name is case insensitive
func Lookup(name string) (Parameters, error) {
	p, ok := parameters[strings.ToLower(name)]
	if !ok {
		return Parameters{}, fault.ErrInvalidChain
	}
	return p, nil
}
