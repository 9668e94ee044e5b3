// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payloadrecord

import (
	"github.com/bitmark-inc/specialtx/chain"
	"github.com/bitmark-inc/specialtx/fault"
)

// MaxVersionBitsCount - signalling bits cannot exceed a 64 bit mask
const MaxVersionBitsCount = 64

// Rules - the network dependent limits used by Validate
type Rules struct {
	VersionBitsCount uint16 // versionBit must be below this
}

// DefaultRules - limits of a standard network
func DefaultRules() *Rules {
	return &Rules{
		VersionBitsCount: chain.DefaultVersionBitsCount,
	}
}

// NewRules - limits for a particular chain
func NewRules(parameters chain.Parameters) (*Rules, error) {
	if 0 == parameters.VersionBitsCount || parameters.VersionBitsCount > MaxVersionBitsCount {
		return nil, fault.ErrInvalidVersionBitsCount
	}
	return &Rules{
		VersionBitsCount: parameters.VersionBitsCount,
	}, nil
}

// nil rules select the defaults
func rulesOrDefault(rules *Rules) *Rules {
	if nil == rules {
		return DefaultRules()
	}
	return rules
}
