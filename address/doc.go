// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - base58check text forms of key ids and payout scripts
//
// the version byte depends on whether the chain is a test chain
package address
