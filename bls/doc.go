// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bls - serialised BLS12-381 keys and signatures
//
// only the fixed width byte forms live here; checking a signature is
// delegated to a Verifier supplied by the caller
package bls
