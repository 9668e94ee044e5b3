// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package payloadrecord - special transaction payloads
//
// Each special transaction type carries one payload record.  A record
// is converted between three forms:
//
//   Packed   exact binary layout, fixed field order and widths
//   JSON     hex for byte fields, plain numbers for integers
//   struct   one Go type per payload kind, all implementing Payload
//
// Decoding is strict: a record must be consumed exactly.  Range checks
// are kept out of decoding and reported by Validate, so a structurally
// sound record from an untrusted peer can still be inspected.
package payloadrecord
