// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Decode, encode and validate special transaction payloads
//
// e.g. to decode a hard fork signal and show any rule violations:
//
//   payload-tool --chain=testnet decode --type=MnHfSignal 01000500…
//
// hex or JSON may be given as a flag, an argument or "-" for stdin
package main
