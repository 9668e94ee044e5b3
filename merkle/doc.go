// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package merkle - 32 byte double SHA-256 digests
//
// used for quorum hashes, transaction references, merkle roots and
// the signing hashes of special transaction payloads
package merkle
