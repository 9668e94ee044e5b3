// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bytebuffer - exact width field access over a byte slice
//
// A Reader walks a cursor forward through a packed record; a Writer
// appends the same field kinds in the same widths.  Multi-byte
// integers are little endian except where a method says otherwise.
package bytebuffer
