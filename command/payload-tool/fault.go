// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/specialtx/fault"
)

// common errors - keep in alphabetic order
const (
	ErrMissingInput    = fault.ProcessError("no payload given")
	ErrMissingType     = fault.ProcessError("payload type is required")
	ErrPayloadNotValid = fault.InvalidError("payload is not valid")
)
