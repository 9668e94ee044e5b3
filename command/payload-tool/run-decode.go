// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runDecode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tag, err := getTag(c)
	if nil != err {
		return err
	}

	s, err := getInput(c, m, "hex")
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "type: %s\n", tag)
		fmt.Fprintf(m.e, "hex: %s\n", s)
	}

	result, err := decodeHex(m, tag, s)
	if nil != err {
		return err
	}

	m.log.Infof("decoded %s: %v  valid: %t", tag, result.Hash, result.Valid)

	return printJson(m.w, result)
}
