// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/specialtx/merkle"
	"github.com/bitmark-inc/specialtx/payloadrecord"
)

type encoded struct {
	Type       string                   `json:"type"`
	Hash       merkle.Digest            `json:"hash"`
	Packed     payloadrecord.Packed     `json:"packed"`
	Valid      bool                     `json:"valid"`
	Violations payloadrecord.Violations `json:"violations,omitempty"`
}

func runEncode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tag, err := getTag(c)
	if nil != err {
		return err
	}

	s, err := getInput(c, m, "json")
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "type: %s\n", tag)
		fmt.Fprintf(m.e, "json: %s\n", s)
	}

	p, err := payloadrecord.FromJSON(tag, s)
	if nil != err {
		m.log.Warnf("JSON %s error: %s", tag, err)
		return err
	}

	packed, err := p.Pack()
	if nil != err {
		return err
	}

	violations := p.Validate(m.rules)
	result := encoded{
		Type:       tag.String(),
		Hash:       packed.Hash(),
		Packed:     packed,
		Valid:      violations.Valid(),
		Violations: violations,
	}

	m.log.Infof("encoded %s: %v  %d bytes", tag, result.Hash, len(packed))

	return printJson(m.w, result)
}
