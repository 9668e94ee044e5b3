// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type validated struct {
	Type       string   `json:"type"`
	Chain      string   `json:"chain"`
	Valid      bool     `json:"valid"`
	Violations []string `json:"violations,omitempty"`
}

// prints the result and fails if the payload breaks any rule
func runValidate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tag, err := getTag(c)
	if nil != err {
		return err
	}

	s, err := getInput(c, m, "hex")
	if nil != err {
		return err
	}

	result, err := decodeHex(m, tag, s)
	if nil != err {
		return err
	}

	v := validated{
		Type:  result.Type,
		Chain: m.config.Chain,
		Valid: result.Valid,
	}
	for _, violation := range result.Violations {
		v.Violations = append(v.Violations, violation.String())
	}

	if err := printJson(m.w, v); nil != err {
		return err
	}

	if !v.Valid {
		m.log.Warnf("%s not valid: %s", tag, result.Violations.Error())
		return ErrPayloadNotValid
	}
	return nil
}
