// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/specialtx/payloadrecord"
)

type typeEntry struct {
	Tag  payloadrecord.TagType `json:"tag"`
	Name string                `json:"name"`
}

func runTypes(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	types := make([]typeEntry, 0, payloadrecord.InvalidTag-1)
	for tag := payloadrecord.NullTag + 1; tag < payloadrecord.InvalidTag; tag += 1 {
		types = append(types, typeEntry{
			Tag:  tag,
			Name: tag.String(),
		})
	}

	return printJson(m.w, types)
}
