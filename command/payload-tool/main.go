// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/specialtx/chain"
	"github.com/bitmark-inc/specialtx/configuration"
	"github.com/bitmark-inc/specialtx/payloadrecord"
)

type metadata struct {
	config     *configuration.Configuration
	parameters chain.Parameters
	rules      *payloadrecord.Rules
	log        *logger.L
	verbose    bool
	r          io.Reader
	e          io.Writer
	w          io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := newApp(os.Stdin, os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}

func newApp(r io.Reader, w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "payload-tool"
	app.Usage = "special transaction payload codec"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	typeFlag := cli.StringFlag{
		Name:  "type, t",
		Value: "",
		Usage: "*payload type `NAME` or number (see: types)",
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: " Lua configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "chain, n",
			Value: "",
			Usage: " validate for `CHAIN` [mainnet|testnet|devnet|regtest]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "decode",
			Usage:     "decode a hex payload to JSON and validate it",
			ArgsUsage: "[HEX|-]\n   (* = required)",
			Flags: []cli.Flag{
				typeFlag,
				cli.StringFlag{
					Name:  "hex, x",
					Value: "",
					Usage: " packed payload `HEX`",
				},
			},
			Action: runDecode,
		},
		{
			Name:      "encode",
			Usage:     "encode a JSON payload to hex",
			ArgsUsage: "[JSON|-]\n   (* = required)",
			Flags: []cli.Flag{
				typeFlag,
				cli.StringFlag{
					Name:  "json, j",
					Value: "",
					Usage: " payload `JSON`",
				},
			},
			Action: runEncode,
		},
		{
			Name:      "validate",
			Usage:     "check a hex payload against the chain rules",
			ArgsUsage: "[HEX|-]\n   (* = required)",
			Flags: []cli.Flag{
				typeFlag,
				cli.StringFlag{
					Name:  "hex, x",
					Value: "",
					Usage: " packed payload `HEX`",
				},
			},
			Action: runValidate,
		},
		{
			Name:   "types",
			Usage:  "list the payload types",
			Action: runTypes,
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		verbose := c.GlobalBool("verbose")

		options := configuration.Default()

		file := c.GlobalString("config-file")
		if "" != file {
			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}
			var err error
			options, err = configuration.GetConfiguration(file)
			if nil != err {
				return err
			}
		}

		if chainName := c.GlobalString("chain"); "" != chainName {
			options.Chain = strings.ToLower(chainName)
		}

		parameters, err := options.Parameters()
		if nil != err {
			return err
		}
		rules, err := payloadrecord.NewRules(parameters)
		if nil != err {
			return err
		}

		if verbose {
			options.Logging.Levels[logger.DefaultTag] = "debug"
		}
		if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
			return err
		}
		if err := logger.Initialise(options.Logging); nil != err {
			return err
		}

		log := logger.New("payload-tool")
		log.Infof("version: %s", version)
		log.Debugf("chain: %s  version bits: %d", parameters.Name, rules.VersionBitsCount)

		c.App.Metadata["config"] = &metadata{
			config:     options,
			parameters: parameters,
			rules:      rules,
			log:        log,
			verbose:    verbose,
			r:          r,
			e:          e,
			w:          c.App.Writer,
		}

		return nil
	}

	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["config"].(*metadata); ok {
			logger.Finalise()
		}
		return nil
	}

	return app
}
