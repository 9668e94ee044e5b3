// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/specialtx/chain"
	"github.com/bitmark-inc/specialtx/configuration"
	"github.com/bitmark-inc/specialtx/fault"
)

func TestGetConfiguration(t *testing.T) {
	fileName := filepath.Join("testdata", "payload-tool.conf")

	options, err := configuration.GetConfiguration(fileName)
	if nil != err {
		t.Fatalf("configuration error: %s", err)
	}

	assert.Equal(t, chain.Testnet, options.Chain, "chain lower cased")
	assert.Equal(t, 32, options.VersionBitsCount, "version bits count")
	assert.Equal(t, 131072, options.Logging.Size, "log size")
	assert.Equal(t, 20, options.Logging.Count, "log count")
	assert.Equal(t, "tool.log", options.Logging.File, "log file")
	assert.Equal(t, "info", options.Logging.Levels["DEFAULT"], "default level")
	assert.Equal(t, "debug", options.Logging.Levels["decode"], "decode level")

	absolute, _ := filepath.Abs("testdata")
	assert.Equal(t, filepath.Join(absolute, "logs"), options.Logging.Directory, "log directory")

	parameters, err := options.Parameters()
	assert.Nil(t, err, "parameters")
	assert.Equal(t, chain.Testnet, parameters.Name, "parameters chain")
	assert.Equal(t, uint16(32), parameters.VersionBitsCount, "overridden bits count")
	assert.True(t, parameters.Testing, "testing chain")
}

func TestGetConfigurationErrors(t *testing.T) {
	items := []struct {
		file string
		err  error
	}{
		{"bad-chain.conf", fault.ErrInvalidChain},
		{"bad-bits.conf", fault.ErrInvalidVersionBitsCount},
		{"bad-log-count.conf", fault.ErrLogCountTooSmall},
		{"bad-log-file.conf", fault.ErrLogFileNotPlainName},
		{"bad-log-size.conf", fault.ErrLogSizeTooSmall},
		{"not-table.conf", fault.ErrConfigurationNotTable},
	}

	for _, item := range items {
		_, err := configuration.GetConfiguration(filepath.Join("testdata", item.file))
		assert.Equal(t, item.err, err, "file: %s", item.file)
	}

	_, err := configuration.GetConfiguration(filepath.Join("testdata", "missing.conf"))
	assert.NotNil(t, err, "missing file")
}

func TestDefault(t *testing.T) {
	options := configuration.Default()
	assert.Equal(t, chain.Mainnet, options.Chain, "default chain")

	parameters, err := options.Parameters()
	assert.Nil(t, err, "parameters")
	assert.Equal(t, uint16(chain.DefaultVersionBitsCount), parameters.VersionBitsCount, "chain default bits")

	options.Chain = "nowhere"
	_, err = options.Parameters()
	assert.Equal(t, fault.ErrInvalidChain, err, "unknown chain")

	options = configuration.Default()
	options.Logging.Count = 9
	_, err = options.Parameters()
	assert.Equal(t, fault.ErrLogCountTooSmall, err, "log count")
}
