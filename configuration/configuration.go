// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/specialtx/chain"
	"github.com/bitmark-inc/specialtx/fault"
	"github.com/bitmark-inc/specialtx/util"
)

// basic defaults, the log directory is relative to the configuration file
const (
	defaultChain = chain.Mainnet

	defaultLogDirectory = "log"
	defaultLogFile      = "payload-tool.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	maxVersionBitsCount = 64

	// logger.Initialise rejects anything smaller
	minimumLogCount = 10
	minimumLogSize  = 20000
)

// Configuration - everything the payload tool reads from its file
type Configuration struct {
	Chain            string               `gluamapper:"chain" json:"chain"`
	VersionBitsCount int                  `gluamapper:"version_bits_count" json:"version_bits_count"` // 0 => chain default
	Logging          logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Default - configuration used when no file is given
//
// logs go to a directory under the system temporary directory
func Default() *Configuration {
	return &Configuration{
		Chain:            defaultChain,
		VersionBitsCount: 0,
		Logging: logger.Configuration{
			Directory: filepath.Join(os.TempDir(), "payload-tool"),
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: "warn",
			},
		},
	}
}

// GetConfiguration - read, default and verify a configuration file
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// directory holding the configuration file
	baseDirectory, _ := filepath.Split(configurationFileName)

	options := Default()
	options.Logging.Directory = defaultLogDirectory

	if err := ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	if err := options.check(); nil != err {
		return nil, err
	}

	options.Logging.Directory = util.EnsureAbsolute(baseDirectory, options.Logging.Directory)

	// log file must be a plain name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fault.ErrLogFileNotPlainName
	}

	return options, nil
}

// normalise the chain name and range check the numeric values
func (options *Configuration) check() error {
	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return fault.ErrInvalidChain
	}
	if options.VersionBitsCount < 0 || options.VersionBitsCount > maxVersionBitsCount {
		return fault.ErrInvalidVersionBitsCount
	}
	if options.Logging.Count < minimumLogCount {
		return fault.ErrLogCountTooSmall
	}
	if options.Logging.Size < minimumLogSize {
		return fault.ErrLogSizeTooSmall
	}
	return nil
}

// Parameters - the chain parameters with any configured override
func (options *Configuration) Parameters() (chain.Parameters, error) {
	if err := options.check(); nil != err {
		return chain.Parameters{}, err
	}
	parameters, err := chain.Lookup(options.Chain)
	if nil != err {
		return chain.Parameters{}, err
	}
	if 0 != options.VersionBitsCount {
		parameters.VersionBitsCount = uint16(options.VersionBitsCount)
	}
	return parameters, nil
}
