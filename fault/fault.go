// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	// buffer shorter than a field requires
	OutOfBoundsError GenericError

	// structurally broken input: trailing bytes, bad hex, bad JSON shape
	MalformedError GenericError

	// well-formed but outside the permitted range
	InvalidError GenericError

	NotFoundError GenericError
	ProcessError  GenericError
)

// common errors - keep in alphabetic order
var (
	ErrBitSetPadding           = InvalidError("bit set has padding bits set")
	ErrBitSetSize              = InvalidError("bit set size does not match its data")
	ErrBitSetSizeMismatch      = InvalidError("signers and valid members sizes differ")
	ErrConfigurationNotTable   = ProcessError("configuration file must return a table")
	ErrCreditOutputsEmpty      = InvalidError("credit outputs are empty")
	ErrEvoRequiresVersion2     = InvalidError("evo masternode requires payload version 2")
	ErrFieldNotPermitted       = InvalidError("field not permitted for this version or type")
	ErrHexCharacter            = MalformedError("hex text contains a non-hex character")
	ErrHexLength               = MalformedError("hex text length does not match field width")
	ErrInvalidAddress          = MalformedError("invalid address")
	ErrInvalidAmount           = InvalidError("amount must be positive")
	ErrInvalidChain            = NotFoundError("invalid chain")
	ErrInvalidHeight           = InvalidError("height must be positive")
	ErrInvalidIPAddress        = MalformedError("invalid IP address")
	ErrInvalidMasternodeType   = InvalidError("invalid masternode type")
	ErrInvalidMode             = InvalidError("invalid mode")
	ErrInvalidOperatorReward   = InvalidError("operator reward out of range")
	ErrInvalidPort             = MalformedError("invalid port")
	ErrInvalidRevocationReason = InvalidError("invalid revocation reason")
	ErrInvalidService          = MalformedError("invalid service address")
	ErrInvalidStructPointer    = ProcessError("invalid struct pointer")
	ErrInvalidVersionBitsCount = ProcessError("version bits count out of range")
	ErrJSONFieldMissing        = MalformedError("JSON required field is missing")
	ErrJSONShape               = MalformedError("JSON does not match payload shape")
	ErrLengthExceedsBuffer     = MalformedError("declared length exceeds remaining buffer")
	ErrLogCountTooSmall        = ProcessError("log file count below logger minimum")
	ErrLogFileNotPlainName     = ProcessError("log file is not a plain name")
	ErrLogSizeTooSmall         = ProcessError("log file size below logger minimum")
	ErrMissingPayloadSignature = InvalidError("payload signature is missing")
	ErrMissingScript           = InvalidError("script is missing")
	ErrNilPayload              = InvalidError("payload is nil")
	ErrNilVerifier             = ProcessError("signature verifier is nil")
	ErrNonCanonicalCompactSize = MalformedError("non-canonical compact size")
	ErrOutOfBounds             = OutOfBoundsError("read beyond end of buffer")
	ErrQuorumIndexNotPermitted = InvalidError("quorum index not permitted for commitment version")
	ErrSignatureVerification   = InvalidError("signature verification failed")
	ErrTrailingBytes           = MalformedError("trailing bytes after payload")
	ErrUnknownPayloadType      = MalformedError("unknown payload type")
	ErrUnsupportedJSONDocument = MalformedError("unsupported JSON document type")
	ErrUnsupportedVersion      = InvalidError("unsupported payload version")
	ErrValueTooLarge           = MalformedError("encoded value too large for field")
	ErrVersionBitOutOfRange    = InvalidError("version bit outside signalling range")
	ErrWrongPayloadType        = MalformedError("payload type does not match tag")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e OutOfBoundsError) Error() string { return string(e) }
func (e MalformedError) Error() string   { return string(e) }
func (e InvalidError) Error() string     { return string(e) }
func (e NotFoundError) Error() string    { return string(e) }
func (e ProcessError) Error() string     { return string(e) }

// determine the class of an error
// wrapped errors are unwrapped until a classified error is found
func IsErrOutOfBounds(e error) bool { var t OutOfBoundsError; return errors.As(e, &t) }
func IsErrMalformed(e error) bool   { var t MalformedError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool     { var t InvalidError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool    { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool     { var t ProcessError; return errors.As(e, &t) }
