// SPDX-License-Identifier: ISC

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError

// common errors - keep in alphabetic order
var (
	ErrBrokenParentLink = InvalidError("broken parent link")
	ErrCountMismatch    = InvalidError("node count mismatch")
	ErrDuplicateKey     = ExistsError("duplicate key")
	ErrHeightMismatch   = InvalidError("cached height mismatch")
	ErrKeyNotFound      = NotFoundError("key not found")
	ErrKeysOutOfOrder   = InvalidError("keys out of order")
	ErrOutOfBalance     = InvalidError("balance factor out of range")
	ErrRankMismatch     = InvalidError("rank counts mismatch")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }

// IsErrExists - check the error class
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - check the error class
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrNotFound - check the error class
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
