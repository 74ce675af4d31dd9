package rlnc

import "errors"

// ErrCorruptPadding is wrapped and returned by Combination.Size when a
// decoded combination's data buffer does not end in a valid 0x80/0x81
// padding marker once trailing zero bytes are skipped. It is a recoverable
// error: the Combination is left untouched.
var ErrCorruptPadding = errors.New("rlnc: corrupt padding in decoded combination")

// ErrDivideByZero is panicked by Combination.Div when asked to divide by
// the zero coefficient, which has no multiplicative inverse. This is a
// contract violation (spec §7), not a recoverable error.
var ErrDivideByZero = errors.New("rlnc: division by zero coefficient")

// ErrTablesUninitialized would indicate a GF(2^8) operation ran before the
// package's one-shot table initialization completed. It is unreachable in
// practice (tables are built in an init() function) and exists only to
// document the contract from spec §5: field ops assume the tables are
// already built.
var ErrTablesUninitialized = errors.New("rlnc: GF(2^8) tables not initialized")
