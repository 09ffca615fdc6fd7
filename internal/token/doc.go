// Package token defines the lexical vocabulary of sqlex.
//
// Invariants:
//   - Kind is a packed int32: value slot (bits 0-7), precedence (8-11),
//     category flags (12-17), identifier sub-kind flags (18-23) and the
//     assignment/comparison family flags (24-25).
//   - Only sentinel tokens (EOF and lexical errors) carry a negative Kind.
//     None (0) is never produced for a real token.
//   - Token.Text is the bare source slice; Leading/Trailing trivia keep the
//     exact surrounding bytes, so rendering a full stream (EOF included)
//     reproduces the input byte-for-byte.
//   - Precedence and category are pure functions of Kind. The only
//     context-dependent reading is Assign vs Equal, decided by the parser's
//     token stream, never here.
package token
