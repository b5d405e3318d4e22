// Package token holds the lexical rules of the block format.
//
// [Lex] splits text into [Line] values, each with its indentation width,
// trimmed content and [LineKind]. The kind is decided once per line so the
// parser never repeats ad hoc prefix checks.
//
// The scalar table is shared by both directions of the conversion:
// [ClassifyScalar] and [Unquote] turn bare value text into a typed scalar,
// [NeedsQuote], [Ambiguous], [Quote] and [FormatNumber] decide how a
// scalar is written back.
package token
