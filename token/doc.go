// Package token splits XML documents into tokens.
//
// [Tokenize] turns a whole document into start tags, end tags, character
// data, comments, CDATA sections, processing instructions and doctype
// declarations. Character data and attribute values come out entity decoded;
// everything else is kept verbatim. Every token carries a [Pos] which can
// report line and column.
//
// [Escaper] is the inverse of the decoding done here: it writes character
// data and attribute values back with the entities and character references
// a given [format.EntityMode] and output character set call for.
package token
