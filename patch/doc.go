// Package patch applies RFC 6902 JSON patches and RFC 7386 merge patches
// to IR documents.
//
// The patches operate on the JSON encoding of a document. Object keys that
// survive a patch keep their position from the input document; keys added
// by the patch follow them.
package patch
