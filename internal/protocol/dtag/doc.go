// Package dtag owns the ccnb DTAG dictionary.
//
// Ownership boundary:
// - standard DTAG codes and their element names
// - code to name and name to code lookups
//
// Tag framing and the literal-name fallback belong to the codec that
// consumes Lookup.
package dtag
