// Package constraints provides type constraints shared by the parsers.
package constraints

// Byteseq is a parser input: a string or a byte slice, including named types based on them.
type Byteseq interface {
	~string | ~[]byte
}
