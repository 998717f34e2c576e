// Package codingtree builds Huffman codes for the symbols of a text and
// encodes the text under that code as a string of '0' and '1' characters.
//
// The pipeline runs in four stages:
//
//     CountFrequencies → BuildTree → GenerateCodeMap → Encoder.Encode
//
// New runs all four stages at once.  The codes produced are not canonical;
// they are the root-to-leaf paths of the tree built by BuildTree, with '0'
// for each left branch and '1' for each right branch.
//
// Each stage logs a debug trace through github.com/op/go-logging under the
// module name LogModule.  The module is set to logging.WARNING when the
// package is initialized, so the trace stays silent unless the caller raises
// the level.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package codingtree
