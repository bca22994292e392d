// Package galois implements arithmetic over the binary Galois fields
// GF(2^m) used by the BCH codec engine.
//
// A Field is built from a primitive polynomial of degree m and holds the
// classic log/antilog table pair: alpha[i] is the field element α^i, and
// the log table inverts that mapping. All products, quotients and inverses
// reduce to additions modulo 2^m - 1 over those tables.
//
// Field construction validates the polynomial: a polynomial whose root does
// not generate the full multiplicative group (a non-primitive polynomial)
// produces a short cycle during table generation and is rejected.
//
// Supported orders are m = 5 through 15. Callers that do not care about the
// polynomial can pass the per-order default from DefaultPoly.
package galois
