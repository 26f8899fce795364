// Package cryptography implements the keyed-cipher processing framework and
// the concrete cipher engines: the Feistel demonstration network, IDEA, RC6,
// the wide-word ARC4 stream cipher, the Vernam one-time pad and the grid
// based Cardan grille and two-square ciphers.
//
// These are didactic implementations. No claim of resistance to real attacks
// is made.
package cryptography
