// Package ciphers defines the contracts and error values for the toolkit's
// keyed-cipher processing surface: stream and block cipher templates, the
// grid-based ciphers and the validation failures they report.
package ciphers
