// Package phonetic loads CMU-style pronouncing dictionaries and reduces
// pronunciations to syllable stress strings.
//
// A small seed dictionary is compiled into the binary; a full cmudict file
// can be loaded from disk and merged over it. Lookups are case-insensitive
// and return every pronunciation variant in file order. An unknown word
// yields no variants, which is an ordinary outcome rather than an error.
package phonetic
