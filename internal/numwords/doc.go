// Package numwords spells decimal digit strings as English words.
//
// Cardinal, ordinal, and year readings are produced as lower-case words
// separated by single spaces ("one hundred and twenty three", "twenty first",
// "nineteen oh five") so callers can split the result into tokens. Inputs
// are plain decimal digit strings; anything else is rejected with
// ErrMalformed, and values beyond the uint64 range with ErrOutOfRange.
package numwords
