// Package textnorm prepares candidate titles for pronunciation lookup.
//
// CleanStr strips punctuation the phonetic dictionary cannot handle and
// splits hyphenated compounds; NumbersToWords and ExpandNumeral turn digit
// tokens ("1984", "9th") into the words a reader would say. Failures never
// surface as errors to the classifier: NumbersToWords degrades to
// InvalidStresses, a stress string longer than any accepted pattern.
package textnorm
