// Package title formats accepted titles for the outside world: the padded
// form the logo generator reads, the encyclopedia link, and the body of a
// status post.
package title
