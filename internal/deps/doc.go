// Package deps checks for the external binaries wikiturtles shells out to.
// Today that is only the browser used to render logos.
package deps
