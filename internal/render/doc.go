// Package render produces the turtle logo for an accepted title.
//
// ChromeRenderer loads the logo generator in headless Chrome through go-rod
// with the padded title in the URL fragment and screenshots the viewport.
// The screenshot is then cut down to the logo by CropLogo, which needs no
// browser and is what most of the tests exercise.
package render
