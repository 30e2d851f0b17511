package web

import (
	_ "embed"
)

// StylesheetPath is where the linked style variant serves the stylesheet.
const StylesheetPath = "/static/site.css"

//go:embed static/site.css
var stylesheet string

// Stylesheet returns the embedded site stylesheet.
func Stylesheet() string {
	return stylesheet
}
