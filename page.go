package dynstring

import "fmt"

const pageTemplate = "<html><head><title>Dynamic String</title></head><body><h1>The saved string is %s</h1></body></html>"

// Render places value into the page verbatim. The value is not HTML escaped,
// so markup stored in the parameter is served as markup.
func Render(value string) string {
	return fmt.Sprintf(pageTemplate, value)
}
