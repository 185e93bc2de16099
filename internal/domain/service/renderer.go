package service

// TemplateRenderer defines the interface for rendering notification templates.
// Templates use {variable} placeholders; unknown placeholders pass through
// verbatim so a typo in a template never blocks a send.
type TemplateRenderer interface {
	// Render substitutes the given variables into the template.
	Render(template string, variables map[string]string) string
}
