// Package template implements notification template rendering.
package template

import (
	"io"

	"nearbite/internal/domain/service"

	"github.com/valyala/fasttemplate"
)

type fastTemplateRenderer struct{}

// NewRenderer creates a TemplateRenderer backed by fasttemplate.
func NewRenderer() service.TemplateRenderer {
	return &fastTemplateRenderer{}
}

// Render substitutes {variable} placeholders into the template. Placeholders
// with no matching variable are emitted verbatim so a template typo degrades
// the message instead of blocking the send.
func (r *fastTemplateRenderer) Render(template string, variables map[string]string) string {
	return fasttemplate.ExecuteFuncString(template, "{", "}", func(w io.Writer, tag string) (int, error) {
		if value, ok := variables[tag]; ok {
			return w.Write([]byte(value))
		}

		return w.Write([]byte("{" + tag + "}"))
	})
}
