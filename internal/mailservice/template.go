package mailservice

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*
var templateFS embed.FS

// message is a rendered email: one subject and two alternative bodies.
type message struct {
	Subject string
	Plain   string
	HTML    string
}

func NewTemplate() *Template {
	return &Template{parsed: make(map[string]*template.Template)}
}

func (tp *Template) lookup(name string) (*template.Template, error) {
	tp.mu.Lock()
	defer tp.mu.Unlock()

	if t, ok := tp.parsed[name]; ok {
		return t, nil
	}

	t, err := template.New(name).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("could not parse template %s: %w", name, err)
	}

	tp.parsed[name] = t
	return t, nil
}

// Render executes the subject, plainBody and htmlBody blocks of the named template.
func (tp *Template) Render(name string, data any) (*message, error) {
	t, err := tp.lookup(name)
	if err != nil {
		return nil, err
	}

	var msg message
	for _, part := range []struct {
		block string
		dst   *string
	}{
		{"subject", &msg.Subject},
		{"plainBody", &msg.Plain},
		{"htmlBody", &msg.HTML},
	} {
		buf := new(bytes.Buffer)
		if err := t.ExecuteTemplate(buf, part.block, data); err != nil {
			return nil, fmt.Errorf("render %s of %s: %w", part.block, name, err)
		}
		*part.dst = buf.String()
	}

	return &msg, nil
}
