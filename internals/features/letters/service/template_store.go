// internals/features/letters/service/template_store.go
package service

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"suratku_backend/internals/features/letters/model"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	// nl2br: escape dulu baru ganti newline, supaya isi surat tetap aman
	// dari injeksi HTML tapi line break eksplisit tetap dirender.
	"nl2br": func(s string) template.HTML {
		escaped := template.HTMLEscapeString(s)
		return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
	},
	"upper": strings.ToUpper,
	"inc":   func(i int) int { return i + 1 },
}

// TemplateStore memegang template surat yang diparse sekali saat startup.
// Satu jenis surat = satu file templates/<jenis>.gohtml.
type TemplateStore struct {
	templates map[model.LetterType]*template.Template
}

func NewTemplateStore() (*TemplateStore, error) {
	store := &TemplateStore{templates: make(map[model.LetterType]*template.Template)}
	for _, lt := range model.SupportedLetterTypes() {
		name := lt.String() + ".gohtml"
		tpl, err := template.New(name).Funcs(templateFuncs).ParseFS(templateFS, "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, lt, err)
		}
		store.templates[lt] = tpl
	}
	return store, nil
}

// Render mengeksekusi template jenis surat tertentu menjadi dokumen HTML utuh.
func (s *TemplateStore) Render(letterType model.LetterType, data interface{}) (string, error) {
	tpl, ok := s.templates[letterType]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, letterType)
	}
	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, letterType.String()+".gohtml", data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.String(), nil
}
