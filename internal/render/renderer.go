package render

import (
	"fmt"
	"html/template"
	"io/fs"
	"path/filepath"
	"strings"
)

// Renderer is the set of checkout pages. Pages in the override directory
// replace the embedded ones with the same file name, and slug specific pages
// such as thanks_{slug}.html can be added there.
type Renderer struct {
	tmpl *template.Template
}

func New(fsys fs.FS, overrideDir string) (*Renderer, error) {
	tmpl, err := template.New("").Funcs(Funcs()).ParseFS(fsys, "*.html")
	if err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}

	if overrideDir != "" {
		files, err := filepath.Glob(filepath.Join(overrideDir, "*.html"))
		if err != nil {
			return nil, fmt.Errorf("error listing templates in %s: %w", overrideDir, err)
		}
		if len(files) > 0 {
			if tmpl, err = tmpl.ParseFiles(files...); err != nil {
				return nil, fmt.Errorf("error parsing templates in %s: %w", overrideDir, err)
			}
		}
	}

	return &Renderer{tmpl: tmpl}, nil
}

// Template is the parsed set, ready for gin's SetHTMLTemplate.
func (r *Renderer) Template() *template.Template {
	return r.tmpl
}

// Resolve returns the first of names that is defined.
func (r *Renderer) Resolve(names ...string) (string, error) {
	for _, name := range names {
		if r.tmpl.Lookup(name) != nil {
			return name, nil
		}
	}
	return "", fmt.Errorf("no template defined among %s", strings.Join(names, ", "))
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"reais": Reais,
	}
}

// Reais formats cents as Brazilian currency, e.g. 123456 as "R$ 1.234,56".
func Reais(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	units := fmt.Sprintf("%d", cents/100)
	var b strings.Builder
	for i, digit := range units {
		if i > 0 && (len(units)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}

	return fmt.Sprintf("%sR$ %s,%02d", sign, b.String(), cents%100)
}
