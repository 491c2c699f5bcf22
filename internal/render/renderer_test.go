package render

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/jeffleon2/draftea-checkout-service/internal/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReais(t *testing.T) {
	tests := map[int64]string{
		0:         "R$ 0,00",
		5:         "R$ 0,05",
		9999:      "R$ 99,99",
		123456:    "R$ 1.234,56",
		100000000: "R$ 1.000.000,00",
		-1050:     "-R$ 10,50",
	}

	for cents, expected := range tests {
		assert.Equal(t, expected, Reais(cents))
	}
}

func TestNew_EmbeddedPages(t *testing.T) {
	r, err := New(templates.HTML(), "")

	require.NoError(t, err)
	for _, name := range []string{"show_boleto_data.html", "thanks.html", "refused.html", "one_click.html"} {
		resolved, err := r.Resolve(name)
		require.NoError(t, err)
		assert.Equal(t, name, resolved)
	}
}

func TestResolve(t *testing.T) {
	fsys := fstest.MapFS{
		"thanks.html":              {Data: []byte("thanks")},
		"thanks_special_item.html": {Data: []byte("special thanks")},
	}
	r, err := New(fsys, "")
	require.NoError(t, err)

	resolved, err := r.Resolve("thanks_special_item.html", "thanks.html")
	require.NoError(t, err)
	assert.Equal(t, "thanks_special_item.html", resolved)

	resolved, err = r.Resolve("thanks_other_item.html", "thanks.html")
	require.NoError(t, err)
	assert.Equal(t, "thanks.html", resolved)
}

func TestResolve_NoneDefined(t *testing.T) {
	r, err := New(fstest.MapFS{"thanks.html": {Data: []byte("thanks")}}, "")
	require.NoError(t, err)

	resolved, err := r.Resolve("refused_item.html", "refused.html")

	assert.Empty(t, resolved)
	assert.ErrorContains(t, err, "refused_item.html, refused.html")
}

func TestNew_OverrideDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "thanks.html"), []byte("custom {{reais 9999}}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "thanks_vip.html"), []byte("vip"), 0o644))

	r, err := New(fstest.MapFS{"thanks.html": {Data: []byte("default")}}, dir)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, r.Template().ExecuteTemplate(&out, "thanks.html", nil))
	assert.Equal(t, "custom R$ 99,99", out.String())
	resolved, err := r.Resolve("thanks_vip.html", "thanks.html")
	require.NoError(t, err)
	assert.Equal(t, "thanks_vip.html", resolved)
}

func TestNew_InvalidTemplate(t *testing.T) {
	_, err := New(fstest.MapFS{"broken.html": {Data: []byte("{{if}}")}}, "")

	assert.Error(t, err)
}
