package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsLookup(t *testing.T) {
	s := Settings{"repository_apis": {"url_base_personas": "http://host/api"}}

	v, ok := s.Lookup("repository_apis", "url_base_personas")
	assert.True(t, ok)
	assert.Equal(t, "http://host/api", v)

	_, ok = s.Lookup("repository_apis", "otra")
	assert.False(t, ok)

	_, ok = s.Lookup("otra_seccion", "url_base_personas")
	assert.False(t, ok)

	var vacio Settings
	_, ok = vacio.Lookup("repository_apis", "url_base_personas")
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	s, err := Parse([]byte("repository_apis:\n  url_base_personas: http://host/api-personas/1.0/\n  vacio: \"\"\n"))
	require.NoError(t, err)

	v, ok := s.Lookup("repository_apis", "url_base_personas")
	require.True(t, ok)
	assert.Equal(t, "http://host/api-personas/1.0/", v)

	v, ok = s.Lookup("repository_apis", "vacio")
	require.True(t, ok)
	assert.Empty(t, v)
}

func TestParse_YAMLInvalido(t *testing.T) {
	_, err := Parse([]byte("repository_apis: [a, b"))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appsettings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("repository_apis:\n  url_base_personas: http://x\n"), 0o644))

	s, err := LoadFile(path)
	require.NoError(t, err)
	v, ok := s.Lookup("repository_apis", "url_base_personas")
	assert.True(t, ok)
	assert.Equal(t, "http://x", v)
}

func TestLoadFile_Inexistente(t *testing.T) {
	s, err := LoadFile(filepath.Join(t.TempDir(), "no-existe.yaml"))
	require.NoError(t, err)
	assert.Empty(t, s)
}

func TestFromEnviron(t *testing.T) {
	s := FromEnviron([]string{
		"REPOSITORY_APIS__URL_BASE_PERSONAS=http://env/api?a=b",
		"PATH=/usr/bin",
		"__SIN_SECCION=x",
		"SIN_CLAVE__=x",
		"sin-igual",
	})

	v, ok := s.Lookup("repository_apis", "url_base_personas")
	require.True(t, ok)
	assert.Equal(t, "http://env/api?a=b", v)
	assert.Len(t, s, 1)
}

func TestMerge(t *testing.T) {
	base := Settings{"repository_apis": {"url_base_personas": "http://archivo", "otra": "1"}}
	env := Settings{"repository_apis": {"url_base_personas": ""}}

	got := Merge(base, env)

	v, ok := got.Lookup("repository_apis", "url_base_personas")
	require.True(t, ok)
	assert.Empty(t, v)
	v, _ = got.Lookup("repository_apis", "otra")
	assert.Equal(t, "1", v)

	// base no se modifica
	v, _ = base.Lookup("repository_apis", "url_base_personas")
	assert.Equal(t, "http://archivo", v)
}
