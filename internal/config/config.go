// Package config resuelve valores de configuración por sección y clave,
// a partir de un archivo YAML y de variables de entorno.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// envSeparator separa sección y clave en variables como REPOSITORY_APIS__URL_BASE_PERSONAS.
const envSeparator = "__"

// Configuration es la búsqueda anidada que consumen los repositorios.
type Configuration interface {
	Lookup(section, key string) (string, bool)
}

// Settings guarda valores por sección y clave.
type Settings map[string]map[string]string

// Lookup devuelve el valor de section/key y si existe.
func (s Settings) Lookup(section, key string) (string, bool) {
	keys, ok := s[section]
	if !ok {
		return "", false
	}
	v, ok := keys[key]
	return v, ok
}

// Set asigna value a section/key, creando la sección si hace falta.
func (s Settings) Set(section, key, value string) {
	keys, ok := s[section]
	if !ok {
		keys = make(map[string]string)
		s[section] = keys
	}
	keys[key] = value
}

// Parse lee settings desde un documento YAML de dos niveles.
func Parse(data []byte) (Settings, error) {
	var raw map[string]map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	out := make(Settings, len(raw))
	for section, keys := range raw {
		for k, v := range keys {
			out.Set(section, k, v)
		}
	}
	return out, nil
}

// LoadFile lee settings desde path. Un archivo inexistente produce settings vacíos.
func LoadFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Settings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("archivo %s: %w", path, err)
	}
	return s, nil
}

// FromEnviron extrae settings de entradas KEY=value con forma SECCION__CLAVE.
// Los nombres se pasan a minúsculas; el resto de variables se ignora.
func FromEnviron(environ []string) Settings {
	out := Settings{}
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		section, key, ok := strings.Cut(name, envSeparator)
		if !ok || section == "" || key == "" {
			continue
		}
		out.Set(strings.ToLower(section), strings.ToLower(key), value)
	}
	return out
}

// Merge combina settings; los valores de overrides posteriores prevalecen.
func Merge(base Settings, overrides ...Settings) Settings {
	out := Settings{}
	for _, s := range append([]Settings{base}, overrides...) {
		for section, keys := range s {
			for k, v := range keys {
				out.Set(section, k, v)
			}
		}
	}
	return out
}
