package theme

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/callirhoe/pkg/errors"
)

// Provider resolves variants by name.
type Provider interface {
	Style(name string) (Style, error)
	Geometry(name string) (Geometry, error)
	Language(name string) (Language, error)
	// List returns the sorted variant names of a kind.
	List(kind string) []string
}

// Registry serves the built-in variants plus TOML files found under its
// search directories. A directory is laid out as
//
//	<dir>/styles/<name>.toml
//	<dir>/geometries/<name>.toml
//	<dir>/languages/<name>.toml
//
// Files are decoded on top of the default variant of their kind, so they only
// need to name the fields they change. Files shadow built-ins of the same
// name; earlier directories shadow later ones.
type Registry struct {
	dirs []string
}

var _ Provider = (*Registry)(nil)

// NewRegistry creates a registry searching dirs in order.
func NewRegistry(dirs ...string) *Registry {
	return &Registry{dirs: dirs}
}

var subdirs = map[string]string{
	KindStyle:    "styles",
	KindGeometry: "geometries",
	KindLanguage: "languages",
}

// Style resolves a style by name.
func (r *Registry) Style(name string) (Style, error) {
	s := defaultStyle()
	found, err := r.load(KindStyle, name, &s)
	if err != nil || found {
		s.Name = name
		return s, err
	}
	if fn, ok := builtinStyles[name]; ok {
		return fn(), nil
	}
	return Style{}, r.notFound(KindStyle, name)
}

// Geometry resolves a geometry by name.
func (r *Registry) Geometry(name string) (Geometry, error) {
	g := defaultGeometry()
	found, err := r.load(KindGeometry, name, &g)
	if err != nil || found {
		g.Name = name
		return g, err
	}
	if fn, ok := builtinGeometries[name]; ok {
		return fn(), nil
	}
	return Geometry{}, r.notFound(KindGeometry, name)
}

// Language resolves a language by name.
func (r *Registry) Language(name string) (Language, error) {
	l := englishLanguage()
	found, err := r.load(KindLanguage, name, &l)
	if err != nil || found {
		l.Name = name
		return l, err
	}
	if fn, ok := builtinLanguages[name]; ok {
		return fn(), nil
	}
	return Language{}, r.notFound(KindLanguage, name)
}

// List returns the names of all variants of a kind, built-in and on disk.
func (r *Registry) List(kind string) []string {
	var names []string
	switch kind {
	case KindStyle:
		names = keys(builtinStyles)
	case KindGeometry:
		names = keys(builtinGeometries)
	case KindLanguage:
		names = keys(builtinLanguages)
	default:
		return nil
	}
	for _, dir := range r.dirs {
		matches, _ := filepath.Glob(filepath.Join(dir, subdirs[kind], "*.toml"))
		for _, m := range matches {
			names = append(names, strings.TrimSuffix(filepath.Base(m), ".toml"))
		}
	}
	slices.Sort(names)
	return slices.Compact(names)
}

func (r *Registry) load(kind, name string, v any) (bool, error) {
	if err := errors.ValidateVariantName(kind, name); err != nil {
		return false, err
	}
	for _, dir := range r.dirs {
		path := filepath.Join(dir, subdirs[kind], name+".toml")
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return false, errors.Wrap(errors.ErrCodeInvalidTheme, err, "read %s %s", kind, name)
		}
		md, err := toml.Decode(string(data), v)
		if err != nil {
			return false, errors.Wrap(errors.ErrCodeInvalidTheme, err, "decode %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return false, errors.New(errors.ErrCodeInvalidTheme, "%s: unknown field %s", path, undecoded[0])
		}
		return true, nil
	}
	return false, nil
}

func (r *Registry) notFound(kind, name string) error {
	return errors.New(errors.ErrCodeNotFound, "%s %q not found (available: %s)", kind, name, strings.Join(r.List(kind), ", "))
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
