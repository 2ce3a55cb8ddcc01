package formatter

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/jwren0/jerry/internal/config"
	"github.com/jwren0/jerry/internal/errors"
	"github.com/jwren0/jerry/internal/models"
)

// Formatter renders a parsed value tree as indented JSON text.
type Formatter struct {
	cfg *config.Config
}

// NewFormatter creates a Formatter with default configuration: two-space
// indentation, keys untouched and in insertion order.
func NewFormatter() *Formatter {
	return &Formatter{cfg: config.NewConfig()}
}

// NewFormatterWithConfig creates a Formatter with custom configuration.
func NewFormatterWithConfig(cfg *config.Config) *Formatter {
	return &Formatter{cfg: cfg}
}

// Format renders the value tree to text. Key re-casing and sorting are
// applied to a transformed copy; the tree itself is never mutated.
func (f *Formatter) Format(value models.Value) (string, error) {
	value = f.transform(value)

	var (
		out []byte
		err error
	)
	if f.cfg.Indent > 0 {
		out, err = json.MarshalIndent(value, "", strings.Repeat(" ", f.cfg.Indent))
	} else {
		out, err = json.Marshal(value)
	}
	if err != nil {
		return "", errors.NewOutputError("failed to render value tree", err)
	}

	return string(out), nil
}

// transform rebuilds the tree with the configured key casing and ordering.
// With default settings the input is returned untouched.
func (f *Formatter) transform(value models.Value) models.Value {
	if f.cfg.KeyCase == config.KeyCaseNone && !f.cfg.SortKeys {
		return value
	}

	switch v := value.(type) {
	case *models.Object:
		keys := v.Keys()
		if f.cfg.SortKeys {
			keys = append([]string(nil), keys...)
			sort.Strings(keys)
		}

		object := models.NewObject()
		for _, key := range keys {
			item, _ := v.Get(key)
			// Re-cased keys can collide; last write wins, same as parsing.
			object.Set(f.cfg.TransformKey(key), f.transform(item))
		}
		return object
	case models.Array:
		array := make(models.Array, 0, len(v))
		for _, item := range v {
			array = append(array, f.transform(item))
		}
		return array
	default:
		return value
	}
}
