package manifest

import (
	"reflect"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
)

// seedDefaults fills every key a run or an options table leaves out with
// the value the TTP would apply, so a partial table keeps the remaining
// defaults. Keys are named by the struct tag for the manifest's format.
func seedDefaults(doc map[string]any, tag string) map[string]any {
	if doc == nil {
		return map[string]any{}
	}

	hyper := tagged(domain.DefaultHyperparameters(), tag)
	if runs, ok := doc["runs"].([]any); ok {
		for _, run := range runs {
			if m, ok := run.(map[string]any); ok {
				fillMissing(m, hyper)
			}
		}
	}

	opts := tagged(domain.DefaultTrainingOptions(), tag)
	for _, phase := range []string{"train", "evaluate"} {
		section, ok := doc[phase].(map[string]any)
		if !ok {
			continue
		}
		if m, ok := section["options"].(map[string]any); ok {
			fillMissing(m, opts)
		}
	}
	return doc
}

func fillMissing(dst, defaults map[string]any) {
	for k, v := range defaults {
		if _, ok := dst[k]; !ok {
			dst[k] = v
		}
	}
}

// tagged maps the tag names of a struct's fields to their values. Nil
// pointers are skipped.
func tagged(v any, tag string) map[string]any {
	rv := reflect.ValueOf(v)
	rt := rv.Type()

	out := make(map[string]any, rt.NumField())
	for i := range rt.NumField() {
		name, _, _ := strings.Cut(rt.Field(i).Tag.Get(tag), ",")
		if name == "" || name == "-" {
			continue
		}
		f := rv.Field(i)
		if f.Kind() == reflect.Pointer && f.IsNil() {
			continue
		}
		out[name] = f.Interface()
	}
	return out
}

func encode(format Format, doc map[string]any) ([]byte, error) {
	if format == FormatYAML {
		return yaml.Marshal(doc)
	}
	return toml.Marshal(doc)
}
