package playground

import (
	"reflect"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schemas of the playground bodies keyed by name:
// pathRequest, pathResponse, mapList, mapMetadata and error.
func Schema() map[string]*jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}
	types := []struct {
		key, title string
		v          any
	}{
		{"pathRequest", "Path request", PathRequest{}},
		{"pathResponse", "Path response", PathResponse{}},
		{"mapList", "Map list", MapList{}},
		{"mapMetadata", "Map metadata", MapMetadata{}},
		{"error", "Error", ErrorResponse{}},
	}

	out := make(map[string]*jsonschema.Schema, len(types))
	for _, t := range types {
		schema := reflector.ReflectFromType(reflect.TypeOf(t.v))
		schema.Version = jsonschema.Version
		schema.Title = t.title
		out[t.key] = schema
	}

	return out
}
