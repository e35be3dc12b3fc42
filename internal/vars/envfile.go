package vars

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/unkn0wn-root/restkit/internal/errdef"
)

const envNameDefault = "default"

// LoadEnvFile reads a variable map for the given environment name. Dotenv
// files carry a single unnamed environment; YAML files hold either a flat
// string map or named environments (top-level map of maps).
func LoadEnvFile(path, env string) (map[string]string, error) {
	if IsDotEnvPath(path) {
		return LoadDotEnv(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeFilesystem, err, "read env file %s", path)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errdef.Wrap(errdef.CodeParse, err, "parse env file %s", path)
	}

	nested, ok := nestedEnvs(raw)
	if !ok {
		return flatEnv(raw), nil
	}

	name := env
	if name == "" {
		if len(nested) == 1 {
			for only := range nested {
				name = only
			}
		} else {
			name = envNameDefault
		}
	}
	values, found := nested[name]
	if !found {
		return nil, errdef.New(errdef.CodeConfig, "environment %q not found in %s", name, path)
	}
	return values, nil
}

// nestedEnvs succeeds only when every top-level value is itself a map, which
// distinguishes named-environment files from flat variable maps.
func nestedEnvs(raw map[string]any) (map[string]map[string]string, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	out := make(map[string]map[string]string, len(raw))
	for name, value := range raw {
		inner, ok := value.(map[string]any)
		if !ok {
			return nil, false
		}
		out[name] = flatEnv(inner)
	}
	return out, true
}

func flatEnv(raw map[string]any) map[string]string {
	out := make(map[string]string, len(raw))
	for key, value := range raw {
		if value == nil {
			out[key] = ""
			continue
		}
		out[key] = fmt.Sprint(value)
	}
	return out
}
