// Package yaml builds the generic value tree consumed by jsondec decoders
// from YAML documents, backed by yaml.v3. Scalars normalize to the JSON
// value model: numbers become json.Number and mapping keys become strings,
// so one decoder works over JSON and YAML input alike.
package yaml

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	yamlv3 "gopkg.in/yaml.v3"
)

// DecodeBytes builds a value tree from the first document in data. An empty
// input decodes to null.
func DecodeBytes(data []byte) (any, error) {
	return DecodeReader(bytes.NewReader(data))
}

// DecodeReader builds a value tree from the first document read from r.
func DecodeReader(r io.Reader) (any, error) {
	dec := yamlv3.NewDecoder(r)
	var node any
	if err := dec.Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	return normalize(node)
}

func normalize(v any) (any, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case bool:
		return t, nil
	case string:
		return t, nil
	case int:
		return stdjson.Number(strconv.Itoa(t)), nil
	case int64:
		return stdjson.Number(strconv.FormatInt(t, 10)), nil
	case uint64:
		return stdjson.Number(strconv.FormatUint(t, 10)), nil
	case float64:
		return stdjson.Number(strconv.FormatFloat(t, 'g', -1, 64)), nil
	case time.Time:
		// yaml.v3 resolves !!timestamp scalars; carry them as RFC3339 text.
		return t.Format(time.RFC3339Nano), nil
	case []any:
		out := make([]any, 0, len(t))
		for _, e := range t {
			ne, err := normalize(e)
			if err != nil {
				return nil, err
			}
			out = append(out, ne)
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			ne, err := normalize(e)
			if err != nil {
				return nil, err
			}
			out[k] = ne
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			ks, ok := k.(string)
			if !ok {
				ks = fmt.Sprint(k)
			}
			ne, err := normalize(e)
			if err != nil {
				return nil, err
			}
			out[ks] = ne
		}
		return out, nil
	default:
		return nil, fmt.Errorf("yaml: unsupported value %T", v)
	}
}
