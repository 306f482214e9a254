// Package json builds the generic value tree consumed by jsondec decoders
// from JSON bytes, backed by goccy/go-json. Numbers are preserved as
// json.Number. Duplicate object keys resolve first-occurrence-wins; every
// suppressed occurrence is reported as a Duplicate so callers can escalate.
package json

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"
	"io"
	"strconv"

	j "github.com/goccy/go-json"
)

// Duplicate records an object key that appeared more than once. The first
// occurrence stays in the tree; the later occurrence identified here was
// dropped.
type Duplicate struct {
	Path string // JSON Pointer of the dropped member (for example /items/2/id)
	Key  string
}

// DecodeBytes builds a value tree from a JSON document.
func DecodeBytes(data []byte) (any, []Duplicate, error) {
	return DecodeReader(bytes.NewReader(data))
}

// DecodeReader builds a value tree from a JSON document read from r.
func DecodeReader(r io.Reader) (any, []Duplicate, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	b := &builder{dec: dec}
	tok, err := b.next()
	if err != nil {
		return nil, nil, err
	}
	v, err := b.value(tok, "")
	if err != nil {
		return nil, nil, err
	}
	return v, b.dups, nil
}

type builder struct {
	dec  *j.Decoder
	dups []Duplicate
}

func (b *builder) next() (j.Token, error) {
	tok, err := b.dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return tok, nil
}

func (b *builder) value(tok j.Token, path string) (any, error) {
	switch t := tok.(type) {
	case j.Delim:
		switch t {
		case '{':
			return b.object(path)
		case '[':
			return b.array(path)
		}
		return nil, fmt.Errorf("json: unexpected delimiter %q", t.String())
	case string:
		return t, nil
	case j.Number:
		return stdjson.Number(t), nil
	case float64:
		// UseNumber normally prevents this; canonicalize just in case.
		return stdjson.Number(strconv.FormatFloat(t, 'g', -1, 64)), nil
	case bool:
		return t, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("json: unexpected token %v", tok)
	}
}

func (b *builder) object(path string) (any, error) {
	out := map[string]any{}
	for {
		tok, err := b.next()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(j.Delim); ok && d == '}' {
			return out, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("json: unexpected object key token %v", tok)
		}
		vt, err := b.next()
		if err != nil {
			return nil, err
		}
		v, err := b.value(vt, path+"/"+key)
		if err != nil {
			return nil, err
		}
		if _, seen := out[key]; seen {
			// First occurrence wins; record the suppressed member.
			b.dups = append(b.dups, Duplicate{Path: path + "/" + key, Key: key})
			continue
		}
		out[key] = v
	}
}

func (b *builder) array(path string) (any, error) {
	out := []any{}
	for i := 0; ; i++ {
		tok, err := b.next()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(j.Delim); ok && d == ']' {
			return out, nil
		}
		v, err := b.value(tok, path+"/"+strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}
