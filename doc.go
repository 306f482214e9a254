// Package jsondec provides:
//
// - Composable, reusable Decoder[T] values that convert a generic JSON value
//   tree (nil / bool / json.Number / string / []any / map[string]any) into
//   strongly-typed application values
// - A context-tracked error model via DecodeError (a frame chain recording
//   key, index, and subtree snapshot for every traversal step above the
//   failure site)
// - Field/object combinators, applicative record composition, and
//   positional array-as-tuple decoding with shift/drop-rest semantics
// - Byte-level tree builders under source/ (JSON via goccy/go-json, YAML via
//   yaml.v3) with a pinned first-occurrence-wins duplicate-key policy
//
// Design policy:
// - Keep only public APIs in the root package; tree builders under source/,
//   ready-made conversions under codec/, and the CLI under cmd/jsondec.
// - Decoders are immutable and safe for concurrent reuse; the only per-call
//   state (the array cursor) is local to a single decode invocation.
// - The engine never panics for expected failures; it returns structured
//   DecodeError values.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	d := jsondec.Bind[Pet](jsondec.Object().
//		Field("name", jsondec.Any(jsondec.String())).
//		Field("age", jsondec.Any(jsondec.Int())))
//	pet, err := jsondec.ParseBytes(ctx, d, data)
package jsondec
