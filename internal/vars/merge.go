package vars

import (
	"fmt"
	"reflect"
	"strings"
)

// Operator keys recognized during a merge. They instruct the engine to
// mutate the accumulated mapping instead of assigning a value, and are
// never copied into the result.
const (
	removeSuffix  = "__remove"
	appendSuffix  = "__append"
	deleteKeysKey = "__delete_keys__"
)

// Merge folds an ordered layer sequence into a single mapping, lowest
// precedence first. The input layers are never mutated or aliased; the
// returned mapping is owned by the caller.
//
// Within each layer the merge rules apply in a fixed order:
//
//  1. full key removal ("key: false", "key__remove: true")
//  2. sequence item removal ("key__remove: [items]")
//  3. sequence item append ("key__append: [items]")
//  4. nested key deletion ("__delete_keys__: [dot.paths]")
//  5. plain recursive merge of everything else
//
// The only merge-time error is appending to or with a non-sequence value;
// it carries the offending layer's source path when one is set.
func Merge(layers []Layer) (map[string]any, error) {
	acc := map[string]any{}
	for _, layer := range layers {
		if err := applyLayer(acc, layer.Data); err != nil {
			if layer.Source != "" {
				return nil, fmt.Errorf("%s: %w", layer.Source, err)
			}
			return nil, err
		}
	}
	return acc, nil
}

// applyLayer merges one overlay mapping into acc, mutating acc in place.
func applyLayer(acc, overlay map[string]any) error {
	applyKeyRemovals(acc, overlay)
	applyItemRemovals(acc, overlay)
	if err := applyAppends(acc, overlay); err != nil {
		return err
	}
	applyDeleteKeys(acc, overlay)

	for key, val := range overlay {
		if isOperatorKey(key) || val == false {
			// Already handled by the rules above.
			continue
		}
		if sub, ok := val.(map[string]any); ok {
			if cur, ok := acc[key].(map[string]any); ok {
				// Nested mappings merge recursively with full operator
				// support at every depth.
				if err := applyLayer(cur, sub); err != nil {
					return err
				}
				continue
			}
		}
		// Everything else is plain replacement, including sequence over
		// sequence. Only the __append/__remove forms are additive.
		acc[key] = deepCopy(val)
	}
	return nil
}

func isOperatorKey(key string) bool {
	return key == deleteKeysKey ||
		strings.HasSuffix(key, removeSuffix) ||
		strings.HasSuffix(key, appendSuffix)
}

// applyKeyRemovals deletes keys the overlay marks with a false value or a
// "key__remove: true" directive. Deleting an absent key is a no-op.
func applyKeyRemovals(acc, overlay map[string]any) {
	for key, val := range overlay {
		if val == false && !isOperatorKey(key) {
			delete(acc, key)
			continue
		}
		if base, ok := strings.CutSuffix(key, removeSuffix); ok && val == true {
			delete(acc, base)
		}
	}
}

// applyItemRemovals removes listed items, by value equality, from the
// accumulator's sequence for the base key. Items not present are ignored,
// as is a base value that is not a sequence.
func applyItemRemovals(acc, overlay map[string]any) {
	for key, val := range overlay {
		base, ok := strings.CutSuffix(key, removeSuffix)
		if !ok {
			continue
		}
		items, ok := val.([]any)
		if !ok {
			continue
		}
		cur, ok := acc[base].([]any)
		if !ok {
			continue
		}
		kept := make([]any, 0, len(cur))
		for _, v := range cur {
			if !containsValue(items, v) {
				kept = append(kept, v)
			}
		}
		acc[base] = kept
	}
}

// applyAppends appends the overlay's items to the accumulator's sequence
// for the base key, creating the sequence when absent. Duplicates are kept.
// Appending a non-sequence, or appending to an existing non-sequence value,
// is an error.
func applyAppends(acc, overlay map[string]any) error {
	for key, val := range overlay {
		base, ok := strings.CutSuffix(key, appendSuffix)
		if !ok {
			continue
		}
		items, ok := val.([]any)
		if !ok {
			return fmt.Errorf("key %q: only sequences can be appended, got %T", key, val)
		}
		switch cur := acc[base].(type) {
		case nil:
			acc[base] = deepCopy(items)
		case []any:
			for _, item := range items {
				cur = append(cur, deepCopy(item))
			}
			acc[base] = cur
		default:
			return fmt.Errorf("key %q: cannot append to %T, existing value is not a sequence", key, cur)
		}
	}
	return nil
}

// applyDeleteKeys deletes nested keys named by the overlay's
// "__delete_keys__" sequence of dot-separated paths. Paths are resolved
// against the accumulator; a path that runs through a missing key or a
// non-mapping value is silently skipped, since layers are written
// independently and cannot assume what earlier layers contributed.
func applyDeleteKeys(acc, overlay map[string]any) {
	paths, ok := overlay[deleteKeysKey].([]any)
	if !ok {
		return
	}
	for _, p := range paths {
		dotted, ok := p.(string)
		if !ok {
			continue
		}
		deletePath(acc, strings.Split(dotted, "."))
	}
}

func deletePath(m map[string]any, parts []string) {
	cur := m
	for i, part := range parts {
		if i == len(parts)-1 {
			delete(cur, part)
			return
		}
		next, ok := cur[part].(map[string]any)
		if !ok {
			return
		}
		cur = next
	}
}

// containsValue reports whether the sequence holds an element equal to v.
// Equality is by value, so nested sequences and mappings compare by content.
func containsValue(seq []any, v any) bool {
	for _, item := range seq {
		if reflect.DeepEqual(item, v) {
			return true
		}
	}
	return false
}

// deepCopy clones YAML-shaped values (mappings, sequences, scalars) so the
// accumulator never shares memory with a source layer.
func deepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = deepCopy(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = deepCopy(val)
		}
		return out
	default:
		return v
	}
}
