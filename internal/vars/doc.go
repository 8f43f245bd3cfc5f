// Package vars resolves the variable mapping for a single target file by
// collecting and deep-merging layered override files.
//
// # Layering
//
// A target's variables are built from an ordered sequence of layers: one
// optional override file (by default vars.yaml) per directory level from the
// input-tree root down to the target's directory, followed by the target
// file itself. Later layers win.
//
//	input_data/vars.yaml               (global)
//	input_data/cisco_ios/vars.yaml     (per target type)
//	input_data/cisco_ios/router/vars.yaml
//	input_data/cisco_ios/router/new_york.yaml  (the target, highest precedence)
//
// # Merge Operators
//
// Besides plain recursive overrides, a layer can mutate what earlier layers
// contributed:
//
//   - "key: false" or "key__remove: true" deletes the key
//   - "key__remove: [items]" removes items from the sequence at key
//   - "key__append: [items]" appends items to the sequence at key
//   - "__delete_keys__: [a.b.c]" deletes nested keys by dot path
//
// Operator keys are consumed during the merge and never appear in the
// result. Within one layer the rules apply in the order above, so removing
// an item and re-adding it in the same layer works.
//
// # Finalization
//
// After merging, two derived variables are injected: "target_type" (the
// top-level directory the target lives under, always set) and an optional
// filename-derived variable (set only when absent).
package vars
