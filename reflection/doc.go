// Package reflection extracts and caches class schemas for the managed
// object model.
//
// # Overview
//
// Given a registered type, the package reconciles three metadata sources
// (native reflection, declarative markers from struct tags and class
// annotations, and inline documentation blocks) into one immutable
// ClassSchema describing:
//
//   - classification flags: entity, value object, aggregate root,
//     controller, singleton, has-constructor, has-inject-methods,
//     has-inject-properties
//   - persistable properties: type, collection element type, default value,
//     cascade directive, visibility, lazy/transient/injectable markers, and
//     validator specifications
//   - methods: per-parameter descriptors, dependency-injection candidates,
//     and validator-argument bindings
//
// The schema builder only describes. Persistence mapping, validator
// execution, and object construction are performed by the consumers of the
// schema, not here.
//
// # Metadata priority
//
// Parameter types resolve through an ordered fallback chain: the native
// reflect type first, then a declared type hint from the class annotations,
// then an @param documentation tag. The documentation parse is the most
// expensive step and runs only when the earlier sources come up empty, which
// for Go code means parameters declared as the empty interface.
//
// # Caching
//
// Schemas and their materialized Property/Method objects are cached per
// registry, keyed by fully-qualified type name. Construction either
// fully succeeds or fails; a partially-built schema is never published.
// Caches are append-only with first-writer-wins semantics under concurrency.
//
// # Example
//
//	registry := reflection.NewRegistry()
//	registry.MustRegister(Post{}, reflection.WithConstructor(NewPost))
//	registry.MustRegister(PostRepository{})
//
//	schema, err := registry.SchemaOf(Post{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	if schema.IsAggregateRoot() {
//		for _, prop := range schema.Properties() {
//			fmt.Println(prop.Name(), prop.TypeName())
//		}
//	}
package reflection
