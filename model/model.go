// Package model provides the embeddable base types that classify a struct
// inside the managed object model. Embedding one of these bases is how a
// type declares its persistence semantics to the reflection layer, in the
// same way ORMs use an embeddable base struct for common model behavior.
package model

// Entity marks a type as having identity-based equality and lifecycle.
// Embed it in a struct to classify that struct as an entity:
//
//	type Post struct {
//		model.Entity
//		Title string
//	}
type Entity struct{}

// ValueObject marks a type as having value-based equality. A type must not
// embed both Entity and ValueObject; schema construction rejects that.
type ValueObject struct{}

// Singleton marks a type as having singleton scope in the object manager.
// Types without it default to prototype scope.
type Singleton struct{}

// Controller marks a type as an action controller. Methods whose names end
// with the action suffix become action methods eligible for per-argument
// validation bindings.
type Controller struct{}

// Aggregate is the marker interface for aggregate root candidates. An entity
// implementing it is classified as an aggregate root if and only if a
// repository type following the repository naming convention is registered
// for it.
type Aggregate interface {
	AggregateBoundary()
}

// Repository is the embeddable base for repository types. A registered
// repository named "<Entity>Repository" promotes the matching aggregate
// candidate to aggregate root.
type Repository struct{}
