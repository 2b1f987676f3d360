package reflection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassTrait(t *testing.T) {
	traits := TraitEntity | TraitAggregateRoot | TraitHasConstructor

	assert.True(t, traits.Has(TraitEntity))
	assert.True(t, traits.Has(TraitEntity|TraitAggregateRoot))
	assert.False(t, traits.Has(TraitValueObject))
	assert.False(t, traits.Has(TraitEntity|TraitValueObject))

	assert.Equal(t, "entity|aggregate_root|has_constructor", traits.String())
	assert.Equal(t, "none", ClassTrait(0).String())
}

func TestPropertyCharacteristicsVisibility(t *testing.T) {
	tests := []struct {
		name string
		c    PropertyCharacteristics
		want Visibility
	}{
		{"public", CharacteristicPublic, VisibilityPublic},
		{"protected", CharacteristicProtected, VisibilityProtected},
		{"private", CharacteristicPrivate, VisibilityPrivate},
		{"private with markers", CharacteristicPrivate | CharacteristicLazy | CharacteristicTransient, VisibilityPrivate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.Visibility())
		})
	}
}

func TestVisibilityString(t *testing.T) {
	assert.Equal(t, "public", VisibilityPublic.String())
	assert.Equal(t, "protected", VisibilityProtected.String())
	assert.Equal(t, "private", VisibilityPrivate.String())
}

func TestConventions(t *testing.T) {
	c := DefaultConventions()

	t.Run("inject method candidates", func(t *testing.T) {
		assert.True(t, c.IsInjectMethodCandidate("InjectClock"))
		assert.False(t, c.IsInjectMethodCandidate("InjectSettings"), "reserved settings injector")
		assert.False(t, c.IsInjectMethodCandidate("Inject"), "prefix alone is not a setter")
		assert.False(t, c.IsInjectMethodCandidate("Publish"))
	})

	t.Run("action methods", func(t *testing.T) {
		assert.True(t, c.IsActionMethod("ShowAction"))
		assert.False(t, c.IsActionMethod("Action"), "suffix alone is not an action")
		assert.False(t, c.IsActionMethod("Show"))
	})

	t.Run("repository naming", func(t *testing.T) {
		assert.Equal(t, "blog.PostRepository", c.RepositoryNameFor("blog.Post"))
	})

	t.Run("overridden conventions flow through the registry", func(t *testing.T) {
		custom := DefaultConventions()
		custom.InjectMethodPrefix = "Wire"

		registry := newTestRegistry(WithConventions(custom))
		registry.MustRegister(PostService{})

		schema, err := registry.SchemaOf(PostService{})
		assert.NoError(t, err)
		assert.False(t, schema.HasInjectMethods(), "Inject-prefixed methods no longer qualify")
	})
}
