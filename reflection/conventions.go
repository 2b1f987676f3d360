package reflection

import "strings"

// Conventions holds the naming conventions the schema builder recognizes.
// The defaults match the framework's historical literals; hosts may override
// them, typically via the config package.
type Conventions struct {
	// InjectMethodPrefix marks dependency-injection setter methods.
	InjectMethodPrefix string `mapstructure:"inject_method_prefix"`

	// SettingsInjectorName is the reserved settings-injector method name,
	// excluded from inject-setter classification.
	SettingsInjectorName string `mapstructure:"settings_injector_name"`

	// SettingsPropertyName is the reserved configuration-settings property
	// name, never treated as an injection target.
	SettingsPropertyName string `mapstructure:"settings_property_name"`

	// ActionMethodSuffix marks controller action methods.
	ActionMethodSuffix string `mapstructure:"action_method_suffix"`

	// RepositorySuffix names the repository type that promotes an aggregate
	// candidate to aggregate root.
	RepositorySuffix string `mapstructure:"repository_suffix"`
}

// DefaultConventions returns the built-in naming conventions.
func DefaultConventions() Conventions {
	return Conventions{
		InjectMethodPrefix:   "Inject",
		SettingsInjectorName: "InjectSettings",
		SettingsPropertyName: "settings",
		ActionMethodSuffix:   "Action",
		RepositorySuffix:     "Repository",
	}
}

// IsInjectMethodCandidate reports whether a method name structurally
// qualifies as an injection-setter candidate: it starts with the inject
// prefix, carries a real suffix, and is not the reserved settings injector.
func (c Conventions) IsInjectMethodCandidate(name string) bool {
	if name == c.SettingsInjectorName {
		return false
	}
	return strings.HasPrefix(name, c.InjectMethodPrefix) && len(name) > len(c.InjectMethodPrefix)
}

// IsActionMethod reports whether a method name follows the action-method
// naming convention.
func (c Conventions) IsActionMethod(name string) bool {
	return strings.HasSuffix(name, c.ActionMethodSuffix) && len(name) > len(c.ActionMethodSuffix)
}

// RepositoryNameFor returns the repository type name expected for the given
// qualified type name.
func (c Conventions) RepositoryNameFor(typeName string) string {
	return typeName + c.RepositorySuffix
}
