package extract

import (
	"context"

	"github.com/vk/classpack/internal/jsparse"
)

// categorized maps configuration keys to the role used when resolving
// their shorthand entries. Order matters: dependency lists keep the
// declaration order of the source file.
var categorized = []struct {
	key  string
	role string
}{
	{"controllers", RoleController},
	{"models", RoleModel},
	{"views", RoleView},
	{"stores", RoleStore},
	{"profiles", RoleProfile},
}

// Declaration is the extracted relationship set of one registered class.
type Declaration struct {
	// Name is the qualified name the file registers.
	Name string
	// Extends is the supertype's qualified name, "" when absent.
	Extends string
	// Dependencies lists every declared dependency in declaration order,
	// de-duplicated, shorthand resolved. Wildcard entries (trailing ".*")
	// are preserved verbatim.
	Dependencies []string
}

// FromFile extracts the relationships of the file's registration call.
// appNS is the application's root namespace used for shorthand resolution.
// A file without a registration call yields a nil Declaration and no error.
func FromFile(ctx context.Context, file *jsparse.SourceFile, appNS string) (*Declaration, error) {
	reg, err := file.FindRegistration(ctx, nil)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, nil
	}
	return FromRegistration(reg, appNS), nil
}

// FromRegistration reads a located registration call. Split out from
// FromFile so the indexer's already-located registration can be reused.
func FromRegistration(reg *jsparse.Registration, appNS string) *Declaration {
	decl := &Declaration{Name: reg.Name}
	seen := make(map[string]bool)
	add := func(name string) {
		if name == "" || name == decl.Name || seen[name] {
			return
		}
		seen[name] = true
		decl.Dependencies = append(decl.Dependencies, name)
	}

	decl.Extends = reg.StringField("extend")
	add(decl.Extends)
	add(reg.StringField("override"))

	// Generic lists carry qualified (or wildcard) names as written.
	for _, name := range reg.ListField("requires") {
		add(name)
	}
	for _, name := range reg.ListField("uses") {
		add(name)
	}

	for _, c := range categorized {
		for _, shorthand := range reg.ListField(c.key) {
			add(Resolve(shorthand, c.role, appNS))
		}
	}
	return decl
}
