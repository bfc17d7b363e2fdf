package extract

import "strings"

// Role keywords of the categorized collections.
const (
	RoleController = "controller"
	RoleModel      = "model"
	RoleView       = "view"
	RoleStore      = "store"
	RoleProfile    = "profile"
)

// Resolve expands a shorthand class name to its qualified form. It is a
// pure function of its three inputs with exactly three cases:
//
//	".Foo"        -> appNS + "." + role + ".Foo"
//	"Foo"         -> appNS + "." + role + ".Foo"
//	"Ns.sub.Foo"  -> unchanged
//
// An empty shorthand resolves to "".
func Resolve(shorthand, role, appNS string) string {
	if shorthand == "" {
		return ""
	}
	if strings.HasPrefix(shorthand, ".") {
		return appNS + "." + role + shorthand
	}
	if !strings.Contains(shorthand, ".") {
		return appNS + "." + role + "." + shorthand
	}
	return shorthand
}
