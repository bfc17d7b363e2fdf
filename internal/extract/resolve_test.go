package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	t.Run("leading-dot shorthand", func(t *testing.T) {
		assert.Equal(t, "MyApp.view.Main", Resolve(".Main", RoleView, "MyApp"))
		assert.Equal(t, "MyApp.controller.Root", Resolve(".Root", RoleController, "MyApp"))
	})

	t.Run("bare shorthand", func(t *testing.T) {
		assert.Equal(t, "MyApp.view.Main", Resolve("Main", RoleView, "MyApp"))
		assert.Equal(t, "MyApp.store.Users", Resolve("Users", RoleStore, "MyApp"))
	})

	t.Run("already qualified names pass through", func(t *testing.T) {
		assert.Equal(t, "Other.view.Main", Resolve("Other.view.Main", RoleView, "MyApp"))
		assert.Equal(t, "Ext.data.Store", Resolve("Ext.data.Store", RoleStore, "MyApp"))
	})

	t.Run("empty shorthand resolves to empty", func(t *testing.T) {
		assert.Equal(t, "", Resolve("", RoleView, "MyApp"))
	})

	t.Run("wildcards keep their suffix", func(t *testing.T) {
		// Wildcards are always written qualified, so they pass through.
		assert.Equal(t, "MyApp.view.*", Resolve("MyApp.view.*", RoleView, "MyApp"))
	})
}
