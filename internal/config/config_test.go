package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDescriptor(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadApp(t *testing.T) {
	ctx := context.Background()

	t.Run("comments and trailing commas are tolerated", func(t *testing.T) {
		path := writeDescriptor(t, "app.json", `{
    // application namespace
    "name": "MyApp",
    /* the landing view */
    "mainView": "Main",
    "classpath": ["app", "lib",],
}`)
		app := LoadApp(ctx, path)
		assert.Equal(t, "MyApp", app.Name)
		assert.Equal(t, "Main", app.MainView)
		assert.Equal(t, []string{"app", "lib"}, app.ClassPath)
		assert.Equal(t, filepath.Dir(path), app.Dir)
	})

	t.Run("unparsable descriptor falls back to defaults", func(t *testing.T) {
		path := writeDescriptor(t, "app.json", `{ this is not json at all`)
		app := LoadApp(ctx, path)
		assert.Equal(t, DefaultApp().ClassPath, app.ClassPath)
		assert.Empty(t, app.Name)
	})

	t.Run("missing descriptor falls back to defaults", func(t *testing.T) {
		app := LoadApp(ctx, filepath.Join(t.TempDir(), "absent.json"))
		assert.Equal(t, DefaultApp().ClassPath, app.ClassPath)
	})

	t.Run("wrong shape falls back to defaults", func(t *testing.T) {
		path := writeDescriptor(t, "app.json", `{"classpath": "not-a-list"}`)
		app := LoadApp(ctx, path)
		assert.Equal(t, DefaultApp().ClassPath, app.ClassPath)
	})
}

func TestLoadWorkspace(t *testing.T) {
	ctx := context.Background()

	t.Run("valid workspace", func(t *testing.T) {
		path := writeDescriptor(t, "workspace.json", `{
    "buildDir": "dist", // output
    "framework": "../ext"
}`)
		ws := LoadWorkspace(ctx, path)
		assert.Equal(t, "dist", ws.BuildDir)
		assert.Equal(t, "../ext", ws.Framework)
	})

	t.Run("broken workspace falls back to defaults", func(t *testing.T) {
		path := writeDescriptor(t, "workspace.json", `[[[`)
		ws := LoadWorkspace(ctx, path)
		assert.Equal(t, DefaultWorkspace().BuildDir, ws.BuildDir)
	})
}

func TestMerge(t *testing.T) {
	boolPtr := func(v bool) *bool { return &v }

	t.Run("production defaults", func(t *testing.T) {
		eff := Merge(App{}, ProfileProduction)
		assert.True(t, eff.MinifyJS)
		assert.True(t, eff.MinifyCSS)
		assert.True(t, eff.FailOnMissing)
	})

	t.Run("development defaults", func(t *testing.T) {
		eff := Merge(App{}, ProfileDevelopment)
		assert.False(t, eff.MinifyJS)
		assert.False(t, eff.MinifyCSS)
		assert.False(t, eff.FailOnMissing)
	})

	t.Run("profile overrides replace defaults", func(t *testing.T) {
		app := App{Builds: map[string]BuildProfile{
			ProfileProduction: {MinifyJS: boolPtr(false)},
		}}
		eff := Merge(app, ProfileProduction)
		assert.False(t, eff.MinifyJS)
		// Untouched fields keep the profile defaults.
		assert.True(t, eff.MinifyCSS)
		assert.True(t, eff.FailOnMissing)
	})

	t.Run("unknown profile gets conservative defaults", func(t *testing.T) {
		eff := Merge(App{}, ProfileTesting)
		assert.False(t, eff.MinifyJS)
	})
}

func TestEntryName(t *testing.T) {
	assert.Equal(t, "MyApp.Application", App{Name: "MyApp"}.EntryName())
	assert.Equal(t, "MyApp.Boot", App{Name: "MyApp", Entry: "MyApp.Boot"}.EntryName())
	assert.Equal(t, "", App{}.EntryName())
}
