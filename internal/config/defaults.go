package config

// DefaultApp is the built-in application descriptor used when app.json is
// absent or unparsable. It assumes sources under ./app and no stylesheets.
func DefaultApp() App {
	return App{
		ClassPath: []string{"app"},
		Builds:    map[string]BuildProfile{},
		Dir:       ".",
	}
}

// DefaultWorkspace is the built-in workspace descriptor.
func DefaultWorkspace() Workspace {
	return Workspace{
		BuildDir: "build",
	}
}
