package config

// Profile names accepted by the -profile flag and the "builds" map.
const (
	ProfileDevelopment = "development"
	ProfileTesting     = "testing"
	ProfileProduction  = "production"
)

// CSSEntry names one stylesheet input of the application.
type CSSEntry struct {
	Path string `json:"path"`
}

// BuildProfile holds the per-profile overrides of an application build.
// Pointer fields distinguish "unset" from an explicit false.
type BuildProfile struct {
	MinifyJS      *bool `json:"minifyJs"`
	MinifyCSS     *bool `json:"minifyCss"`
	FailOnMissing *bool `json:"failOnMissing"`
}

// App is the application descriptor (app.json).
type App struct {
	// Name is the application's root namespace, e.g. "MyApp".
	Name string `json:"name"`
	// Entry is the qualified name of the starting class. When empty it
	// defaults to "<Name>.Application".
	Entry string `json:"entry"`
	// MainView is the application's main view, shorthand permitted.
	MainView string `json:"mainView"`
	// Framework points at the framework checkout. Overridable by flag and
	// workspace descriptor.
	Framework string `json:"framework"`
	// ClassPath lists the application source roots, relative to the
	// descriptor's directory unless absolute.
	ClassPath []string `json:"classpath"`
	// ExtraPaths lists additional package roots indexed as framework origin.
	ExtraPaths []string `json:"extraPaths"`
	// CSS lists stylesheet inputs in emission order.
	CSS []CSSEntry `json:"css"`
	// Builds maps profile name to its overrides.
	Builds map[string]BuildProfile `json:"builds"`

	// Dir is the directory the descriptor was loaded from. Filled by the
	// loader, not part of the file format.
	Dir string `json:"-"`
}

// Workspace is the workspace descriptor (workspace.json).
type Workspace struct {
	// BuildDir receives the build output. Default "build".
	BuildDir string `json:"buildDir"`
	// Framework is the fallback framework path when app.json has none.
	Framework string `json:"framework"`
	// PackagesDir holds shared packages indexed as framework origin.
	PackagesDir string `json:"packagesDir"`
}

// Effective is the merged view of one build: application descriptor plus
// the selected profile's overrides.
type Effective struct {
	App           App
	Profile       string
	MinifyJS      bool
	MinifyCSS     bool
	FailOnMissing bool
}

// Merge resolves the effective settings for the named profile. Unset
// profile fields fall back to the profile's conventional defaults:
// production minifies and fails on missing dependencies, the other
// profiles do neither.
func Merge(app App, profile string) Effective {
	eff := Effective{
		App:           app,
		Profile:       profile,
		MinifyJS:      profile == ProfileProduction,
		MinifyCSS:     profile == ProfileProduction,
		FailOnMissing: profile == ProfileProduction,
	}
	p, ok := app.Builds[profile]
	if !ok {
		return eff
	}
	if p.MinifyJS != nil {
		eff.MinifyJS = *p.MinifyJS
	}
	if p.MinifyCSS != nil {
		eff.MinifyCSS = *p.MinifyCSS
	}
	if p.FailOnMissing != nil {
		eff.FailOnMissing = *p.FailOnMissing
	}
	return eff
}

// EntryName returns the qualified name of the application's starting class.
func (a App) EntryName() string {
	if a.Entry != "" {
		return a.Entry
	}
	if a.Name != "" {
		return a.Name + ".Application"
	}
	return ""
}
