package jsparse

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func find(t *testing.T, src string) *Registration {
	t.Helper()
	file := NewSourceFile("test.js", []byte(src))
	t.Cleanup(file.Close)
	reg, err := file.FindRegistration(context.Background(), nil)
	require.NoError(t, err)
	return reg
}

func TestFindRegistration(t *testing.T) {
	t.Run("simple registration", func(t *testing.T) {
		reg := find(t, `Ext.define('MyApp.Foo', { extend: 'MyApp.Base' });`)
		require.NotNil(t, reg)
		assert.Equal(t, "MyApp.Foo", reg.Name)
		assert.Equal(t, "MyApp.Base", reg.StringField("extend"))
	})

	t.Run("nested braces and strings do not confuse extraction", func(t *testing.T) {
		reg := find(t, `
// Ext.define('Commented.Out', {});
var s = "Ext.define('InString.Fake', {})";
Ext.define('MyApp.Real', {
    extend: 'MyApp.Base',
    handler: function() {
        var tricky = { a: { b: "}" }, c: "'" };
        /* Ext.define('InComment.Fake', {}) */
        return tricky;
    },
    requires: ['MyApp.Dep']
});`)
		require.NotNil(t, reg)
		assert.Equal(t, "MyApp.Real", reg.Name)
		assert.Equal(t, "MyApp.Base", reg.StringField("extend"))
		assert.Equal(t, []string{"MyApp.Dep"}, reg.ListField("requires"))
	})

	t.Run("other namespaces are ignored", func(t *testing.T) {
		assert.Nil(t, find(t, `Foo.define('MyApp.Foo', {});`))
		assert.Nil(t, find(t, `Ext.apply({}, {});`))
	})

	t.Run("registration without config object", func(t *testing.T) {
		reg := find(t, `Ext.define('MyApp.Bare');`)
		require.NotNil(t, reg)
		assert.Equal(t, "MyApp.Bare", reg.Name)
		assert.Empty(t, reg.StringField("extend"))
		assert.Nil(t, reg.ListField("requires"))
	})

	t.Run("registration inside an expression", func(t *testing.T) {
		reg := find(t, `var cls = Ext.define('MyApp.Wrapped', { extend: 'X.Y' });`)
		require.NotNil(t, reg)
		assert.Equal(t, "MyApp.Wrapped", reg.Name)
	})

	t.Run("quoted keys are read like identifiers", func(t *testing.T) {
		reg := find(t, `Ext.define('MyApp.Q', { "extend": 'MyApp.Base', 'requires': ['A.B'] });`)
		require.NotNil(t, reg)
		assert.Equal(t, "MyApp.Base", reg.StringField("extend"))
		assert.Equal(t, []string{"A.B"}, reg.ListField("requires"))
	})

	t.Run("bare string list value", func(t *testing.T) {
		reg := find(t, `Ext.define('MyApp.S', { requires: 'A.B' });`)
		require.NotNil(t, reg)
		assert.Equal(t, []string{"A.B"}, reg.ListField("requires"))
	})

	t.Run("non-literal list entries are skipped", func(t *testing.T) {
		reg := find(t, `Ext.define('MyApp.N', { requires: ['A.B', someVar, 'C.D'] });`)
		require.NotNil(t, reg)
		assert.Equal(t, []string{"A.B", "C.D"}, reg.ListField("requires"))
	})
}

func TestSourceFileLimits(t *testing.T) {
	t.Run("oversized file is rejected", func(t *testing.T) {
		big := strings.Repeat("x", maxFileSize+1)
		file := NewSourceFile("big.js", []byte(big))
		_, err := file.Tree(context.Background())
		assert.ErrorIs(t, err, ErrFileTooLarge)
	})

	t.Run("invalid utf8 is rejected", func(t *testing.T) {
		file := NewSourceFile("bad.js", []byte{0xff, 0xfe, 0xfd})
		_, err := file.Tree(context.Background())
		assert.ErrorIs(t, err, ErrInvalidContent)
	})

	t.Run("tree is cached across calls", func(t *testing.T) {
		file := NewSourceFile("ok.js", []byte("var x = 1;"))
		t.Cleanup(file.Close)
		first, err := file.Tree(context.Background())
		require.NoError(t, err)
		second, err := file.Tree(context.Background())
		require.NoError(t, err)
		assert.Same(t, first, second)
	})
}
