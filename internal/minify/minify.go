// Package minify is the boundary to the external minification
// collaborators. The bundler treats them as black boxes: bytes in,
// transformed bytes or an error out.
package minify

import (
	"bytes"
	"fmt"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/js"
)

const (
	mediaJS  = "application/javascript"
	mediaCSS = "text/css"
)

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc(mediaJS, js.Minify)
	m.AddFunc(mediaCSS, css.Minify)
	return m
}

// JS minifies a script blob.
func JS(blob []byte) ([]byte, error) {
	var out bytes.Buffer
	if err := newMinifier().Minify(mediaJS, &out, bytes.NewReader(blob)); err != nil {
		return nil, fmt.Errorf("minifying js: %w", err)
	}
	return out.Bytes(), nil
}

// CSS minifies a stylesheet blob.
func CSS(blob []byte) ([]byte, error) {
	var out bytes.Buffer
	if err := newMinifier().Minify(mediaCSS, &out, bytes.NewReader(blob)); err != nil {
		return nil, fmt.Errorf("minifying css: %w", err)
	}
	return out.Bytes(), nil
}
