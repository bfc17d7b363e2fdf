package jsparse

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
)

// maxFileSize rejects pathological inputs before handing them to the
// parser.
const maxFileSize = 10 * 1024 * 1024

var (
	// ErrFileTooLarge is returned for files above maxFileSize.
	ErrFileTooLarge = errors.New("jsparse: file exceeds maximum size")
	// ErrInvalidContent is returned for non-UTF-8 input.
	ErrInvalidContent = errors.New("jsparse: content is not valid UTF-8")
)

// SourceFile is one on-disk source with its lazily parsed syntax tree.
// The raw bytes and the tree are immutable once read; re-parsing is
// memoized, including a memoized failure.
type SourceFile struct {
	Path string

	src      []byte
	tree     *sitter.Tree
	parseErr error
	parsed   bool
}

// NewSourceFile wraps already-read file content. The bytes are retained,
// not copied.
func NewSourceFile(path string, src []byte) *SourceFile {
	return &SourceFile{Path: path, src: src}
}

// Source returns the raw file bytes.
func (f *SourceFile) Source() []byte {
	return f.src
}

// Tree parses the file on first use and caches the result for the life of
// the SourceFile.
func (f *SourceFile) Tree(ctx context.Context) (*sitter.Tree, error) {
	if f.parsed {
		return f.tree, f.parseErr
	}
	f.parsed = true
	f.tree, f.parseErr = parse(ctx, f.src)
	return f.tree, f.parseErr
}

// Close releases the cached tree. The SourceFile may be re-parsed after
// closing.
func (f *SourceFile) Close() {
	if f.tree != nil {
		f.tree.Close()
		f.tree = nil
		f.parsed = false
		f.parseErr = nil
	}
}

func parse(ctx context.Context, src []byte) (*sitter.Tree, error) {
	if len(src) > maxFileSize {
		return nil, ErrFileTooLarge
	}
	if !utf8.Valid(src) {
		return nil, ErrInvalidContent
	}
	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}
	return tree, nil
}
