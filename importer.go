package iconkit

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// IconExt is the extension of the icon source files.
const IconExt = ".svg"

// ImportOptions configures how icon files become collection entries.
type ImportOptions struct {
	// KeepCase keeps the letter case of file names in icon keys.
	KeepCase bool
}

// Import builds the initial collection from the source directory. Any
// failure is returned as an *ImportError.
func Import(p Provider, dir string, opts ImportOptions) (*Collection, error) {
	c, err := p.ParseDirectory(dir, opts)
	if err != nil {
		var ie *ImportError
		if errors.As(err, &ie) {
			return nil, err
		}
		return nil, &ImportError{Path: dir, Err: err}
	}
	if c == nil {
		c = NewCollection()
	}
	return c, nil
}

var keySeparators = strings.NewReplacer("/", "-", " ", "-", "_", "-")

// IconKey derives the key of an icon from its path relative to the source
// directory: the extension is dropped, path separators, spaces and
// underscores become dashes and the result is NFC normalized and, unless
// keepCase is set, lower cased.
func IconKey(rel string, keepCase bool) string {
	rel = filepath.ToSlash(strings.TrimSuffix(rel, filepath.Ext(rel)))
	key := norm.NFC.String(keySeparators.Replace(rel))
	if !keepCase {
		key = cases.Lower(language.Und).String(key)
	}
	return key
}

// walkDir starts a goroutine walking the directory tree in lexical order and
// sends the path of every regular file with one of the given extensions on
// the returned channel. The result of the walk is sent on the error channel.
// The walk stops once done is closed.
func walkDir(
	done <-chan struct{},
	src string,
	exts []string,
) (<-chan string, <-chan error) {
	pathChan := make(chan string)
	errChan := make(chan error, 1)

	go func() {
		// Close the paths channel after Walk returns.
		defer close(pathChan)

		errChan <- filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.Mode().IsRegular() || !hasExtension(info.Name(), exts) {
				return nil
			}
			select {
			case <-done:
				return errors.New("directory walk cancelled")
			case pathChan <- path:
			}
			return nil
		})
	}()
	return pathChan, errChan
}

// hasExtension checks the file name against the supported extensions,
// ignoring case.
func hasExtension(name string, exts []string) bool {
	ext := filepath.Ext(name)
	for _, e := range exts {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}
