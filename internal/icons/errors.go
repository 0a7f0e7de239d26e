package icons

import "fmt"

// SourceError reports a source directory that could not be listed.
// errors.Is(err, fs.ErrNotExist) holds when the directory is missing.
type SourceError struct {
	Source Source
	Path   string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("icon source %q (suffix %q): %v", e.Path, e.Source.Suffix, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// ReadError reports an icon file that could not be read
type ReadError struct {
	Name string
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read icon %q (%s): %v", e.Name, e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
