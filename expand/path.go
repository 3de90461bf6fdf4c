package expand

import (
	"os"

	"github.com/k0sproject/userhome/errstring"
)

// ErrInvalidPath is returned when the given path is invalid.
var ErrInvalidPath = errstring.New("invalid path")

func fullStat(path string) (string, os.FileInfo, error) {
	if len(path) == 0 {
		return "", nil, ErrInvalidPath.Wrapf("path is empty")
	}
	path, err := Full(path)
	if err != nil {
		return "", nil, err
	}
	stat, err := os.Stat(path)
	if err != nil {
		return "", nil, ErrInvalidPath.Wrapf("stat: %w", err)
	}
	return path, stat, nil
}

// ExistingFile expands the path and checks that it is an existing file.
func ExistingFile(path string) (string, error) {
	path, stat, err := fullStat(path)
	if err != nil {
		return "", err
	}

	if stat.IsDir() {
		return "", ErrInvalidPath.Wrapf("%s is a directory", path)
	}

	return path, nil
}

// ExistingDir expands the path and checks that it is an existing directory.
func ExistingDir(path string) (string, error) {
	path, stat, err := fullStat(path)
	if err != nil {
		return "", err
	}

	if !stat.IsDir() {
		return "", ErrInvalidPath.Wrapf("%s is not a directory", path)
	}

	return path, nil
}
