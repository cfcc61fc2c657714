// Package fileio reads and writes the small image files handled by the
// tools. Writes are atomic: the data goes to a temporary file in the
// destination directory which is renamed into place once it is on disk.
package fileio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var ErrorIO = errors.New("I/O error")

func wrap(op string, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrorIO, op, path, err)
}

// ReadLimited reads at most limit bytes from path. A result of exactly limit
// bytes means the file may be longer.
func ReadLimited(path string, limit int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrap("open", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, limit))
	if err != nil {
		return nil, wrap("read", path, err)
	}
	return data, nil
}

type WriteOptions struct {
	Perm os.FileMode

	// NoClobber fails with fs.ErrExist instead of replacing an existing file.
	NoClobber bool
}

// WriteAtomic writes data to path. On error path is left untouched and no
// temporary file remains.
func WriteAtomic(path string, data []byte, opts WriteOptions) (err error) {
	if opts.Perm == 0 {
		opts.Perm = 0644
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return wrap("create", path, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if tmp != nil {
			tmp.Close()
		}
		if err != nil || opts.NoClobber {
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return wrap("write", tmpName, err)
	}
	if err := tmp.Chmod(opts.Perm); err != nil {
		return wrap("chmod", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		return wrap("sync", tmpName, err)
	}
	err = tmp.Close()
	tmp = nil
	if err != nil {
		return wrap("close", tmpName, err)
	}

	if opts.NoClobber {
		/* Link refuses to replace an existing file, the temp name is removed afterwards */
		if err := os.Link(tmpName, path); err != nil {
			return wrap("link", path, err)
		}
	} else if err := os.Rename(tmpName, path); err != nil {
		return wrap("rename", path, err)
	}

	if err := syncDir(dir); err != nil {
		return wrap("sync", dir, err)
	}
	return nil
}

// Stream copies the contents of path to w and returns the number of bytes.
func Stream(path string, w io.Writer) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, wrap("open", path, err)
	}
	defer f.Close()

	n, err := io.Copy(w, f)
	if err != nil {
		return n, wrap("read", path, err)
	}
	return n, nil
}
