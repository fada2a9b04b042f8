package figure

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/spred/plotplotplot/pkg/errors"
)

// WriteFile writes already encoded figure bytes to path with the same
// guarantees as Compose: the directory must exist and path is replaced
// atomically.
func WriteFile(path string, data []byte) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if err := checkDir(filepath.Dir(path)); err != nil {
		return err
	}
	return writeAtomic(path, data)
}

// checkDir verifies that dir exists and is a directory.
func checkDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "output directory %s", dir)
	}
	if !info.IsDir() {
		return errors.New(errors.ErrCodeIO, "output directory %s is not a directory", dir)
	}
	return nil
}

// writeAtomic writes data to a temporary file next to path, syncs it and
// renames it into place. On failure the temporary file is removed and path
// is left untouched.
func writeAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", tmp)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", tmp)
	}
	if err = f.Sync(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "sync %s", tmp)
	}
	if err = f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "close %s", tmp)
	}
	if err = os.Rename(tmp, path); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "rename %s", path)
	}
	return nil
}
