package image

import (
	"io"
	"os"

	"github.com/dargueta/vsfsck/checkerr"
)

// Load reads exactly size bytes from src, starting at its current
// position reset to the beginning, and binds them as a VSFS image. The
// same code path serves both a real on-disk image (an *os.File) and an
// in-memory test fixture (anything satisfying io.ReadWriteSeeker, e.g.
// github.com/xaionaro-go/bytesextra's buffer wrapper) -- callers never
// need two loaders.
func Load(src io.ReadWriteSeeker, size int64) (*Image, error) {
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, checkerr.ErrReadFailed.WithMessage(err.Error())
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(src, buf); err != nil {
		return nil, checkerr.ErrReadFailed.WithMessage(err.Error())
	}

	return Bind(buf)
}

// WriteBack seeks dst to the start and overwrites its entire contents
// with the image's current bytes. Callers must invoke this at most once,
// after every overlay mutation has already been applied in place.
func (img *Image) WriteBack(dst io.WriteSeeker) error {
	if _, err := dst.Seek(0, io.SeekStart); err != nil {
		return checkerr.ErrWriteFailed.WithMessage(err.Error())
	}
	if _, err := dst.Write(img.data); err != nil {
		return checkerr.ErrWriteFailed.WithMessage(err.Error())
	}
	return nil
}

// OpenImageFile opens the image at path (read-only unless writable is
// true), reads it fully into memory through Load, and returns both the
// bound Image and the open file so the caller can later call WriteBack
// on it. The caller owns the *os.File and must close it.
func OpenImageFile(path string, writable bool) (*Image, *os.File, error) {
	flag := os.O_RDONLY
	if writable {
		flag = os.O_RDWR
	}

	file, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, nil, checkerr.ErrOpenFailed.WithMessage(err.Error())
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, nil, checkerr.ErrOpenFailed.WithMessage(err.Error())
	}

	img, err := Load(file, info.Size())
	if err != nil {
		file.Close()
		return nil, nil, err
	}

	return img, file, nil
}
