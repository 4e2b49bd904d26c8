package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/sevenzip"
	"github.com/pkg/errors"
)

// LoadFile loads the given file and performs decompression if necessary.
// Plain ROM images (.gb, .gbc, .bin) are returned as is; .gz, .zip and
// .7z archives are unpacked and the first file inside is returned.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "loading file")
	}

	var decoder io.Reader
	switch ext := filepath.Ext(filename); ext {
	case ".gz":
		decoder, err = gzip.NewReader(bytes.NewReader(data))
	case ".zip":
		var r *zip.Reader
		r, err = zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			break
		}
		if len(r.File) == 0 {
			return nil, errors.Errorf("empty zip archive %s", filename)
		}
		decoder, err = r.File[0].Open()
	case ".7z":
		var r *sevenzip.Reader
		r, err = sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			break
		}
		if len(r.File) == 0 {
			return nil, errors.Errorf("empty 7z archive %s", filename)
		}
		decoder, err = r.File[0].Open()
	default:
		// not an archive, return the data as is
		return data, nil
	}

	if err != nil {
		return nil, errors.Wrapf(err, "unpacking %s", filename)
	}

	data, err = io.ReadAll(decoder)
	if err != nil {
		return nil, errors.Wrapf(err, "unpacking %s", filename)
	}
	return data, nil
}
