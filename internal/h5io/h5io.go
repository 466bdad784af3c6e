// Package h5io wraps HDF5 file access behind the small surface the rest
// of the program needs: pull a dataset out as a flat array, pull its
// attributes out as a fingerprint, and enumerate datasets for browsing.
package h5io

import (
	"errors"
	"fmt"

	"github.com/robert-malhotra/go-hdf5/hdf5"

	"voxview/internal/volume"
)

// ErrNotFound reports a missing dataset or attribute inside an otherwise
// readable file.
var ErrNotFound = hdf5.ErrNotFound

// Fingerprint holds the attributes attached to one dataset, keyed by
// attribute name.
type Fingerprint map[string]interface{}

// ReadArray opens the file at path, reads the dataset at internalPath as
// float64 and returns it with its shape. Integer and float32 datasets
// are widened on read.
func ReadArray(path, internalPath string) (*volume.Array, error) {
	f, err := hdf5.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	ds, err := f.OpenDataset(internalPath)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", internalPath, err)
	}

	data, err := ds.ReadFloat64()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", internalPath, err)
	}

	dims := ds.Shape()
	shape := make([]int, len(dims))
	for i, d := range dims {
		shape[i] = int(d)
	}
	return volume.NewArray(data, shape)
}

// ReadFingerprint returns all attributes of the dataset at internalPath.
// A dataset without attributes yields an empty, non-nil fingerprint.
func ReadFingerprint(path, internalPath string) (Fingerprint, error) {
	f, err := hdf5.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	ds, err := f.OpenDataset(internalPath)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", internalPath, err)
	}

	fp := Fingerprint{}
	for _, name := range ds.Attrs() {
		attr := ds.Attr(name)
		if attr == nil {
			continue
		}
		val, err := attr.Value()
		if err != nil {
			return nil, fmt.Errorf("attribute %s/%s: %w", internalPath, name, err)
		}
		fp[name] = val
	}
	return fp, nil
}

// DatasetInfo describes one dataset found in a file.
type DatasetInfo struct {
	Path  string
	Shape []int
}

// ListDatasets walks the whole file and returns every dataset with its
// shape, in traversal order.
func ListDatasets(path string) ([]DatasetInfo, error) {
	f, err := hdf5.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var out []DatasetInfo
	err = hdf5.Walk(f.Root(), func(p string, obj interface{}, err error) error {
		if err != nil {
			// unreadable children are skipped, not fatal
			return nil
		}
		ds, ok := obj.(*hdf5.Dataset)
		if !ok {
			return nil
		}
		dims := ds.Shape()
		shape := make([]int, len(dims))
		for i, d := range dims {
			shape[i] = int(d)
		}
		out = append(out, DatasetInfo{Path: p, Shape: shape})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", path, err)
	}
	return out, nil
}

// IsNotFound reports whether err means the object does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
