package h5io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/robert-malhotra/go-hdf5/hdf5"
)

// writeTestFile creates an HDF5 file with one group, two datasets and a
// few attributes, and returns its path.
func writeTestFile(t *testing.T) string {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "h5io-test-*")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	path := filepath.Join(tmpDir, "sample.h5")
	f, err := hdf5.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	density := make([]float64, 16)
	for i := range density {
		density[i] = float64(i)
	}
	_, err = f.Root().CreateDataset("density", density,
		hdf5.WithAttribute("units", "g/cm3"),
		hdf5.WithAttribute("acquired", int64(2026)))
	if err != nil {
		t.Fatalf("CreateDataset density: %v", err)
	}

	grp, err := f.Root().CreateGroup("derived")
	if err != nil {
		t.Fatalf("CreateGroup: %v", err)
	}
	_, err = grp.CreateDataset("mask", []int32{0, 1, 1, 0})
	if err != nil {
		t.Fatalf("CreateDataset mask: %v", err)
	}

	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return path
}

func TestReadArray(t *testing.T) {
	path := writeTestFile(t)

	arr, err := ReadArray(path, "/density")
	if err != nil {
		t.Fatalf("ReadArray: %v", err)
	}
	if arr.Rank() != 1 {
		t.Fatalf("rank: got %d", arr.Rank())
	}
	if got := arr.Shape(); got[0] != 16 {
		t.Errorf("shape: got %v", got)
	}
	data := arr.Data()
	if data[0] != 0 || data[15] != 15 {
		t.Errorf("data endpoints: got %v, %v", data[0], data[15])
	}
}

func TestReadArrayWidensInts(t *testing.T) {
	path := writeTestFile(t)

	arr, err := ReadArray(path, "/derived/mask")
	if err != nil {
		t.Fatalf("ReadArray: %v", err)
	}
	want := []float64{0, 1, 1, 0}
	data := arr.Data()
	if len(data) != len(want) {
		t.Fatalf("len: got %d", len(data))
	}
	for i := range want {
		if data[i] != want[i] {
			t.Errorf("data[%d] = %v, want %v", i, data[i], want[i])
		}
	}
}

func TestReadArrayMissing(t *testing.T) {
	path := writeTestFile(t)

	if _, err := ReadArray(path, "/nope"); !IsNotFound(err) {
		t.Errorf("missing dataset: got %v, want ErrNotFound", err)
	}
	if _, err := ReadArray(filepath.Join(t.TempDir(), "absent.h5"), "/density"); err == nil {
		t.Error("missing file: want error")
	}
}

func TestReadFingerprint(t *testing.T) {
	path := writeTestFile(t)

	fp, err := ReadFingerprint(path, "/density")
	if err != nil {
		t.Fatalf("ReadFingerprint: %v", err)
	}
	if len(fp) != 2 {
		t.Fatalf("got %d attributes: %v", len(fp), fp)
	}
	if fp["units"] != "g/cm3" {
		t.Errorf("units: got %v", fp["units"])
	}
	if fp["acquired"] != int64(2026) {
		t.Errorf("acquired: got %v (%T)", fp["acquired"], fp["acquired"])
	}
}

func TestReadFingerprintEmpty(t *testing.T) {
	path := writeTestFile(t)

	fp, err := ReadFingerprint(path, "/derived/mask")
	if err != nil {
		t.Fatalf("ReadFingerprint: %v", err)
	}
	if fp == nil || len(fp) != 0 {
		t.Errorf("want empty fingerprint, got %v", fp)
	}
}

func TestListDatasets(t *testing.T) {
	path := writeTestFile(t)

	infos, err := ListDatasets(path)
	if err != nil {
		t.Fatalf("ListDatasets: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("got %d datasets: %v", len(infos), infos)
	}
	found := map[string][]int{}
	for _, info := range infos {
		found[info.Path] = info.Shape
	}
	if shape, ok := found["/density"]; !ok || shape[0] != 16 {
		t.Errorf("/density: got %v", found)
	}
	if shape, ok := found["/derived/mask"]; !ok || shape[0] != 4 {
		t.Errorf("/derived/mask: got %v", found)
	}
}
