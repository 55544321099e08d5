package gamemap

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// File names of a map directory.
const (
	ManifestFile = "manifest.json"
	MapFile      = "map.bin"
	Map4xFile    = "map4x.bin"
	Map16xFile   = "map16x.bin"
)

// MapInfo describes one resolution of a map in manifest.json.
type MapInfo struct {
	Width        int `json:"width"`
	Height       int `json:"height"`
	NumLandTiles int `json:"num_land_tiles"`
}

// Manifest is the content of manifest.json.
type Manifest struct {
	Name   string  `json:"name"`
	Map    MapInfo `json:"map"`
	Map4x  MapInfo `json:"map4x"`
	Map16x MapInfo `json:"map16x"`
}

// ReadManifest decodes dir/manifest.json.
func ReadManifest(dir string) (Manifest, error) {
	var mf Manifest
	raw, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return mf, fmt.Errorf("%w: %w", ErrManifest, err)
	}
	if err := json.Unmarshal(raw, &mf); err != nil {
		return mf, fmt.Errorf("%w: parse %s: %w", ErrManifest, dir, err)
	}
	if mf.Map.Width <= 0 || mf.Map.Height <= 0 || mf.Map4x.Width <= 0 || mf.Map4x.Height <= 0 {
		return mf, fmt.Errorf("%w: %s: missing dimensions", ErrManifest, dir)
	}
	if mf.Name == "" {
		mf.Name = filepath.Base(dir)
	}

	return mf, nil
}

// LoadDir reads the full-resolution map and its map4x (half resolution per
// axis) companion from dir.
func LoadDir(dir string) (full, mini *Map, mf Manifest, err error) {
	if mf, err = ReadManifest(dir); err != nil {
		return nil, nil, mf, err
	}
	if full, err = readBin(filepath.Join(dir, MapFile), mf.Map); err != nil {
		return nil, nil, mf, err
	}
	if mini, err = readBin(filepath.Join(dir, Map4xFile), mf.Map4x); err != nil {
		return nil, nil, mf, err
	}

	return full, mini, mf, nil
}

func readBin(path string, info MapInfo) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gamemap: read %s: %w", path, err)
	}
	m, err := New(info.Width, info.Height, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// WriteDir writes m as a map directory dir: map.bin, map4x.bin and
// map16x.bin (generated with Downscale) plus manifest.json.
func WriteDir(dir, name string, m *Map) (Manifest, error) {
	m4 := Downscale(m)
	m16 := Downscale(m4)
	mf := Manifest{
		Name:   name,
		Map:    MapInfo{Width: m.width, Height: m.height, NumLandTiles: m.numLandTiles},
		Map4x:  MapInfo{Width: m4.width, Height: m4.height, NumLandTiles: m4.numLandTiles},
		Map16x: MapInfo{Width: m16.width, Height: m16.height, NumLandTiles: m16.numLandTiles},
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return mf, fmt.Errorf("gamemap: create %s: %w", dir, err)
	}
	files := []struct {
		name string
		data []byte
	}{
		{MapFile, m.terrain},
		{Map4xFile, m4.terrain},
		{Map16xFile, m16.terrain},
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f.name), f.data, 0o644); err != nil {
			return mf, fmt.Errorf("gamemap: write %s: %w", f.name, err)
		}
	}
	raw, err := json.MarshalIndent(mf, "", "  ")
	if err != nil {
		return mf, fmt.Errorf("gamemap: encode manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ManifestFile), raw, 0o644); err != nil {
		return mf, fmt.Errorf("gamemap: write manifest: %w", err)
	}

	return mf, nil
}

// ListDir returns the sorted names of the map directories under root, i.e.
// the subdirectories holding a manifest.json.
func ListDir(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("gamemap: list %s: %w", root, err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		_, err := os.Stat(filepath.Join(root, e.Name(), ManifestFile))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("gamemap: stat %s: %w", e.Name(), err)
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	return names, nil
}
