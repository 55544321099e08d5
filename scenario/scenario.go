package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/navsat/gamemap"
	"github.com/katalvlaran/navsat/world"
)

var (
	// ErrUnknownPort is returned when a route names a port that is not declared.
	ErrUnknownPort = errors.New("scenario: unknown port")
	// ErrPortOutOfBounds is returned when a port lies outside the map.
	ErrPortOutOfBounds = errors.New("scenario: port outside the map")
	// ErrUnknownAdapter is returned by Adapter for an unsupported name.
	ErrUnknownAdapter = errors.New("scenario: unknown adapter")
	// ErrTooFewPorts is returned by Generate when the map has no room for ports.
	ErrTooFewPorts = errors.New("scenario: not enough port candidates")
)

// Scenario is the content of a scenario file.
type Scenario struct {
	Map    string            `yaml:"map"`
	Ports  map[string][2]int `yaml:"ports"`
	Routes [][2]string       `yaml:"routes"`
}

// Route is a resolved route.
type Route struct {
	Name     string
	From, To gamemap.TileRef
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scenario: parse %s: %w", path, err)
	}

	return &s, nil
}

// Save writes s to path.
func Save(path string, s *Scenario) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("scenario: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("scenario: write %s: %w", path, err)
	}

	return nil
}

// Resolve maps every route of s onto tiles of w, in file order.
func (s *Scenario) Resolve(w *world.World) ([]Route, error) {
	m := w.Full()
	tile := func(name string) (gamemap.TileRef, error) {
		xy, ok := s.Ports[name]
		if !ok {
			return gamemap.InvalidTile, fmt.Errorf("%w: %q", ErrUnknownPort, name)
		}
		if !m.InBounds(xy[0], xy[1]) {
			return gamemap.InvalidTile, fmt.Errorf("%w: %s at (%d,%d)", ErrPortOutOfBounds, name, xy[0], xy[1])
		}
		return m.Ref(xy[0], xy[1]), nil
	}

	routes := make([]Route, 0, len(s.Routes))
	for _, r := range s.Routes {
		from, err := tile(r[0])
		if err != nil {
			return nil, err
		}
		to, err := tile(r[1])
		if err != nil {
			return nil, err
		}
		routes = append(routes, Route{Name: r[0] + " → " + r[1], From: from, To: to})
	}

	return routes, nil
}
