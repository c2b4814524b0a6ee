package hepcalc

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrNoEvents is returned when a configuration has nothing to calculate.
var ErrNoEvents = errors.New("no events configured")

// ErrMissingQ2 is returned when an event does not set its scale.
var ErrMissingQ2 = errors.New("q2 is required")

// EventCfg describes one calculation. Momenta are lists of E, px, py, pz.
type EventCfg struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	A    []Real `json:"a" yaml:"a" validate:"required,len=4"`
	B    []Real `json:"b" yaml:"b" validate:"required,len=4"`
	C    []Real `json:"c" yaml:"c" validate:"required,len=4"`
	// Q2 is the squared scale and must be present. An explicit zero is
	// accepted and yields a non-finite answer.
	Q2 *Real `json:"q2" yaml:"q2" validate:"required"`
	// BoostRapidity and RotatePhi, when non-zero, move a, b and c into another
	// frame first: rotate about pz by RotatePhi (radians), then boost along pz.
	BoostRapidity Real `json:"boostRapidity,omitempty" yaml:"boostRapidity,omitempty"`
	RotatePhi     Real `json:"rotatePhi,omitempty" yaml:"rotatePhi,omitempty"`
}

type Config struct {
	Format  string     `json:"format,omitempty" yaml:"format,omitempty" validate:"omitempty,oneof=text json"`
	Workers int        `json:"workers,omitempty" yaml:"workers,omitempty" validate:"gte=0"`
	Events  []EventCfg `json:"events" yaml:"events" validate:"required,min=1,dive"`
}

// DefaultConfig is the reference calculation.
func DefaultConfig() Config {
	return Config{
		Format:  FormatText,
		Workers: DefaultWorkers,
		Events: []EventCfg{{
			Name: "reference",
			A:    []Real{200, 0, 0, 200},
			B:    []Real{90, 30, 30, 2000},
			C:    []Real{45, 15, 20, 1000},
			Q2:   ptr(Real(DefaultQ2)),
		}},
	}
}

var validate = validator.New()

// LoadConfig reads a JSON or YAML (by extension) configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Config{Format: FormatText, Workers: DefaultWorkers}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the structure of the configuration. It does not look at
// physical validity of the momenta.
func (c *Config) Validate() error {
	if len(c.Events) == 0 {
		return ErrNoEvents
	}
	return validate.Struct(c)
}

// Build turns the configuration into an Event ready for Calculate.
func (ec EventCfg) Build() (*Event, error) {
	if ec.Q2 == nil {
		return nil, fmt.Errorf("event %q: %w", ec.Name, ErrMissingQ2)
	}
	a, err := FourMomentumFromSlice(ec.A)
	if err != nil {
		return nil, fmt.Errorf("event %q, a: %w", ec.Name, err)
	}
	b, err := FourMomentumFromSlice(ec.B)
	if err != nil {
		return nil, fmt.Errorf("event %q, b: %w", ec.Name, err)
	}
	c, err := FourMomentumFromSlice(ec.C)
	if err != nil {
		return nil, fmt.Errorf("event %q, c: %w", ec.Name, err)
	}
	ev := &Event{Name: ec.Name, A: a, B: b, C: c, Q2: *ec.Q2}
	if ec.BoostRapidity != 0 || ec.RotatePhi != 0 {
		if err := ev.ToFrame(FrameTransform(ec.BoostRapidity, ec.RotatePhi)); err != nil {
			return nil, fmt.Errorf("event %q: %w", ec.Name, err)
		}
	}
	return ev, nil
}
