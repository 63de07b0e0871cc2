package coverflow

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Configuration errors.
var (
	ErrInvalidRadius   = errors.New("coverflow: radius must be >= 1")
	ErrInvalidWidth    = errors.New("coverflow: tuning width must be > 0")
	ErrInvalidItemSize = errors.New("coverflow: item width and height must be > 0")
	ErrInvalidSpacing  = errors.New("coverflow: spacing must be > 0")
	ErrInvalidAlpha    = errors.New("coverflow: unselected alpha must be in [0, 1]")
	ErrNilSource       = errors.New("coverflow: nil item source")
)

// Config holds the coverflow tuning parameters. It is a plain value: the
// engine keeps one copy and hands it to every geometry call, so a change made
// through a setter is seen by the next frame and never mid-frame.
//
// Thresholds are fractions of the half widget width, measured at TuningWidth.
// 1 means the effect starts at the widget edge, 0 means only the center item
// is affected.
type Config struct {
	// TuningWidth is the widget width the other values were tuned at.
	// Thresholds are rescaled by TuningWidth/width for other sizes.
	TuningWidth float64 `json:"tuning_width"`

	// RotationThreshold is where covers start rotating into the center.
	RotationThreshold float64 `json:"rotation_threshold"`
	// ScalingThreshold is where covers start to zoom in.
	ScalingThreshold float64 `json:"scaling_threshold"`
	// AdjustPositionThreshold is where covers start to widen their spacing
	// so neighbors pass each other without jumping over one another.
	AdjustPositionThreshold float64 `json:"adjust_position_threshold"`
	// AdjustPositionMultiplier enlarges the spacing added near the center.
	AdjustPositionMultiplier float64 `json:"adjust_position_multiplier"`

	// MaxRotationAngle is the absolute rotation of a cover at the edge, in degrees.
	MaxRotationAngle float64 `json:"max_rotation_angle"`
	// MaxScaleFactor is the scale of the center cover.
	MaxScaleFactor float64 `json:"max_scale_factor"`
	// Radius of the circular path covers follow. The screen spans -1..1 so
	// the minimum radius is 1.
	Radius float64 `json:"radius"`
	// PerspectiveMultiplier scales the shrink applied to covers off center.
	PerspectiveMultiplier float64 `json:"perspective_multiplier"`

	// AlignDuration is the length of the snap-to-center animation in seconds.
	AlignDuration float32 `json:"align_duration"`
}

// DefaultConfig returns the stock coverflow tuning.
func DefaultConfig() Config {
	return Config{
		TuningWidth:              1280,
		RotationThreshold:        0.3,
		ScalingThreshold:         0.3,
		AdjustPositionThreshold:  0.1,
		AdjustPositionMultiplier: 0.8,
		MaxRotationAngle:         70,
		MaxScaleFactor:           1.2,
		Radius:                   2,
		PerspectiveMultiplier:    1,
		AlignDuration:            0.35,
	}
}

// Validate rejects values the geometry kernel cannot work with. Everything
// else is accepted even when it produces odd looking output.
func (c Config) Validate() error {
	if !(c.Radius >= 1) {
		return fmt.Errorf("%w (got %v)", ErrInvalidRadius, c.Radius)
	}
	if !(c.TuningWidth > 0) {
		return fmt.Errorf("%w (got %v)", ErrInvalidWidth, c.TuningWidth)
	}
	return nil
}

// CarouselConfig describes the list the engine is hosted in.
type CarouselConfig struct {
	ItemWidth  float64 `json:"item_width"`
	ItemHeight float64 `json:"item_height"`
	// Spacing is the distance between item centers as a fraction of ItemWidth.
	Spacing float64 `json:"spacing"`
	// Selection is the index centered when the carousel is created.
	Selection int `json:"selection"`

	// Strips is the number of vertical slices a card is split into when drawn.
	Strips int `json:"strips"`
	// CameraDistance is the distance in pixels between the eye and the
	// carousel plane used for the rotation projection.
	CameraDistance float64 `json:"camera_distance"`
	// UnselectedAlpha dims every cover but the selected one. Zero leaves
	// them opaque.
	UnselectedAlpha float64 `json:"unselected_alpha"`
}

const (
	defaultStrips         = 8
	defaultCameraDistance = 1200
)

// DefaultCarouselConfig returns a carousel of 200x300 covers at half spacing.
func DefaultCarouselConfig() CarouselConfig {
	return CarouselConfig{
		ItemWidth:      200,
		ItemHeight:     300,
		Spacing:        0.5,
		Strips:         defaultStrips,
		CameraDistance: defaultCameraDistance,
	}
}

// Validate checks the item geometry.
func (c CarouselConfig) Validate() error {
	if !(c.ItemWidth > 0) || !(c.ItemHeight > 0) {
		return fmt.Errorf("%w (got %vx%v)", ErrInvalidItemSize, c.ItemWidth, c.ItemHeight)
	}
	if !(c.Spacing > 0) {
		return fmt.Errorf("%w (got %v)", ErrInvalidSpacing, c.Spacing)
	}
	if !(c.UnselectedAlpha >= 0 && c.UnselectedAlpha <= 1) {
		return fmt.Errorf("%w (got %v)", ErrInvalidAlpha, c.UnselectedAlpha)
	}
	return nil
}

// Settings bundles both configs for loading from a single file.
type Settings struct {
	Engine   Config         `json:"engine"`
	Carousel CarouselConfig `json:"carousel"`
}

// LoadSettings reads a JSON settings file. Fields missing from the file keep
// their default values.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("coverflow: read %s: %w", path, err)
	}
	return ParseSettings(data)
}

// ParseSettings decodes JSON settings over the defaults and validates them.
func ParseSettings(data []byte) (Settings, error) {
	s := Settings{Engine: DefaultConfig(), Carousel: DefaultCarouselConfig()}
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("coverflow: parse settings: %w", err)
	}
	if err := s.Engine.Validate(); err != nil {
		return Settings{}, err
	}
	if err := s.Carousel.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
