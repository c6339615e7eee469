package cargo

import (
	"errors"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

const maxNameLength = 255

var (
	// ErrSpatialCharacteristicsMissing is returned when any dimension is
	// below one centimetre.
	ErrSpatialCharacteristicsMissing = errors.New("Cargo spatial characteristics must be specified")

	// ErrWeightMissing is returned when the weight is below one kilogram.
	ErrWeightMissing = errors.New("Cargo weight must be specified")

	// ErrNameTooLong is returned when the cargo name exceeds 255 characters.
	ErrNameTooLong = errors.New("Cargo name cannot exceed 255 characters")

	// ErrCharacteristicsAreNotConstructed is returned when a zero-value
	// Characteristics is used.
	ErrCharacteristicsAreNotConstructed = errors.New(
		"Characteristics must be created via NewCharacteristics constructor")
)

// Characteristics is the physical description of a cargo item: a name and
// its spatial dimensions and weight. All dimensions and the weight must be
// at least 1; the name is limited to 255 characters.
type Characteristics struct { //nolint:recvcheck //using for validation
	name   string
	length int
	width  int
	height int
	weight int
	guard  guard.ConstructorGuard
}

// NewCharacteristics creates a validated physical description.
//
// Parameters:
//   - name: cargo label (at most 255 characters)
//   - length, width, height: dimensions in centimetres (each >= 1)
//   - weight: weight in kilograms (>= 1)
//
// Returns:
//   - Characteristics: the created value object if all validations pass
//   - error: validation error if any parameter is invalid
func NewCharacteristics(name string, length, width, height, weight int) (Characteristics, error) {
	c := Characteristics{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setName(name),
		c.setDimensions(length, width, height),
		c.setWeight(weight),
	); err != nil {
		return Characteristics{}, err
	}

	return c, nil
}

// Validate ensures the value object was created through the constructor.
func (c Characteristics) Validate() error {
	return c.guard.Validate(ErrCharacteristicsAreNotConstructed)
}

// Name returns the cargo label.
func (c Characteristics) Name() string {
	return c.name
}

// Length returns the length in centimetres.
func (c Characteristics) Length() int {
	return c.length
}

// Width returns the width in centimetres.
func (c Characteristics) Width() int {
	return c.width
}

// Height returns the height in centimetres.
func (c Characteristics) Height() int {
	return c.height
}

// Weight returns the weight in kilograms.
func (c Characteristics) Weight() int {
	return c.weight
}

// IsEqual compares two descriptions field by field.
func (c Characteristics) IsEqual(other Characteristics) bool {
	return c.name == other.name &&
		c.length == other.length &&
		c.width == other.width &&
		c.height == other.height &&
		c.weight == other.weight
}

func (c *Characteristics) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > maxNameLength {
		return ErrNameTooLong
	}
	c.name = name
	return nil
}

func (c *Characteristics) setDimensions(length, width, height int) error {
	if length < 1 || width < 1 || height < 1 {
		return ErrSpatialCharacteristicsMissing
	}
	c.length = length
	c.width = width
	c.height = height
	return nil
}

func (c *Characteristics) setWeight(weight int) error {
	if weight < 1 {
		return ErrWeightMissing
	}
	c.weight = weight
	return nil
}
