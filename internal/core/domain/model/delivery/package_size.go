package delivery

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrPackageSizeIsNotConstructed is returned when attempting to use an
// improperly initialized PackageSize.
var ErrPackageSizeIsNotConstructed = errs.NewValueIsRequiredError(
	"package size must be created via NewPackageSize constructor")

// vehicleCeiling holds the fixed per-vehicle weight/volume limits.
type vehicleCeiling struct {
	maxWeightKg float64
	maxVolumeM3 float64
}

// getVehicleCeilings returns the fixed handling limits per vehicle type.
func getVehicleCeilings() map[kernel.VehicleType]vehicleCeiling {
	return map[kernel.VehicleType]vehicleCeiling{
		kernel.VehicleBicycle:    {maxWeightKg: 5, maxVolumeM3: 0.02},
		kernel.VehicleMotorcycle: {maxWeightKg: 20, maxVolumeM3: 0.1},
		kernel.VehicleCar:        {maxWeightKg: 100, maxVolumeM3: 0.5},
		kernel.VehicleVan:        {maxWeightKg: 500, maxVolumeM3: 2},
		kernel.VehicleTruck:      {maxWeightKg: 2000, maxVolumeM3: 15},
	}
}

// PackageSize is the immutable physical size of a delivery's package:
// weight in kilograms and volume in cubic meters, both strictly positive.
type PackageSize struct { //nolint:recvcheck //using for validation
	weight float64
	volume float64
	guard  guard.ConstructorGuard
}

// NewPackageSize creates a PackageSize. Fails if weight or volume is not
// strictly positive; values are never clamped.
func NewPackageSize(weight, volume float64) (PackageSize, error) {
	size := PackageSize{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(size.setWeight(weight), size.setVolume(volume)); err != nil {
		return PackageSize{}, err
	}

	return size, nil
}

// Validate checks that the PackageSize was created through NewPackageSize.
func (p PackageSize) Validate() error {
	return p.guard.Validate(ErrPackageSizeIsNotConstructed)
}

// Weight returns the package weight in kilograms.
func (p PackageSize) Weight() float64 {
	return p.weight
}

// Volume returns the package volume in cubic meters.
func (p PackageSize) Volume() float64 {
	return p.volume
}

// CanBeHandledBy reports whether a vehicle of the given type can carry this
// package under the fixed per-vehicle weight and volume ceilings. Unknown
// vehicle types can handle nothing.
func (p PackageSize) CanBeHandledBy(vehicleType kernel.VehicleType) bool {
	ceiling, ok := getVehicleCeilings()[vehicleType]
	if !ok {
		return false
	}
	return p.weight <= ceiling.maxWeightKg && p.volume <= ceiling.maxVolumeM3
}

func (p *PackageSize) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight is invalid",
			fmt.Errorf("%g is not greater than 0", weight))
	}
	p.weight = weight
	return nil
}

func (p *PackageSize) setVolume(volume float64) error {
	if volume <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("volume is invalid",
			fmt.Errorf("%g is not greater than 0", volume))
	}
	p.volume = volume
	return nil
}
