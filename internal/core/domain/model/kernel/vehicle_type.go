package kernel

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// VehicleType enumerates the vehicle classes a delivery agent can operate.
// Each class carries fixed weight/volume ceilings enforced by the delivery
// package-size check.
type VehicleType int

const (
	// VehicleUnknown represents an invalid or undefined vehicle type.
	// This value (0) helps catch uninitialized VehicleType values.
	VehicleUnknown VehicleType = iota

	// VehicleBicycle is a bicycle courier.
	VehicleBicycle

	// VehicleMotorcycle is a motorcycle courier.
	VehicleMotorcycle

	// VehicleCar is a passenger car.
	VehicleCar

	// VehicleVan is a delivery van.
	VehicleVan

	// VehicleTruck is a box truck.
	VehicleTruck
)

// getVehicleTypeStrings returns a map of VehicleType values to their string
// representations. All values are included for string conversion.
func getVehicleTypeStrings() map[VehicleType]string {
	return map[VehicleType]string{
		VehicleUnknown:    "Unknown",
		VehicleBicycle:    "Bicycle",
		VehicleMotorcycle: "Motorcycle",
		VehicleCar:        "Car",
		VehicleVan:        "Van",
		VehicleTruck:      "Truck",
	}
}

// getValidVehicleTypeStrings returns a map of only valid VehicleType values.
func getValidVehicleTypeStrings() map[VehicleType]string {
	//nolint:exhaustive // VehicleUnknown is intentionally excluded as it's invalid
	return map[VehicleType]string{
		VehicleBicycle:    "Bicycle",
		VehicleMotorcycle: "Motorcycle",
		VehicleCar:        "Car",
		VehicleVan:        "Van",
		VehicleTruck:      "Truck",
	}
}

// Validate checks if the VehicleType value is one of the defined vehicle
// classes. VehicleUnknown (0) and any other values are invalid.
func (v VehicleType) Validate() error {
	if _, ok := getValidVehicleTypeStrings()[v]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("vehicle type is invalid",
			fmt.Errorf("%d is not a valid vehicle type", v))
	}
	return nil
}

// String returns the human-readable name of the vehicle type. It implements
// fmt.Stringer and is safe to call on any value, including invalid ones.
func (v VehicleType) String() string {
	if str, ok := getVehicleTypeStrings()[v]; ok {
		return str
	}
	return "Unknown"
}

// VehicleTypeFromString parses a vehicle type name as received from transport
// or persistence. The comparison is exact; unknown names yield an error.
func VehicleTypeFromString(s string) (VehicleType, error) {
	for vt, str := range getValidVehicleTypeStrings() {
		if str == s {
			return vt, nil
		}
	}
	return VehicleUnknown, errs.NewValueIsInvalidErrorWithCause("vehicle type is invalid",
		fmt.Errorf("%q is not a valid vehicle type", s))
}
