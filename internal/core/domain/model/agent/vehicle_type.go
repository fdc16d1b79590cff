package agent

import (
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
)

// VehicleType is the kind of vehicle an agent delivers with.
type VehicleType int

const (
	VehicleUnknown VehicleType = iota
	VehicleBike
	VehicleScooter
	VehicleCar
	VehicleVan
)

func getVehicleTypeStrings() map[VehicleType]string {
	return map[VehicleType]string{
		VehicleBike:    "Bike",
		VehicleScooter: "Scooter",
		VehicleCar:     "Car",
		VehicleVan:     "Van",
	}
}

func (v VehicleType) Validate() error {
	if _, ok := getVehicleTypeStrings()[v]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("vehicle type", fmt.Errorf("%d is not a valid vehicle type", v))
	}
	return nil
}

func (v VehicleType) String() string {
	if s, ok := getVehicleTypeStrings()[v]; ok {
		return s
	}
	return "Unknown"
}

func ParseVehicleType(s string) (VehicleType, error) {
	for v, name := range getVehicleTypeStrings() {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return v, nil
		}
	}
	return VehicleUnknown, errs.NewValueIsInvalidErrorWithCause("vehicle type", fmt.Errorf("%q is not a valid vehicle type", s))
}
