package register_entry

import (
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Госномер к этому моменту уже нормализован.
func validateRequest(req *Request) error {
	if req.LicensePlate == "" {
		return fmt.Errorf("%w: licensePlate is required", ErrInvalidInput)
	}
	if len(req.LicensePlate) > domain.MaxLicensePlateLength {
		return fmt.Errorf("%w: licensePlate exceeds %d characters", ErrInvalidInput, domain.MaxLicensePlateLength)
	}
	if len(req.Color) > domain.MaxColorLength {
		return fmt.Errorf("%w: color exceeds %d characters", ErrInvalidInput, domain.MaxColorLength)
	}
	if len(req.Brand) > domain.MaxBrandLength {
		return fmt.Errorf("%w: brand exceeds %d characters", ErrInvalidInput, domain.MaxBrandLength)
	}
	if _, err := domain.ParseSpotType(string(req.SpotType)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
