// Package geo implements geodesic distance calculators.
package geo

import (
	"addressbook/config"
	"addressbook/internal/domain/service"
	"addressbook/internal/errors"
)

// NewDistanceCalculator returns the calculator selected by search.distanceFormula.
func NewDistanceCalculator(cfg *config.Config) (service.DistanceCalculator, error) {
	formula := config.FormulaVincenty
	if cfg != nil && cfg.Search != nil && cfg.Search.DistanceFormula != "" {
		formula = cfg.Search.DistanceFormula
	}

	switch formula {
	case config.FormulaVincenty:
		return NewVincenty(), nil
	case config.FormulaHaversine:
		return NewHaversine(), nil
	default:
		return nil, errors.Errorf("unknown distance formula: %s", formula)
	}
}
