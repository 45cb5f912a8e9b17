package service

import (
	"errors"
	"strings"

	"github.com/smallbiznis/oilimports/internal/crudeimport/domain"
)

type recordFields struct {
	Year                int
	Month               int
	OriginName          string
	OriginTypeName      string
	DestinationName     string
	DestinationTypeName string
	GradeName           string
	Quantity            int
}

// validateComplete requires every field to be set and in range.
func validateComplete(req domain.CreateRequest) (recordFields, error) {
	var errs []error
	var out recordFields

	if req.Year == nil || !validYear(*req.Year) {
		errs = append(errs, domain.ErrInvalidYear)
	} else {
		out.Year = *req.Year
	}
	if req.Month == nil || !validMonth(*req.Month) {
		errs = append(errs, domain.ErrInvalidMonth)
	} else {
		out.Month = *req.Month
	}
	out.OriginName, errs = requireName(req.OriginName, domain.ErrInvalidOriginName, errs)
	out.OriginTypeName, errs = requireName(req.OriginTypeName, domain.ErrInvalidOriginTypeName, errs)
	out.DestinationName, errs = requireName(req.DestinationName, domain.ErrInvalidDestinationName, errs)
	out.DestinationTypeName, errs = requireName(req.DestinationTypeName, domain.ErrInvalidDestinationTypeName, errs)
	out.GradeName, errs = requireName(req.GradeName, domain.ErrInvalidGradeName, errs)
	if req.Quantity == nil || !validQuantity(*req.Quantity) {
		errs = append(errs, domain.ErrInvalidQuantity)
	} else {
		out.Quantity = *req.Quantity
	}

	return out, errors.Join(errs...)
}

// validatePatch checks only the fields that are set.
func validatePatch(req domain.PatchRequest) error {
	var errs []error
	if req.Year != nil && !validYear(*req.Year) {
		errs = append(errs, domain.ErrInvalidYear)
	}
	if req.Month != nil && !validMonth(*req.Month) {
		errs = append(errs, domain.ErrInvalidMonth)
	}
	if req.Quantity != nil && !validQuantity(*req.Quantity) {
		errs = append(errs, domain.ErrInvalidQuantity)
	}
	_, errs = optionalName(req.OriginName, domain.ErrInvalidOriginName, errs)
	_, errs = optionalName(req.OriginTypeName, domain.ErrInvalidOriginTypeName, errs)
	_, errs = optionalName(req.DestinationName, domain.ErrInvalidDestinationName, errs)
	_, errs = optionalName(req.DestinationTypeName, domain.ErrInvalidDestinationTypeName, errs)
	_, errs = optionalName(req.GradeName, domain.ErrInvalidGradeName, errs)
	return errors.Join(errs...)
}

// validateFilter applies the same static ranges to numeric filter values.
func validateFilter(filter domain.Filter) error {
	var errs []error
	if filter.Year != nil && !validYear(*filter.Year) {
		errs = append(errs, domain.ErrInvalidYear)
	}
	if filter.Month != nil && !validMonth(*filter.Month) {
		errs = append(errs, domain.ErrInvalidMonth)
	}
	if filter.Quantity != nil && !validQuantity(*filter.Quantity) {
		errs = append(errs, domain.ErrInvalidQuantity)
	}
	return errors.Join(errs...)
}

func validYear(v int) bool {
	return v >= domain.MinYear && v <= domain.MaxYear
}

func validMonth(v int) bool {
	return v >= domain.MinMonth && v <= domain.MaxMonth
}

func validQuantity(v int) bool {
	return v >= domain.MinQuantity
}

func requireName(v *string, invalid error, errs []error) (string, []error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return "", append(errs, invalid)
	}
	return *v, errs
}

func optionalName(v *string, invalid error, errs []error) (string, []error) {
	if v == nil {
		return "", errs
	}
	return requireName(v, invalid, errs)
}
