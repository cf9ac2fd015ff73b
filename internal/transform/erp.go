package transform

import (
	"strings"

	"github.com/mesh-intelligence/medallion/pkg/types"
)

// ErpCustomers normalizes ERP demographics rows: the "NAS" prefix is
// stripped from the external id, birth dates after the current date become
// null, and the gender text maps to Male/Female/N/A.
func (e *Engine) ErpCustomers(raws []types.RawErpCustomer) []types.CanonicalErpCustomer {
	now := e.now()
	out := make([]types.CanonicalErpCustomer, 0, len(raws))
	for _, raw := range raws {
		id := strings.TrimSpace(derefString(raw.ExternalID))
		id = strings.TrimPrefix(id, "NAS")

		birth := raw.BirthDate
		if birth != nil && birth.After(now) {
			birth = nil
		}

		out = append(out, types.CanonicalErpCustomer{
			ExternalID: id,
			BirthDate:  birth,
			Gender:     types.Lookup(e.maps.Gender, raw.GenderText),
		})
	}
	return out
}

// ErpLocations normalizes ERP location rows: dashes are stripped from the
// external id and the country text maps through the country lookup table,
// unmatched values becoming N/A.
func (e *Engine) ErpLocations(raws []types.RawErpLocation) []types.CanonicalErpLocation {
	out := make([]types.CanonicalErpLocation, 0, len(raws))
	for _, raw := range raws {
		id := strings.ReplaceAll(strings.TrimSpace(derefString(raw.ExternalID)), "-", "")
		out = append(out, types.CanonicalErpLocation{
			ExternalID: id,
			Country:    types.Lookup(e.maps.Country, raw.CountryText),
		})
	}
	return out
}

// ErpCategories passes category rows through unchanged.
func (e *Engine) ErpCategories(raws []types.RawErpCategory) []types.CanonicalErpCategory {
	out := make([]types.CanonicalErpCategory, 0, len(raws))
	for _, raw := range raws {
		out = append(out, types.CanonicalErpCategory{
			CategoryID:      derefString(raw.CategoryID),
			Category:        derefString(raw.Category),
			Subcategory:     derefString(raw.Subcategory),
			MaintenanceFlag: derefString(raw.MaintenanceFlag),
		})
	}
	return out
}
