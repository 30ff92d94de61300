package dto

import (
	"guaranihost/filters"
)

// ListFilters son los filtros que comparten las pantallas de listado.
// Se guardan por sesión para restaurarlos al volver a la pantalla.
type ListFilters struct {
	Search   string   `json:"search,omitempty" form:"search"`
	City     string   `json:"city,omitempty" form:"city"`
	Location string   `json:"location,omitempty" form:"location"`
	Status   string   `json:"status,omitempty" form:"status"`
	MinPrice *float64 `json:"minPrice,omitempty" form:"minPrice" validate:"omitempty,gte=0"`
	MaxPrice *float64 `json:"maxPrice,omitempty" form:"maxPrice" validate:"omitempty,gte=0"`
	Sort     string   `json:"sort,omitempty" form:"sort" validate:"omitempty,oneof=price_asc price_desc newest rating"`
}

// Empty indica si no hay ningún filtro cargado
func (f ListFilters) Empty() bool {
	return f.Search == "" && f.City == "" && f.Location == "" && f.Status == "" &&
		f.MinPrice == nil && f.MaxPrice == nil && f.Sort == ""
}

// Spec convierte los filtros en la especificación que aplica filters.Apply
func (f ListFilters) Spec(searchFields []string) filters.Spec {
	equals := map[string]string{}
	if f.City != "" {
		equals["city"] = f.City
	}
	if f.Location != "" {
		equals["location"] = f.Location
	}
	if f.Status != "" {
		equals["status"] = f.Status
	}
	return filters.Spec{
		Search:       f.Search,
		SearchFields: searchFields,
		Equals:       equals,
		MinPrice:     f.MinPrice,
		MaxPrice:     f.MaxPrice,
		Sort:         filters.ParseSortKey(f.Sort),
	}
}
