package models

import (
	"math"
	"net/url"
	"strconv"
)

// Recognized kiosk query parameters.
const (
	FilterKeyType     = "type"
	FilterKeyColor    = "color"
	FilterKeyCategory = "category"
	FilterKeySize     = "size"
	FilterKeySearch   = "search"
	FilterKeyMinPrice = "minPrice"
	FilterKeyMaxPrice = "maxPrice"
)

// ProductFilters is the structured form of the kiosk's active search
// criteria. The zero value means "no filters". String fields use "" for
// absent; price bounds use nil. minPrice > maxPrice is passed through
// as-is, matching the repository's inclusive-range semantics.
type ProductFilters struct {
	Type     string   `json:"type,omitempty"`
	Color    string   `json:"color,omitempty"`
	Category string   `json:"category,omitempty"`
	Size     string   `json:"size,omitempty"`
	Search   string   `json:"search,omitempty"`
	MinPrice *float64 `json:"minPrice,omitempty"`
	MaxPrice *float64 `json:"maxPrice,omitempty"`
}

// Encode renders the filters as URL query values, omitting absent fields.
// Prices are plain base-10 decimals with no separators.
func (f ProductFilters) Encode() url.Values {
	values := url.Values{}

	if f.Type != "" {
		values.Set(FilterKeyType, f.Type)
	}

	if f.Color != "" {
		values.Set(FilterKeyColor, f.Color)
	}

	if f.Category != "" {
		values.Set(FilterKeyCategory, f.Category)
	}

	if f.Size != "" {
		values.Set(FilterKeySize, f.Size)
	}

	if f.Search != "" {
		values.Set(FilterKeySearch, f.Search)
	}

	if f.MinPrice != nil {
		values.Set(FilterKeyMinPrice, strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}

	if f.MaxPrice != nil {
		values.Set(FilterKeyMaxPrice, strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}

	return values
}

// DecodeFilters reconstructs ProductFilters from URL query values.
// Unknown keys are ignored. A price that fails to parse, is not finite,
// or is negative decodes as absent rather than as an error.
func DecodeFilters(values url.Values) ProductFilters {
	return ProductFilters{
		Type:     values.Get(FilterKeyType),
		Color:    values.Get(FilterKeyColor),
		Category: values.Get(FilterKeyCategory),
		Size:     values.Get(FilterKeySize),
		Search:   values.Get(FilterKeySearch),
		MinPrice: decodePrice(values.Get(FilterKeyMinPrice)),
		MaxPrice: decodePrice(values.Get(FilterKeyMaxPrice)),
	}
}

func decodePrice(raw string) *float64 {
	if raw == "" {
		return nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return nil
	}

	return &v
}

// Toggle applies a single filter click: setting the value that is already
// active clears it, anything else activates it. Two identical toggles
// cancel out. Price keys are parsed with the same fail-soft rules as
// DecodeFilters.
func (f ProductFilters) Toggle(key, value string) ProductFilters {
	switch key {
	case FilterKeyType:
		f.Type = toggleString(f.Type, value)
	case FilterKeyColor:
		f.Color = toggleString(f.Color, value)
	case FilterKeyCategory:
		f.Category = toggleString(f.Category, value)
	case FilterKeySize:
		f.Size = toggleString(f.Size, value)
	case FilterKeySearch:
		f.Search = toggleString(f.Search, value)
	case FilterKeyMinPrice:
		f.MinPrice = togglePrice(f.MinPrice, value)
	case FilterKeyMaxPrice:
		f.MaxPrice = togglePrice(f.MaxPrice, value)
	}

	return f
}

func toggleString(current, value string) string {
	if current == value {
		return ""
	}

	return value
}

func togglePrice(current *float64, value string) *float64 {
	next := decodePrice(value)
	if next == nil {
		return nil
	}

	if current != nil && *current == *next {
		return nil
	}

	return next
}

// Clear resets every field.
func (f ProductFilters) Clear() ProductFilters {
	return ProductFilters{}
}

func (f ProductFilters) IsEmpty() bool {
	return f == ProductFilters{}
}

// ActiveCount reports how many filters are applied, for the "n active"
// badge on the filter bar.
func (f ProductFilters) ActiveCount() int {
	count := 0

	for _, s := range []string{f.Type, f.Color, f.Category, f.Size, f.Search} {
		if s != "" {
			count++
		}
	}

	if f.MinPrice != nil {
		count++
	}

	if f.MaxPrice != nil {
		count++
	}

	return count
}
