package models

// Fixed catalog enumerations shared by the admin forms and the kiosk
// filter bar.

var ProductTypes = []string{
	"shirt",
	"t-shirt",
	"jeans",
	"pants",
	"jacket",
	"dress",
	"skirt",
	"sweater",
	"hoodie",
	"shorts",
	"coat",
	"blazer",
	"other",
}

var ProductCategories = []string{
	"casual",
	"formal",
	"sportswear",
	"evening",
	"workwear",
	"streetwear",
}

var ProductColors = []string{
	"black",
	"white",
	"gray",
	"navy",
	"blue",
	"red",
	"green",
	"brown",
	"beige",
	"pink",
	"purple",
	"orange",
	"yellow",
	"multicolor",
}

var ProductSizes = []string{"XS", "S", "M", "L", "XL", "XXL", "XXXL"}

var ShopCategories = []string{
	"clothing",
	"fashion",
	"accessories",
	"footwear",
	"sportswear",
	"formal",
	"casual",
	"other",
}

type CatalogMeta struct {
	Types      []string `json:"types"`
	Categories []string `json:"categories"`
	Colors     []string `json:"colors"`
	Sizes      []string `json:"sizes"`
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}

	return false
}

func IsProductType(v string) bool     { return contains(ProductTypes, v) }
func IsProductCategory(v string) bool { return contains(ProductCategories, v) }
func IsProductColor(v string) bool    { return contains(ProductColors, v) }
func IsProductSize(v string) bool     { return contains(ProductSizes, v) }
func IsShopCategory(v string) bool    { return contains(ShopCategories, v) }
