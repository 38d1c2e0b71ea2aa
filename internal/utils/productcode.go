package utils

import (
	"math/rand/v2"
	"strings"
)

// Three-letter abbreviations used in product codes, keyed by product type.
var typeAbbreviations = map[string]string{
	"shirt":   "SHT",
	"t-shirt": "TSH",
	"jeans":   "JNS",
	"pants":   "PNT",
	"jacket":  "JKT",
	"dress":   "DRS",
	"skirt":   "SKT",
	"sweater": "SWT",
	"hoodie":  "HOD",
	"shorts":  "SHR",
	"coat":    "COT",
	"blazer":  "BLZ",
	"other":   "OTH",
}

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateProductCode produces a display code like TRY-SHT-A3K9.
// Unrecognized types fall back to OTH. The random suffix is not checked
// against existing codes; the uuid primary key carries uniqueness and
// codes are lookup tokens, not identifiers.
func GenerateProductCode(productType string) string {
	abbr, ok := typeAbbreviations[strings.ToLower(productType)]
	if !ok {
		abbr = "OTH"
	}

	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = codeAlphabet[rand.IntN(len(codeAlphabet))]
	}

	return "TRY-" + abbr + "-" + string(suffix)
}
