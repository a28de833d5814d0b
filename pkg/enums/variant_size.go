package enums

import "fmt"

// VariantSize describes the allowed values for the `size` column in
// product_variants.
type VariantSize string

const (
	VariantSizeXS  VariantSize = "XS"
	VariantSizeS   VariantSize = "S"
	VariantSizeM   VariantSize = "M"
	VariantSizeL   VariantSize = "L"
	VariantSizeXL  VariantSize = "XL"
	VariantSizeXXL VariantSize = "XXL"
)

var validVariantSizes = []VariantSize{
	VariantSizeXS,
	VariantSizeS,
	VariantSizeM,
	VariantSizeL,
	VariantSizeXL,
	VariantSizeXXL,
}

// IsValid reports whether the value matches the canonical size enum.
func (s VariantSize) IsValid() bool {
	for _, candidate := range validVariantSizes {
		if candidate == s {
			return true
		}
	}
	return false
}

// String returns the raw enum value.
func (s VariantSize) String() string {
	return string(s)
}

// ParseVariantSize converts the raw string to VariantSize.
func ParseVariantSize(value string) (VariantSize, error) {
	for _, candidate := range validVariantSizes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid variant size %q", value)
}
