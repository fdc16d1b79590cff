package catalog

import (
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
)

type Category int

const (
	UnknownCategory Category = iota
	Men
	Women
	Kids
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		Men:   "Men",
		Women: "Women",
		Kids:  "Kids",
	}
}

func (c Category) Validate() error {
	if _, ok := getCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

func (c Category) String() string {
	if s, ok := getCategoryStrings()[c]; ok {
		return s
	}
	return "Unknown"
}

// ParseCategory accepts the display names case-insensitively.
func ParseCategory(s string) (Category, error) {
	for c, name := range getCategoryStrings() {
		if strings.EqualFold(name, s) {
			return c, nil
		}
	}
	return UnknownCategory, errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%q is not a valid category", s))
}
