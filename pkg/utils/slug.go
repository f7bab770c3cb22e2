package utils

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"github.com/oklog/ulid/v2"
)

const fallbackSlug = "product"

// SlugCandidate returns the slug to try on the given attempt. Attempt 0 is the
// bare slug of name, then numbered variants, and past maxNumbered a ULID
// suffix.
func SlugCandidate(name string, attempt int, maxNumbered int) string {
	base := slug.Make(name)
	if base == "" {
		base = fallbackSlug
	}

	switch {
	case attempt == 0:
		return base
	case attempt <= maxNumbered:
		return fmt.Sprintf("%s-%d", base, attempt+1)
	default:
		return fmt.Sprintf("%s-%s", base, strings.ToLower(ulid.Make().String()))
	}
}
