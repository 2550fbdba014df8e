package ui

import (
	"strings"

	"github.com/Oudwins/tailwind-merge-go/pkg/twmerge"
)

// Classes merges tailwind class lists; later classes win over conflicting
// earlier ones ("px-2", "px-4" gives "px-4").
func Classes(classes ...string) string {
	return twmerge.Merge(strings.Join(classes, " "))
}
