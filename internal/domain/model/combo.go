package model

import (
	"strconv"
	"strings"
)

const (
	// comboPairSeparator joins the escaped product id and its quantity.
	comboPairSeparator = ":"
	// comboEntrySeparator joins the productId:quantity pairs.
	comboEntrySeparator = "|"
)

// comboEscaper escapes the separator characters inside product ids so two
// distinct compositions can never encode to the same signature.
var comboEscaper = strings.NewReplacer(
	`\`, `\\`,
	comboPairSeparator, `\:`,
	comboEntrySeparator, `\|`,
)

// ComboSignature derives the canonical fingerprint of an item composition.
//
// Duplicate entries for the same product are merged by quantity, entries with
// a non-positive quantity are discarded, and the merged pairs are sorted by
// product identity before encoding. Any permutation of an equivalent multiset
// therefore yields an identical signature, and compositions differing in
// membership or quantity always yield different ones.
func ComboSignature(items []Item) string {
	merged := MergeItems(items)
	if len(merged) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, it := range merged {
		if i > 0 {
			sb.WriteString(comboEntrySeparator)
		}
		sb.WriteString(comboEscaper.Replace(it.Key()))
		sb.WriteString(comboPairSeparator)
		sb.WriteString(strconv.Itoa(it.Quantity))
	}
	return sb.String()
}
