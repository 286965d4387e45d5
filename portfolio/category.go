// Package portfolio turns raw holdings input into records grouped by major
// category, with percent shares and per-label palette colors.
package portfolio

import "strings"

// Kind enumerates the predefined major categories.
type Kind uint8

const (
	KindMutualFund Kind = iota // 投資信託
	KindETF                    // ETF
	KindStock                  // 個別株
	KindCrypto                 // 暗号資産
	KindCash                   // 現金
	numKinds
)

// OtherLabel is the selector entry that switches a row to a custom category.
const OtherLabel = "その他"

var kindLabels = [numKinds]string{"投資信託", "ETF", "個別株", "暗号資産", "現金"}

// Names used by the viewer, whose default font has no CJK glyphs.
var kindNames = [numKinds]string{"Mutual fund", "ETF", "Stock", "Crypto", "Cash"}

// Label returns the category label used for grouping and tooltips.
func (k Kind) Label() string {
	if k >= numKinds {
		return ""
	}
	return kindLabels[k]
}

// Name returns an ASCII display name.
func (k Kind) Name() string {
	if k >= numKinds {
		return ""
	}
	return kindNames[k]
}

// Kinds returns all predefined kinds in selector order.
func Kinds() []Kind {
	out := make([]Kind, numKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Category is either a predefined kind or a custom free-text name.
// The zero value is Predefined(KindMutualFund).
type Category struct {
	kind     Kind
	custom   string
	isCustom bool
}

// Predefined returns a category for one of the fixed kinds.
func Predefined(k Kind) Category {
	return Category{kind: k}
}

// Custom returns a user-named category. An empty name becomes OtherLabel.
func Custom(name string) Category {
	name = strings.TrimSpace(name)
	if name == "" {
		name = OtherLabel
	}
	return Category{custom: name, isCustom: true}
}

// ParseCategory maps a free-text label to a category: an exact predefined
// label yields Predefined, anything else Custom. "stock" or "Cash" typed
// into a form stay groups of their own.
func ParseCategory(label string) Category {
	label = strings.TrimSpace(label)
	for i, l := range kindLabels {
		if label == l {
			return Predefined(Kind(i))
		}
	}
	return Custom(label)
}

// ParseCategoryName is ParseCategory for holdings files and the command
// line, where the exact ASCII kind names ("Cash", "Stock") also select the
// predefined kinds. Matching is case-sensitive.
func ParseCategoryName(name string) Category {
	name = strings.TrimSpace(name)
	for i, n := range kindNames {
		if name == n {
			return Predefined(Kind(i))
		}
	}
	return ParseCategory(name)
}

// FromSelection builds a category from a selector entry and the custom
// text box next to it. Selecting OtherLabel reads the text box.
func FromSelection(selected, customText string) Category {
	if selected == OtherLabel {
		return Custom(customText)
	}
	return ParseCategory(selected)
}

// Kind returns the predefined kind and whether the category is predefined.
func (c Category) Kind() (Kind, bool) {
	return c.kind, !c.isCustom
}

// String returns the grouping label.
func (c Category) String() string {
	if c.isCustom {
		return c.custom
	}
	return c.kind.Label()
}

// DisplayName returns an ASCII-friendly name for predefined kinds and the
// raw name for custom ones.
func (c Category) DisplayName() string {
	if c.isCustom {
		return c.custom
	}
	return c.kind.Name()
}
