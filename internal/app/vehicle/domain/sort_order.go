package domain

import "fmt"

// SortOrder selects one of the supported listing orderings.
type SortOrder int

const (
	// SortRelevance keeps the store order.
	SortRelevance SortOrder = iota
	SortPriceAsc
	SortPriceDesc
	SortYearNewest
	SortYearOldest
	SortModelAZ
	SortModelZA
)

// SortKey is the summary attribute an ordering compares.
type SortKey int

const (
	KeyNone SortKey = iota
	KeyPrice
	KeyYear
	KeyModel
)

// SortSpec describes how a SortOrder compares records.
type SortSpec struct {
	Token      string
	Label      string
	Key        SortKey
	Descending bool
}

var sortSpecs = map[SortOrder]SortSpec{
	SortRelevance:  {Token: "relevance", Label: "Relevance", Key: KeyNone},
	SortPriceAsc:   {Token: "price_asc", Label: "Price (low to high)", Key: KeyPrice},
	SortPriceDesc:  {Token: "price_desc", Label: "Price (high to low)", Key: KeyPrice, Descending: true},
	SortYearNewest: {Token: "year_newest", Label: "Year (newest)", Key: KeyYear, Descending: true},
	SortYearOldest: {Token: "year_oldest", Label: "Year (oldest)", Key: KeyYear},
	SortModelAZ:    {Token: "model_az", Label: "Model (A-Z)", Key: KeyModel},
	SortModelZA:    {Token: "model_za", Label: "Model (Z-A)", Key: KeyModel, Descending: true},
}

// SortOrders lists every supported order in display order.
func SortOrders() []SortOrder {
	return []SortOrder{
		SortRelevance,
		SortPriceAsc,
		SortPriceDesc,
		SortYearNewest,
		SortYearOldest,
		SortModelAZ,
		SortModelZA,
	}
}

// Spec returns the comparison table entry for the order. Unknown values
// fall back to relevance.
func (o SortOrder) Spec() SortSpec {
	if s, ok := sortSpecs[o]; ok {
		return s
	}
	return sortSpecs[SortRelevance]
}

// Valid reports whether o is one of the declared orders.
func (o SortOrder) Valid() bool {
	_, ok := sortSpecs[o]
	return ok
}

func (o SortOrder) String() string {
	return o.Spec().Token
}

// ParseSortOrder accepts a wire token. Empty input means relevance.
func ParseSortOrder(token string) (SortOrder, error) {
	if token == "" {
		return SortRelevance, nil
	}
	for o, s := range sortSpecs {
		if s.Token == token {
			return o, nil
		}
	}
	return SortRelevance, fmt.Errorf("%w: %q", ErrInvalidSortOrder, token)
}

// MarshalText encodes the order as its wire token.
func (o SortOrder) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText decodes a wire token.
func (o *SortOrder) UnmarshalText(b []byte) error {
	parsed, err := ParseSortOrder(string(b))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
