package models

// StoreSection groups grocery items for display ordering.
type StoreSection string

const (
	SectionProduce StoreSection = "Produce"
	SectionMeat    StoreSection = "Meat"
	SectionSeafood StoreSection = "Seafood"
	SectionDairy   StoreSection = "Dairy"
	SectionPantry  StoreSection = "Pantry"
	SectionOther   StoreSection = "Other"
)

func (s StoreSection) String() string {
	return string(s)
}

// StoreSections lists the sections in display order.
var StoreSections = []StoreSection{
	SectionProduce,
	SectionMeat,
	SectionSeafood,
	SectionDairy,
	SectionPantry,
	SectionOther,
}

// GroceryItem is a derived shortage record: quantity required for the
// planned meals minus quantity on hand. Never persisted; only the
// checked/unchecked display state survives between sessions.
type GroceryItem struct {
	Name     string       `json:"name"`
	Quantity float64      `json:"quantity"`
	Unit     string       `json:"unit"`
	Section  StoreSection `json:"section"`
}
