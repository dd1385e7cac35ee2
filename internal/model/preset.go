package model

// ItemPreset is the subset of a historical line item that may be copied onto
// a new item: exactly these four fields carry over, nothing else. Quantity
// and estimated value are deliberately excluded; they belong to the new
// purchase, not the old one.
type ItemPreset struct {
	Description       string `json:"description"`
	Unit              string `json:"unit"`
	Specifications    string `json:"specifications,omitempty"`
	SuggestedSupplier string `json:"suggested_supplier,omitempty"`
}

// Apply copies the preset onto an item being drafted in a form. Empty preset
// fields leave the item's current value untouched.
func (p ItemPreset) Apply(item *RequestItem) {
	if p.Description != "" {
		item.Description = p.Description
	}
	if p.Unit != "" {
		item.Unit = p.Unit
	}
	if p.Specifications != "" {
		item.Specifications = p.Specifications
	}
	if p.SuggestedSupplier != "" {
		item.SuggestedSupplier = p.SuggestedSupplier
	}
}
