package model

import "testing"

func TestItemPresetApply(t *testing.T) {
	v := 99.0
	item := RequestItem{
		ID:             "keep",
		Description:    "old description",
		Quantity:       3,
		Unit:           "un",
		EstimatedValue: &v,
	}

	preset := ItemPreset{
		Description:       "Papel filtro para laboratório",
		Unit:              "cx",
		SuggestedSupplier: "LabFornecedora",
	}
	preset.Apply(&item)

	if item.Description != "Papel filtro para laboratório" {
		t.Errorf("expected description copied, got %q", item.Description)
	}
	if item.Unit != "cx" {
		t.Errorf("expected unit copied, got %q", item.Unit)
	}
	if item.SuggestedSupplier != "LabFornecedora" {
		t.Errorf("expected supplier copied, got %q", item.SuggestedSupplier)
	}
	// Empty preset fields leave the item alone.
	if item.Specifications != "" {
		t.Errorf("expected specifications untouched, got %q", item.Specifications)
	}
	// Fields outside the preset never change.
	if item.ID != "keep" || item.Quantity != 3 || item.EstimatedValue == nil || *item.EstimatedValue != 99 {
		t.Error("expected id, quantity and estimated value untouched")
	}
}
