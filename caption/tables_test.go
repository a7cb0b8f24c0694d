package caption

import "testing"

func TestTranslateKnown(t *testing.T) {
	tests := map[string]string{
		"golden_retriever": "골든 리트리버",
		"pizza":            "피자",
		"laptop":           "노트북",
	}
	for label, want := range tests {
		if got := Translate(label); got != want {
			t.Errorf("Translate(%s) = %q, want %q", label, got, want)
		}
	}
}

func TestTranslateUnknownReplacesUnderscores(t *testing.T) {
	if got := Translate("space_shuttle"); got != "space shuttle" {
		t.Fatalf("Translate(space_shuttle) = %q", got)
	}
	if got := Translate("class_42"); got != "class 42" {
		t.Fatalf("Translate(class_42) = %q", got)
	}
}

func TestCategoryOf(t *testing.T) {
	tests := map[string]string{
		"golden_retriever": CategoryAnimals,
		"pizza":            CategoryFood,
		"sports_car":       CategoryVehicles,
		"laptop":           CategoryElectronics,
		"space_shuttle":    CategoryUnknown,
	}
	for label, want := range tests {
		if got := CategoryOf(label); got != want {
			t.Errorf("CategoryOf(%s) = %q, want %q", label, got, want)
		}
	}
}

func TestEveryCategoryMemberHasTranslation(t *testing.T) {
	for cat, labels := range categories {
		for _, label := range labels {
			if _, ok := translations[label]; !ok {
				t.Errorf("category %s member %s has no translation", cat, label)
			}
		}
	}
}

func TestCategoryOrderCoversAllCategories(t *testing.T) {
	if len(categoryOrder) != len(categories) {
		t.Fatalf("order lists %d categories, table has %d", len(categoryOrder), len(categories))
	}
	for _, cat := range categoryOrder {
		if _, ok := categories[cat]; !ok {
			t.Errorf("ordered category %s missing from table", cat)
		}
	}
}
