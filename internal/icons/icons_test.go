package icons

import "testing"

func strPtr(s string) *string { return &s }

// TestResolveIsTotal verifies the resolver always returns a renderable
// icon, for any combination of stored name and category label.
func TestResolveIsTotal(t *testing.T) {
	inputs := []struct {
		name     *string
		category string
	}{
		{nil, ""},
		{strPtr(""), ""},
		{strPtr("NoSuchIcon"), ""},
		{strPtr("NoSuchIcon"), "Unknown Category"},
		{nil, "Cobrança"},
		{strPtr("FileText"), "Billing"},
		{strPtr("\x00weird"), "\t"},
	}

	for _, in := range inputs {
		got := Resolve(in.name, in.category)
		if got.Name == "" || got.Body == "" {
			t.Errorf("Resolve(%v, %q) returned empty icon", in.name, in.category)
		}
	}
}

func TestResolveExactMatchWins(t *testing.T) {
	// Exact name beats the category fallback.
	got := Resolve(strPtr("KeyRound"), "Cobrança")
	if got.Name != "KeyRound" {
		t.Errorf("Resolve = %q, want KeyRound", got.Name)
	}
}

func TestResolveCategoryFallback(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{"Cobrança", "CreditCard"},
		{"cobrança", "CreditCard"}, // case-folded
		{"  Billing  ", "CreditCard"},
		{"Integrações", "Plug"},
		{"Segurança", "Shield"},
	}
	for _, tt := range tests {
		if got := Resolve(nil, tt.category); got.Name != tt.want {
			t.Errorf("Resolve(nil, %q) = %q, want %q", tt.category, got.Name, tt.want)
		}
	}
}

func TestResolveGenericDefault(t *testing.T) {
	got := Resolve(strPtr("Bogus"), "No Such Category")
	if got.Name != DefaultName {
		t.Errorf("Resolve = %q, want %q", got.Name, DefaultName)
	}
}

// TestCatalogBacksThePicker verifies the picker list and the validation
// predicate agree with the catalog, so stored names always resolve.
func TestCatalogBacksThePicker(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("Names() is empty")
	}
	for _, name := range names {
		if !Valid(name) {
			t.Errorf("picker name %q not Valid", name)
		}
		if got := Resolve(&name, ""); got.Name != name {
			t.Errorf("picker name %q resolves to %q", name, got.Name)
		}
	}
	// Sorted order for a stable picker UI.
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Names() not sorted at %d: %q >= %q", i, names[i-1], names[i])
		}
	}
}

func TestValid(t *testing.T) {
	if !Valid("") {
		t.Error(`Valid("") = false, want true (no icon chosen)`)
	}
	if !Valid("FileText") {
		t.Error(`Valid("FileText") = false`)
	}
	if Valid("NotAnIcon") {
		t.Error(`Valid("NotAnIcon") = true`)
	}
}
