package processor

import (
	"testing"
)

func TestGroupFinancialSections(t *testing.T) {
	sheet := sheetOf(
		textRow("Header"),
		textRow("Total Revenue"),
		textRow("Sales", "100"),
		textRow("Total Expenses"),
		textRow("Rent", "40"),
	)

	result := GroupFinancial(sheet)

	if len(result.Sections) != 2 {
		t.Fatalf("Expected 2 sections, got %d", len(result.Sections))
	}

	revenue := result.Sections[0]
	if revenue.Name != "Total Revenue" {
		t.Errorf("Expected section 'Total Revenue', got %q", revenue.Name)
	}
	if len(revenue.Items) != 1 || revenue.Items[0].Amount != 100 {
		t.Errorf("Expected one item with amount 100, got %v", revenue.Items)
	}

	expenses := result.Sections[1]
	if expenses.Name != "Total Expenses" {
		t.Errorf("Expected section 'Total Expenses', got %q", expenses.Name)
	}
	if len(expenses.Items) != 1 || expenses.Items[0].Amount != 40 {
		t.Errorf("Expected one item with amount 40, got %v", expenses.Items)
	}
}

func TestGroupFinancialLastNumberIsAmount(t *testing.T) {
	sheet := sheetOf(
		textRow("Header"),
		textRow("Summary"),
		textRow("Salaries", "12", "300"),
	)

	result := GroupFinancial(sheet)

	if len(result.Sections) != 1 {
		t.Fatalf("Expected 1 section, got %d", len(result.Sections))
	}
	item := result.Sections[0].Items[0]
	if item.Amount != 300 {
		t.Errorf("Expected amount 300 (last extracted number), got %v", item.Amount)
	}
	if item.Description != "Salaries" {
		t.Errorf("Expected description 'Salaries', got %q", item.Description)
	}
}

func TestGroupFinancialDropsRowsBeforeFirstHeader(t *testing.T) {
	sheet := sheetOf(
		textRow("Header"),
		textRow("Orphan", "99"),
		textRow("Total Revenue"),
		textRow("Sales", "100"),
	)

	result := GroupFinancial(sheet)

	if len(result.Sections) != 1 {
		t.Fatalf("Expected 1 section, got %d", len(result.Sections))
	}
	if len(result.Sections[0].Items) != 1 {
		t.Fatalf("Expected the orphan row to be dropped, got %v", result.Sections[0].Items)
	}
	if result.Sections[0].Items[0].Description != "Sales" {
		t.Errorf("Expected 'Sales' as the only item, got %q", result.Sections[0].Items[0].Description)
	}
}

func TestGroupFinancialNoHeaderAnywhere(t *testing.T) {
	sheet := sheetOf(
		textRow("Header"),
		textRow("Sales", "100"),
		textRow("Rent", "40"),
	)

	result := GroupFinancial(sheet)

	if len(result.Sections) != 0 {
		t.Errorf("Expected 0 sections when no header row exists, got %d", len(result.Sections))
	}
}

func TestGroupFinancialUnterminatedSectionClosesAtEOF(t *testing.T) {
	sheet := sheetOf(
		textRow("Header"),
		textRow("Cash Flow Summary"),
		textRow("Operations", "250"),
	)

	result := GroupFinancial(sheet)

	if len(result.Sections) != 1 {
		t.Fatalf("Expected the open section to close at end of sheet, got %d sections", len(result.Sections))
	}
	if result.Sections[0].Name != "Cash Flow Summary" {
		t.Errorf("Expected section name 'Cash Flow Summary', got %q", result.Sections[0].Name)
	}
}

func TestGroupFinancialSectionNameFallback(t *testing.T) {
	row := textRow("", "")
	if name := sectionName(row); name != "Section" {
		t.Errorf("Expected fallback name 'Section', got %q", name)
	}
}

func TestGroupFinancialEmptyDescriptionPropagates(t *testing.T) {
	sheet := sheetOf(
		textRow("Header"),
		textRow("Subtotal"),
		textRow("7", "42"),
	)

	result := GroupFinancial(sheet)

	item := result.Sections[0].Items[0]
	if item.Description != "" {
		t.Errorf("Expected empty description for all-numeric row, got %q", item.Description)
	}
	if item.Amount != 42 {
		t.Errorf("Expected amount 42, got %v", item.Amount)
	}
}
