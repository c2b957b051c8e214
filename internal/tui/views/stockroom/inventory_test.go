package stockroom

import (
	"strings"
	"testing"

	"github.com/swgrt/swgrt/internal/models"
	"github.com/swgrt/swgrt/internal/services/tracker"
	"github.com/swgrt/swgrt/internal/testutil"
)

func stockFixtures() ([]models.InventoryItem, []models.Resource) {
	resources := []models.Resource{
		testutil.FixtureResource(testutil.WithName("Lovapine"), testutil.WithStat(models.AttrOQ, 920)),
		testutil.FixtureDespawnedResource(testutil.WithName("Ozzalite"), testutil.WithStat(models.AttrOQ, 300)),
	}
	items := []models.InventoryItem{
		testutil.FixtureInventoryItem("Lovapine", testutil.WithQuantity(500)),
		testutil.FixtureInventoryItem("Ozzalite", testutil.WithQuantity(1500)),
		testutil.FixtureInventoryItem("Ghostium", testutil.WithQuantity(20)),
	}
	return items, resources
}

func rowNames(rows []tracker.InventoryRow) string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Item.ResourceName
	}
	return strings.Join(out, ",")
}

func TestInventoryView_Empty(t *testing.T) {
	v := NewInventoryView()

	output := v.Render(120, 30)
	if !strings.Contains(output, "Stockroom empty. Log resources to begin inventory tracking.") {
		t.Error("Expected empty message in output")
	}
	if _, ok := v.SelectedRow(); ok {
		t.Error("Expected no selection")
	}
}

func TestInventoryView_DefaultSortByQuantity(t *testing.T) {
	v := NewInventoryView()
	v.SetData(stockFixtures())

	if got := rowNames(v.Rows()); got != "Ozzalite,Lovapine,Ghostium" {
		t.Errorf("Expected largest quantity first, got %s", got)
	}
}

func TestInventoryView_SortByResolvedAttribute(t *testing.T) {
	v := NewInventoryView()
	v.SetData(stockFixtures())

	// walk back from QUANTITY to OQ
	for i := 0; i < len(models.Attributes); i++ {
		v.SortLeft()
	}
	v.ApplySort()

	if a, ok := v.Sort().Key.Attribute(); !ok || a != models.AttrOQ {
		t.Fatalf("Expected sort by OQ, got %s", v.Sort().Key)
	}
	if got := rowNames(v.Rows()); got != "Lovapine,Ozzalite,Ghostium" {
		t.Errorf("Expected rows ranked by resource OQ, got %s", got)
	}
}

func TestInventoryView_SortByName(t *testing.T) {
	v := NewInventoryView()
	v.SetData(stockFixtures())

	for i := 0; i < 20; i++ {
		v.SortLeft()
	}
	v.ApplySort()
	v.ApplySort()

	if v.Sort().Key != tracker.SortByResourceName || v.Sort().Direction != models.SortAsc {
		t.Fatalf("Expected resource name ascending, got %+v", v.Sort())
	}
	if got := rowNames(v.Rows()); got != "Ghostium,Lovapine,Ozzalite" {
		t.Errorf("Expected names ascending, got %s", got)
	}
}

func TestInventoryView_Search(t *testing.T) {
	v := NewInventoryView()
	v.SetData(stockFixtures())

	v.SetSearch("PINE")
	if got := rowNames(v.Rows()); got != "Lovapine" {
		t.Errorf("Expected Lovapine, got %s", got)
	}
	if len(v.Items()) != 3 {
		t.Errorf("Expected items to stay unfiltered, got %d", len(v.Items()))
	}
}

func TestInventoryView_RenderOrphanAndQuantity(t *testing.T) {
	v := NewInventoryView()
	v.SetData(stockFixtures())

	output := v.Render(200, 30)

	for _, want := range []string{"STOCKROOM", "1,500 kg", "---", "OFF", "METAL", "2,020 kg"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output", want)
		}
	}
	if !strings.Contains(output, "1.5T") {
		t.Error("Expected selected row tonnage")
	}
}

func TestInventoryView_DeletedResourceKeepsRow(t *testing.T) {
	items, resources := stockFixtures()
	v := NewInventoryView()
	v.SetData(items, resources[1:])

	var found bool
	for _, r := range v.Rows() {
		if r.Item.ResourceName == "Lovapine" {
			found = true
			if r.Resolved() {
				t.Error("Expected Lovapine to be unresolved")
			}
			if r.Item.Quantity != 500 {
				t.Errorf("Expected quantity 500, got %d", r.Item.Quantity)
			}
		}
	}
	if !found {
		t.Error("Expected orphaned row to stay visible")
	}
}

func TestInventoryView_ResourceNames(t *testing.T) {
	_, resources := stockFixtures()
	resources = append(resources, testutil.FixtureResource(testutil.WithName("Lovapine")))

	v := NewInventoryView()
	v.SetData(nil, resources)

	names := v.ResourceNames()
	if len(names) != 2 {
		t.Errorf("Expected 2 unique names, got %v", names)
	}
}

func TestInventoryView_Navigation(t *testing.T) {
	v := NewInventoryView()
	v.SetData(stockFixtures())

	v.MoveDown()
	r, ok := v.SelectedRow()
	if !ok || r.Item.ResourceName != "Lovapine" {
		t.Errorf("Expected Lovapine selected, got %s", r.Item.ResourceName)
	}

	v.GoToBottom()
	r, _ = v.SelectedRow()
	if r.Item.ResourceName != "Ghostium" {
		t.Errorf("Expected Ghostium at bottom, got %s", r.Item.ResourceName)
	}
}
