package classification

import (
	"errors"
	"testing"
	"time"

	"taller_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var at = time.Date(2026, 5, 10, 9, 30, 0, 0, time.UTC)

func line(id, supplier string, qty, cost string) entities.InvoiceLineItem {
	return entities.InvoiceLineItem{
		ID:           id,
		OrderID:      "os-1",
		InvoiceID:    "inv-" + supplier,
		Description:  "producto " + id,
		Quantity:     dec(qty),
		UnitPrice:    dec(cost),
		SupplierName: supplier,
		Status:       entities.ClassificationPending,
	}
}

func TestApplyCatalogMatch(t *testing.T) {
	entry := entities.CatalogEntry{SKU: "FIL-001", Division: "01", Line: "10", Class: "fil", Subclass: "2", MarginPercent: dec("25")}
	got := ApplyCatalogMatch(line("1", "Refacciones MX", "2", "80"), entry, 4, at)

	assert.Equal(t, entities.ClassificationFound, got.Status)
	assert.Equal(t, "FIL-001", got.CatalogSKU)
	assert.Equal(t, "fil", got.Class)
	assert.Equal(t, "100.00", got.Price.StringFixed(2))
	assert.Equal(t, 4, got.Sequence)
	require.NotNil(t, got.ClassifiedAt)
}

func TestAutoClassify(t *testing.T) {
	got := AutoClassify(line("1", "Refacciones MX", "3", "50"), 2, at)
	assert.Equal(t, entities.ClassificationNotFound, got.Status)
	assert.Equal(t, DefaultDivision, got.Division)
	assert.Equal(t, DefaultLine, got.Line)
	assert.Equal(t, DefaultClass, got.Class)
	assert.True(t, got.MarginPercent.IsZero())
	assert.True(t, got.Price.IsZero())
	assert.Equal(t, 2, got.Sequence)
}

func TestClassify(t *testing.T) {
	complete := ManualInput{Division: "0134", Line: "260", Class: "amortiguador", Subclass: "1", MarginPercent: dec("30")}

	t.Run("prices with markup", func(t *testing.T) {
		got, err := Classify(line("1", "A", "1", "100"), complete, 7, at)
		require.NoError(t, err)
		assert.Equal(t, entities.ClassificationNotFound, got.Status)
		assert.Equal(t, "130.00", got.Price.StringFixed(2))
		assert.Equal(t, 7, got.Sequence)
	})

	t.Run("keeps an existing sequence", func(t *testing.T) {
		item := line("1", "A", "1", "100")
		item.Sequence = 3
		got, err := Classify(item, complete, 9, at)
		require.NoError(t, err)
		assert.Equal(t, 3, got.Sequence)
	})

	t.Run("all fields and positive margin required", func(t *testing.T) {
		_, err := Classify(line("1", "A", "1", "100"), ManualInput{Class: "x", MarginPercent: decimal.Zero}, 1, at)
		var incomplete *ClassificationIncompleteError
		require.True(t, errors.As(err, &incomplete))
		assert.Equal(t, []string{"division", "line", "subclass", "margin_percent"}, incomplete.FieldsMissing)
	})

	t.Run("processed lines are final", func(t *testing.T) {
		item := line("1", "A", "1", "100")
		item.Status = entities.ClassificationProcessed
		_, err := Classify(item, complete, 1, at)
		assert.ErrorIs(t, err, ErrAlreadyProcessed)
	})
}

func TestGenerateSKU(t *testing.T) {
	assert.Equal(t, entities.SKUPair{Original: "AMO12", Final: "AMO-12-2026"}, GenerateSKU("amortiguador", 12, 2026))
	assert.Equal(t, entities.SKUPair{Original: "2711", Final: "271-1-2026"}, GenerateSKU("271", 1, 2026))
	assert.Equal(t, entities.SKUPair{Original: "AB3", Final: "AB-3-2025"}, GenerateSKU(" ab ", 3, 2025))
	assert.Equal(t, GenerateSKU("filtro", 5, 2026), GenerateSKU("filtro", 5, 2026))
}

func TestProcess(t *testing.T) {
	item := AutoClassify(line("1", "A", "1", "10"), 5, at)

	processed, changed := Process(item, at)
	require.True(t, changed)
	assert.Equal(t, entities.ClassificationProcessed, processed.Status)
	require.NotNil(t, processed.SKU)
	assert.Equal(t, "271-5-2026", processed.SKU.Final)

	again, changed := Process(processed, at.AddDate(1, 0, 0))
	assert.False(t, changed)
	assert.Equal(t, processed, again)

	_, changed = Process(line("2", "A", "1", "10"), at)
	assert.False(t, changed, "pending lines are not processed")
}

func TestGroupBySupplier(t *testing.T) {
	found := ApplyCatalogMatch(line("1", "Zeta", "1", "10"), entities.CatalogEntry{Class: "abc", MarginPercent: dec("10")}, 1, at)
	notFound := AutoClassify(line("2", "Alfa", "4", "25"), 2, at)
	classified, err := Classify(line("3", "Alfa", "2", "100"), ManualInput{Division: "1", Line: "2", Class: "3", Subclass: "4", MarginPercent: dec("50")}, 3, at)
	require.NoError(t, err)
	processed, _ := Process(classified, at)
	zetaProcessed, _ := Process(found, at)
	pending := line("4", "Alfa", "1", "999")

	invoices := []entities.Invoice{{ID: "inv-Alfa", SupplierName: "Alfa Autopartes"}}
	groups := GroupBySupplier([]entities.InvoiceLineItem{found, notFound, processed, zetaProcessed, pending}, invoices)

	require.Len(t, groups, 2)
	assert.Equal(t, "Alfa Autopartes", groups[0].SupplierName)
	require.Len(t, groups[0].Items, 2)
	assert.Equal(t, "300.00", groups[0].Total.StringFixed(2), "auto-classified line adds zero")
	assert.Equal(t, "Zeta", groups[1].SupplierName)
	assert.Equal(t, "11.00", groups[1].Total.StringFixed(2))
	assert.Equal(t, "311.00", GrandTotal(groups).StringFixed(2))

	reversed := GroupBySupplier([]entities.InvoiceLineItem{pending, zetaProcessed, processed, notFound, found}, invoices)
	require.Len(t, reversed, 2)
	assert.True(t, reversed[0].Total.Equal(groups[0].Total))
	assert.True(t, reversed[1].Total.Equal(groups[1].Total))
}

func TestManualInputValidate(t *testing.T) {
	err := ManualInput{Class: "buje", MarginPercent: decimal.NewFromInt(-1)}.Validate()
	var incomplete *ClassificationIncompleteError
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, []string{"division", "line", "subclass", "margin_percent"}, incomplete.FieldsMissing)

	assert.NoError(t, ManualInput{Division: "01", Line: "02", Class: "buje", Subclass: "x", MarginPercent: decimal.NewFromInt(30)}.Validate())
	assert.Equal(t, "line_item_sku:os-1", SequenceName("os-1"))
}

func TestQueue(t *testing.T) {
	items := []entities.InvoiceLineItem{
		line("1", "A", "1", "1"),
		AutoClassify(line("2", "A", "1", "1"), 1, at),
		line("3", "A", "1", "1"),
	}
	queue := PendingQueue(items)
	require.Len(t, queue, 2)

	page := At(queue, 0)
	require.NotNil(t, page.Item)
	assert.Equal(t, "1", page.Item.ID)
	assert.True(t, page.HasNext)
	assert.Equal(t, 1, page.NextCursor)
	assert.Equal(t, 2, page.Total)

	page = At(queue, page.NextCursor)
	assert.Equal(t, "3", page.Item.ID)
	assert.False(t, page.HasNext)

	page = At(queue, 10)
	assert.Equal(t, "3", page.Item.ID)
	assert.Equal(t, 1, page.Position)

	empty := At(nil, 0)
	assert.Nil(t, empty.Item)
	assert.Equal(t, 0, empty.Total)
}
