package authorization

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"taller_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func fixture() ([]entities.Part, []entities.Service, []entities.DiagnosticFinding) {
	parts := []entities.Part{
		{ID: "A", Description: "Balatas delanteras", Category: "frenos", Quantity: 2, UnitCost: dec("300"), UnitPrice: dec("450")},
	}
	services := []entities.Service{
		{ID: "B", Description: "Cambio de amortiguadores", Category: "suspension", Cost: dec("600"), MarginTier: 50, Price: dec("1392"), FromDiagnostic: true},
	}
	findings := []entities.DiagnosticFinding{
		{ID: "C", Description: "Fuga de aceite", Category: "motor", Severity: entities.SeverityUrgent, EstimatedCost: dec("1500")},
	}
	return parts, services, findings
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("ls-%d", n)
	}
}

func TestBuildUnifiedList(t *testing.T) {
	parts, services, findings := fixture()
	parts = append(parts, parts[0])

	items := BuildUnifiedList(parts, services, findings)
	require.Len(t, items, 3)

	assert.Equal(t, "part:A", items[0].Key)
	assert.True(t, items[0].Decision.IsAuthorized(), "pre-authorized part defaults to authorized")
	assert.True(t, items[0].EstimatedCost.Equal(dec("600")))
	assert.True(t, items[0].Amount.Equal(dec("900")))

	assert.Equal(t, "service:B", items[1].Key)
	assert.True(t, items[1].Decision.IsPending())
	assert.True(t, items[1].EstimatedCost.Equal(dec("600")))
	assert.True(t, items[1].Amount.Equal(dec("1392")))

	assert.Equal(t, "finding:C", items[2].Key)
	assert.True(t, items[2].FromDiagnostic)
	assert.Equal(t, entities.SeverityUrgent, items[2].Severity)
	assert.True(t, items[2].Decision.IsPending())
}

func TestBuildUnifiedListKeepsRecordedRejection(t *testing.T) {
	at := time.Now()
	parts := []entities.Part{{ID: "A", Quantity: 1, UnitPrice: dec("10"), Decision: entities.RejectedDecision("caro", at)}}
	items := BuildUnifiedList(parts, nil, nil)
	require.Len(t, items, 1)
	assert.True(t, items[0].Decision.IsRejected())
}

func TestApply(t *testing.T) {
	parts, services, findings := fixture()
	items := BuildUnifiedList(parts, services, findings)
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("toggle clears the other state and stamps time", func(t *testing.T) {
		out, err := Apply(items, []DecisionInput{
			{ItemID: "part:A", Rejected: true, Reason: " muy caro "},
			{ItemID: "finding:C", Authorized: true},
		}, at)
		require.NoError(t, err)
		assert.True(t, out[0].Decision.IsRejected())
		assert.False(t, out[0].Decision.IsAuthorized())
		assert.Equal(t, "muy caro", out[0].Decision.Reason)
		require.NotNil(t, out[0].Decision.DecidedAt)
		assert.True(t, out[0].Decision.DecidedAt.Equal(at))
		assert.True(t, out[2].Decision.IsAuthorized())
		assert.Empty(t, out[2].Decision.Reason)
		assert.True(t, items[0].Decision.IsAuthorized(), "input slice untouched")
	})

	t.Run("both flags is inconsistent", func(t *testing.T) {
		_, err := Apply(items, []DecisionInput{{ItemID: "service:B", Authorized: true, Rejected: true}}, at)
		var inc *InconsistentDecisionError
		require.True(t, errors.As(err, &inc))
		assert.Equal(t, "service:B", inc.ItemID)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := Apply(items, []DecisionInput{{ItemID: "part:Z", Authorized: true}}, at)
		var unknown *UnknownItemError
		assert.True(t, errors.As(err, &unknown))
	})
}

func TestValidateReasons(t *testing.T) {
	parts, services, findings := fixture()
	items := BuildUnifiedList(parts, services, findings)
	out, err := Apply(items, []DecisionInput{
		{ItemID: "service:B", Rejected: true},
		{ItemID: "part:A", Rejected: true, Reason: "   "},
		{ItemID: "finding:C", Rejected: true, Reason: "después"},
	}, time.Now())
	require.NoError(t, err)

	err = ValidateReasons(out)
	var missing *MissingRejectionReasonError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"part:A", "service:B"}, missing.ItemIDs)

	assert.NoError(t, ValidateReasons(items))
}

func TestPartition(t *testing.T) {
	parts, services, findings := fixture()
	items := BuildUnifiedList(parts, services, findings)
	out, err := Apply(items, []DecisionInput{{ItemID: "service:B", Rejected: true, Reason: "no"}}, time.Now())
	require.NoError(t, err)

	totals := Partition(out)
	assert.True(t, totals.Authorized.Equal(dec("900")))
	assert.True(t, totals.Rejected.Equal(dec("1392")))
	assert.True(t, totals.Pending.Equal(dec("1500")))
	assert.True(t, totals.All.Equal(dec("3792")))
	assert.True(t, totals.Authorized.Add(totals.Rejected).LessThanOrEqual(totals.All))
}

func TestLostSaleSeverity(t *testing.T) {
	cases := []struct {
		name string
		item entities.AuthorizableItem
		want entities.Severity
	}{
		{"service over 1000", entities.AuthorizableItem{Kind: entities.ItemKindService, EstimatedCost: dec("1000.01")}, entities.SeverityUrgent},
		{"service over 500", entities.AuthorizableItem{Kind: entities.ItemKindService, EstimatedCost: dec("600")}, entities.SeverityRecommended},
		{"service graded on cost, not price", entities.AuthorizableItem{Kind: entities.ItemKindService, EstimatedCost: dec("600"), Amount: dec("1392")}, entities.SeverityRecommended},
		{"service exactly 500", entities.AuthorizableItem{Kind: entities.ItemKindService, EstimatedCost: dec("500")}, entities.SeverityGood},
		{"part always recommended", entities.AuthorizableItem{Kind: entities.ItemKindPart, EstimatedCost: dec("5000")}, entities.SeverityRecommended},
		{"finding inherits", entities.AuthorizableItem{Kind: entities.ItemKindFinding, Severity: entities.SeverityGood, EstimatedCost: dec("5000")}, entities.SeverityGood},
		{"finding without severity", entities.AuthorizableItem{Kind: entities.ItemKindFinding}, entities.SeverityRecommended},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, LostSaleSeverity(tc.item))
		})
	}
}

func TestLostSales(t *testing.T) {
	parts, services, findings := fixture()
	at := time.Now().UTC()
	items, err := Apply(BuildUnifiedList(parts, services, findings), []DecisionInput{
		{ItemID: "service:B", Rejected: true, Reason: "cliente no autoriza"},
		{ItemID: "finding:C", Authorized: true},
	}, at)
	require.NoError(t, err)

	records := LostSales("os-1", 1, items, at, sequentialIDs())
	require.Len(t, records, 1)
	r := records[0]
	assert.Equal(t, "ls-1", r.ID)
	assert.Equal(t, "os-1", r.OrderID)
	assert.Equal(t, "service:B", r.ItemKey)
	assert.Equal(t, entities.SeverityRecommended, r.Severity)
	assert.Equal(t, "cliente no autoriza", r.Reason)
	assert.True(t, r.EstimatedCost.Equal(dec("600")))
	assert.Equal(t, 1, r.Round)
}

func TestWriteBack(t *testing.T) {
	parts, services, findings := fixture()
	at := time.Now()
	items, err := Apply(BuildUnifiedList(parts, services, findings), []DecisionInput{
		{ItemID: "service:B", Rejected: true, Reason: "no"},
		{ItemID: "finding:C", Authorized: true},
	}, at)
	require.NoError(t, err)

	t.Run("each origin receives its decision", func(t *testing.T) {
		out, err := WriteBack(items, Origins{Parts: parts, Services: services, Findings: findings})
		require.NoError(t, err)
		assert.True(t, out.Parts[0].Decision.IsAuthorized())
		assert.True(t, out.Services[0].Decision.IsRejected())
		assert.True(t, out.Findings[0].Decision.IsAuthorized())
		assert.True(t, services[0].Decision.IsPending(), "origin slices are not mutated")
	})

	t.Run("origin item missing from unified list", func(t *testing.T) {
		extra := append([]entities.Part{}, parts...)
		extra = append(extra, entities.Part{ID: "X"})
		_, err := WriteBack(items, Origins{Parts: extra, Services: services, Findings: findings})
		var mismatch *OriginMismatchError
		require.True(t, errors.As(err, &mismatch))
		assert.Equal(t, "part:X", mismatch.ItemID)
	})

	t.Run("unified item without origin", func(t *testing.T) {
		_, err := WriteBack(items, Origins{Parts: parts, Services: services})
		var mismatch *OriginMismatchError
		require.True(t, errors.As(err, &mismatch))
		assert.Equal(t, "finding:C", mismatch.ItemID)
	})
}
