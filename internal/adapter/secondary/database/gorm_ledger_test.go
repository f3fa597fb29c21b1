package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paystream/payments-api/internal/constant/model/db"
	"github.com/paystream/payments-api/internal/core"
	"github.com/paystream/payments-api/internal/port/output"
)

func openLedger(t *testing.T, path string) (*db.DB, output.PaymentLedger) {
	t.Helper()
	conn, err := db.NewDB(path)
	require.NoError(t, err)
	return conn, NewGormPaymentLedger(conn.DB)
}

func TestAppend_AssignsIDAndCreatedAt(t *testing.T) {
	conn, ledger := openLedger(t, filepath.Join(t.TempDir(), "payments.db"))
	defer conn.Close()

	record := &core.PaymentRecord{
		PaymentIntentID: "pi_123",
		Amount:          1000,
		Currency:        "usd",
		Status:          core.StatusSucceeded,
	}
	require.NoError(t, ledger.Append(record))

	assert.Equal(t, uint(1), record.ID)
	assert.False(t, record.CreatedAt.IsZero())

	second := &core.PaymentRecord{
		PaymentIntentID: "pi_456",
		Amount:          250,
		Currency:        "eur",
		Status:          core.StatusSucceeded,
	}
	require.NoError(t, ledger.Append(second))
	assert.Equal(t, uint(2), second.ID)
}

func TestListSucceeded_FiltersAndKeepsInsertionOrder(t *testing.T) {
	conn, ledger := openLedger(t, filepath.Join(t.TempDir(), "payments.db"))
	defer conn.Close()

	for _, r := range []core.PaymentRecord{
		{PaymentIntentID: "pi_1", Amount: 100, Currency: "usd", Status: core.StatusSucceeded},
		{PaymentIntentID: "pi_2", Amount: 200, Currency: "usd", Status: core.StatusRequiresAction},
		{PaymentIntentID: "pi_3", Amount: 300, Currency: "eur", Status: core.StatusSucceeded},
		{PaymentIntentID: "pi_4", Amount: 400, Currency: "usd", Status: core.StatusCanceled},
	} {
		r := r
		require.NoError(t, ledger.Append(&r))
	}

	records, err := ledger.ListSucceeded()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "pi_1", records[0].PaymentIntentID)
	assert.Equal(t, "pi_3", records[1].PaymentIntentID)
	for _, r := range records {
		assert.Equal(t, core.StatusSucceeded, r.Status)
	}
}

func TestListSucceeded_EmptyLedger(t *testing.T) {
	conn, ledger := openLedger(t, filepath.Join(t.TempDir(), "payments.db"))
	defer conn.Close()

	records, err := ledger.ListSucceeded()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSchemaEnsure_IdempotentAcrossRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payments.db")

	conn, ledger := openLedger(t, path)
	require.NoError(t, ledger.Append(&core.PaymentRecord{
		PaymentIntentID: "pi_persisted",
		Amount:          1000,
		Currency:        "usd",
		Status:          core.StatusSucceeded,
	}))
	require.NoError(t, conn.Close())

	// Reopening runs the schema ensure again; existing rows must survive
	// without duplication.
	conn, ledger = openLedger(t, path)
	defer conn.Close()

	records, err := ledger.ListSucceeded()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "pi_persisted", records[0].PaymentIntentID)
	assert.Equal(t, uint(1), records[0].ID)
}
