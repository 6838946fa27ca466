package bill

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sitebook/sitebook-backend/internal/domain/auth"
	"github.com/sitebook/sitebook-backend/internal/domain/bill"
	"github.com/sitebook/sitebook-backend/internal/pkg/storage"
	"github.com/sitebook/sitebook-backend/internal/pkg/validator"
	"github.com/sitebook/sitebook-backend/internal/repository/memory"
	"github.com/sitebook/sitebook-backend/internal/service/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBillService(t *testing.T) (bill.BillService, context.Context) {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir(), "http://localhost/uploads")
	require.NoError(t, err)

	svc := NewBillService(memory.NewBillRepository(memory.NewDB()), file.NewFileService(store))
	ctx := auth.WithPrincipal(context.Background(), auth.Principal{UserID: "owner-1"})
	return svc, ctx
}

func createBill(t *testing.T, svc bill.BillService, ctx context.Context, shop, material, amount, date string) bill.BillResponse {
	t.Helper()
	resp, err := svc.Create(ctx, bill.CreateBillRequest{
		ShopName: shop,
		Material: material,
		Amount:   decimal.RequireFromString(amount),
		Date:     date,
	})
	require.NoError(t, err)
	return resp
}

func TestBillService_CreateAndList(t *testing.T) {
	svc, ctx := newTestBillService(t)

	createBill(t, svc, ctx, "Sharma Traders", "cement", "4200", "2025-01-03")
	createBill(t, svc, ctx, "Sharma Traders", "cement", "800.50", "2025-01-20")
	createBill(t, svc, ctx, "City Hardware", "pipes", "1500", "2025-01-12")
	createBill(t, svc, ctx, "City Hardware", "pipes", "99", "2025-02-01")

	month, year := 1, 2025
	resp, err := svc.List(ctx, bill.BillFilter{Month: &month, Year: &year})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.TotalCount)
	assert.True(t, decimal.RequireFromString("6500.50").Equal(resp.Total))
	assert.Equal(t, "2025-01-20", resp.Bills[0].Date)

	require.Len(t, resp.ByMaterial, 2)
	assert.Equal(t, bill.MaterialPipes, resp.ByMaterial[0].Material.ID)
	assert.Equal(t, bill.MaterialCement, resp.ByMaterial[1].Material.ID)
	assert.Equal(t, 2, resp.ByMaterial[1].Count)
	assert.Equal(t, "Cement", resp.ByMaterial[1].Material.Name)

	start, end := "2025-01-10", "2025-02-28"
	ranged, err := svc.List(ctx, bill.BillFilter{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	assert.Equal(t, 3, ranged.TotalCount)
}

func TestBillService_Validation(t *testing.T) {
	svc, ctx := newTestBillService(t)

	cases := []bill.CreateBillRequest{
		{ShopName: "", Material: "cement", Amount: decimal.NewFromInt(1), Date: "2025-01-01"},
		{ShopName: "A", Material: "gold", Amount: decimal.NewFromInt(1), Date: "2025-01-01"},
		{ShopName: "A", Material: "cement", Amount: decimal.Zero, Date: "2025-01-01"},
		{ShopName: "A", Material: "cement", Amount: decimal.NewFromInt(1), Date: "2025-13-01"},
	}
	for _, req := range cases {
		_, err := svc.Create(ctx, req)
		var verrs validator.ValidationErrors
		assert.ErrorAs(t, err, &verrs, "%+v", req)
	}

	month := 1
	_, err := svc.List(ctx, bill.BillFilter{Month: &month})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestBillService_UpdateAndDelete(t *testing.T) {
	svc, ctx := newTestBillService(t)
	created := createBill(t, svc, ctx, "Sharma Traders", "cement", "4200", "2025-01-03")

	steel := "steel"
	amount := decimal.NewFromInt(5000)
	updated, err := svc.Update(ctx, bill.UpdateBillRequest{ID: created.ID, Material: &steel, Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, bill.MaterialSteel, updated.Material.ID)
	assert.True(t, amount.Equal(updated.Amount))
	assert.Equal(t, "Sharma Traders", updated.ShopName)

	other := auth.WithPrincipal(context.Background(), auth.Principal{UserID: "owner-2"})
	_, err = svc.Get(other, created.ID)
	assert.ErrorIs(t, err, bill.ErrBillNotFound)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), bill.ErrBillNotFound)
}

func TestBillService_Unauthenticated(t *testing.T) {
	svc, _ := newTestBillService(t)

	resp, err := svc.List(context.Background(), bill.BillFilter{})
	require.NoError(t, err)
	assert.Empty(t, resp.Bills)

	_, err = svc.Create(context.Background(), bill.CreateBillRequest{})
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)
}

func TestMaterials(t *testing.T) {
	catalogue := bill.Materials()
	require.Len(t, catalogue, 10)
	assert.Equal(t, bill.MaterialPipes, catalogue[0].ID)
	assert.Equal(t, "Miscellaneous", bill.Material("unknown").Info().Name)

	_, ok := bill.ParseMaterial("wood")
	assert.True(t, ok)
	_, ok = bill.ParseMaterial("Wood")
	assert.False(t, ok)
}
