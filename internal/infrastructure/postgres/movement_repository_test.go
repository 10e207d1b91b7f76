package postgres

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/buildstock-api/internal/domain/entity"
)

func TestMovementRepo_Create_CamposVaciosComoNull(t *testing.T) {
	mock := newMock(t)
	repo := NewMovementRepository(mock)
	now := time.Now()

	mock.ExpectExec(`INSERT INTO stock_movements`).
		WithArgs("mov-1", "mat-1", (*string)(nil),
			decimal.NewFromInt(50), entity.MovementTypeIncoming,
			(*string)(nil), (*string)(nil), now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), &entity.StockMovement{
		ID:         "mov-1",
		MaterialID: "mat-1",
		Quantity:   decimal.NewFromInt(50),
		Type:       entity.MovementTypeIncoming,
		Timestamp:  now,
	})
	assert.NoError(t, err)
}

func TestMovementRepo_Create_ConUsuarioYUbicacion(t *testing.T) {
	mock := newMock(t)
	repo := NewMovementRepository(mock)
	now := time.Now()
	userID := "user-1"
	location := "Bodega A"
	message := "pedido obra 12"

	mock.ExpectExec(`INSERT INTO stock_movements`).
		WithArgs("mov-2", "mat-1", &userID,
			decimal.NewFromInt(-30), entity.MovementTypeOutgoing,
			&location, &message, now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), &entity.StockMovement{
		ID:         "mov-2",
		MaterialID: "mat-1",
		UserID:     userID,
		Quantity:   decimal.NewFromInt(-30),
		Type:       entity.MovementTypeOutgoing,
		Location:   location,
		Message:    message,
		Timestamp:  now,
	})
	assert.NoError(t, err)
}

func TestMovementRepo_SumByMaterial(t *testing.T) {
	mock := newMock(t)
	repo := NewMovementRepository(mock)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(quantity\), 0\) FROM stock_movements`).
		WithArgs("mat-1").
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).
			AddRow(decimal.RequireFromString("70.5")))

	total, err := repo.SumByMaterial(context.Background(), "mat-1")
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("70.5")))
}

func TestMovementRepo_SumByMaterial_SinFilasEsCero(t *testing.T) {
	mock := newMock(t)
	repo := NewMovementRepository(mock)

	// COALESCE garantiza una fila con cero aunque el material no tenga movimientos.
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(quantity\), 0\) FROM stock_movements`).
		WithArgs("mat-nuevo").
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(decimal.Zero))

	total, err := repo.SumByMaterial(context.Background(), "mat-nuevo")
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestMovementRepo_ListEnriched(t *testing.T) {
	mock := newMock(t)
	repo := NewMovementRepository(mock)
	now := time.Now()

	mock.ExpectQuery(`SELECT .* FROM stock_movements sm .* JOIN materials m .* LEFT JOIN users u`).
		WithArgs(20).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "material", "quantity", "unit", "type", "location", "message", "timestamp", "user_name",
		}).
			AddRow("mov-2", "Arena", decimal.NewFromInt(-30), "m3",
				entity.MovementTypeOutgoing, "Bodega A", "", now, "Laura").
			AddRow("mov-1", "Arena", decimal.NewFromInt(100), "m3",
				entity.MovementTypeIncoming, "", "", now.Add(-time.Hour), entity.SystemUserName),
		)

	list, err := repo.ListEnriched(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "mov-2", list[0].ID, "más recientes primero")
	assert.Equal(t, "Laura", list[0].UserName)
	assert.Equal(t, entity.SystemUserName, list[1].UserName, "usuario nulo se lee como Sistema")
	assert.True(t, list[1].Quantity.Equal(decimal.NewFromInt(100)))
}
