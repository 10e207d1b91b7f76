package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/buildstock-api/internal/application/dto"
	"github.com/tu-usuario/buildstock-api/internal/application/stock"
	"github.com/tu-usuario/buildstock-api/internal/domain/entity"
	"github.com/tu-usuario/buildstock-api/internal/domain/repository"
	apphttp "github.com/tu-usuario/buildstock-api/internal/interfaces/http"
)

// Fakes en memoria para ejercitar el handler con el caso de uso real.

type memMaterialRepo struct {
	byName map[string]*entity.Material
}

func (r *memMaterialRepo) GetOrCreate(_ context.Context, name, unit string) (*entity.Material, error) {
	key := strings.ToLower(name)
	if m, ok := r.byName[key]; ok {
		return m, nil
	}
	m := &entity.Material{ID: uuid.New().String(), Name: name, Unit: unit, Active: true}
	r.byName[key] = m
	return m, nil
}

func (r *memMaterialRepo) GetByID(context.Context, string) (*entity.Material, error) {
	return nil, nil
}

func (r *memMaterialRepo) UpdateLimits(context.Context, string, decimal.Decimal, *decimal.Decimal) error {
	return nil
}

func (r *memMaterialRepo) ListActive(context.Context) ([]*entity.Material, error) { return nil, nil }

func (r *memMaterialRepo) Deactivate(context.Context, string) error { return nil }

type memMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *memMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	r.movements = append(r.movements, m)
	return nil
}

func (r *memMovementRepo) SumByMaterial(_ context.Context, materialID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, m := range r.movements {
		if m.MaterialID == materialID {
			total = total.Add(m.Quantity)
		}
	}
	return total, nil
}

func (r *memMovementRepo) ListEnriched(_ context.Context, limit int) ([]repository.MovementRecord, error) {
	out := make([]repository.MovementRecord, 0, len(r.movements))
	for i := len(r.movements) - 1; i >= 0 && len(out) < limit; i-- {
		m := r.movements[i]
		out = append(out, repository.MovementRecord{
			ID: m.ID, Quantity: m.Quantity, Type: m.Type,
			Timestamp: m.Timestamp, UserName: entity.SystemUserName,
		})
	}
	return out, nil
}

type noopTxRunner struct{}

func (noopTxRunner) RunSerializable(context.Context, func(repository.MaterialRepository, repository.MovementRepository) error) error {
	return nil
}

func buildStockApp() (*fiber.App, *memMovementRepo) {
	materials := &memMaterialRepo{byName: make(map[string]*entity.Material)}
	movements := &memMovementRepo{}
	record := stock.NewRecordMovementUseCase(noopTxRunner{}, materials, movements, false)
	list := stock.NewListMovementsUseCase(movements)
	handler := apphttp.NewStockHandler(record, list)

	app := fiber.New()
	app.Post("/api/movements", handler.RecordMovement)
	app.Get("/api/movements", handler.ListMovements)
	return app, movements
}

func postMovement(t *testing.T, app *fiber.App, body dto.RecordMovementRequest) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/movements", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestStockHandler_RecordMovement_Creado201(t *testing.T) {
	app, movements := buildStockApp()

	resp := postMovement(t, app, dto.RecordMovementRequest{
		Material: "Cemento gris",
		Quantity: decimal.NewFromInt(50),
		Type:     entity.MovementTypeIncoming,
		Unit:     "kg",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.RecordMovementResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEmpty(t, out.ID)
	assert.Len(t, movements.movements, 1)
}

func TestStockHandler_RecordMovement_Insuficiente409(t *testing.T) {
	app, movements := buildStockApp()

	resp := postMovement(t, app, dto.RecordMovementRequest{
		Material: "Arena",
		Quantity: decimal.NewFromInt(70),
		Type:     entity.MovementTypeIncoming,
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postMovement(t, app, dto.RecordMovementRequest{
		Material: "Arena",
		Quantity: decimal.NewFromInt(100),
		Type:     entity.MovementTypeOutgoing,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var errOut dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errOut))
	assert.Equal(t, "INSUFFICIENT_STOCK", errOut.Code)
	assert.Contains(t, errOut.Message, "70.00", "el mensaje lleva disponible con dos decimales")
	assert.Contains(t, errOut.Message, "100.00", "el mensaje lleva solicitado con dos decimales")

	assert.Len(t, movements.movements, 1, "el rechazo no debe escribir en el libro")
}

func TestStockHandler_RecordMovement_Validacion400(t *testing.T) {
	app, _ := buildStockApp()

	cases := []dto.RecordMovementRequest{
		{Material: "", Quantity: decimal.NewFromInt(5), Type: entity.MovementTypeIncoming},
		{Material: "Cemento", Quantity: decimal.Zero, Type: entity.MovementTypeIncoming},
		{Material: "Cemento", Quantity: decimal.NewFromInt(5), Type: "transfer"},
	}
	for _, tc := range cases {
		resp := postMovement(t, app, tc)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	}
}

func TestStockHandler_ListMovements(t *testing.T) {
	app, _ := buildStockApp()

	for _, qty := range []int64{10, 20, 30} {
		resp := postMovement(t, app, dto.RecordMovementRequest{
			Material: "Ladrillo",
			Quantity: decimal.NewFromInt(qty),
			Type:     entity.MovementTypeIncoming,
		})
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/movements?limit=2", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var list []dto.MovementDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Len(t, list, 2, "el query param limit acota el listado")
	assert.Equal(t, entity.SystemUserName, list[0].UserName)
}
