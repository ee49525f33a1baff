package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/flood_response_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string    { return &s }
func int64Ptr(i int64) *int64    { return &i }
func floatPtr(f float64) *float64 { return &f }

func TestVehicleUpdateQuery_OnlySuppliedColumns(t *testing.T) {
	patch := &models.VehiclePatch{Status: strPtr("maintenance")}

	query, args, err := vehicleUpdateQuery(7, patch).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "UPDATE vehicles SET last_updated = NOW(), status = $1 WHERE id = $2", query)
	assert.Equal(t, []interface{}{"maintenance", int64(7)}, args)
}

func TestVehicleUpdateQuery_EmptyPatchStillTouchesTimestamp(t *testing.T) {
	query, args, err := vehicleUpdateQuery(3, &models.VehiclePatch{}).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "UPDATE vehicles SET last_updated = NOW() WHERE id = $1", query)
	assert.Equal(t, []interface{}{int64(3)}, args)
}

func TestVehicleUpdateQuery_LocationPair(t *testing.T) {
	patch := &models.VehiclePatch{
		Lat: floatPtr(13.05),
		Lng: floatPtr(80.24),
	}

	query, args, err := vehicleUpdateQuery(1, patch).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "UPDATE vehicles SET last_updated = NOW(), current_location = ST_SetSRID(ST_MakePoint($1, $2), 4326) WHERE id = $3", query)
	assert.Equal(t, []interface{}{80.24, 13.05, int64(1)}, args)
}

func TestVehicleUpdateQuery_LoneLatIsIgnored(t *testing.T) {
	patch := &models.VehiclePatch{Lat: floatPtr(13.05)}

	query, _, err := vehicleUpdateQuery(1, patch).ToSql()
	require.NoError(t, err)

	assert.NotContains(t, query, "current_location")
}

func TestSupplyUpdateQuery_OnlySuppliedColumns(t *testing.T) {
	patch := &models.SupplyItemPatch{
		QuantityCurrent: int64Ptr(450),
		Status:          strPtr("low"),
	}

	query, args, err := supplyUpdateQuery(12, patch).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "UPDATE supply_items SET last_updated = NOW(), quantity_current = $1, status = $2 WHERE id = $3", query)
	assert.Equal(t, []interface{}{int64(450), "low", int64(12)}, args)
	assert.NotContains(t, query, "item_name")
	assert.NotContains(t, query, "facility_id")
}

func TestPersonnelUpdateQuery_OnlySuppliedColumns(t *testing.T) {
	patch := &models.PersonnelPatch{
		Status:            strPtr("deployed"),
		CurrentAssignment: strPtr("Zone 3 evacuation"),
	}

	query, args, err := personnelUpdateQuery(5, patch).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "UPDATE personnel SET last_updated = NOW(), status = $1, current_assignment = $2 WHERE id = $3", query)
	assert.Equal(t, []interface{}{"deployed", "Zone 3 evacuation", int64(5)}, args)
	assert.NotContains(t, query, "name =")
	assert.NotContains(t, query, "role")
}

func TestResponseActionUpdateQuery_OnlySuppliedColumns(t *testing.T) {
	patch := &models.ResponseActionPatch{Status: strPtr("completed")}

	query, args, err := responseActionUpdateQuery(9, patch).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "UPDATE response_actions SET updated_at = NOW(), status = $1 WHERE id = $2", query)
	assert.Equal(t, []interface{}{"completed", int64(9)}, args)
	assert.NotContains(t, query, "title")
}

func TestWrapErr_NoRows(t *testing.T) {
	err := wrapErr(fmt.Errorf("query row: %w", pgx.ErrNoRows))
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestWrapErr_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           pgerrcode.UniqueViolation,
		ConstraintName: "vehicles_license_plate_key",
	}
	err := wrapErr(fmt.Errorf("insert: %w", pgErr))
	assert.ErrorIs(t, err, models.ErrDuplicate)
}

func TestWrapErr_OtherErrorsPassThrough(t *testing.T) {
	cause := errors.New("connection reset")
	assert.Equal(t, cause, wrapErr(cause))
}
