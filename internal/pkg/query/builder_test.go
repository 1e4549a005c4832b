package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_BasicSelect(t *testing.T) {
	stmt := From("vehicles").
		Select("vehicle_key", "brand", "model").
		Build()

	assert.Equal(t, "SELECT vehicle_key, brand, model FROM vehicles", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SelectAllColumns(t *testing.T) {
	stmt := From("vehicles").Build()

	assert.Equal(t, "SELECT * FROM vehicles", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SingleWhereCondition(t *testing.T) {
	stmt := From("vehicle_details").
		Select("vehicle_key", "payload").
		Where(Eq("vehicle_key", "1")).
		Build()

	assert.Equal(t, "SELECT vehicle_key, payload FROM vehicle_details WHERE vehicle_key = @p0", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "1",
	}, stmt.Params)
}

func TestBuilder_MultipleWhereConditions(t *testing.T) {
	stmt := From("vehicles").
		Select("vehicle_key").
		Where(Eq("brand", "Honda")).
		Where(Eq("year", int64(2023))).
		Build()

	assert.Equal(t, "SELECT vehicle_key FROM vehicles WHERE brand = @p0 AND year = @p1", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "Honda",
		"p1": int64(2023),
	}, stmt.Params)
}

func TestBuilder_OrderBy(t *testing.T) {
	asc := From("vehicles").Select("vehicle_key").OrderBy("position", Asc).Build()
	assert.Equal(t, "SELECT vehicle_key FROM vehicles ORDER BY position ASC", asc.SQL)

	desc := From("vehicles").Select("vehicle_key").OrderBy("price", Desc).Build()
	assert.Equal(t, "SELECT vehicle_key FROM vehicles ORDER BY price DESC", desc.SQL)
}

func TestBuilder_BuildPositional(t *testing.T) {
	sql, args := From("vehicles").
		Select("vehicle_key", "brand").
		Where(Eq("brand", "Fiat")).
		Where(Eq("model", "Argo")).
		OrderBy("position", Asc).
		BuildPositional()

	assert.Equal(t, "SELECT vehicle_key, brand FROM vehicles WHERE brand = $1 AND model = $2 ORDER BY position ASC", sql)
	assert.Equal(t, []interface{}{"Fiat", "Argo"}, args)
}

func TestBuilder_Immutability(t *testing.T) {
	base := From("vehicles").Select("vehicle_key")
	filtered := base.Where(Eq("brand", "Jeep"))
	ordered := base.OrderBy("position", Asc)

	assert.Equal(t, "SELECT vehicle_key FROM vehicles", base.Build().SQL)
	assert.Equal(t, "SELECT vehicle_key FROM vehicles WHERE brand = @p0", filtered.Build().SQL)
	assert.Equal(t, "SELECT vehicle_key FROM vehicles ORDER BY position ASC", ordered.Build().SQL)
}

func TestBuilder_MultipleSelectCalls(t *testing.T) {
	stmt := From("vehicles").Select("vehicle_key").Select("brand", "model").Build()
	assert.Equal(t, "SELECT vehicle_key, brand, model FROM vehicles", stmt.SQL)
}

func TestCondition_Eq(t *testing.T) {
	sql, args := Eq("brand", "Nissan").SQL(3, Named)
	assert.Equal(t, "brand = @p3", sql)
	assert.Equal(t, []interface{}{"Nissan"}, args)

	sql, _ = Eq("brand", "Nissan").SQL(3, Positional)
	assert.Equal(t, "brand = $4", sql)
}

func TestBuilder_String(t *testing.T) {
	s := From("vehicle_details").Where(Eq("vehicle_key", "2")).String()
	assert.Contains(t, s, "SQL: SELECT * FROM vehicle_details WHERE vehicle_key = @p0")
	assert.Contains(t, s, "p0:2")
}
