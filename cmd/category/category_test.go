package category_test

import (
	"net/http"
	"testing"
	"time"

	"fjacquet/finance-cli/cmd/category"
	"fjacquet/finance-cli/cmd/cmdtest"
	"fjacquet/finance-cli/internal/apierror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type jsonMap = map[string]interface{}

func TestCategoryCommand_Metadata(t *testing.T) {
	assert.Equal(t, "category", category.Cmd.Use)
	assert.Len(t, category.Cmd.Commands(), 4)
}

func TestList(t *testing.T) {
	h := cmdtest.New(t, time.Now())
	h.Handle(http.MethodGet, "/api/categories", http.StatusOK, []jsonMap{
		{"id": 1, "name": "Sueldo", "type": "income", "is_active": true},
		{"id": 2, "name": "Comida", "type": "expense", "is_active": true},
	})

	out, err := h.Run(t, category.Cmd, "category", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Ingreso")
	assert.Contains(t, out, "Gasto")
}

func TestCreate(t *testing.T) {
	h := cmdtest.New(t, time.Now())
	h.Handle(http.MethodPost, "/api/categories", http.StatusCreated, jsonMap{"id": 3, "name": "Viajes", "type": "expense"})

	_, err := h.Run(t, category.Cmd, "category", "create", "Viajes", "--color", "#00ff00")
	require.NoError(t, err)

	post, ok := h.Find(http.MethodPost, "/api/categories")
	require.True(t, ok)
	assert.JSONEq(t, `{"name":"Viajes","type":"expense","color":"#00ff00"}`, post.Body)
}

func TestCreate_InvalidType(t *testing.T) {
	h := cmdtest.New(t, time.Now())

	_, err := h.Run(t, category.Cmd, "category", "create", "Viajes", "-t", "savings")
	var verr *apierror.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "type", verr.Field)
	assert.Empty(t, h.Requests())
}

func TestDeleteAndRestore(t *testing.T) {
	h := cmdtest.New(t, time.Now())
	h.Handle(http.MethodDelete, "/api/categories/3", http.StatusNoContent, nil)
	h.Handle(http.MethodPatch, "/api/categories/3/restore", http.StatusOK, nil)

	out, err := h.Run(t, category.Cmd, "category", "delete", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Category 3 deleted")

	out, err = h.Run(t, category.Cmd, "category", "restore", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Category 3 restored")
}
