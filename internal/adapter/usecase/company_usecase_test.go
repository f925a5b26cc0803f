package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postcraft/internal/adapter/memory"
	"postcraft/internal/core/port"
)

func TestCreateCompany(t *testing.T) {
	ctx := context.Background()
	svc := NewCompanyUseCase(memory.NewStore(), nil)

	_, err := svc.CreateCompany(ctx, "", port.CompanyInput{Name: "Acme"})
	require.ErrorIs(t, err, port.ErrUnauthenticated)

	_, err = svc.CreateCompany(ctx, "u1", port.CompanyInput{Name: "   "})
	require.ErrorIs(t, err, port.ErrValidation)

	id, err := svc.CreateCompany(ctx, "u1", port.CompanyInput{
		Name:          " Acme ",
		WebsiteURL:    "https://acme.example",
		AssetFileRefs: []string{"f1", "f2"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	c, err := svc.GetCompany(ctx, id, "u1")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "Acme", c.Name)
	assert.Equal(t, []string{"f1", "f2"}, c.AssetFileRefs)
}

func TestCompanyReadsAreOwnerScoped(t *testing.T) {
	ctx := context.Background()
	svc := NewCompanyUseCase(memory.NewStore(), nil)

	id, err := svc.CreateCompany(ctx, "u1", port.CompanyInput{Name: "Acme"})
	require.NoError(t, err)

	other, err := svc.GetCompany(ctx, id, "u2")
	require.NoError(t, err)
	assert.Nil(t, other)

	anon, err := svc.GetCompany(ctx, id, "")
	require.NoError(t, err)
	assert.Nil(t, anon)

	list, err := svc.ListCompanies(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = svc.ListCompanies(ctx, "")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	list, err = svc.ListCompanies(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)
}
