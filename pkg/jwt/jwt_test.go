package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/retail-pos/pkg/jwt"
)

const secret = "test-secret"

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, "user-1", "company-1", "authenticated", "retail-pos", 5)
	require.NoError(t, err)

	id, err := pkgjwt.Parse(secret, "retail-pos", tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id.UserID)
	assert.Equal(t, "company-1", id.CompanyID)
	assert.Equal(t, "authenticated", id.Role)
}

func TestParse_Rechazos(t *testing.T) {
	valid, err := pkgjwt.Generate(secret, "user-1", "company-1", "authenticated", "retail-pos", 5)
	require.NoError(t, err)
	expired, err := pkgjwt.Generate(secret, "user-1", "company-1", "authenticated", "retail-pos", -5)
	require.NoError(t, err)
	noCompany, err := pkgjwt.Generate(secret, "user-1", "", "authenticated", "retail-pos", 5)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secreto", "", valid)
	assert.Error(t, err, "firma incorrecta")

	_, err = pkgjwt.Parse(secret, "otro-emisor", valid)
	assert.Error(t, err, "emisor distinto")

	_, err = pkgjwt.Parse(secret, "", expired)
	assert.Error(t, err, "token expirado")

	_, err = pkgjwt.Parse(secret, "", noCompany)
	assert.Error(t, err, "sin company_id")

	_, err = pkgjwt.Parse(secret, "", "no.es.jwt")
	assert.Error(t, err)

	_, err = pkgjwt.Generate("", "u", "c", "r", "i", 5)
	assert.Error(t, err)
}
