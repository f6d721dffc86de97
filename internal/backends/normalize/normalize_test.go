package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"companyatlas/internal/backends/models"
)

func rechercheEntreprisesRow() models.Row {
	return models.Row{
		"siren":                    "552081317",
		"nom_complet":              "SOCIETE D'EXPLOITATION DE LA TOUR EIFFEL",
		"nom_raison_sociale":       "SETE",
		"date_creation":            "1959-01-01",
		"nature_juridique":         float64(5710),
		"categorie_entreprise":     "PME",
		"tranche_effectif_salarie": "42",
		"siege": map[string]any{
			"siret":               "55208131700029",
			"est_siege":           true,
			"activite_principale": "93.29Z",
		},
	}
}

func TestFrenchNormalizer(t *testing.T) {
	got := Default().Normalize(FamilyFrench, models.ServiceCompanyData, rechercheEntreprisesRow())

	assert.Equal(t, map[string]string{
		"siren":           "552081317",
		"rna":             "",
		"siret":           "55208131700029",
		"denomination":    "SETE",
		"since":           "1959-01-01",
		"legalform":       "5710",
		"ape":             "93.29Z",
		"category":        "PME",
		"slice_effective": "42",
		"siege":           "true",
	}, got)
}

func TestNormalizationIdempotence(t *testing.T) {
	r := Default()
	first := r.Normalize(FamilyFrench, models.ServiceCompanyData, rechercheEntreprisesRow())

	// feed the normalized record back through
	again := r.Normalize(FamilyFrench, models.ServiceCompanyData, toRow(first))

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(again)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestAlreadyNormalizedRowSkipsFamily(t *testing.T) {
	calls := 0
	r := NewRegistry()
	require.NoError(t, r.Register("xx", NormalizerFunc(func(models.Row) map[string]string {
		calls++
		return map[string]string{"denomination": "rewritten"}
	})))

	row := models.Row{}
	for _, f := range models.NormalizedFields {
		row[f] = ""
	}
	row["denomination"] = "Original"

	got := r.Normalize("xx", models.ServiceCompanyData, row)
	assert.Equal(t, 0, calls)
	assert.Equal(t, "Original", got["denomination"])
}

func TestNormalizeScope(t *testing.T) {
	r := Default()
	row := models.Row{"nom_complet": "ACME", "siren": nil}

	t.Run("unknown family projects raw keys", func(t *testing.T) {
		got := r.Normalize("gb", models.ServiceCompanyData, row)
		assert.Equal(t, "", got["denomination"])
		assert.Equal(t, "", got["siren"])
		assert.Len(t, got, len(models.NormalizedFields))
	})

	t.Run("non company services are not rewritten", func(t *testing.T) {
		got := r.Normalize(FamilyFrench, models.ServiceDocuments, row)
		assert.Equal(t, "", got["denomination"])
	})

	t.Run("family match is case insensitive", func(t *testing.T) {
		got := r.Normalize("FR", models.ServiceCompanyData, row)
		assert.Equal(t, "ACME", got["denomination"])
	})
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("fr", French()))
	assert.Error(t, r.Register("FR", French()))
	assert.Error(t, r.Register(" ", French()))
	assert.Error(t, r.Register("de", nil))
	assert.Equal(t, []string{"fr"}, r.Families())
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "", Stringify(nil))
	assert.Equal(t, "552081317", Stringify(float64(552081317)))
	assert.Equal(t, "1.5", Stringify(1.5))
	assert.Equal(t, "7", Stringify(7))
	assert.Equal(t, "false", Stringify(false))
}
