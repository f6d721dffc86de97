package normalize

import "companyatlas/internal/backends/models"

// FamilyFrench names the French registries (INSEE, recherche-entreprises, RNA).
const FamilyFrench = "fr"

// frenchAliases lists, per normalized field, the raw paths tried in order.
var frenchAliases = map[string][]string{
	"siren":           {"siren"},
	"rna":             {"rna", "identifiant_association", "complements.identifiant_association"},
	"siret":           {"siret", "siege.siret"},
	"denomination":    {"denomination", "nom_raison_sociale", "nom_complet", "raison_sociale"},
	"since":           {"since", "date_creation"},
	"legalform":       {"legalform", "nature_juridique"},
	"ape":             {"ape", "activite_principale", "siege.activite_principale"},
	"category":        {"category", "categorie_entreprise"},
	"slice_effective": {"slice_effective", "tranche_effectif_salarie"},
	"siege":           {"siege", "est_siege", "siege.est_siege"},
}

// French normalizes rows shaped like the French company registries.
func French() Normalizer {
	return NormalizerFunc(func(row models.Row) map[string]string {
		out := make(map[string]string, len(frenchAliases))
		for field, paths := range frenchAliases {
			for _, path := range paths {
				v, ok := lookupPath(row, path)
				if !ok || v == nil {
					continue
				}
				if _, nested := v.(map[string]any); nested {
					continue
				}
				out[field] = Stringify(v)
				break
			}
		}
		return out
	})
}
