package seed

import "github.com/scslimpo/hotspots-backend-go/internal/models"

// Cameras returns the default camera set for a fresh deployment: a single
// unit at the configured base point.
func Cameras(lat, lng float64) []models.Camera {
	return []models.Camera{
		{
			ID:          "CAM-SCS-001",
			Name:        "CAM-01 Principal",
			Latitude:    lat,
			Longitude:   lng,
			HeadingDeg:  0,
			FieldOfView: 90,
			VideoURL:    "https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4",
			Active:      true,
		},
	}
}

// Cooperatives returns the materials-recovery partners registered for the
// Federal District pilot.
func Cooperatives() []models.Cooperative {
	return []models.Cooperative{
		{
			ID:   "coop-centcoop-df",
			Name: "Central das Cooperativas de Materiais Recicláveis do DF (Centcoop)",
			ServedAreas: []string{
				"Plano Piloto", "SCS", "SBS", "Asa Sul", "Asa Norte", "Lago Sul", "Lago Norte",
			},
			Contact: "(61) 3345-1234",
			Email:   "contato@centcoop.org.br",
			AcceptedMaterials: []models.WasteType{
				models.WasteDryRecyclable, models.WasteOrganic, models.WasteBulky,
			},
		},
		{
			ID:   "coop-acapas-df",
			Name: "Associação dos Catadores de Papéis da Asa Sul (ACAPAS)",
			ServedAreas: []string{
				"Asa Sul", "SCS", "Setor Comercial Sul", "Setor Bancário Sul",
			},
			Contact:           "(61) 3244-5678",
			Email:             "acapas@gmail.com",
			AcceptedMaterials: []models.WasteType{models.WasteDryRecyclable},
		},
	}
}
