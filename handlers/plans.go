package handlers

import (
	"net/http"

	"freelanceai/models"

	"github.com/gin-gonic/gin"
)

// subscriptionPlans is the fixed tier catalog shown on the pricing page.
var subscriptionPlans = []models.Plan{
	{
		ID:           "freelance",
		Name:         "Freelance",
		Description:  "Idéal pour les freelances qui cherchent des projets et des clients.",
		MonthlyPrice: 29.99,
		Currency:     "EUR",
		Features: []string{
			"Accès à tous les projets",
			"Profil freelance avancé",
			"Système de paiement sécurisé",
			"Commission de 15% sur les prestations",
			"Support client prioritaire",
		},
	},
	{
		ID:           "client",
		Name:         "Client",
		Description:  "Pour les entreprises qui recherchent des freelances qualifiés.",
		MonthlyPrice: 99.99,
		Currency:     "EUR",
		Popular:      true,
		Features: []string{
			"Accès à tous les freelances",
			"Publication de projets illimitée",
			"Système d'entiercement sécurisé",
			"Commission de 15% sur les prestations",
			"Support client dédié",
			"Accès aux freelances premium",
		},
	},
	{
		ID:          "turnkey",
		Name:        "Clés en Main",
		Description: "Solutions personnalisées pour les projets complexes.",
		Currency:    "EUR",
		Features: []string{
			"Équipe dédiée de freelances",
			"Gestion de projet complète",
			"Solutions sur mesure",
			"Commission de 15% sur les prestations",
			"Support client prioritaire 24/7",
			"Chef de projet dédié",
		},
	},
}

// GetPlans handles GET /api/plans.
func GetPlans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": subscriptionPlans})
}
