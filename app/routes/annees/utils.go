package annees

import (
	"database/sql"
	"strconv"

	"github.com/Cloutiere/Gestion-administrative/app/database"
	"github.com/Cloutiere/Gestion-administrative/app/models"

	"github.com/gofiber/fiber/v2"
)

const anneeCookie = "annee_scolaire_id"

// ActiveAnnee resolves the year the request works against: the cookie set
// by "changer_active" when it points at a real year, the courante year
// otherwise. sql.ErrNoRows means no year exists at all.
func ActiveAnnee(c *fiber.Ctx, db *sql.DB) (*models.AnneeScolaire, error) {
	if raw := c.Cookies(anneeCookie); raw != "" {
		if anneeID, err := strconv.Atoi(raw); err == nil {
			annee, err := database.GetAnneeByID(db, anneeID)
			if err == nil {
				return annee, nil
			}
			if err != sql.ErrNoRows {
				return nil, err
			}
		}
	}
	return database.GetAnneeCourante(db)
}
