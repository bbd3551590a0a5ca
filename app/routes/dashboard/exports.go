package dashboard

import (
	"fmt"

	"github.com/Cloutiere/Gestion-administrative/app/config"
	"github.com/Cloutiere/Gestion-administrative/app/database"
	"github.com/Cloutiere/Gestion-administrative/app/routes/annees"
	"github.com/Cloutiere/Gestion-administrative/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func sendWorkbook(c *fiber.Ctx, f *excelize.File, filename string) error {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Échec de la génération du fichier Excel.")
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(buf.Bytes())
}

func ExportTaches(c *fiber.Ctx) error {
	db := config.GetDB()
	annee, err := annees.ActiveAnnee(c, db)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Aucune année scolaire active.")
	}

	rows, err := database.GetTachesExportRows(db, annee.AnneeID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}
	f, err := services.GenererExportTaches(rows)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Échec de la génération du fichier Excel.")
	}
	return sendWorkbook(c, f, fmt.Sprintf("Taches_%s.xlsx", annee.Libelle))
}

func ExportOrgScolaire(c *fiber.Ctx) error {
	db := config.GetDB()
	annee, err := annees.ActiveAnnee(c, db)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Aucune année scolaire active.")
	}

	rows, err := database.GetOrgScolaireRows(db, annee.AnneeID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}
	nonAttribue, err := database.GetPeriodesNonAttribuees(db, annee.AnneeID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}
	financements, err := database.GetAllFinancements(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}

	f, err := services.GenererExportOrgScolaire(rows, nonAttribue, financements)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Échec de la génération du fichier Excel.")
	}
	return sendWorkbook(c, f, fmt.Sprintf("Organisation_scolaire_%s.xlsx", annee.Libelle))
}

func ExportPeriodesRestantes(c *fiber.Ctx) error {
	db := config.GetDB()
	annee, err := annees.ActiveAnnee(c, db)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Aucune année scolaire active.")
	}

	cours, err := database.GetAllCoursAvecRestants(db, annee.AnneeID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}
	f, err := services.GenererExportPeriodesRestantes(cours)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Échec de la génération du fichier Excel.")
	}
	return sendWorkbook(c, f, fmt.Sprintf("Periodes_restantes_%s.xlsx", annee.Libelle))
}
