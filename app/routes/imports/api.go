package imports

import (
	"log"

	"github.com/Cloutiere/Gestion-administrative/app/config"
	"github.com/Cloutiere/Gestion-administrative/app/routes/annees"
	"github.com/Cloutiere/Gestion-administrative/app/services"

	"github.com/gofiber/fiber/v2"
)

// ImportCoursAPI replaces every cours of the active year with the uploaded
// workbook. The import is transactional: a bad row leaves the year intact.
func ImportCoursAPI(c *fiber.Ctx) error {
	reader, err := c.FormFile("fichier")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Aucun fichier reçu."})
	}
	src, err := reader.Open()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Fichier illisible."})
	}
	defer src.Close()

	db := config.GetDB()
	annee, err := annees.ActiveAnnee(c, db)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Aucune année scolaire active."})
	}

	cours, err := services.ParseCoursWorkbook(src)
	if err != nil {
		return importError(c, err)
	}

	stats, err := services.SaveImportedCours(db, annee.AnneeID, cours)
	if err != nil {
		return importError(c, err)
	}

	log.Printf("Import cours %s: %d importés, %d attributions supprimées",
		annee.Libelle, stats.Imported, stats.DeletedAttributions)
	return c.JSON(fiber.Map{
		"message": "Importation des cours terminée.",
		"stats":   stats,
	})
}

// ImportEnseignantsAPI replaces every teacher of the active year, fictif
// placeholders included, with the uploaded workbook.
func ImportEnseignantsAPI(c *fiber.Ctx) error {
	reader, err := c.FormFile("fichier")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Aucun fichier reçu."})
	}
	src, err := reader.Open()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Fichier illisible."})
	}
	defer src.Close()

	db := config.GetDB()
	annee, err := annees.ActiveAnnee(c, db)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Aucune année scolaire active."})
	}

	enseignants, err := services.ParseEnseignantsWorkbook(src)
	if err != nil {
		return importError(c, err)
	}

	stats, err := services.SaveImportedEnseignants(db, annee.AnneeID, enseignants)
	if err != nil {
		return importError(c, err)
	}

	log.Printf("Import enseignants %s: %d importés, %d attributions supprimées",
		annee.Libelle, stats.Imported, stats.DeletedAttributions)
	return c.JSON(fiber.Map{
		"message": "Importation des enseignants terminée.",
		"stats":   stats,
	})
}

func importError(c *fiber.Ctx, err error) error {
	status := services.HTTPStatus(err)
	if status == 500 {
		return c.Status(500).JSON(fiber.Map{"error": "Une erreur interne est survenue pendant l'importation."})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
