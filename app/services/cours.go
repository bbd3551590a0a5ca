package services

// ValiderFinancementCours rejects a financement code on an "autre tâche":
// estcoursautre implique financement_code NULL.
func ValiderFinancementCours(estCoursAutre bool, financementCode *string) error {
	if estCoursAutre && financementCode != nil {
		return &ValidationError{Message: "Un cours de type autre tâche ne peut pas porter de code de financement."}
	}
	return nil
}
