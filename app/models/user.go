package models

type Utilisateur struct {
	ID              string   `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Username        string   `json:"username" gorm:"uniqueIndex;not null" validate:"required"`
	PasswordHash    string   `json:"-" gorm:"not null" validate:"required"`
	IsAdmin         bool     `json:"is_admin" gorm:"default:false"`
	IsDashboardOnly bool     `json:"is_dashboard_only" gorm:"default:false"`
	AllowedChamps   []string `json:"allowed_champs,omitempty" gorm:"-"`
}

// CanAccessChamp reports whether the user may mutate data in the given champ.
func (u *Utilisateur) CanAccessChamp(champNo string) bool {
	if u.IsAdmin {
		return true
	}
	if u.IsDashboardOnly {
		return false
	}
	for _, no := range u.AllowedChamps {
		if no == champNo {
			return true
		}
	}
	return false
}

type UserChampAccess struct {
	UtilisateurID string `json:"utilisateur_id" gorm:"primaryKey;type:uuid"`
	ChampNo       string `json:"champ_no" gorm:"primaryKey"`
}
