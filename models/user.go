package models

// User représente un utilisateur dans le système.
// Le hash du mot de passe est persisté dans users.json mais n'est jamais
// renvoyé au client : les réponses HTTP utilisent SessionUser ou Author.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Prenom       string `json:"prenom"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	Role         string `json:"role"`
}

// Rôles connus du système
const (
	RoleUtilisateur = "utilisateur"
	RoleCuisinier   = "cuisinier"
	RoleChef        = "chef"
	RoleTraducteur  = "traducteur"
	RoleAdmin       = "admin"
)

// SessionUser est la copie dénormalisée de l'identité stockée en session.
// C'est aussi la forme renvoyée par GET /user.
type SessionUser struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Prenom string `json:"prenom"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// Snapshot construit la copie de session d'un utilisateur.
func (u *User) Snapshot() SessionUser {
	return SessionUser{
		ID:     u.ID,
		Name:   u.Name,
		Prenom: u.Prenom,
		Email:  u.Email,
		Role:   u.Role,
	}
}

// AuthorSnapshot construit la copie Author embarquée dans une recette ou un
// commentaire au moment de sa création.
func (s SessionUser) AuthorSnapshot() Author {
	return Author{
		ID:     s.ID,
		Name:   s.Name,
		Prenom: s.Prenom,
		Email:  s.Email,
		Role:   s.Role,
	}
}
