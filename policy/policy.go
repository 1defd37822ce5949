// Package policy regroupe les décisions d'autorisation pures du système :
// aucune entrée-sortie, uniquement (rôle, identités) -> autorisé ou non.
package policy

import "recettes-backend/models"

// CanAddRecipe indique si le rôle peut publier une recette.
// Seuls admin et chef sont autorisés ; cuisinier reste en attente d'une
// décision produit.
func CanAddRecipe(role string) bool {
	return role == models.RoleAdmin || role == models.RoleChef
}

// CanAddComment indique si le rôle peut commenter une recette
func CanAddComment(role string) bool {
	return role == models.RoleAdmin || role == models.RoleChef || role == models.RoleCuisinier
}

// CanModify indique si l'acteur peut modifier ou supprimer une ressource.
// Les identifiants sont comparés en tant que chaînes normalisées.
func CanModify(actorID, actorRole, ownerID string) bool {
	return actorRole == models.RoleAdmin || actorID == ownerID
}

// CanRequestRole indique si le rôle demandé est éligible à une demande
// d'élévation. admin et utilisateur ne se demandent jamais.
func CanRequestRole(requestedRole string) bool {
	switch requestedRole {
	case models.RoleChef, models.RoleCuisinier, models.RoleTraducteur:
		return true
	default:
		return false
	}
}
