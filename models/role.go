package models

// Statuts d'une demande de rôle. accepted et rejected sont terminaux.
const (
	RequestPending  = "pending"
	RequestAccepted = "accepted"
	RequestRejected = "rejected"
)

// Actions de traitement d'une demande de rôle
const (
	ActionAccept = "accept"
	ActionReject = "reject"
)

// RoleRequest représente une demande d'élévation de rôle
type RoleRequest struct {
	ID            int    `json:"id"`
	UserID        string `json:"userId"`
	UserName      string `json:"userName"`
	UserPrenom    string `json:"userPrenom"`
	UserEmail     string `json:"userEmail"`
	RequestedRole string `json:"requestedRole"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
	ProcessedAt   string `json:"processedAt,omitempty"`
}

// RolesDocument est le document roles.json complet : la liste des demandes
// et la carte userId -> rôle accordé, mise à jour à chaque acceptation.
type RolesDocument struct {
	Requests []RoleRequest     `json:"requests"`
	Users    map[string]string `json:"users"`
}

// NewRolesDocument retourne un document rôles vide canonique.
func NewRolesDocument() RolesDocument {
	return RolesDocument{Requests: []RoleRequest{}, Users: map[string]string{}}
}

// RoleRequestInput représente le corps JSON de POST /roles/request
type RoleRequestInput struct {
	UserID        string `json:"userId"`
	RequestedRole string `json:"requestedRole"`
}

// ProcessRequestInput représente le corps JSON de PUT /roles/requests/{id}/{action}
type ProcessRequestInput struct {
	RequestID int    `json:"requestId"`
	Action    string `json:"action"`
}
