package api

// Role is a user's role within the association
type Role string

// Roles known to the backend
const (
	RoleUser    Role = "user"
	RoleAdmin   Role = "admin"
	RoleFounder Role = "founder"
)

// CanSeeVoters reports whether the role grants access to the per-user
// reaction breakdown. The server already gates the data; this is the local
// check layered on top.
func (r Role) CanSeeVoters() bool {
	return r == RoleAdmin || r == RoleFounder
}

// Privileged reports whether the role grants access to the admin panel
func (r Role) Privileged() bool {
	return r == RoleAdmin || r == RoleFounder
}

// User is the identity record returned by the backend.
//
// The boolean-ish fields arrive as 0/1 integers (SQLite heritage on the
// server side); use the accessor helpers.
type User struct {
	ID            int64   `json:"id"`
	Email         string  `json:"email"`
	Nom           string  `json:"nom"`
	Prenom        string  `json:"prenom"`
	Role          Role    `json:"role"`
	AvatarURL     *string `json:"avatar_url"`
	EmailVerified int     `json:"email_verified"`
	CreatedAt     string  `json:"created_at"`
	IsActive      int     `json:"is_active"`
}

// Verified reports whether the user's email address has been verified
func (u User) Verified() bool { return u.EmailVerified != 0 }

// Active reports whether the account is active
func (u User) Active() bool { return u.IsActive != 0 }

// DisplayName returns "Prenom Nom"
func (u User) DisplayName() string {
	return u.Prenom + " " + u.Nom
}

// AdminUser is the extended record visible in the admin panel
type AdminUser struct {
	User
	LastLogin *string `json:"last_login"`
}

// AuthResponse is returned by login, register and refresh
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Message is an internal mailbox message
type Message struct {
	ID               int64   `json:"id"`
	ExpediteurID     *int64  `json:"expediteur_id"`
	DestinataireID   int64   `json:"destinataire_id"`
	Sujet            string  `json:"sujet"`
	Contenu          string  `json:"contenu"`
	Lu               int     `json:"lu"`
	Important        int     `json:"important"`
	Type             string  `json:"type"`
	CreatedAt        string  `json:"created_at"`
	ExpediteurNom    *string `json:"expediteur_nom,omitempty"`
	ExpediteurPrenom *string `json:"expediteur_prenom,omitempty"`
	ExpediteurEmail  *string `json:"expediteur_email,omitempty"`
}

// Message types
const (
	MessageTypeNormal       = "normal"
	MessageTypeSystem       = "system"
	MessageTypeNotification = "notification"
)

// Read reports whether the message has been read
func (m Message) Read() bool { return m.Lu != 0 }

// Flagged reports whether the message is marked important
func (m Message) Flagged() bool { return m.Important != 0 }

// Sender returns the sender's display name, or "Systeme" for system mail
func (m Message) Sender() string {
	if m.ExpediteurPrenom != nil && m.ExpediteurNom != nil {
		return *m.ExpediteurPrenom + " " + *m.ExpediteurNom
	}
	return "Systeme"
}

// Abonnement is a membership subscription
type Abonnement struct {
	ID            int64   `json:"id"`
	UtilisateurID int64   `json:"utilisateur_id"`
	Type          string  `json:"type"`
	Nom           string  `json:"nom"`
	Description   *string `json:"description"`
	DateDebut     string  `json:"date_debut"`
	DateFin       *string `json:"date_fin"`
	Prix          float64 `json:"prix"`
	Statut        string  `json:"statut"`
	CreatedAt     string  `json:"created_at"`
}

// Subscription types and statuses
const (
	SubscriptionMensuel   = "mensuel"
	SubscriptionAnnuel    = "annuel"
	SubscriptionEvenement = "evenement"

	SubscriptionActif  = "actif"
	SubscriptionExpire = "expire"
	SubscriptionAnnule = "annule"
)

// PublicMember is the public-directory view of a member
type PublicMember struct {
	ID        int64   `json:"id"`
	Prenom    string  `json:"prenom"`
	Nom       string  `json:"nom"`
	AvatarURL *string `json:"avatar_url"`
	CreatedAt string  `json:"created_at"`
}

// BDEMember is a member of the association's board
type BDEMember struct {
	ID        int64   `json:"id"`
	Prenom    string  `json:"prenom"`
	Nom       string  `json:"nom"`
	Poste     string  `json:"poste"`
	AvatarURL *string `json:"avatar_url"`
}

// Annonce is a public announcement
type Annonce struct {
	ID            int64   `json:"id"`
	Titre         string  `json:"titre"`
	Contenu       string  `json:"contenu"`
	ImageURL      *string `json:"image_url"`
	DateEvenement *string `json:"date_evenement"`
	CreatedAt     string  `json:"created_at"`
	AuteurPrenom  *string `json:"auteur_prenom"`
	AuteurNom     *string `json:"auteur_nom"`
}

// AdminUserStats is the admin statistics payload
type AdminUserStats struct {
	TotalUsers            int           `json:"totalUsers"`
	ActiveUsers           int           `json:"activeUsers"`
	AdminUsers            int           `json:"adminUsers"`
	VerifiedUsers         int           `json:"verifiedUsers"`
	Adherents             int           `json:"adherents"`
	RegistrationsPerMonth []PeriodCount `json:"registrationsPerMonth"`
	RegistrationsPerDay   []PeriodCount `json:"registrationsPerDay"`
	LoginsPerDay          []PeriodCount `json:"loginsPerDay"`
	RecentUsers           []AdminUser   `json:"recentUsers"`
}

// PeriodCount is a single time bucket in a statistics series
type PeriodCount struct {
	Month string `json:"month,omitempty"`
	Day   string `json:"day,omitempty"`
	Count int    `json:"count"`
}

// Period returns whichever bucket label is set
func (p PeriodCount) Period() string {
	if p.Month != "" {
		return p.Month
	}
	return p.Day
}

// SubscriptionStats is the admin subscription statistics payload
type SubscriptionStats struct {
	Total   int                     `json:"total"`
	Actifs  int                     `json:"actifs"`
	Revenus float64                 `json:"revenus"`
	ParType []SubscriptionTypeStats `json:"par_type"`
}

// SubscriptionTypeStats is a per-type aggregate
type SubscriptionTypeStats struct {
	Type      string  `json:"type"`
	Count     int     `json:"count"`
	TotalPrix float64 `json:"total_prix"`
}
