// Package entity defines the domain entities for the users feature.
package entity

// Role labels stored in usr_role and evaluated by the access policy.
const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// KindUser is the principal kind tag handled by the user repository.
// Authentication code wired to several repositories uses it to route
// refresh calls to the right one.
const KindUser = "user"

// User represents an account persisted in t_user.
// An ID of zero marks a transient (not yet saved) user; the repository
// assigns the ID on first insert.
type User struct {
	// ID is the storage-assigned identifier.
	ID uint `gorm:"column:usr_id;primaryKey"`

	// Username is the unique external identifier used for login.
	Username string `gorm:"column:usr_name;size:50;not null;uniqueIndex"`

	// Password holds the hashed credential. Never plaintext.
	Password string `gorm:"column:usr_password;size:255;not null"`

	// Salt is auxiliary credential material. Empty for self-salting
	// schemes such as bcrypt; kept for compatibility with rows hashed
	// under an older scheme.
	Salt string `gorm:"column:usr_salt;size:255;not null;default:''"`

	// Role is one of the role labels above.
	Role string `gorm:"column:usr_role;size:50;not null"`
}

// TableName maps the entity onto the legacy t_user table.
func (User) TableName() string { return "t_user" }

// IsTransient reports whether the user has not been persisted yet.
func (u *User) IsTransient() bool { return u.ID == 0 }

// PrincipalKind implements Principal.
func (u *User) PrincipalKind() string { return KindUser }

// PrincipalUsername implements Principal.
func (u *User) PrincipalUsername() string { return u.Username }

// KnownRole reports whether the label is one of the recognized roles.
// Unrecognized labels are not an error anywhere in the system; they just
// grant no extra capabilities.
func KnownRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// Principal is the minimal view of an authenticated subject that the
// credential-lookup contract accepts. *User implements it; foreign
// principal kinds are rejected by the repository's Supports check.
type Principal interface {
	PrincipalKind() string
	PrincipalUsername() string
}
