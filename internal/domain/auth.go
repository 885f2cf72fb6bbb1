package domain

// Mode selects which endpoint an auth submit targets.
type Mode int

const (
	ModeLogin Mode = iota
	ModeRegister
)

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeLogin {
		return ModeRegister
	}
	return ModeLogin
}

func (m Mode) String() string {
	if m == ModeRegister {
		return "register"
	}
	return "login"
}

// AuthDraft is the scratch buffer behind the login/registration form.
// Role is only sent on registration.
type AuthDraft struct {
	Username string
	Password string
	Role     Role
}

// EmptyDraft returns a cleared draft with the form's default role selection.
func EmptyDraft() AuthDraft {
	return AuthDraft{Role: RolePatient}
}

// Complete reports whether both credential fields are filled in.
func (d AuthDraft) Complete() bool {
	return d.Username != "" && d.Password != ""
}

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is the register request body.
type Registration struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// Credentials extracts the login body. The draft role is dropped.
func (d AuthDraft) Credentials() Credentials {
	return Credentials{Username: d.Username, Password: d.Password}
}

// Registration extracts the register body, defaulting an unset role to patient.
func (d AuthDraft) Registration() Registration {
	role := d.Role
	if role == "" {
		role = RolePatient
	}
	return Registration{Username: d.Username, Password: d.Password, Role: role}
}
