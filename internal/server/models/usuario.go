package models

// Roles known to the authorization guard. Any other value is treated as a
// read-only user.
const (
	RolAdmin     = "admin"
	RolSoloVista = "solo_vista"
)

// Usuario is an API account. Contrasena holds either a bcrypt hash or a
// legacy plaintext value and is never serialized.
type Usuario struct {
	ID         int64  `json:"id"`
	Usuario    string `json:"usuario"`
	Contrasena string `json:"-"`
	Rol        string `json:"rol"`
}

// LoginRequest accepts both the Spanish and the English key of each field.
type LoginRequest struct {
	Usuario    string `json:"usuario"`
	Username   string `json:"username"`
	Contrasena string `json:"contrasena"`
	Pass       string `json:"pass"`
}

// Credentials resolves the alternative keys, preferring the Spanish ones.
func (r LoginRequest) Credentials() (usuario, contrasena string) {
	usuario = r.Usuario
	if usuario == "" {
		usuario = r.Username
	}
	contrasena = r.Contrasena
	if contrasena == "" {
		contrasena = r.Pass
	}
	return usuario, contrasena
}
