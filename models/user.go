package models

// User es el usuario actual según el colaborador de autenticación.
// Solo se usa para mostrar etiquetas y habilitar acciones.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

// FullName devuelve nombre y apellido
func (u User) FullName() string {
	return joinName(u.FirstName, u.LastName)
}

// IsHost indica si el usuario puede administrar propiedades
func (u User) IsHost() bool {
	return u.Role == "host" || u.Role == "admin"
}

// Session es el contexto explícito del usuario que viaja con cada acción.
// Reemplaza la lectura del usuario guardado en el almacenamiento local.
type Session struct {
	ID     string
	Token  string
	UserID string
	Role   string
}

// Authenticated indica si hay un usuario en la sesión
func (s Session) Authenticated() bool {
	return s.UserID != "" && s.Token != ""
}
