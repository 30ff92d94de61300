package models

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Ref es una referencia que el backend envía como id o como objeto poblado
// (usuario, propiedad o tour dentro de una reserva).
type Ref struct {
	ID        string `json:"id"`
	Title     string `json:"title,omitempty"`
	City      string `json:"city,omitempty"`
	Location  string `json:"location,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Populated bool   `json:"-"`
}

type refObject struct {
	ID        string `json:"id"`
	MongoID   string `json:"_id"`
	Title     string `json:"title"`
	City      string `json:"city"`
	Location  string `json:"location"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		return json.Unmarshal(data, &r.ID)
	}
	var obj refObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	r.ID = obj.ID
	if r.ID == "" {
		r.ID = obj.MongoID
	}
	r.Title = obj.Title
	r.City = obj.City
	r.Location = obj.Location
	r.FirstName = obj.FirstName
	r.LastName = obj.LastName
	r.Populated = true
	return nil
}

// IsSet indica si la referencia apunta a algo
func (r *Ref) IsSet() bool {
	return r != nil && r.ID != ""
}

// DisplayName devuelve el nombre legible del recurso o persona referida
func (r *Ref) DisplayName() string {
	if r == nil {
		return ""
	}
	if r.Title != "" {
		return r.Title
	}
	if r.FirstName != "" || r.LastName != "" {
		return joinName(r.FirstName, r.LastName)
	}
	return r.ID
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}
