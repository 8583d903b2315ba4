package models

type Laboratorio struct {
	ID        int64   `json:"id"`
	Nombre    string  `json:"nombre"`
	Ubicacion *string `json:"ubicacion"`
}
