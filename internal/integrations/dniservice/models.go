package dniservice

// Person ответ внешнего сервиса поиска по DNI
type Person struct {
	DNI      string `json:"dni"`
	FullName string `json:"nombre_completo"`
}
