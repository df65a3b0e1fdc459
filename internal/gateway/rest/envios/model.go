package envios

import (
	"time"

	"github.com/shopspring/decimal"
)

// amount is a decimal that travels as a bare JSON number.
type amount decimal.Decimal

func (a amount) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(a).String()), nil
}

func (a *amount) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	*a = amount(d)
	return nil
}

type envioModel struct {
	ID              string    `json:"_id"`
	Nombre          string    `json:"nombre"`
	Apellido        string    `json:"apellido,omitempty"`
	DNI             string    `json:"dni,omitempty"`
	NumeroOperacion string    `json:"numeroOperacion,omitempty"`
	Descripcion     string    `json:"descripcion"`
	Destino         string    `json:"destino"`
	Estado          string    `json:"estado"`
	Precio          amount    `json:"precio"`
	Toneladas       amount    `json:"toneladas"`
	CreatedAt       time.Time `json:"createdAt"`
}

type envioCreateRequest struct {
	Nombre          string `json:"nombre"`
	Apellido        string `json:"apellido,omitempty"`
	DNI             string `json:"dni,omitempty"`
	NumeroOperacion string `json:"numeroOperacion,omitempty"`
	Descripcion     string `json:"descripcion"`
	Destino         string `json:"destino"`
	Estado          string `json:"estado"`
	Precio          amount `json:"precio"`
	Toneladas       amount `json:"toneladas"`
}

type envioPatchRequest struct {
	Toneladas   *amount `json:"toneladas,omitempty"`
	Precio      *amount `json:"precio,omitempty"`
	Descripcion *string `json:"descripcion,omitempty"`
}

type estadoPatchRequest struct {
	Estado string `json:"estado"`
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type messageResponse struct {
	Message string `json:"message"`
}
