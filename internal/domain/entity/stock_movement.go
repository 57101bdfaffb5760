package entity

import "time"

// Razones de movimiento (conjunto cerrado; una razón nueva requiere cambio de
// código, no un string suelto).
const (
	ReasonADJUSTMENT = "ADJUSTMENT" // ajuste manual o venta
	ReasonDAMAGE     = "DAMAGE"     // merma por daño
	ReasonRETURN     = "RETURN"     // devolución
	ReasonCOUNT      = "COUNT"      // conteo físico
)

// ValidReason indica si reason pertenece al conjunto cerrado.
func ValidReason(reason string) bool {
	switch reason {
	case ReasonADJUSTMENT, ReasonDAMAGE, ReasonRETURN, ReasonCOUNT:
		return true
	}
	return false
}

// StockMovement es una entrada del ledger: un cambio de cantidad con signo,
// razón, nota y timestamp. Append-only: el core nunca actualiza ni borra
// movimientos; solo desaparecen en cascada al borrar su producto.
type StockMovement struct {
	ID        string
	ProductID string
	Delta     int64 // distinto de cero; negativo = salida
	Reason    string
	Note      string
	CreatedAt time.Time // inmutable, asignado al crear
}
