package entity

import "time"

// Estados derivados del stock de un producto. El estado nunca se asigna a mano:
// se recalcula con StatusForQty después de cada mutación del ledger.
const (
	StatusAVAILABLE = "AVAILABLE" // qty >= 5
	StatusPENDING   = "PENDING"   // 0 < qty < 5
	StatusOUT       = "OUT"       // qty == 0
)

// pendingThreshold umbral canónico: estrictamente menor que 5 queda en espera.
const pendingThreshold = 5

// Product representa un SKU del inventario. Qty es una vista materializada del
// ledger de movimientos (baseline + suma de deltas); solo cambia vía el motor
// de stock, nunca por edición directa.
type Product struct {
	ID        string
	SKU       string // código único
	Name      string
	Qty       int64 // invariante: siempre >= 0
	Status    string
	Price     int64 // precio unitario (entero)
	CreatedAt time.Time
	UpdatedAt time.Time // se actualiza en cada mutación
}

// StatusForQty deriva el estado a partir de la cantidad (función pura, sin
// dependencia del historial).
func StatusForQty(qty int64) string {
	switch {
	case qty == 0:
		return StatusOUT
	case qty < pendingThreshold:
		return StatusPENDING
	default:
		return StatusAVAILABLE
	}
}
