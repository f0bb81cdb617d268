package domain

// CascadeResult resultado explícito de una regla de cascada. Los no-ops por
// precondición (proyecto ya existente, serial fuera de stock, padre ausente)
// son resultados esperados, no errores: el caller y los tests pueden afirmar
// sobre ellos sin inspeccionar el estado del store.
type CascadeResult string

const (
	// CascadeApplied el efecto secundario se aplicó.
	CascadeApplied CascadeResult = "applied"
	// CascadeSkippedAlreadyExists la precondición de unicidad no se cumplió
	// (proyecto ya creado, serial ya instalado).
	CascadeSkippedAlreadyExists CascadeResult = "skipped_already_exists"
	// CascadeSkippedNotFound el registro objetivo de la cascada no existe.
	CascadeSkippedNotFound CascadeResult = "skipped_not_found"
	// CascadeNotTriggered la mutación no cumplió la condición de disparo.
	CascadeNotTriggered CascadeResult = "not_triggered"
)
